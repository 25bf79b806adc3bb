package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type         string          `json:"type" binding:"required,oneof=income expense investment"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Date         string          `json:"date" binding:"required"`
	Description  string          `json:"description,omitempty" binding:"omitempty,max=255"`
	IsUnexpected bool            `json:"isUnexpected,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type         string          `json:"type" binding:"required,oneof=income expense investment"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Date         string          `json:"date" binding:"required"`
	Description  string          `json:"description,omitempty" binding:"omitempty,max=255"`
	IsUnexpected bool            `json:"isUnexpected,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         string          `json:"date"`
	Description  string          `json:"description,omitempty"`
	IsUnexpected bool            `json:"isUnexpected"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to its DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		Category:     tx.Category,
		Date:         tx.Date,
		Description:  tx.Description,
		IsUnexpected: tx.IsUnexpected,
		CreatedAt:    tx.CreatedAt,
	}
}

// ToTransactionListResponse converts a slice of transactions to the list DTO.
func ToTransactionListResponse(transactions []entity.Transaction) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
		Total:        len(transactions),
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(&transactions[i]))
	}
	return response
}
