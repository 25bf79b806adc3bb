// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeInvestment TransactionType = "investment"
)

// DateLayout is the wire format for entity dates.
const DateLayout = "2006-01-02"

// Transaction represents a financial transaction held in the local store.
type Transaction struct {
	ID           string          `json:"id"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         string          `json:"date"`
	Description  string          `json:"description,omitempty"`
	IsUnexpected bool            `json:"isUnexpected"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	date string,
	description string,
	isUnexpected bool,
) *Transaction {
	return &Transaction{
		ID:           uuid.New().String(),
		Type:         transactionType,
		Amount:       amount,
		Category:     category,
		Date:         date,
		Description:  description,
		IsUnexpected: isUnexpected,
		CreatedAt:    time.Now().UTC(),
	}
}

// Validate checks the transaction against the current schema shape.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return domainerror.ErrMissingEntityID
	}
	if !IsValidTransactionType(t.Type) {
		return domainerror.ErrInvalidTransactionType
	}
	if t.Date == "" {
		return domainerror.ErrInvalidEntityDate
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return domainerror.ErrInvalidEntityDate
	}
	return nil
}

// IsValidTransactionType reports whether the given type is a known transaction type.
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeInvestment:
		return true
	}
	return false
}
