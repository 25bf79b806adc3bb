// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/repository"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type         entity.TransactionType
	Amount       decimal.Decimal
	Category     string
	Date         string
	Description  string
	IsUnexpected bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic. The write is
// local and instant; the repository enqueues the remote sync as a side effect.
type CreateTransactionUseCase struct {
	transactionRepo *repository.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo *repository.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if len(input.Description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description must not exceed %d characters", MaxDescriptionLength)
	}
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.ErrInvalidTransactionType
	}

	tx := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Category,
		input.Date,
		input.Description,
		input.IsUnexpected,
	)

	if err := uc.transactionRepo.Add(ctx, *tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &CreateTransactionOutput{Transaction: tx}, nil
}
