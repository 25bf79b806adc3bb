package transaction

import (
	"context"
	"sort"

	"github.com/finance-tracker/client/internal/application/repository"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
	Total        int
}

// ListTransactionsUseCase returns the locally stored transactions, most recent first.
type ListTransactionsUseCase struct {
	transactionRepo *repository.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo *repository.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists all transactions sorted by date descending.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	return &ListTransactionsOutput{
		Transactions: transactions,
		Total:        len(transactions),
	}, nil
}
