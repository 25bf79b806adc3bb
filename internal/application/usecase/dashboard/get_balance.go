// Package dashboard contains read-model use cases derived from local data.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// TransactionSource provides the transactions the balance is derived from.
type TransactionSource interface {
	GetAll(ctx context.Context) ([]entity.Transaction, error)
}

// GetBalanceOutput represents the derived balance and per-type totals.
type GetBalanceOutput struct {
	Balance         decimal.Decimal
	IncomeTotal     decimal.Decimal
	ExpenseTotal    decimal.Decimal
	InvestmentTotal decimal.Decimal
}

// GetBalanceUseCase derives the current balance from the transaction collection.
type GetBalanceUseCase struct {
	transactions TransactionSource
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(transactions TransactionSource) *GetBalanceUseCase {
	return &GetBalanceUseCase{transactions: transactions}
}

// Execute computes balance = income - expense - investment.
func (uc *GetBalanceUseCase) Execute(ctx context.Context) (*GetBalanceOutput, error) {
	transactions, err := uc.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &GetBalanceOutput{
		Balance:         decimal.Zero,
		IncomeTotal:     decimal.Zero,
		ExpenseTotal:    decimal.Zero,
		InvestmentTotal: decimal.Zero,
	}

	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			output.IncomeTotal = output.IncomeTotal.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			output.ExpenseTotal = output.ExpenseTotal.Add(tx.Amount)
		case entity.TransactionTypeInvestment:
			output.InvestmentTotal = output.InvestmentTotal.Add(tx.Amount)
		}
	}

	output.Balance = output.IncomeTotal.
		Sub(output.ExpenseTotal).
		Sub(output.InvestmentTotal)
	return output, nil
}
