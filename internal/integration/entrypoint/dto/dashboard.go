package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
)

// BalanceResponse represents the derived balance in API responses.
type BalanceResponse struct {
	Balance         decimal.Decimal `json:"balance"`
	IncomeTotal     decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal    decimal.Decimal `json:"expenseTotal"`
	InvestmentTotal decimal.Decimal `json:"investmentTotal"`
}

// ToBalanceResponse converts the balance use case output to its DTO.
func ToBalanceResponse(output *dashboard.GetBalanceOutput) BalanceResponse {
	return BalanceResponse{
		Balance:         output.Balance,
		IncomeTotal:     output.IncomeTotal,
		ExpenseTotal:    output.ExpenseTotal,
		InvestmentTotal: output.InvestmentTotal,
	}
}
