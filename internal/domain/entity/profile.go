package entity

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// DefaultCurrency is the currency assumed when the profile has none stored.
const DefaultCurrency = "USD"

// UserProfile represents the per-user profile singleton.
type UserProfile struct {
	Name          string          `json:"name"`
	Currency      string          `json:"currency"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// DefaultProfile returns the fallback profile used when none is stored
// or the stored value fails validation.
func DefaultProfile() UserProfile {
	return UserProfile{
		Currency:      DefaultCurrency,
		MonthlyBudget: decimal.Zero,
	}
}

// Validate checks the profile against the current schema shape.
func (p UserProfile) Validate() error {
	if p.Currency == "" {
		return domainerror.ErrMissingProfileCurrency
	}
	if p.MonthlyBudget.IsNegative() {
		return domainerror.ErrInvalidProfileBudget
	}
	return nil
}
