package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// Goal represents a savings goal.
type Goal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	Deadline     string          `json:"deadline,omitempty"`
}

// NewGoal creates a new Goal entity.
func NewGoal(name string, targetAmount decimal.Decimal, deadline string) *Goal {
	return &Goal{
		ID:           uuid.New().String(),
		Name:         name,
		TargetAmount: targetAmount,
		SavedAmount:  decimal.Zero,
		Deadline:     deadline,
	}
}

// Validate checks the goal against the current schema shape.
func (g Goal) Validate() error {
	if g.ID == "" {
		return domainerror.ErrMissingEntityID
	}
	if g.Name == "" {
		return domainerror.ErrMissingEntityName
	}
	if g.TargetAmount.IsNegative() || g.SavedAmount.IsNegative() {
		return domainerror.ErrInvalidGoalAmount
	}
	return nil
}
