package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// RecurringFrequency represents how often a recurring transaction repeats.
type RecurringFrequency string

const (
	RecurringFrequencyWeekly  RecurringFrequency = "weekly"
	RecurringFrequencyMonthly RecurringFrequency = "monthly"
	RecurringFrequencyYearly  RecurringFrequency = "yearly"
)

// RecurringTransaction represents a rule that materializes transactions on a cadence.
type RecurringTransaction struct {
	ID        string             `json:"id"`
	Type      TransactionType    `json:"type"`
	Amount    decimal.Decimal    `json:"amount"`
	Category  string             `json:"category"`
	Frequency RecurringFrequency `json:"frequency"`
	StartDate string             `json:"startDate"`
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
func NewRecurringTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	frequency RecurringFrequency,
	startDate string,
) *RecurringTransaction {
	return &RecurringTransaction{
		ID:        uuid.New().String(),
		Type:      transactionType,
		Amount:    amount,
		Category:  category,
		Frequency: frequency,
		StartDate: startDate,
	}
}

// Validate checks the recurring transaction against the current schema shape.
func (r RecurringTransaction) Validate() error {
	if r.ID == "" {
		return domainerror.ErrMissingEntityID
	}
	if !IsValidTransactionType(r.Type) {
		return domainerror.ErrInvalidTransactionType
	}
	if !IsValidRecurringFrequency(r.Frequency) {
		return domainerror.ErrInvalidRecurringFrequency
	}
	return nil
}

// IsValidRecurringFrequency reports whether the given frequency is a known value.
func IsValidRecurringFrequency(frequency RecurringFrequency) bool {
	switch frequency {
	case RecurringFrequencyWeekly, RecurringFrequencyMonthly, RecurringFrequencyYearly:
		return true
	}
	return false
}
