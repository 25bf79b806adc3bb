package migration

import "github.com/shopspring/decimal"

// CurrentSchemaVersion is the schema version the current code expects.
const CurrentSchemaVersion = 2

// legacyTransactionTypeUnexpected is the deprecated transaction type removed
// by the version 1 step.
const legacyTransactionTypeUnexpected = "unexpected"

// Versioned shapes. Each version's expected shape is an explicit type so a
// step's input and output are both statically nameable; steps never operate
// on loosely-typed maps.

// transactionV0 is the pre-versioning transaction shape. Type may still carry
// the legacy "unexpected" value and IsUnexpected may be absent.
type transactionV0 struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         string          `json:"date"`
	Description  string          `json:"description,omitempty"`
	IsUnexpected *bool           `json:"isUnexpected,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
}

// transactionV1 is the transaction shape after the version 1 step: the legacy
// type value is gone and IsUnexpected is present on every record.
type transactionV1 struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         string          `json:"date"`
	Description  string          `json:"description,omitempty"`
	IsUnexpected bool            `json:"isUnexpected"`
	CreatedAt    string          `json:"createdAt,omitempty"`
}

// recurringV1 is the recurring transaction shape before the version 2 step.
// Frequency may carry the legacy short values "week", "month" and "year".
type recurringV1 struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Frequency string          `json:"frequency"`
	StartDate string          `json:"startDate,omitempty"`
}

// profileV1 is the profile shape before the version 2 step; Currency may be absent.
type profileV1 struct {
	Name          string           `json:"name"`
	Currency      string           `json:"currency,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget,omitempty"`
}
