// Package error defines domain-specific errors for the Finance Tracker client core.
package error

import "errors"

// Entity shape errors, reported by the validation gate.
var (
	// ErrMissingEntityID is returned when a stored record has no id.
	ErrMissingEntityID = errors.New("entity id is missing")

	// ErrMissingEntityName is returned when a record requires a name and has none.
	ErrMissingEntityName = errors.New("entity name is missing")

	// ErrInvalidTransactionType is returned when the transaction type is not a known value.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidEntityDate is returned when a stored date is absent or unparseable.
	ErrInvalidEntityDate = errors.New("invalid entity date")

	// ErrInvalidCategoryType is returned when the category type is not a known value.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrInvalidGoalAmount is returned when a goal carries a negative amount.
	ErrInvalidGoalAmount = errors.New("invalid goal amount")

	// ErrInvalidRecurringFrequency is returned when a recurring frequency is not a known value.
	ErrInvalidRecurringFrequency = errors.New("invalid recurring frequency")

	// ErrMissingProfileCurrency is returned when the profile has no currency set.
	ErrMissingProfileCurrency = errors.New("profile currency is missing")

	// ErrInvalidProfileBudget is returned when the profile budget is negative.
	ErrInvalidProfileBudget = errors.New("invalid profile budget")

	// ErrMissingAssetSymbol is returned when an asset has no symbol.
	ErrMissingAssetSymbol = errors.New("asset symbol is missing")

	// ErrInvalidAssetType is returned when the asset type is not a known value.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrInvalidAssetQuantity is returned when an asset carries a negative quantity.
	ErrInvalidAssetQuantity = errors.New("invalid asset quantity")
)
