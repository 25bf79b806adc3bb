package entity

import (
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a transaction category.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color,omitempty"`
	Icon  string       `json:"icon,omitempty"`
	Type  CategoryType `json:"type"`
}

// NewCategory creates a new Category entity, applying display defaults.
func NewCategory(name, color, icon string, categoryType CategoryType) *Category {
	if color == "" {
		color = DefaultCategoryColor
	}
	if icon == "" {
		icon = DefaultCategoryIcon
	}
	return &Category{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
		Icon:  icon,
		Type:  categoryType,
	}
}

// Validate checks the category against the current schema shape.
func (c Category) Validate() error {
	if c.ID == "" {
		return domainerror.ErrMissingEntityID
	}
	if c.Name == "" {
		return domainerror.ErrMissingEntityName
	}
	if c.Type != CategoryTypeExpense && c.Type != CategoryTypeIncome {
		return domainerror.ErrInvalidCategoryType
	}
	return nil
}
