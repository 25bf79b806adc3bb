package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// AssetType represents the class of a portfolio asset.
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeFund   AssetType = "fund"
)

// Asset represents a holding in the investment portfolio.
type Asset struct {
	ID            string          `json:"id"`
	Symbol        string          `json:"symbol"`
	Type          AssetType       `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Currency      string          `json:"currency,omitempty"`
}

// NewAsset creates a new Asset entity.
func NewAsset(symbol string, assetType AssetType, quantity, purchasePrice decimal.Decimal) *Asset {
	return &Asset{
		ID:            uuid.New().String(),
		Symbol:        symbol,
		Type:          assetType,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
	}
}

// Validate checks the asset against the current schema shape.
func (a Asset) Validate() error {
	if a.ID == "" {
		return domainerror.ErrMissingEntityID
	}
	if a.Symbol == "" {
		return domainerror.ErrMissingAssetSymbol
	}
	switch a.Type {
	case AssetTypeStock, AssetTypeCrypto, AssetTypeFund:
	default:
		return domainerror.ErrInvalidAssetType
	}
	if a.Quantity.IsNegative() {
		return domainerror.ErrInvalidAssetQuantity
	}
	return nil
}
