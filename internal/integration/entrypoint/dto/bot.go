package dto

import (
	"github.com/shopspring/decimal"
)

// BotIntentRequest represents one structured intent produced by the external
// chat-bot message parser.
type BotIntentRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=add_transaction query_balance"`
	Type        string          `json:"type,omitempty" binding:"omitempty,oneof=income expense investment"`
	Amount      decimal.Decimal `json:"amount,omitempty"`
	Category    string          `json:"category,omitempty"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
}

// BotIntentResponse represents the result of applying an intent.
type BotIntentResponse struct {
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Balance     *BalanceResponse     `json:"balance,omitempty"`
}
