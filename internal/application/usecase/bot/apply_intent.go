// Package bot applies structured chat-bot intents to the local data. The
// message parser that produces intents is an external collaborator; this use
// case only consumes its structured output.
package bot

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// IntentKind names a structured intent the bot parser can produce.
type IntentKind string

const (
	IntentAddTransaction IntentKind = "add_transaction"
	IntentQueryBalance   IntentKind = "query_balance"
)

// ErrUnknownIntent is returned for intents this client cannot apply.
var ErrUnknownIntent = errors.New("unknown bot intent")

// Intent is one structured intent extracted from a chat message.
type Intent struct {
	Kind        IntentKind
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        string
	Description string
}

// ApplyIntentOutput represents the result of applying an intent.
type ApplyIntentOutput struct {
	Transaction *entity.Transaction
	Balance     *dashboard.GetBalanceOutput
}

// ApplyIntentUseCase routes structured intents to the matching core operation.
type ApplyIntentUseCase struct {
	createTransaction *transaction.CreateTransactionUseCase
	getBalance        *dashboard.GetBalanceUseCase
}

// NewApplyIntentUseCase creates a new ApplyIntentUseCase instance.
func NewApplyIntentUseCase(
	createTransaction *transaction.CreateTransactionUseCase,
	getBalance *dashboard.GetBalanceUseCase,
) *ApplyIntentUseCase {
	return &ApplyIntentUseCase{
		createTransaction: createTransaction,
		getBalance:        getBalance,
	}
}

// Execute applies one intent.
func (uc *ApplyIntentUseCase) Execute(ctx context.Context, intent Intent) (*ApplyIntentOutput, error) {
	switch intent.Kind {
	case IntentAddTransaction:
		out, err := uc.createTransaction.Execute(ctx, transaction.CreateTransactionInput{
			Type:        intent.Type,
			Amount:      intent.Amount,
			Category:    intent.Category,
			Date:        intent.Date,
			Description: intent.Description,
		})
		if err != nil {
			return nil, err
		}
		return &ApplyIntentOutput{Transaction: out.Transaction}, nil

	case IntentQueryBalance:
		balance, err := uc.getBalance.Execute(ctx)
		if err != nil {
			return nil, err
		}
		return &ApplyIntentOutput{Balance: balance}, nil

	default:
		return nil, ErrUnknownIntent
	}
}
