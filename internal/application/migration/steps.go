package migration

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// DefaultRegistry returns the registry of steps for the reference schema,
// bound to the given keyspace.
func DefaultRegistry(keys adapter.Keyspace) *Registry {
	r := NewRegistry()
	r.Register(1, stepSplitUnexpectedType(keys))
	r.Register(2, stepNormalizeFrequenciesAndCurrency(keys))
	return r
}

// stepSplitUnexpectedType eliminates the deprecated "unexpected" transaction
// type by rewriting affected records to type "expense" with isUnexpected set,
// and backfills isUnexpected as false on every other record that lacks it.
// A single version step may need to touch the whole collection, not just the
// records it conceptually targets.
func stepSplitUnexpectedType(keys adapter.Keyspace) Step {
	key := keys.ForKind(entity.KindTransaction)

	return func(snap Snapshot) (Snapshot, error) {
		raw, ok := snap[key]
		if !ok {
			return snap, nil
		}

		var in []transactionV0
		if err := json.Unmarshal(raw, &in); err != nil {
			// A malformed stored collection is treated as missing, the same
			// way the read path does; aborting here would wedge every
			// subsequent startup below the current version.
			slog.Warn("Malformed stored transactions, skipping in migration", "error", err)
			return snap, nil
		}

		out := make([]transactionV1, 0, len(in))
		for _, tx := range in {
			next := transactionV1{
				ID:          tx.ID,
				Type:        tx.Type,
				Amount:      tx.Amount,
				Category:    tx.Category,
				Date:        tx.Date,
				Description: tx.Description,
				CreatedAt:   tx.CreatedAt,
			}
			if tx.IsUnexpected != nil {
				next.IsUnexpected = *tx.IsUnexpected
			}
			if tx.Type == legacyTransactionTypeUnexpected {
				next.Type = string(entity.TransactionTypeExpense)
				next.IsUnexpected = true
			}
			out = append(out, next)
		}

		encoded, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("encode transactions: %w", err)
		}

		result := snap.Clone()
		result[key] = encoded
		return result, nil
	}
}

// legacyFrequencies maps the short frequency values written by old app
// versions to their current equivalents. Current values pass through, which
// keeps the step safe to re-run.
var legacyFrequencies = map[string]string{
	"week":  string(entity.RecurringFrequencyWeekly),
	"month": string(entity.RecurringFrequencyMonthly),
	"year":  string(entity.RecurringFrequencyYearly),
}

// stepNormalizeFrequenciesAndCurrency rewrites legacy recurring-transaction
// frequencies and backfills a missing profile currency.
func stepNormalizeFrequenciesAndCurrency(keys adapter.Keyspace) Step {
	recurringKey := keys.ForKind(entity.KindRecurring)
	profileKey := keys.ForKind(entity.KindProfile)

	return func(snap Snapshot) (Snapshot, error) {
		result := snap.Clone()

		if raw, ok := snap[recurringKey]; ok {
			var rules []recurringV1
			if err := json.Unmarshal(raw, &rules); err != nil {
				slog.Warn("Malformed stored recurring transactions, skipping in migration", "error", err)
			} else {
				for i, rule := range rules {
					if mapped, legacy := legacyFrequencies[rule.Frequency]; legacy {
						rules[i].Frequency = mapped
					}
				}
				encoded, err := json.Marshal(rules)
				if err != nil {
					return nil, fmt.Errorf("encode recurring transactions: %w", err)
				}
				result[recurringKey] = encoded
			}
		}

		if raw, ok := snap[profileKey]; ok {
			var profile profileV1
			if err := json.Unmarshal(raw, &profile); err != nil {
				slog.Warn("Malformed stored profile, skipping in migration", "error", err)
			} else {
				if profile.Currency == "" {
					profile.Currency = entity.DefaultCurrency
				}
				encoded, err := json.Marshal(profile)
				if err != nil {
					return nil, fmt.Errorf("encode profile: %w", err)
				}
				result[profileKey] = encoded
			}
		}

		return result, nil
	}
}
