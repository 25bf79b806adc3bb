package validation

import (
	"encoding/json"
	"testing"

	"github.com/finance-tracker/client/internal/domain/entity"
)

func TestCollection(t *testing.T) {
	t.Run("keeps valid records and counts dropped ones", func(t *testing.T) {
		raw := []json.RawMessage{
			json.RawMessage(`{"id":"1","type":"income","amount":"5000","category":"salary","date":"2024-01-01"}`),
			json.RawMessage(`{"id":"2","type":"invalid-type","amount":"100","category":"food","date":"2024-01-02"}`),
			json.RawMessage(`{"id":"3","type":"expense","amount":"50","category":"food","date":"2024-01-03"}`),
			json.RawMessage(`{"type":"expense","amount":"50","category":"food","date":"2024-01-04"}`),
		}

		outcome := Collection[entity.Transaction](raw)

		if len(outcome.Valid) != 2 {
			t.Fatalf("expected 2 valid records, got %d", len(outcome.Valid))
		}
		if outcome.InvalidCount != 2 {
			t.Errorf("expected 2 invalid records, got %d", outcome.InvalidCount)
		}
		if outcome.Valid[0].ID != "1" || outcome.Valid[1].ID != "3" {
			t.Errorf("expected valid records 1 and 3 in order, got %s and %s",
				outcome.Valid[0].ID, outcome.Valid[1].ID)
		}
	})

	t.Run("drops records that fail to decode", func(t *testing.T) {
		raw := []json.RawMessage{
			json.RawMessage(`not json at all`),
			json.RawMessage(`{"id":"1","type":"income","amount":"10","category":"misc","date":"2024-01-01"}`),
		}

		outcome := Collection[entity.Transaction](raw)

		if len(outcome.Valid) != 1 {
			t.Fatalf("expected 1 valid record, got %d", len(outcome.Valid))
		}
		if outcome.InvalidCount != 1 {
			t.Errorf("expected 1 invalid record, got %d", outcome.InvalidCount)
		}
	})

	t.Run("drops records with unparseable dates", func(t *testing.T) {
		raw := []json.RawMessage{
			json.RawMessage(`{"id":"1","type":"expense","amount":"10","category":"misc","date":"15/01/2024"}`),
		}

		outcome := Collection[entity.Transaction](raw)

		if len(outcome.Valid) != 0 {
			t.Errorf("expected no valid records, got %d", len(outcome.Valid))
		}
		if outcome.InvalidCount != 1 {
			t.Errorf("expected 1 invalid record, got %d", outcome.InvalidCount)
		}
	})

	t.Run("empty input yields empty outcome", func(t *testing.T) {
		outcome := Collection[entity.Transaction](nil)

		if len(outcome.Valid) != 0 || outcome.InvalidCount != 0 {
			t.Errorf("expected empty outcome, got %d valid and %d invalid",
				len(outcome.Valid), outcome.InvalidCount)
		}
	})
}

func TestSingleton(t *testing.T) {
	fallback := entity.DefaultProfile()

	t.Run("returns the stored value when valid", func(t *testing.T) {
		got, ok := Singleton([]byte(`{"name":"Ana","currency":"BRL","monthlyBudget":"2500"}`), fallback)
		if !ok {
			t.Fatal("expected stored profile to be accepted")
		}
		if got.Name != "Ana" || got.Currency != "BRL" {
			t.Errorf("unexpected profile: %+v", got)
		}
	})

	t.Run("falls back when the stored value fails to decode", func(t *testing.T) {
		got, ok := Singleton([]byte(`{"name":`), fallback)
		if ok {
			t.Fatal("expected fallback for malformed value")
		}
		if got.Currency != entity.DefaultCurrency {
			t.Errorf("expected default currency, got %q", got.Currency)
		}
	})

	t.Run("falls back when the stored value fails validation", func(t *testing.T) {
		got, ok := Singleton([]byte(`{"name":"Ana","currency":"","monthlyBudget":"100"}`), fallback)
		if ok {
			t.Fatal("expected fallback for invalid value")
		}
		if got.Name != "" {
			t.Error("expected the fallback wholesale, not a partial repair")
		}
	})
}
