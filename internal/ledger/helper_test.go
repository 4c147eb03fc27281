package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/model"
	"github.com/cleared-dev/budget/internal/store"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func income(amount, category string) model.Transaction {
	return model.Transaction{Type: model.TypeIncome, Amount: dec(amount), Category: category}
}

func expense(amount, category string) model.Transaction {
	return model.Transaction{Type: model.TypeExpense, Amount: dec(amount), Category: category}
}

// fixedClock returns a clock frozen at a known instant.
func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "budget_data.json"), store.WithAtomicWrite(true))
	svc := NewService(st,
		WithClock(fixedClock()),
		WithActivityLog(activity.New(filepath.Join(dir, "activity.csv"))),
	)
	return svc, st
}
