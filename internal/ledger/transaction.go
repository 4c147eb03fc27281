package ledger

import (
	"time"

	"github.com/cleared-dev/budget/internal/id"
	"github.com/cleared-dev/budget/internal/model"
)

// CreateParams holds raw user input for a new transaction.
type CreateParams struct {
	Type        string
	Amount      string
	Category    string
	Description string
}

// CreateTransaction validates params and returns a fully populated transaction.
// The ID is greater than lastID; the date is now's calendar day. Nothing is
// appended anywhere: the caller owns the document.
func CreateTransaction(params CreateParams, now time.Time, lastID int64) (model.Transaction, error) {
	typ, err := ParseType(params.Type)
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := ParseAmount(params.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := ValidateCategory(params.Category); err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:          id.Next(now, lastID),
		Type:        typ,
		Amount:      amount,
		Category:    params.Category,
		Description: params.Description,
		Date:        model.NewDate(now),
	}, nil
}

// DeleteTransaction removes every transaction whose ID string equals ref and
// reports whether anything was removed. Other transactions keep their order.
func DeleteTransaction(doc *model.Document, ref string) bool {
	kept := doc.Transactions[:0]
	found := false
	for _, t := range doc.Transactions {
		if id.Matches(t.ID, ref) {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	doc.Transactions = kept
	return found
}
