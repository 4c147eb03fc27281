package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

// Balance returns total income minus total expense.
func Balance(txs []model.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case model.TypeIncome:
			balance = balance.Add(t.Amount)
		case model.TypeExpense:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// CategorySpend sums expenses per category. Categories without any expense
// are absent from the result.
func CategorySpend(txs []model.Transaction) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != model.TypeExpense {
			continue
		}
		spend[t.Category] = spend[t.Category].Add(t.Amount)
	}
	return spend
}

// TotalExpense sums every expense regardless of category.
func TotalExpense(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == model.TypeExpense {
			total = total.Add(t.Amount)
		}
	}
	return total
}
