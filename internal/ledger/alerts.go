package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

// Alert reports a goal whose spend strictly exceeds its ceiling.
// Alerts are derived on demand and never persisted.
type Alert struct {
	Key   string // category name or model.TotalGoalKey
	Spent decimal.Decimal
	Goal  decimal.Decimal
}

// IsTotal reports whether the alert is for the overall spending goal.
func (a Alert) IsTotal() bool {
	return a.Key == model.TotalGoalKey
}

// CheckAlerts compares spend against each goal, in goal insertion order.
func CheckAlerts(txs []model.Transaction, goals *model.Goals) []Alert {
	if goals.Len() == 0 {
		return nil
	}

	byCategory := CategorySpend(txs)
	total := TotalExpense(txs)

	var alerts []Alert
	for key, goal := range goals.All() {
		spent := byCategory[key]
		if key == model.TotalGoalKey {
			spent = total
		}
		if spent.GreaterThan(goal) {
			alerts = append(alerts, Alert{Key: key, Spent: spent, Goal: goal})
		}
	}
	return alerts
}
