package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

// ValidationKind names the precondition an input failed.
type ValidationKind string

const (
	InvalidType     ValidationKind = "invalid_type"
	InvalidAmount   ValidationKind = "invalid_amount"
	InvalidCategory ValidationKind = "invalid_category"
)

// ValidationError describes user input that failed a precondition.
type ValidationError struct {
	Kind   ValidationKind
	Value  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", strings.ReplaceAll(string(e.Kind), "_", " "), e.Value, e.Reason)
}

// NotFoundError reports a transaction identifier with no matching transaction.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("transaction with ID %s not found", e.ID)
}

// ParseType normalizes s case-insensitively to income or expense.
func ParseType(s string) (model.TransactionType, error) {
	t := model.TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ValidationError{
			Kind:   InvalidType,
			Value:  s,
			Reason: "type must be 'income' or 'expense'",
		}
	}
	return t, nil
}

// ParseAmount parses s as a positive decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, ValidationError{
			Kind:   InvalidAmount,
			Value:  s,
			Reason: "amount must be a number",
		}
	}
	if !model.AmountInRange(amount) {
		return decimal.Decimal{}, ValidationError{
			Kind:   InvalidAmount,
			Value:  s,
			Reason: fmt.Sprintf("amount must be below 1e%d with at most %d decimal places",
				model.MaxAmountIntegerDigits, model.MaxAmountFractionDigits),
		}
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, ValidationError{
			Kind:   InvalidAmount,
			Value:  s,
			Reason: "amount must be positive",
		}
	}
	return amount, nil
}

// ValidateCategory rejects blank categories. The category itself is kept verbatim.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ValidationError{
			Kind:   InvalidCategory,
			Value:  category,
			Reason: "category must not be empty",
		}
	}
	return nil
}
