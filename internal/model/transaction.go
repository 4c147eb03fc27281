package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a transaction adds to or draws from the balance.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is one income or expense record in the ledger document.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // always > 0
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

const (
	// MaxAmountFractionDigits is the finest precision an amount may carry.
	MaxAmountFractionDigits = 8
	// MaxAmountIntegerDigits bounds the magnitude of an amount to below 10^15.
	MaxAmountIntegerDigits = 15
)

var maxAmount = decimal.New(1, MaxAmountIntegerDigits)

// AmountInRange reports whether d fits the precision and magnitude every
// amount is held to. The exponent is checked first so that values like
// 1e2000000000 are rejected before any arithmetic expands them.
func AmountInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > MaxAmountIntegerDigits || exp < -4*MaxAmountIntegerDigits {
		return false
	}
	if !d.Equal(d.Truncate(MaxAmountFractionDigits)) {
		return false
	}
	return d.Abs().LessThan(maxAmount)
}

// DateFormat is the layout used to persist and display calendar dates.
const DateFormat = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateFormat)
}

// MarshalJSON overrides the embedded time.Time encoding with a bare date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
