package display

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats amount for people. With an empty or unknown currency it is a
// plain number with two decimals; otherwise the currency's own symbol,
// separators and fraction digits are used.
func Money(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		return amount.StringFixed(2)
	}
	fraction := int32(cur.Fraction)
	minor := amount.Round(fraction).Shift(fraction)
	return cur.Formatter().Format(minor.IntPart())
}
