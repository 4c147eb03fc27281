package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"800", "", "800.00"},
		{"-12.5", "", "-12.50"},
		{"0.005", "", "0.01"},
		{"1234.5", "USD", "$1,234.50"},
		{"800", "usd", "$800.00"},
		{"3.25", "NOPE", "3.25"},
	}
	for _, tt := range tests {
		got := Money(decimal.RequireFromString(tt.amount), tt.currency)
		assert.Equal(t, tt.want, got, "Money(%s, %q)", tt.amount, tt.currency)
	}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable(
		Column{Title: "Key", Width: 6},
		Column{Title: "Amount", Width: 8, Right: true},
		Column{Title: "Note"},
	)
	tbl.Append("food", "12.00", "weekly")
	tbl.Append("transport", "3.50")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Key      Amount Note", lines[0])
	assert.Equal(t, strings.Repeat("-", 6+8+4+2), lines[1])
	assert.Equal(t, "food      12.00 weekly", lines[2])
	assert.Equal(t, "tra...     3.50", lines[3])
}

func TestTableWideRunes(t *testing.T) {
	tbl := NewTable(Column{Title: "Cat", Width: 6}, Column{Title: "X"})
	tbl.Append("食費", "1")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "食費   1", lines[2], "double-width runes count as two columns")
}
