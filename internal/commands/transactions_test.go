package commands_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budget/internal/config"
)

var addedID = regexp.MustCompile(`\(ID (\d+)\)`)

func TestAddAndBalance(t *testing.T) {
	w := newWorkspace(t)

	out := w.mustRun(t, "add", "income", "1000", "salary")
	assert.Contains(t, out, "Added income of 1000.00 in salary")
	out = w.mustRun(t, "add", "Expense", "200", "groceries", "weekly shop")
	assert.Contains(t, out, "Added expense of 200.00 in groceries")

	out = w.mustRun(t, "balance")
	assert.Equal(t, "Current balance: 800.00\n", out)
}

func TestBalanceEmptyLedger(t *testing.T) {
	w := newWorkspace(t)
	out := w.mustRun(t, "balance")
	assert.Equal(t, "Current balance: 0.00\n", out)

	_, err := os.Stat(w.path("budget_data.json"))
	assert.ErrorIs(t, err, os.ErrNotExist, "queries never create the ledger")
}

func TestAddInvalidInputFails(t *testing.T) {
	w := newWorkspace(t)

	tests := []struct {
		args    []string
		wantErr string
	}{
		{[]string{"add", "expense", "-5", "food"}, "amount must be positive"},
		{[]string{"add", "expense", "0", "food"}, "amount must be positive"},
		{[]string{"add", "expense", "ten", "food"}, "amount must be a number"},
		{[]string{"add", "gift", "10", "food"}, "'income' or 'expense'"},
		{[]string{"add", "expense", "10", ""}, "category must not be empty"},
	}
	for _, tt := range tests {
		out, err := w.run(t, tt.args...)
		require.Error(t, err, "args %v", tt.args)
		assert.Contains(t, out, tt.wantErr, "args %v", tt.args)
	}

	_, err := os.Stat(w.path("budget_data.json"))
	assert.ErrorIs(t, err, os.ErrNotExist, "invalid input must not touch the ledger")
}

func TestAddWrongArgCount(t *testing.T) {
	w := newWorkspace(t)
	_, err := w.run(t, "add", "income", "10")
	assert.Error(t, err)
}

func TestGroceriesAlertScenario(t *testing.T) {
	w := newWorkspace(t)

	w.mustRun(t, "add", "income", "1000", "salary")
	w.mustRun(t, "add", "expense", "200", "groceries")
	w.mustRun(t, "add", "expense", "400", "groceries")
	w.mustRun(t, "setgoal", "groceries", "500")

	out := w.mustRun(t, "add", "expense", "150", "groceries")
	assert.Contains(t, out, "ALERT: spending in groceries 750.00 exceeds the goal of 500.00")

	w.mustRun(t, "setgoal", "total", "700")
	out = w.mustRun(t, "add", "expense", "1", "fuel")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "groceries")
	assert.Equal(t, "ALERT: total spending 751.00 exceeds the goal of 700.00", lines[2])
}

func TestBalanceListsExceededGoals(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "add", "income", "1000", "salary")
	w.mustRun(t, "add", "expense", "300", "rent")
	w.mustRun(t, "setgoal", "rent", "300")
	assert.Equal(t, "Current balance: 700.00\n", w.mustRun(t, "balance"), "spend equal to the goal is not an alert")

	w.mustRun(t, "setgoal", "total", "250")
	w.mustRun(t, "setgoal", "rent", "200")
	assert.Equal(t,
		"Current balance: 700.00\n"+
			"ALERT: spending in rent 300.00 exceeds the goal of 200.00\n"+
			"ALERT: total spending 300.00 exceeds the goal of 250.00\n",
		w.mustRun(t, "balance"))
}

func TestListTransactions(t *testing.T) {
	w := newWorkspace(t)

	out := w.mustRun(t, "list")
	assert.Equal(t, "No transactions found.\n", out)

	w.mustRun(t, "add", "income", "1000", "salary")
	w.mustRun(t, "add", "expense", "12.5", "coffee", "beans and filters")

	out = w.mustRun(t, "list")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID              Date       Type     "), lines[0])
	assert.Contains(t, lines[2], "income")
	assert.Contains(t, lines[2], "1000.00 salary")
	assert.Contains(t, lines[3], "12.50 coffee")
	assert.True(t, strings.HasSuffix(lines[3], "beans and filters"))
}

func TestListUsesCurrency(t *testing.T) {
	w := newWorkspace(t)
	w.configure(t, func(c *config.Config) { c.Currency = "USD" })

	w.mustRun(t, "add", "income", "1234.5", "salary")
	assert.Contains(t, w.mustRun(t, "list"), "$1,234.50")
	assert.Equal(t, "Current balance: $1,234.50\n", w.mustRun(t, "balance"))
}

func TestDelete(t *testing.T) {
	w := newWorkspace(t)

	out := w.mustRun(t, "add", "expense", "5", "snacks")
	m := addedID.FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	w.mustRun(t, "add", "expense", "7", "lunch")

	out = w.mustRun(t, "delete", m[1])
	assert.Equal(t, "Deleted transaction "+m[1]+".\n", out)

	out = w.mustRun(t, "list")
	assert.NotContains(t, out, "snacks")
	assert.Contains(t, out, "lunch")
}

func TestDeleteNotFound(t *testing.T) {
	w := newWorkspace(t)
	w.mustRun(t, "add", "expense", "5", "snacks")

	out, err := w.run(t, "delete", "42")
	require.NoError(t, err, "not found is not a failure")
	assert.Equal(t, "Transaction with ID 42 not found.\n", out)
	assert.Contains(t, w.mustRun(t, "list"), "snacks")
}

func TestCorruptLedgerIsFatal(t *testing.T) {
	w := newWorkspace(t)
	require.NoError(t, os.WriteFile(w.path("budget_data.json"), []byte("not json"), 0o644))

	for _, args := range [][]string{{"balance"}, {"list"}, {"add", "income", "1", "x"}, {"goals"}} {
		out, err := w.run(t, args...)
		require.Error(t, err, "args %v", args)
		assert.Contains(t, out, "corrupt", "args %v", args)
	}
}

func TestDataFileFromEnvironment(t *testing.T) {
	w := newWorkspace(t)
	t.Setenv(config.EnvDataFile, w.path("other.json"))

	w.mustRun(t, "add", "income", "3", "gift")

	_, err := os.Stat(w.path("other.json"))
	assert.NoError(t, err)
	_, err = os.Stat(w.path("budget_data.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidConfig(t *testing.T) {
	w := newWorkspace(t)
	w.configure(t, func(c *config.Config) { c.Currency = "ZZZ" })

	out, err := w.run(t, "balance")
	require.Error(t, err)
	assert.Contains(t, out, "unknown currency")
}
