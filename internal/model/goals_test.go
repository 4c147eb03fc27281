package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsInsertionOrder(t *testing.T) {
	var g Goals
	g.Set("groceries", decimal.NewFromInt(500))
	g.Set(TotalGoalKey, decimal.NewFromInt(2000))
	g.Set("rent", decimal.NewFromInt(900))

	assert.Equal(t, []string{"groceries", "total", "rent"}, g.Keys())
	assert.Equal(t, 3, g.Len())
}

func TestGoalsOverwriteKeepsPosition(t *testing.T) {
	var g Goals
	g.Set("groceries", decimal.NewFromInt(500))
	g.Set("rent", decimal.NewFromInt(900))
	g.Set("groceries", decimal.NewFromInt(450))

	assert.Equal(t, []string{"groceries", "rent"}, g.Keys())
	got, ok := g.Get("groceries")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(450)), "got %s", got)

	_, ok = g.Get("fuel")
	assert.False(t, ok)
}

func TestGoalsAllStopsEarly(t *testing.T) {
	var g Goals
	g.Set("a", decimal.NewFromInt(1))
	g.Set("b", decimal.NewFromInt(2))

	var seen []string
	for k := range g.All() {
		seen = append(seen, k)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

func TestGoalsJSONPreservesOrder(t *testing.T) {
	var g Goals
	g.Set("zeta", decimal.RequireFromString("10.5"))
	g.Set("alpha", decimal.NewFromInt(20))

	data, err := json.Marshal(g)
	require.NoError(t, err)
	s := string(data)
	assert.Less(t, strings.Index(s, `"zeta"`), strings.Index(s, `"alpha"`))

	var got Goals
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []string{"zeta", "alpha"}, got.Keys())
	amount, _ := got.Get("zeta")
	assert.True(t, amount.Equal(decimal.RequireFromString("10.5")))
}

func TestGoalsUnmarshalRejectsArray(t *testing.T) {
	var g Goals
	err := json.Unmarshal([]byte(`[1, 2]`), &g)
	assert.Error(t, err)
}

func TestGoalsUnmarshalEmptyAndNull(t *testing.T) {
	var g Goals
	require.NoError(t, json.Unmarshal([]byte(`{}`), &g))
	assert.Equal(t, 0, g.Len())

	require.NoError(t, json.Unmarshal([]byte(`null`), &g))
	assert.Equal(t, 0, g.Len())

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}
