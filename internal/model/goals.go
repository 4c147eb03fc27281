package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// TotalGoalKey is the reserved goal key that caps spending across all categories.
const TotalGoalKey = "total"

// Goals maps a category (or TotalGoalKey) to a spending ceiling.
//
// Keys are kept in the order they were first set, so JSON encoding and
// iteration are stable. The zero value is an empty, ready to use set.
type Goals struct {
	keys    []string
	amounts map[string]decimal.Decimal
}

// Set upserts the goal for key. An existing key keeps its position.
func (g *Goals) Set(key string, amount decimal.Decimal) {
	if g.amounts == nil {
		g.amounts = make(map[string]decimal.Decimal)
	}
	if _, ok := g.amounts[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.amounts[key] = amount
}

// Get returns the goal for key.
func (g *Goals) Get(key string) (decimal.Decimal, bool) {
	amount, ok := g.amounts[key]
	return amount, ok
}

// Len returns the number of goals.
func (g *Goals) Len() int {
	return len(g.keys)
}

// Keys returns the goal keys in insertion order.
func (g *Goals) Keys() []string {
	return append([]string(nil), g.keys...)
}

// All iterates over goals in insertion order.
func (g *Goals) All() iter.Seq2[string, decimal.Decimal] {
	return func(yield func(string, decimal.Decimal) bool) {
		for _, k := range g.keys {
			if !yield(k, g.amounts[k]) {
				return
			}
		}
	}
}

// MarshalJSON writes goals as a JSON object with keys in insertion order.
func (g Goals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("encoding goal key %q: %w", k, err)
		}
		value, err := json.Marshal(g.amounts[k])
		if err != nil {
			return nil, fmt.Errorf("encoding goal %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving the order of its keys.
func (g *Goals) UnmarshalJSON(data []byte) error {
	*g = Goals{}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("goals: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("goals: expected string key, got %v", tok)
		}
		var amount decimal.Decimal
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("goals: decoding %q: %w", key, err)
		}
		g.Set(key, amount)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
