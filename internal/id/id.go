package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Next returns a transaction ID derived from now (milliseconds since the Unix
// epoch) that is strictly greater than last.
func Next(now time.Time, last int64) int64 {
	next := now.UnixMilli()
	if next <= last {
		next = last + 1
	}
	return next
}

// Format returns the external string form of a transaction ID.
func Format(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Parse parses a transaction ID as supplied on the command line.
func Parse(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction ID %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid transaction ID %q: must be positive", s)
	}
	return n, nil
}

// Matches reports whether id's string form equals ref exactly.
// "0042" does not match 42.
func Matches(id int64, ref string) bool {
	return Format(id) == ref
}
