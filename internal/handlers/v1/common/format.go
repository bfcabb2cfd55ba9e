package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amount renders money with two fixed decimals.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Percent rounds to two decimals.
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func Date(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ParseDate parses a YYYY-MM-DD date. Empty input yields the zero time.
func ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, raw)
}
