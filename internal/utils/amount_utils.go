// Package utils provides common utility functions.
package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyAmount indicates that the amount field was left blank.
	ErrEmptyAmount = errors.New("empty amount")
	// ErrAmbiguousAmount indicates a lone '.' followed by exactly three digits, such as "1.234",
	// which reads as a decimal in en-US and as thousands grouping in pt-BR.
	ErrAmbiguousAmount = errors.New("ambiguous amount")
)

// ParseAmount converts a form amount such as "-5", "10.50", "10,50" or "1.234,56" to a decimal.
// When both '.' and ',' appear, the last one is taken as the decimal separator.
// Without a comma, several dots are thousands grouping ("1.234.567").
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastComma < 0 && strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case lastComma < 0 && lastDot >= 0 && len(s)-lastDot-1 == 3:
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrAmbiguousAmount, raw)
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot > lastComma && lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse amount '%s': %w", raw, err)
	}
	return amount, nil
}
