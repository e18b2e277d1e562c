package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidLocale indicates that a locale tag could not be parsed.
var ErrInvalidLocale = errors.New("invalid locale")

// Defaults matching the pt-BR / BRL display of the ledger page.
const (
	DefaultLocale         = "pt-BR"
	DefaultCurrencySymbol = "R$"
)

// MoneyFormatter renders decimal amounts as locale-formatted currency strings.
type MoneyFormatter struct {
	printer    *message.Printer
	symbol     string
	decimalSep string
}

// NewMoneyFormatter creates a formatter for the given BCP 47 locale and currency symbol.
func NewMoneyFormatter(locale, symbol string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLocale, locale, err)
	}
	printer := message.NewPrinter(tag)
	return &MoneyFormatter{
		printer:    printer,
		symbol:     symbol,
		decimalSep: decimalSeparator(printer),
	}, nil
}

// decimalSeparator reads the locale's decimal mark off a formatted sample.
func decimalSeparator(p *message.Printer) string {
	sep := strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%.1f", 0.5), "0"), "5")
	if sep == "" {
		return "."
	}
	return sep
}

// Format renders amount with two fraction digits, e.g. -5 becomes "-R$5,00" in pt-BR.
func (f *MoneyFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	// StringFixed keeps every digit; only the integer part goes through the printer for grouping.
	fixed := rounded.StringFixed(2)
	intDigits, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	return sign + f.symbol + f.groupInteger(intDigits) + f.decimalSep + frac
}

// groupInteger applies locale grouping to a non-negative integer given as digits.
// Values beyond int64 are returned ungrouped.
func (f *MoneyFormatter) groupInteger(digits string) string {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}
	return f.printer.Sprintf("%d", n)
}

// FormatEntry renders a transaction amount suffixed with " C" for credits or " D" for debits.
func (f *MoneyFormatter) FormatEntry(tx Transaction) string {
	suffix := "D"
	if tx.Kind() == KindCredit {
		suffix = "C"
	}
	return f.Format(tx.Amount) + " " + suffix
}
