package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var viPrinter = message.NewPrinter(language.Vietnamese)

// StrDelimitForSum renders a money amount rounded to the dong with vietnamese
// thousand separators, e.g. 50000 -> "50.000 ₫".
func StrDelimitForSum(flt decimal.Decimal, currency string) string {
	s := viPrinter.Sprintf("%d", flt.Round(0).IntPart())
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// StrOrPlaceholder returns the dash placeholder for missing optional fields.
func StrOrPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return EMPTY_PLACEHOLDER
	}
	return *s
}
