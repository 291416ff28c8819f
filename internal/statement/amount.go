package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/calden/bankintake/internal/bank"
)

// InvalidAmountError carries the raw token that failed numeric parsing.
type InvalidAmountError struct {
	Raw string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: %q", e.Raw)
}

var oneHundred = decimal.NewFromInt(100)

// ParseAmount parses an amount token: accounting-notation parentheses mean
// negative, currency symbols and thousands separators are stripped.
// Handles "$1,234.56", "(500.00)", "-500.00", "500.00".
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, &InvalidAmountError{Raw: raw}
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(stripCurrency(s))
	if s == "" {
		return decimal.Zero, &InvalidAmountError{Raw: raw}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &InvalidAmountError{Raw: raw}
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// NormalizeAmount converts a raw amount token to integer cents under the
// canonical convention: negative = money out, positive = money in. Profiles
// that report debits as positive get their sign flipped. Rounding is
// half-away-from-zero on exact decimal arithmetic, so two-decimal inputs
// never drift.
func NormalizeAmount(raw string, profile bank.Profile) (int64, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		return 0, err
	}
	if profile.SignConvention == bank.DebitsPositive {
		d = d.Neg()
	}
	return d.Mul(oneHundred).Round(0).IntPart(), nil
}

// FormatCents renders integer cents as a plain dollar amount, the inverse of
// NormalizeAmount up to the institution's sign convention.
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(oneHundred).StringFixed(2)
}

// looksNumeric is the lightweight amount check used by column detection:
// strip currency symbols, separators, and parentheses, then require the rest
// to parse as a decimal.
func looksNumeric(value string) bool {
	s := strings.NewReplacer("$", "", ",", "", "(", "", ")", "").Replace(value)
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}
