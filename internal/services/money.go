package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateAmount checks that d is representable as money: non-negative and
// with at most two decimal places.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s es negativo", ErrInvalidAmount, d.String())
	}
	if !d.Equal(d.Round(2)) {
		return fmt.Errorf("%w: %s tiene más de dos decimales", ErrInvalidAmount, d.String())
	}
	return nil
}

// FormatAmount renders d as the parenthetical numeral used in clauses,
// with dot thousands grouping and comma decimals: 15000 -> "$15.000,00".
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	intPart := fixed
	fracPart := "00"
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart = fixed[:i]
		fracPart = fixed[i+1:]
	}

	var b strings.Builder
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
