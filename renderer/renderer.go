// Package renderer turns backend payloads into markdown reports. Each report
// is a single function returning a string; the cmd layer decides how to print
// it (plain or through a terminal markdown renderer).
package renderer

import (
	"strings"

	"github.com/etnz/carteira"
)

// money formats a backend number in the reporting currency.
func money(v float64) string { return carteira.BRL(v).String() }

// signedMoney formats a derived gain/loss with an explicit sign.
func signedMoney(v float64) string { return carteira.BRL(v).SignedString() }

// percent formats a backend percentage value.
func percent(v float64) string { return carteira.Percent(v).String() }

// quantity formats a position size.
func quantity(v float64) string { return carteira.Q(v).String() }

// bar draws a proportional unicode bar for a 0-100 value, width runes wide.
func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
