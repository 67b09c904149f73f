package carteira

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display. The backend reports plain
// numbers in the portfolio currency; Money keeps them exact and formats them
// with the proper locale rules ("R$ 1.234,56" for BRL).
type Money struct {
	value decimal.Decimal // major unit value
	cur   string
}

// DefaultCurrency is the portfolio reporting currency.
const DefaultCurrency = "BRL"

// M builds a Money in an explicit currency.
func M[T float32 | float64 | int | int64](value T, currency string) Money {
	return Money{value: decimal.NewFromFloat(float64(value)), cur: currency}
}

// BRL builds a Money in the portfolio reporting currency.
func BRL[T float32 | float64 | int | int64](value T) Money {
	return M(value, DefaultCurrency)
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	return *money.New(0, cur).Currency()
}

// String formats the value with the currency's grapheme and separators.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Currency() string { return m.currency().Code }

func (m Money) IsZero() bool { return m.value.IsZero() }

func (m Money) IsNegative() bool { return m.value.IsNegative() }

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

func (m Money) Neg() Money { return Money{value: m.value.Neg(), cur: m.cur} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// SignedString formats with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
