package carteira

import "github.com/shopspring/decimal"

// Quantity is an asset position size. Crypto positions can carry up to eight
// fraction digits, so formatting keeps at least two and trims trailing zeros
// beyond that.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from a backend number.
func Q[T float32 | float64 | int | int64](value T) Quantity {
	return Quantity{value: decimal.NewFromFloat(float64(value))}
}

func (q Quantity) IsZero() bool { return q.value.IsZero() }

func (q Quantity) Equal(r Quantity) bool { return q.value.Equal(r.value) }

func (q Quantity) AsFloat() float64 { return q.value.InexactFloat64() }

func (q Quantity) String() string {
	rounded := q.value.Round(8)
	if rounded.Exponent() > -2 {
		return rounded.StringFixed(2)
	}
	return rounded.String()
}
