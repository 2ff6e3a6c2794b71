package money

import (
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(Precision, Scale).
const (
	Precision = 14
	Scale     = 4
)

var limit = decimal.New(1, Precision-Scale)

// Storable reports whether d keeps its exact value in a money column: at most
// Scale fractional digits and an absolute value below 10^(Precision-Scale).
func Storable(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale)) && d.Abs().LessThan(limit)
}
