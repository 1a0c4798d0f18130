package dto

import (
	"github.com/shopspring/decimal"
)

const (
	moneyPlaces = 2
	ratePlaces  = 4
)

// Money is a JSON number with exactly two decimals.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(moneyPlaces)), nil
}

// Rate is a JSON number with four decimals.
type Rate struct {
	decimal.Decimal
}

func NewRate(d decimal.Decimal) Rate {
	return Rate{Decimal: d}
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(r.StringFixed(ratePlaces)), nil
}
