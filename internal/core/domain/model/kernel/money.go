package kernel

import (
	"errors"

	"dealership/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale matches the numeric(12,2) columns money is stored in.
const moneyScale = 2

var ErrMoneyIsNegative = errors.New("money amount must not be negative")

// MaxMoney is the largest amount a numeric(12,2) column holds.
var MaxMoney = Money{amount: decimal.RequireFromString("9999999999.99")}

// Money is a non-negative amount rounded to cents. Currency is implicit.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds amount to cents. Negative amounts and amounts above MaxMoney are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", ErrMoneyIsNegative)
	}
	rounded := amount.Round(moneyScale)
	if rounded.GreaterThan(MaxMoney.amount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", rounded.StringFixed(moneyScale), "0.00", MaxMoney.String())
	}
	return Money{amount: rounded}, nil
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney panics on invalid input. Intended for literals and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub fails instead of producing a negative amount.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// SubFloor subtracts and clamps the result at zero.
func (m Money) SubFloor(other Money) Money {
	if other.amount.GreaterThan(m.amount) {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Sub(other.amount)}
}
