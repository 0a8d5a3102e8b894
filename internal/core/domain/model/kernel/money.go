package kernel

import (
	"fmt"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount in the shop currency, rounded to whole
// cents on construction.
type Money struct { //nolint:recvcheck // value object
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(2), guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "350000" or "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney is a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Times multiplies by a non-negative count, e.g. a number of rental days.
func (m Money) Times(n int) (Money, error) {
	if n < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("multiplier", fmt.Errorf("%d is negative", n))
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))), guard: guard.NewConstructorGuard()}, nil
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
