package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits a Price keeps.
const PriceScale = 2

// MaxPriceDigits is the number of integer digits a stored price may have.
const MaxPriceDigits = 8

// MaxPrice is the smallest amount that no longer fits numeric(10,2).
var MaxPrice = decimal.New(1, MaxPriceDigits)

// ErrPriceIsNotConstructed indicates a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice or ZeroPrice")

// Price is a non-negative money amount rounded to PriceScale digits.
// Arithmetic stays in decimal so totals and revenues never drift.
type Price struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewPrice validates and rounds amount. Negative amounts and amounts of
// MaxPrice or more are rejected.
func NewPrice(amount decimal.Decimal) (Price, error) {
	price, err := NewPriceSum(amount)
	if err != nil {
		return Price{}, err
	}
	if price.amount.GreaterThanOrEqual(MaxPrice) {
		return Price{}, errs.NewValueIsOutOfRangeError("price", price.String(), "0.00", "99999999.99")
	}
	return price, nil
}

// NewPriceSum validates and rounds an aggregate over stored prices, such as
// the sales of a day. Sums have no upper bound.
func NewPriceSum(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Price{
		amount:        amount.Round(PriceScale),
		isConstructed: true,
	}, nil
}

// PriceFromString parses a decimal literal such as "12.50".
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price is invalid", err)
	}
	return NewPrice(amount)
}

// ZeroPrice returns a valid price of 0.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero, isConstructed: true}
}

// Add returns p + other.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount), isConstructed: true}
}

// Mul returns p × quantity. quantity is expected to be positive.
func (p Price) Mul(quantity int) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// Decimal exposes the underlying amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (p Price) String() string {
	return p.amount.StringFixed(PriceScale)
}

// Validate returns ErrPriceIsNotConstructed for the zero value.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
