package kernel

import (
	"math"
	"strconv"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using the NewMoney constructor to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a non-negative amount expressed in the smallest currency
// unit. Money is an immutable value object; arithmetic returns new instances
// and never mutates the receiver. The zero value of Money is invalid and will
// fail validation - use NewMoney to create instances.
//
// Example:
//
//	fee, err := kernel.NewMoney(500)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Fee: %s", fee) // Output: Fee: 500
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a new Money with the specified amount in the smallest
// currency unit. The amount must be non-negative.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using NewMoney.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in the smallest currency unit.
// The returned value is guaranteed to be non-negative for properly
// constructed Money instances.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns the sum of two amounts as a new Money.
// Both operands must be properly constructed. Returns an error when the
// sum would overflow int64.
//
// Example:
//
//	fulfillment, _ := kernel.NewMoney(500)
//	shipment, _ := kernel.NewMoney(300)
//	total, err := fulfillment.Add(shipment) // total.Amount() == 800
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"amount", other.amount, 0, math.MaxInt64-m.amount)
	}

	return NewMoney(m.amount + other.amount)
}

// Sub returns the difference of two amounts as a new Money.
// Both operands must be properly constructed. Returns an error when the
// subtrahend exceeds the receiver, so balances can never go negative.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	if other.amount > m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", other.amount, 0, m.amount)
	}

	return NewMoney(m.amount - other.amount)
}

// IsEqual compares two amounts for equality.
// Both amounts must be properly constructed for the comparison to succeed.
//
// Returns:
//   - bool: true if the amounts are equal, false otherwise
//   - error: Validation error if either Money is improperly constructed
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.amount == other.amount, nil
}

// String returns the decimal representation of the amount.
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}
