package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents an opaque party identity, such as the wallet address a
// caller signs requests with. The engine never interprets the content beyond
// normalization: addresses are trimmed and lower-cased so that the same
// identity always compares equal regardless of how the caller spelled it.
//
// Address is an immutable value object. The zero value is invalid and will
// fail validation - use NewAddress to create instances.
type Address struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewAddress creates a new Address from its textual representation.
// The value is trimmed and lower-cased; an empty value is rejected.
//
// Example:
//
//	client, err := kernel.NewAddress("0xAB12…")
//	if err != nil {
//	    // Handle validation error
//	}
func NewAddress(value string) (Address, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}

	return Address{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Address was properly constructed using NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// String returns the normalized textual representation of the address.
// This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses for equality by normalized value.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return a.value == other.value, nil
}
