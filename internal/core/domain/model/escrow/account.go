package escrow

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrAccountIsNotConstructed indicates that the Account was not properly
	// initialized through the NewAccount constructor function.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrInsufficientBalance indicates a debit larger than the account's
	// current balance. The engine never overdraws an account.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// holdingAddress is the synthetic party that holds funds between payment and
// payout. It is not a real participant address; kernel.Address normalization
// guarantees no participant address can collide with it because participant
// addresses are validated at configuration time.
const holdingAddress = "escrow"

// HoldingAddress returns the synthetic address under which paid funds are
// held until the order closes. Crediting the holding account on payment and
// debiting it on payout keeps the sum of all balances constant, which is the
// engine's conservation invariant.
func HoldingAddress() kernel.Address {
	address, err := kernel.NewAddress(holdingAddress)
	if err != nil {
		// The constant is a valid non-empty address.
		panic(err)
	}

	return address
}

// Account is an escrow ledger entry for a single party. It tracks the funds
// the engine currently attributes to that party: the holding account between
// payment and payout, and the provider and courier accounts after payout.
//
// Balances only move through Credit and Debit, and a debit never exceeds the
// current balance. Payout atomicity across accounts is the responsibility of
// the application layer, which mutates both parties inside one transaction.
type Account struct {
	// party identifies the balance owner
	party kernel.Address

	// balance is the amount currently attributed to the party
	balance kernel.Money

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewAccount creates an empty Account for the given party.
func NewAccount(party kernel.Address) (*Account, error) {
	zero, err := kernel.NewMoney(0)
	if err != nil {
		return nil, err
	}

	return RestoreAccount(party, zero)
}

// RestoreAccount reconstructs an Account from persisted state.
//
// This function is intended for repository implementations only.
func RestoreAccount(party kernel.Address, balance kernel.Money) (*Account, error) {
	if err := errors.Join(party.Validate(), balance.Validate()); err != nil {
		return nil, err
	}

	return &Account{
		party:   party,
		balance: balance,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}

	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by their party addresses.
func (a *Account) IsEqual(other *Account) bool {
	if other == nil {
		return false
	}

	equal, err := a.party.IsEqual(other.party)
	return err == nil && equal
}

// Party returns the address of the balance owner.
func (a *Account) Party() kernel.Address {
	return a.party
}

// Balance returns the amount currently attributed to the party.
func (a *Account) Balance() kernel.Money {
	return a.balance
}

// Credit adds the given amount to the account's balance.
func (a *Account) Credit(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return err
	}

	a.balance = newBalance
	return nil
}

// Debit removes the given amount from the account's balance. Debiting more
// than the current balance fails with ErrInsufficientBalance and leaves the
// balance unchanged.
func (a *Account) Debit(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	newBalance, err := a.balance.Sub(amount)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsOutOfRange) {
			return ErrInsufficientBalance
		}
		return err
	}

	a.balance = newBalance
	return nil
}
