package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetBalanceQueryIsNotConstructed = errors.New(
	"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
)

// GetBalanceQuery retrieves the escrow balance of a party. Works for the
// participants and for the synthetic holding address alike.
type GetBalanceQuery struct {
	party kernel.Address

	guard guard.ConstructorGuard
}

// NewGetBalanceQuery creates a query for the given party's balance.
func NewGetBalanceQuery(party kernel.Address) (GetBalanceQuery, error) {
	if err := party.Validate(); err != nil {
		return GetBalanceQuery{}, err
	}

	return GetBalanceQuery{
		party: party,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

// Party returns the address whose balance is requested.
func (q GetBalanceQuery) Party() kernel.Address {
	return q.party
}
