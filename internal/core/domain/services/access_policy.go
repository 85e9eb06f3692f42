package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrParticipantsMustBeDistinct is returned when two of the three configured
// participants share an address. Role checks would be ambiguous otherwise.
var ErrParticipantsMustBeDistinct = errors.New("participant addresses must be distinct")

// ErrAccessPolicyIsNotConstructed indicates that the AccessPolicy was not
// properly initialized through the NewAccessPolicy constructor function.
var ErrAccessPolicyIsNotConstructed = errors.New("AccessPolicy must be created via NewAccessPolicy constructor")

// AccessPolicy is a domain service that gates every order operation on the
// caller's role. The engine serves exactly three fixed participants set at
// startup:
//
//   - provider (owner): creates and prices orders, marks them processing,
//     requests payment, uploads invoices, closes, cancels, and sets tracking
//   - client: pays
//   - courier: receives the shipment fee on payout; never calls mutations
//
// A caller that does not hold the required role is rejected with an
// UnauthorizedError before any state is read or written.
type AccessPolicy struct {
	provider kernel.Address
	client   kernel.Address
	courier  kernel.Address

	isConstructed bool
}

// NewAccessPolicy creates an AccessPolicy for the three participants.
// Addresses must be valid, pairwise distinct, and none may collide with the
// escrow holding address.
func NewAccessPolicy(provider kernel.Address, client kernel.Address, courier kernel.Address) (*AccessPolicy, error) {
	if err := errors.Join(provider.Validate(), client.Validate(), courier.Validate()); err != nil {
		return nil, err
	}

	addresses := []kernel.Address{provider, client, courier, escrow.HoldingAddress()}
	for i := 0; i < len(addresses); i++ {
		for j := i + 1; j < len(addresses); j++ {
			same, err := addresses[i].IsEqual(addresses[j])
			if err != nil {
				return nil, err
			}
			if same {
				return nil, ErrParticipantsMustBeDistinct
			}
		}
	}

	return &AccessPolicy{
		provider:      provider,
		client:        client,
		courier:       courier,
		isConstructed: true,
	}, nil
}

// Validate ensures the AccessPolicy instance was properly constructed.
func (p *AccessPolicy) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrAccessPolicyIsNotConstructed
	}

	return nil
}

// Provider returns the provider's address.
func (p *AccessPolicy) Provider() kernel.Address {
	return p.provider
}

// Client returns the client's address.
func (p *AccessPolicy) Client() kernel.Address {
	return p.client
}

// Courier returns the courier's address.
func (p *AccessPolicy) Courier() kernel.Address {
	return p.courier
}

// RequireProvider rejects any caller other than the provider.
func (p *AccessPolicy) RequireProvider(caller kernel.Address) error {
	return p.require(p.provider, "owner", caller)
}

// RequireClient rejects any caller other than the client.
func (p *AccessPolicy) RequireClient(caller kernel.Address) error {
	return p.require(p.client, "client", caller)
}

func (p *AccessPolicy) require(expected kernel.Address, role string, caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return errs.NewUnauthorizedError(role, "unknown")
	}

	same, err := expected.IsEqual(caller)
	if err != nil {
		return err
	}
	if !same {
		return errs.NewUnauthorizedError(role, caller.String())
	}

	return nil
}
