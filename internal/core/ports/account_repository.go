package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for escrow accounts.
// Accounts are keyed by the owning party's address; a party that never
// received funds has no stored row and reads back as a zero balance.
type AccountRepository interface {
	// Get retrieves the account of the given party, or a fresh zero-balance
	// account when the party has no stored row yet.
	Get(ctx context.Context, party kernel.Address) (*escrow.Account, error)

	// Save persists the account's current balance, creating the row on
	// first write.
	Save(ctx context.Context, account *escrow.Account) error
}
