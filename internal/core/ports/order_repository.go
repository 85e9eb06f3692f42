// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Identifiers are engine-allocated: dense and strictly increasing from zero,
// with no gaps even across restarts.
type OrderRepository interface {
	// NextID atomically allocates the next order identifier. Allocation and
	// the subsequent Add must share one transaction so a rollback releases
	// the identifier and the sequence stays dense.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order aggregate to storage.
	// The order must be valid and carry an identifier allocated by NextID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no order with that identifier
	// was ever created.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
