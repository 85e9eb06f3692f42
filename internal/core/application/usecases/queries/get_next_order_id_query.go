package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetNextOrderIDQueryIsNotConstructed = errors.New(
	"GetNextOrderIDQuery must be created via NewGetNextOrderIDQuery constructor",
)

// GetNextOrderIDQuery retrieves the identifier the next created order will
// receive. Because identifiers are dense, this also equals the number of
// orders ever created.
type GetNextOrderIDQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNextOrderIDQuery creates a parameterless query for the next identifier.
func NewGetNextOrderIDQuery() GetNextOrderIDQuery {
	return GetNextOrderIDQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNextOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetNextOrderIDQueryIsNotConstructed)
}
