// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and bypass the domain aggregates, returning flat
// response structures shaped for the transport layer.
package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)

	// ErrOrderIDIsInvalid is shared by all queries addressing an order.
	ErrOrderIDIsInvalid = errors.New("order id must be non-negative")
)

// GetOrderQuery retrieves the full state of a single order.
// Reads are open to any caller; only mutations are role-gated.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order identifier.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID < 0 {
		return GetOrderQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryResponse represents the full state of an order as stored.
// Fee and payment amounts are in the smallest currency unit.
type GetOrderQueryResponse struct {
	ID             int64
	Status         string
	FulfillmentFee int64
	ShipmentFee    int64
	Paid           int64
	InvoiceURI     string
	Tracking       string
}
