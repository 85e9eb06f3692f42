package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents the provider's request to abandon an order
// before it is processed. Cancellation is only possible while the order is
// Registered or Priced, which is always before any funds are held.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(caller kernel.Address, orderID int64) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setCaller(caller), cmd.setOrderID(orderID)); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Caller returns the address of the requesting party.
func (c CancelOrderCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CancelOrderCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
