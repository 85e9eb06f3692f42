package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCloseOrderCommandIsNotConstructed = errors.New(
	"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
)

// CloseOrderCommand represents a request to close an invoiced order and pay
// out the held funds.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID int64

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to close an order.
func NewCloseOrderCommand(caller kernel.Address, orderID int64) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setCaller(caller), cmd.setOrderID(orderID)); err != nil {
		return CloseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// Caller returns the address of the requesting party.
func (c CloseOrderCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order to close.
func (c CloseOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CloseOrderCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CloseOrderCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
