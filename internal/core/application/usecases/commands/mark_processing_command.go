package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkProcessingCommandIsNotConstructed = errors.New(
	"MarkProcessingCommand must be created via NewMarkProcessingCommand constructor",
)

// MarkProcessingCommand represents a request to acknowledge a priced order
// and start working on it.
type MarkProcessingCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkProcessingCommand creates a command to move an order into Processing.
func NewMarkProcessingCommand(caller kernel.Address, orderID int64) (MarkProcessingCommand, error) {
	cmd := MarkProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setCaller(caller), cmd.setOrderID(orderID)); err != nil {
		return MarkProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkProcessingCommand) Validate() error {
	return c.guard.Validate(ErrMarkProcessingCommandIsNotConstructed)
}

// Caller returns the address of the requesting party.
func (c MarkProcessingCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order to acknowledge.
func (c MarkProcessingCommand) OrderID() int64 {
	return c.orderID
}

func (c *MarkProcessingCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *MarkProcessingCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
