package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestPaymentCommandIsNotConstructed = errors.New(
	"RequestPaymentCommand must be created via NewRequestPaymentCommand constructor",
)

// RequestPaymentCommand represents a request to open the payment window of a
// processing order.
type RequestPaymentCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID int64

	guard guard.ConstructorGuard
}

// NewRequestPaymentCommand creates a command to move an order into AwaitingPayment.
func NewRequestPaymentCommand(caller kernel.Address, orderID int64) (RequestPaymentCommand, error) {
	cmd := RequestPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setCaller(caller), cmd.setOrderID(orderID)); err != nil {
		return RequestPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRequestPaymentCommandIsNotConstructed)
}

// Caller returns the address of the requesting party.
func (c RequestPaymentCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order to open for payment.
func (c RequestPaymentCommand) OrderID() int64 {
	return c.orderID
}

func (c *RequestPaymentCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RequestPaymentCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
