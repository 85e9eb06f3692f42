package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents the client's payment for an order awaiting
// payment. The amount must equal the order's fee sum exactly; the handler
// rejects anything else without taking the funds.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID int64
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay for an order.
// Validates the caller address and the payment amount.
func NewPayOrderCommand(caller kernel.Address, orderID int64, amount kernel.Money) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// Caller returns the address of the paying party.
func (c PayOrderCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order being paid.
func (c PayOrderCommand) OrderID() int64 {
	return c.orderID
}

// Amount returns the attached payment amount.
func (c PayOrderCommand) Amount() kernel.Money {
	return c.amount
}

func (c *PayOrderCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *PayOrderCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}
