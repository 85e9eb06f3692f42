package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetPriceCommandIsNotConstructed = errors.New(
		"SetPriceCommand must be created via NewSetPriceCommand constructor",
	)

	// ErrOrderIDIsInvalid is shared by all commands addressing an existing order.
	ErrOrderIDIsInvalid = errors.New("order id must be non-negative")
)

// SetPriceCommand represents a request to price a registered order.
// Carries the two fee components separately; the payable total is their sum.
type SetPriceCommand struct { //nolint:recvcheck //using for validation
	caller         kernel.Address
	orderID        int64
	fulfillmentFee kernel.Money
	shipmentFee    kernel.Money

	guard guard.ConstructorGuard
}

// NewSetPriceCommand creates a command to price an order.
// Validates the caller address and both fee amounts.
func NewSetPriceCommand(
	caller kernel.Address,
	orderID int64,
	fulfillmentFee kernel.Money,
	shipmentFee kernel.Money,
) (SetPriceCommand, error) {
	cmd := SetPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setFees(fulfillmentFee, shipmentFee),
	); err != nil {
		return SetPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPriceCommandIsNotConstructed)
}

// Caller returns the address of the requesting party.
func (c SetPriceCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order to price.
func (c SetPriceCommand) OrderID() int64 {
	return c.orderID
}

// FulfillmentFee returns the provider's share of the price.
func (c SetPriceCommand) FulfillmentFee() kernel.Money {
	return c.fulfillmentFee
}

// ShipmentFee returns the courier's share of the price.
func (c SetPriceCommand) ShipmentFee() kernel.Money {
	return c.shipmentFee
}

func (c *SetPriceCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SetPriceCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *SetPriceCommand) setFees(fulfillmentFee kernel.Money, shipmentFee kernel.Money) error {
	if err := errors.Join(fulfillmentFee.Validate(), shipmentFee.Validate()); err != nil {
		return err
	}

	c.fulfillmentFee = fulfillmentFee
	c.shipmentFee = shipmentFee
	return nil
}
