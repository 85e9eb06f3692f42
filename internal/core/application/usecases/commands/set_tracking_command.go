package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetTrackingCommandIsNotConstructed = errors.New(
		"SetTrackingCommand must be created via NewSetTrackingCommand constructor",
	)
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
)

// SetTrackingCommand represents a request to attach a shipment tracking code
// to an order. Tracking is informational and independent of the lifecycle.
type SetTrackingCommand struct { //nolint:recvcheck //using for validation
	caller       kernel.Address
	orderID      int64
	trackingCode string

	guard guard.ConstructorGuard
}

// NewSetTrackingCommand creates a command to attach a tracking code.
func NewSetTrackingCommand(caller kernel.Address, orderID int64, trackingCode string) (SetTrackingCommand, error) {
	cmd := SetTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setTrackingCode(trackingCode),
	); err != nil {
		return SetTrackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSetTrackingCommandIsNotConstructed)
}

// Caller returns the address of the requesting party.
func (c SetTrackingCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order to annotate.
func (c SetTrackingCommand) OrderID() int64 {
	return c.orderID
}

// TrackingCode returns the carrier tracking code.
func (c SetTrackingCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *SetTrackingCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SetTrackingCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *SetTrackingCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}

	c.trackingCode = trackingCode
	return nil
}
