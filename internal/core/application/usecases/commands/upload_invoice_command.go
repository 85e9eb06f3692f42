package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUploadInvoiceCommandIsNotConstructed = errors.New(
		"UploadInvoiceCommand must be created via NewUploadInvoiceCommand constructor",
	)
	ErrInvoiceURIIsRequired = errors.New("invoice uri is required")
)

// UploadInvoiceCommand represents a request to attach an invoice reference
// to a paid order. The URI is opaque to the engine.
type UploadInvoiceCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Address
	orderID    int64
	invoiceURI string

	guard guard.ConstructorGuard
}

// NewUploadInvoiceCommand creates a command to attach an invoice.
// Validates the caller address and that the URI is non-empty.
func NewUploadInvoiceCommand(caller kernel.Address, orderID int64, invoiceURI string) (UploadInvoiceCommand, error) {
	cmd := UploadInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setInvoiceURI(invoiceURI),
	); err != nil {
		return UploadInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrUploadInvoiceCommandIsNotConstructed)
}

// Caller returns the address of the requesting party.
func (c UploadInvoiceCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the identifier of the order to invoice.
func (c UploadInvoiceCommand) OrderID() int64 {
	return c.orderID
}

// InvoiceURI returns the opaque invoice reference.
func (c UploadInvoiceCommand) InvoiceURI() string {
	return c.invoiceURI
}

func (c *UploadInvoiceCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UploadInvoiceCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *UploadInvoiceCommand) setInvoiceURI(invoiceURI string) error {
	if invoiceURI == "" {
		return ErrInvoiceURIIsRequired
	}

	c.invoiceURI = invoiceURI
	return nil
}
