package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Registered ──> Priced ──> Processing ──> AwaitingPayment ──> Paid ──> Invoiced ──> Closed
//	     │            │
//	     └────────────┴──────> Cancelled
//
// Closed and Cancelled are terminal: no transition ever leaves them, and no
// transition ever moves a status backwards or skips a required predecessor.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Registered is the initial status assigned when an order is created.
	// Fees are not set yet and the order may still be cancelled.
	Registered

	// Priced indicates the provider has set the fulfillment and shipment fees.
	// Fees are immutable from this point on.
	Priced

	// Processing indicates the provider has started working on the order.
	Processing

	// AwaitingPayment indicates the provider has requested payment from the client.
	AwaitingPayment

	// Paid indicates the client has paid the exact fee sum, now held in escrow.
	Paid

	// Invoiced indicates the provider has attached the invoice for the paid order.
	Invoiced

	// Closed indicates the held funds were disbursed and the order is complete.
	// This is a terminal state.
	Closed

	// Cancelled indicates the order was withdrawn before any funds were held.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Registered:      "Registered",
		Priced:          "Priced",
		Processing:      "Processing",
		AwaitingPayment: "AwaitingPayment",
		Paid:            "Paid",
		Invoiced:        "Invoiced",
		Closed:          "Closed",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Registered:      "Registered",
		Priced:          "Priced",
		Processing:      "Processing",
		AwaitingPayment: "AwaitingPayment",
		Paid:            "Paid",
		Invoiced:        "Invoiced",
		Closed:          "Closed",
		Cancelled:       "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unrecognized or invalid names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status name", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the eight lifecycle states from Registered to Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is final.
// Closed and Cancelled orders accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Cancelled
}

// HoldsFunds reports whether the collected payment is recorded for this
// status. True from Paid onward; Closed keeps the amount that was disbursed.
func (s Status) HoldsFunds() bool {
	return s == Paid || s == Invoiced || s == Closed
}

// ValidateCanHoldFunds validates the consistency between the order status and
// held funds. Funds are collected exactly once at the AwaitingPayment→Paid
// transition, so Registered through AwaitingPayment and Cancelled must hold
// nothing. Funded statuses may legitimately record zero (fees can be zero);
// the aggregate validates the exact paid amount against the fee total.
//
// Parameters:
//   - hasFunds: whether the order records a non-zero paid amount
//
// Returns:
//   - error: validation error if status and held funds are inconsistent
func (s Status) ValidateCanHoldFunds(hasFunds bool) error {
	if hasFunds && !s.HoldsFunds() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to hold funds", s.String()),
		)
	}

	return nil
}

// SetPrice transitions the status to Priced.
//
// Valid transitions:
//   - Registered -> Priced
//
// Returns:
//   - (Priced, nil) on valid transition
//   - (0, BadStatusError) if pricing is not allowed from the current status
func (s Status) SetPrice() (Status, error) {
	if s != Registered {
		return 0, errs.NewBadStatusError("set price", s.String())
	}

	return Priced, nil
}

// MarkProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Priced -> Processing
func (s Status) MarkProcessing() (Status, error) {
	if s != Priced {
		return 0, errs.NewBadStatusError("mark processing", s.String())
	}

	return Processing, nil
}

// RequestPayment transitions the status to AwaitingPayment.
//
// Valid transitions:
//   - Processing -> AwaitingPayment
func (s Status) RequestPayment() (Status, error) {
	if s != Processing {
		return 0, errs.NewBadStatusError("request payment", s.String())
	}

	return AwaitingPayment, nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - AwaitingPayment -> Paid
//
// Repeated payment attempts fail here: once Paid, the order never returns
// to AwaitingPayment.
func (s Status) Pay() (Status, error) {
	if s != AwaitingPayment {
		return 0, errs.NewBadStatusError("pay", s.String())
	}

	return Paid, nil
}

// Invoice transitions the status to Invoiced.
//
// Valid transitions:
//   - Paid -> Invoiced
//
// Uploading an invoice is single-use: once Invoiced, a second upload fails.
func (s Status) Invoice() (Status, error) {
	if s != Paid {
		return 0, errs.NewBadStatusError("upload invoice", s.String())
	}

	return Invoiced, nil
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Invoiced -> Closed
//
// Closed is a terminal state reached only after the payout disbursement.
func (s Status) Close() (Status, error) {
	if s != Invoiced {
		return 0, errs.NewBadStatusError("close", s.String())
	}

	return Closed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Registered -> Cancelled
//   - Priced -> Cancelled
//
// Cancellation is rejected from Processing onwards: once payment has been
// requested, the order must flow through the payout path instead.
func (s Status) Cancel() (Status, error) {
	if s != Registered && s != Priced {
		return 0, errs.NewBadStatusError("cancel", s.String())
	}

	return Cancelled, nil
}
