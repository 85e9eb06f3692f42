package order

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvoiceURIIsRequired is returned when an invoice upload carries an empty URI.
	ErrInvoiceURIIsRequired = errors.New("invoice URI is required")

	// ErrTrackingCodeIsRequired is returned when a tracking update carries an empty code.
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
)

// Order represents a purchase order in the fulfillment engine. It is the
// aggregate root that manages the order lifecycle from registration through
// payment and escrow custody to the final payout.
//
// Order follows these invariants:
//   - The id is a non-negative, engine-allocated dense integer
//   - Status transitions follow the state machine defined on Status
//   - Fees are set exactly once and are immutable after leaving Registered
//   - Paid is zero until a successful payment, then equals the exact fee sum
//   - Terminal statuses (Closed, Cancelled) are never left
//   - Can only be created through NewOrder or RestoreOrder
//
// Every successful mutation records the domain events the commit must
// publish; the application layer drains them with PopEvents after the
// mutation is persisted.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the engine-allocated identifier, dense and monotonic from 0
	id int64

	// status represents the current state in the order lifecycle
	status Status

	// fulfillmentFee is the provider's charge, immutable once priced
	fulfillmentFee kernel.Money

	// shipmentFee is the courier's charge, immutable once priced
	shipmentFee kernel.Money

	// paid is the amount held in escrow; zero until a successful payment
	paid kernel.Money

	// invoiceURI is an opaque reference stored once while Paid
	invoiceURI string

	// tracking is an opaque code the provider may set at any time
	tracking string

	// events holds the not-yet-drained domain events of this instance
	events []DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with the given engine-allocated id.
// The order starts in Registered status with zero fees and nothing paid,
// and records an OrderCreated event.
//
// Parameters:
//   - id: The allocated identifier (must be non-negative)
//
// Returns:
//   - *Order: The created order if validation passes
//   - error: Validation error if the id is negative
func NewOrder(id int64) (*Order, error) {
	if id < 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 0, int64(math.MaxInt64))
	}

	zero, err := kernel.NewMoney(0)
	if err != nil {
		return nil, err
	}

	o := &Order{
		id:             id,
		status:         Registered,
		fulfillmentFee: zero,
		shipmentFee:    zero,
		paid:           zero,
		isConstructed:  true,
	}
	o.recordEvent(OrderCreated{ID: id})

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state without recording
// events. It validates the restored combination of status and held funds so
// corrupted rows cannot re-enter the domain.
//
// This function is intended for repository implementations only.
func RestoreOrder(
	id int64,
	status Status,
	fulfillmentFee kernel.Money,
	shipmentFee kernel.Money,
	paid kernel.Money,
	invoiceURI string,
	tracking string,
) (*Order, error) {
	if id < 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 0, int64(math.MaxInt64))
	}

	if err := errors.Join(
		status.Validate(),
		fulfillmentFee.Validate(),
		shipmentFee.Validate(),
		paid.Validate(),
		status.ValidateCanHoldFunds(!paid.IsZero()),
	); err != nil {
		return nil, err
	}

	if status.HoldsFunds() {
		total, err := fulfillmentFee.Add(shipmentFee)
		if err != nil {
			return nil, err
		}

		exact, err := paid.IsEqual(total)
		if err != nil {
			return nil, err
		}
		if !exact {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"paid",
				fmt.Errorf("paid %d does not match the fee total %d", paid.Amount(), total.Amount()),
			)
		}
	}

	return &Order{
		id:             id,
		status:         status,
		fulfillmentFee: fulfillmentFee,
		shipmentFee:    shipmentFee,
		paid:           paid,
		invoiceURI:     invoiceURI,
		tracking:       tracking,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's engine-allocated identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// FulfillmentFee returns the provider's charge.
func (o *Order) FulfillmentFee() kernel.Money {
	return o.fulfillmentFee
}

// ShipmentFee returns the courier's charge.
func (o *Order) ShipmentFee() kernel.Money {
	return o.shipmentFee
}

// Paid returns the amount currently recorded as collected for this order.
// It is zero for every status before Paid.
func (o *Order) Paid() kernel.Money {
	return o.paid
}

// InvoiceURI returns the stored invoice reference, empty until Invoiced.
func (o *Order) InvoiceURI() string {
	return o.invoiceURI
}

// Tracking returns the stored tracking code, empty until set.
func (o *Order) Tracking() string {
	return o.tracking
}

// TotalFee returns the sum the client must pay: fulfillmentFee + shipmentFee.
func (o *Order) TotalFee() (kernel.Money, error) {
	return o.fulfillmentFee.Add(o.shipmentFee)
}

// SetPrice stores the fulfillment and shipment fees and moves the order to
// Priced. Fees may only be set while the order is Registered; afterwards they
// are immutable.
//
// Records PriceSet and StatusChanged events on success.
func (o *Order) SetPrice(fulfillmentFee kernel.Money, shipmentFee kernel.Money) error {
	if err := errors.Join(fulfillmentFee.Validate(), shipmentFee.Validate()); err != nil {
		return err
	}

	// Reject fee pairs whose sum cannot be represented, before any mutation.
	if _, err := fulfillmentFee.Add(shipmentFee); err != nil {
		return err
	}

	newStatus, err := o.status.SetPrice()
	if err != nil {
		return err
	}

	o.fulfillmentFee = fulfillmentFee
	o.shipmentFee = shipmentFee
	o.status = newStatus
	o.recordEvent(PriceSet{
		ID:             o.id,
		FulfillmentFee: fulfillmentFee.Amount(),
		ShipmentFee:    shipmentFee.Amount(),
	})
	o.recordEvent(StatusChanged{ID: o.id, Status: newStatus.String()})
	return nil
}

// MarkProcessing moves a Priced order to Processing.
//
// Records a StatusChanged event on success.
func (o *Order) MarkProcessing() error {
	newStatus, err := o.status.MarkProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(StatusChanged{ID: o.id, Status: newStatus.String()})
	return nil
}

// RequestPayment moves a Processing order to AwaitingPayment.
//
// Records a StatusChanged event on success.
func (o *Order) RequestPayment() error {
	newStatus, err := o.status.RequestPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(StatusChanged{ID: o.id, Status: newStatus.String()})
	return nil
}

// Pay records the collection of the exact fee sum and moves the order to
// Paid. The value must equal fulfillmentFee + shipmentFee; both underpayment
// and overpayment fail with an IncorrectAmountError and leave the order
// untouched. The status check runs first, so a repeated payment fails with
// BadStatus rather than IncorrectAmount.
//
// Records PaymentReceived and StatusChanged events on success.
func (o *Order) Pay(value kernel.Money) error {
	if err := value.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	total, err := o.TotalFee()
	if err != nil {
		return err
	}

	exact, err := value.IsEqual(total)
	if err != nil {
		return err
	}
	if !exact {
		return errs.NewIncorrectAmountError(total.Amount(), value.Amount())
	}

	o.paid = value
	o.status = newStatus
	o.recordEvent(PaymentReceived{ID: o.id, Amount: value.Amount()})
	o.recordEvent(StatusChanged{ID: o.id, Status: newStatus.String()})
	return nil
}

// UploadInvoice stores the invoice reference and moves a Paid order to
// Invoiced. The URI is opaque to the engine and must be non-empty. Uploading
// is single-use: a second call fails with BadStatus.
//
// Records InvoiceUploaded and StatusChanged events on success.
func (o *Order) UploadInvoice(uri string) error {
	if uri == "" {
		return ErrInvoiceURIIsRequired
	}

	newStatus, err := o.status.Invoice()
	if err != nil {
		return err
	}

	o.invoiceURI = uri
	o.status = newStatus
	o.recordEvent(InvoiceUploaded{ID: o.id})
	o.recordEvent(StatusChanged{ID: o.id, Status: newStatus.String()})
	return nil
}

// Close moves an Invoiced order to Closed, announcing the split payout of the
// held funds. The caller is responsible for performing the disbursement in
// the same transaction that persists this transition.
//
// Records PayoutCompleted and StatusChanged events on success.
func (o *Order) Close() error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(PayoutCompleted{
		ID:             o.id,
		ProviderAmount: o.fulfillmentFee.Amount(),
		CourierAmount:  o.shipmentFee.Amount(),
	})
	o.recordEvent(StatusChanged{ID: o.id, Status: newStatus.String()})
	return nil
}

// Cancel withdraws an order that holds no funds yet. Allowed from Registered
// and Priced only; once payment has been requested the order must flow
// through the payout path instead.
//
// Records a StatusChanged event on success.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(StatusChanged{ID: o.id, Status: newStatus.String()})
	return nil
}

// SetTracking stores an opaque tracking code. The provider may set or
// replace the code at any point in the lifecycle; the status is unchanged.
//
// Records a TrackingSet event on success.
func (o *Order) SetTracking(code string) error {
	if code == "" {
		return ErrTrackingCodeIsRequired
	}

	o.tracking = code
	o.recordEvent(TrackingSet{ID: o.id})
	return nil
}

// PopEvents returns the events recorded since construction or the previous
// drain, and clears the internal list. The application layer calls this after
// applying a mutation to hand the events to the transactional outbox.
func (o *Order) PopEvents() []DomainEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}
