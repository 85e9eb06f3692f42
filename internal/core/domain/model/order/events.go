package order

// DomainEvent is a fact recorded by the Order aggregate when a mutation
// commits. Events carry the operation name and the fields the operation
// changed; they are appended to the transactional outbox in the same
// database transaction as the state change, never before.
type DomainEvent interface {
	// EventName returns the operation name announced to subscribers.
	EventName() string

	// AggregateID returns the id of the order the event belongs to.
	AggregateID() int64
}

// OrderCreated announces that a new order was registered.
// The allocated id is how external callers learn the identifier
// of the order they asked for.
type OrderCreated struct {
	ID int64 `json:"orderId"`
}

func (e OrderCreated) EventName() string  { return "OrderCreated" }
func (e OrderCreated) AggregateID() int64 { return e.ID }

// PriceSet announces the fees stored for an order.
type PriceSet struct {
	ID             int64 `json:"orderId"`
	FulfillmentFee int64 `json:"fulfillmentFee"`
	ShipmentFee    int64 `json:"shipmentFee"`
}

func (e PriceSet) EventName() string  { return "PriceSet" }
func (e PriceSet) AggregateID() int64 { return e.ID }

// StatusChanged announces a lifecycle transition.
// Every committed transition produces exactly one StatusChanged event.
type StatusChanged struct {
	ID     int64  `json:"orderId"`
	Status string `json:"status"`
}

func (e StatusChanged) EventName() string  { return "StatusChanged" }
func (e StatusChanged) AggregateID() int64 { return e.ID }

// PaymentReceived announces that the exact fee sum was collected and is
// now held in escrow.
type PaymentReceived struct {
	ID     int64 `json:"orderId"`
	Amount int64 `json:"amount"`
}

func (e PaymentReceived) EventName() string  { return "PaymentReceived" }
func (e PaymentReceived) AggregateID() int64 { return e.ID }

// InvoiceUploaded announces that the provider attached an invoice.
// The invoice content itself is opaque and not part of the event.
type InvoiceUploaded struct {
	ID int64 `json:"orderId"`
}

func (e InvoiceUploaded) EventName() string  { return "InvoiceUploaded" }
func (e InvoiceUploaded) AggregateID() int64 { return e.ID }

// TrackingSet announces that the provider stored a tracking code.
type TrackingSet struct {
	ID int64 `json:"orderId"`
}

func (e TrackingSet) EventName() string  { return "TrackingSet" }
func (e TrackingSet) AggregateID() int64 { return e.ID }

// PayoutCompleted announces the atomic split disbursement of held funds.
// The two amounts always sum to the recorded paid amount.
type PayoutCompleted struct {
	ID             int64 `json:"orderId"`
	ProviderAmount int64 `json:"providerAmount"`
	CourierAmount  int64 `json:"courierAmount"`
}

func (e PayoutCompleted) EventName() string  { return "PayoutCompleted" }
func (e PayoutCompleted) AggregateID() int64 { return e.ID }
