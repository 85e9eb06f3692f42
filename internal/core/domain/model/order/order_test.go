package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

// orderInStatus advances a fresh order to the given status using the regular
// mutation path, so tests exercise the same transitions production does.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(0)
	require.NoError(t, err)
	o.PopEvents()

	if status == order.Cancelled {
		require.NoError(t, o.Cancel())
		o.PopEvents()
		return o
	}

	steps := []struct {
		target order.Status
		apply  func() error
	}{
		{order.Priced, func() error { return o.SetPrice(money(t, 500), money(t, 300)) }},
		{order.Processing, o.MarkProcessing},
		{order.AwaitingPayment, o.RequestPayment},
		{order.Paid, func() error { return o.Pay(money(t, 800)) }},
		{order.Invoiced, func() error { return o.UploadInvoice("ipfs://QmXxxx") }},
		{order.Closed, o.Close},
	}

	for _, step := range steps {
		if o.Status() == status {
			break
		}
		require.NoError(t, step.apply())
		if step.target == status {
			break
		}
	}

	require.Equal(t, status, o.Status())
	o.PopEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Registered status with nothing set", func(t *testing.T) {
		o, err := order.NewOrder(0)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, order.Registered, o.Status())
		assert.True(t, o.FulfillmentFee().IsZero())
		assert.True(t, o.ShipmentFee().IsZero())
		assert.True(t, o.Paid().IsZero())
		assert.Empty(t, o.InvoiceURI())
		assert.Empty(t, o.Tracking())
	})

	t.Run("should record OrderCreated event", func(t *testing.T) {
		o, err := order.NewOrder(7)
		require.NoError(t, err)

		events := o.PopEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.OrderCreated{ID: 7}, events[0])
		assert.Equal(t, "OrderCreated", events[0].EventName())
		assert.Equal(t, int64(7), events[0].AggregateID())

		assert.Empty(t, o.PopEvents(), "events should drain once")
	})

	t.Run("should reject negative id", func(t *testing.T) {
		o, err := order.NewOrder(-1)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject order not created via constructor", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SetPrice(t *testing.T) {
	t.Run("should store fees and move to Priced", func(t *testing.T) {
		o := orderInStatus(t, order.Registered)

		err := o.SetPrice(money(t, 500000000000000000), money(t, 300000000000000000))

		require.NoError(t, err)
		assert.Equal(t, order.Priced, o.Status())
		assert.Equal(t, int64(500000000000000000), o.FulfillmentFee().Amount())
		assert.Equal(t, int64(300000000000000000), o.ShipmentFee().Amount())

		events := o.PopEvents()
		require.Len(t, events, 2)
		assert.Equal(t, order.PriceSet{
			ID:             0,
			FulfillmentFee: 500000000000000000,
			ShipmentFee:    300000000000000000,
		}, events[0])
		assert.Equal(t, order.StatusChanged{ID: 0, Status: "Priced"}, events[1])
	})

	t.Run("should reject repricing with BadStatus", func(t *testing.T) {
		o := orderInStatus(t, order.Priced)

		err := o.SetPrice(money(t, 1), money(t, 2))

		require.ErrorIs(t, err, errs.ErrBadStatus)
		assert.Equal(t, int64(500), o.FulfillmentFee().Amount(), "fees must stay immutable")
		assert.Empty(t, o.PopEvents())
	})

	t.Run("should reject unconstructed fee", func(t *testing.T) {
		o := orderInStatus(t, order.Registered)

		err := o.SetPrice(kernel.Money{}, money(t, 1))

		require.Error(t, err)
		assert.Equal(t, order.Registered, o.Status())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should complete the full lifecycle", func(t *testing.T) {
		o, err := order.NewOrder(0)
		require.NoError(t, err)

		require.NoError(t, o.SetPrice(money(t, 500000000000000000), money(t, 300000000000000000)))
		require.NoError(t, o.MarkProcessing())
		assert.Equal(t, order.Processing, o.Status())

		require.NoError(t, o.RequestPayment())
		assert.Equal(t, order.AwaitingPayment, o.Status())

		require.NoError(t, o.Pay(money(t, 800000000000000000)))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, int64(800000000000000000), o.Paid().Amount())

		require.NoError(t, o.UploadInvoice("ipfs://QmXxxx"))
		assert.Equal(t, order.Invoiced, o.Status())
		assert.Equal(t, "ipfs://QmXxxx", o.InvoiceURI())

		require.NoError(t, o.Close())
		assert.Equal(t, order.Closed, o.Status())
	})

	t.Run("should reject skipping a required predecessor status", func(t *testing.T) {
		o := orderInStatus(t, order.Registered)

		require.ErrorIs(t, o.MarkProcessing(), errs.ErrBadStatus)
		require.ErrorIs(t, o.RequestPayment(), errs.ErrBadStatus)
		require.ErrorIs(t, o.Pay(money(t, 800)), errs.ErrBadStatus)
		require.ErrorIs(t, o.UploadInvoice("ipfs://x"), errs.ErrBadStatus)
		require.ErrorIs(t, o.Close(), errs.ErrBadStatus)
		assert.Equal(t, order.Registered, o.Status())
		assert.Empty(t, o.PopEvents())
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should hold the exact fee sum", func(t *testing.T) {
		o := orderInStatus(t, order.AwaitingPayment)

		err := o.Pay(money(t, 800))

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, int64(800), o.Paid().Amount())

		events := o.PopEvents()
		require.Len(t, events, 2)
		assert.Equal(t, order.PaymentReceived{ID: 0, Amount: 800}, events[0])
		assert.Equal(t, order.StatusChanged{ID: 0, Status: "Paid"}, events[1])
	})

	t.Run("should reject underpayment with IncorrectAmount", func(t *testing.T) {
		o := orderInStatus(t, order.AwaitingPayment)

		err := o.Pay(money(t, 500))

		require.ErrorIs(t, err, errs.ErrIncorrectAmount)
		assert.Equal(t, order.AwaitingPayment, o.Status())
		assert.True(t, o.Paid().IsZero())
		assert.Empty(t, o.PopEvents())
	})

	t.Run("should reject overpayment with IncorrectAmount", func(t *testing.T) {
		o := orderInStatus(t, order.AwaitingPayment)

		err := o.Pay(money(t, 900))

		require.ErrorIs(t, err, errs.ErrIncorrectAmount)
		assert.True(t, o.Paid().IsZero())
	})

	t.Run("should reject second payment with BadStatus, not IncorrectAmount", func(t *testing.T) {
		o := orderInStatus(t, order.AwaitingPayment)
		require.NoError(t, o.Pay(money(t, 800)))
		o.PopEvents()

		err := o.Pay(money(t, 800))

		require.ErrorIs(t, err, errs.ErrBadStatus)
		assert.Equal(t, int64(800), o.Paid().Amount())
		assert.Empty(t, o.PopEvents())
	})
}

func TestOrder_UploadInvoice(t *testing.T) {
	t.Run("should be single-use", func(t *testing.T) {
		o := orderInStatus(t, order.Invoiced)

		err := o.UploadInvoice("ipfs://other")

		require.ErrorIs(t, err, errs.ErrBadStatus)
		assert.Equal(t, "ipfs://QmXxxx", o.InvoiceURI())
	})

	t.Run("should reject empty URI", func(t *testing.T) {
		o := orderInStatus(t, order.Paid)

		require.ErrorIs(t, o.UploadInvoice(""), order.ErrInvoiceURIIsRequired)
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_Close(t *testing.T) {
	t.Run("should record payout split matching the held amount", func(t *testing.T) {
		o := orderInStatus(t, order.Invoiced)

		require.NoError(t, o.Close())

		events := o.PopEvents()
		require.Len(t, events, 2)
		payout, ok := events[0].(order.PayoutCompleted)
		require.True(t, ok)
		assert.Equal(t, int64(500), payout.ProviderAmount)
		assert.Equal(t, int64(300), payout.CourierAmount)
		assert.Equal(t, o.Paid().Amount(), payout.ProviderAmount+payout.CourierAmount)
		assert.Equal(t, order.StatusChanged{ID: 0, Status: "Closed"}, events[1])
	})

	t.Run("should reject closing twice", func(t *testing.T) {
		o := orderInStatus(t, order.Closed)

		require.ErrorIs(t, o.Close(), errs.ErrBadStatus)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel from Registered", func(t *testing.T) {
		o := orderInStatus(t, order.Registered)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel from Priced", func(t *testing.T) {
		o := orderInStatus(t, order.Priced)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject cancel once paid", func(t *testing.T) {
		o := orderInStatus(t, order.Paid)

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrBadStatus)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, int64(800), o.Paid().Amount())
	})

	t.Run("should reject cancel from Processing and AwaitingPayment", func(t *testing.T) {
		require.ErrorIs(t, orderInStatus(t, order.Processing).Cancel(), errs.ErrBadStatus)
		require.ErrorIs(t, orderInStatus(t, order.AwaitingPayment).Cancel(), errs.ErrBadStatus)
	})

	t.Run("should leave terminal orders unchanged", func(t *testing.T) {
		cancelled := orderInStatus(t, order.Cancelled)
		require.ErrorIs(t, cancelled.Cancel(), errs.ErrBadStatus)
		assert.Equal(t, order.Cancelled, cancelled.Status())

		closed := orderInStatus(t, order.Closed)
		require.ErrorIs(t, closed.Cancel(), errs.ErrBadStatus)
		assert.Equal(t, order.Closed, closed.Status())
	})
}

func TestOrder_SetTracking(t *testing.T) {
	t.Run("should store code without touching status", func(t *testing.T) {
		o := orderInStatus(t, order.Paid)

		err := o.SetTracking("TRACK123456")

		require.NoError(t, err)
		assert.Equal(t, "TRACK123456", o.Tracking())
		assert.Equal(t, order.Paid, o.Status())

		events := o.PopEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.TrackingSet{ID: 0}, events[0])
	})

	t.Run("should be settable in any status", func(t *testing.T) {
		for _, status := range []order.Status{order.Registered, order.Closed, order.Cancelled} {
			o := orderInStatus(t, status)
			require.NoError(t, o.SetTracking("TRACK-X"))
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("should reject empty code", func(t *testing.T) {
		o := orderInStatus(t, order.Registered)

		require.ErrorIs(t, o.SetTracking(""), order.ErrTrackingCodeIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a funded order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			3, order.Invoiced, money(t, 500), money(t, 300), money(t, 800), "ipfs://QmXxxx", "TRACK1")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(3), o.ID())
		assert.Equal(t, order.Invoiced, o.Status())
		assert.Equal(t, int64(800), o.Paid().Amount())
		assert.Equal(t, "ipfs://QmXxxx", o.InvoiceURI())
		assert.Equal(t, "TRACK1", o.Tracking())
		assert.Empty(t, o.PopEvents(), "restore must not record events")
	})

	t.Run("should reject funds held in a pre-payment status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			3, order.Processing, money(t, 500), money(t, 300), money(t, 800), "", "")

		require.Error(t, err)
	})

	t.Run("should reject a funded status whose paid does not match the fee total", func(t *testing.T) {
		_, err := order.RestoreOrder(
			3, order.Paid, money(t, 500), money(t, 300), money(t, 0), "", "")
		require.Error(t, err)

		_, err = order.RestoreOrder(
			3, order.Paid, money(t, 500), money(t, 300), money(t, 700), "", "")
		require.Error(t, err)
	})

	t.Run("should restore a paid order with zero fees", func(t *testing.T) {
		o, err := order.RestoreOrder(
			0, order.Paid, money(t, 0), money(t, 0), money(t, 0), "", "")

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, int64(0), o.Paid().Amount())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			3, order.Unknown, money(t, 0), money(t, 0), money(t, 0), "", "")

		require.Error(t, err)
	})
}
