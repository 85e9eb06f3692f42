package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func address(t *testing.T, value string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(value)
	require.NoError(t, err)
	return a
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func testPolicy(t *testing.T) *services.AccessPolicy {
	t.Helper()
	policy, err := services.NewAccessPolicy(
		address(t, "0xprovider"),
		address(t, "0xclient"),
		address(t, "0xcourier"),
	)
	require.NoError(t, err)
	return policy
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Get(ctx context.Context, party kernel.Address) (*escrow.Account, error) {
	args := m.Called(ctx, party)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Account), args.Error(1)
}
func (m *MockAccountRepository) Save(ctx context.Context, account *escrow.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Append(ctx context.Context, messages []ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}
func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockEscrowUoW struct {
	MockOrderUoW
}

func (m *MockEscrowUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEscrowUoWFactory struct{ mock.Mock }

func (m *MockEscrowUoWFactory) Create() commands.EscrowUoW {
	args := m.Called()
	return args.Get(0).(commands.EscrowUoW)
}

// pricedOrderAwaitingPayment builds an order id 0 priced at 500+300 and
// advanced to AwaitingPayment, with earlier events drained.
func pricedOrderAwaitingPayment(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(0)
	require.NoError(t, err)
	require.NoError(t, aggregate.SetPrice(money(t, 500), money(t, 300)))
	require.NoError(t, aggregate.MarkProcessing())
	require.NoError(t, aggregate.RequestPayment())
	aggregate.PopEvents()
	return aggregate
}

// invoicedOrder builds an order id 0 that is paid 800 and invoiced, with
// earlier events drained.
func invoicedOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := pricedOrderAwaitingPayment(t)
	require.NoError(t, aggregate.Pay(money(t, 800)))
	require.NoError(t, aggregate.UploadInvoice("ipfs://QmXxxx"))
	aggregate.PopEvents()
	return aggregate
}
