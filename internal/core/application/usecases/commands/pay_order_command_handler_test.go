package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPayOrderCommand(address(t, "0xclient"), 0, money(t, 800))

	aggregate := pricedOrderAwaitingPayment(t)
	holding, err := escrow.NewAccount(escrow.HoldingAddress())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	accounts := new(MockAccountRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockEscrowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(0)).Return(aggregate, nil).Once(),
		uow.On("AccountRepository").Return(accounts).Once(),
		accounts.On("Get", mock.Anything, escrow.HoldingAddress()).Return(holding, nil).Once(),
		accounts.On("Save", mock.Anything, holding).Return(nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Append", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEscrowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(testPolicy(t), factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Paid, aggregate.Status())
	assert.Equal(t, int64(800), aggregate.Paid().Amount())
	assert.Equal(t, int64(800), holding.Balance().Amount())
	repo.AssertExpectations(t)
	accounts.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_WrongAmount(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPayOrderCommand(address(t, "0xclient"), 0, money(t, 500))

	aggregate := pricedOrderAwaitingPayment(t)

	repo := new(MockOrderRepository)
	accounts := new(MockAccountRepository)
	uow := new(MockEscrowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(0)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEscrowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(testPolicy(t), factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIncorrectAmount)
	assert.Equal(t, order.AwaitingPayment, aggregate.Status(), "failed payment must not advance the order")
	accounts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPayOrderCommandHandler_Handle_SecondPaymentIsBadStatus(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPayOrderCommand(address(t, "0xclient"), 0, money(t, 800))

	aggregate := pricedOrderAwaitingPayment(t)
	require.NoError(t, aggregate.Pay(money(t, 800)))
	aggregate.PopEvents()

	repo := new(MockOrderRepository)
	uow := new(MockEscrowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(0)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEscrowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(testPolicy(t), factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrBadStatus)
	require.NotErrorIs(t, err, errs.ErrIncorrectAmount)
}

func TestPayOrderCommandHandler_Handle_ProviderCannotPay(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPayOrderCommand(address(t, "0xprovider"), 0, money(t, 800))

	factory := new(MockEscrowUoWFactory)
	h := commands.NewPayOrderCommandHandler(testPolicy(t), factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}
