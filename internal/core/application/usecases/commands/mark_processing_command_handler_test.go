package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkProcessingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkProcessingCommand(address(t, "0xprovider"), 0)

	aggregate, err := order.NewOrder(0)
	require.NoError(t, err)
	require.NoError(t, aggregate.SetPrice(money(t, 500), money(t, 300)))
	aggregate.PopEvents()

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(0)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Append", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkProcessingCommandHandler(testPolicy(t), factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Processing, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestMarkProcessingCommandHandler_Handle_Unpriced(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkProcessingCommand(address(t, "0xprovider"), 0)

	aggregate, err := order.NewOrder(0)
	require.NoError(t, err)
	aggregate.PopEvents()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(0)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkProcessingCommandHandler(testPolicy(t), factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrBadStatus)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkProcessingCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkProcessingCommand(address(t, "0xcourier"), 0)

	factory := new(MockOrderUoWFactory)
	h := commands.NewMarkProcessingCommandHandler(testPolicy(t), factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}
