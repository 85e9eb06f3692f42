package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the next dense identifier and registers the order in Registered
// status. Identifier allocation and insertion share one transaction, so a
// failed creation never leaves a gap in the sequence.
type CreateOrderCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires the access policy and an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(policy *services.AccessPolicy, uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the identifier of
// the new order. Only the provider may create orders.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := h.policy.RequireProvider(cmd.Caller()); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(id)
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = stageEvents(ctx, uow.OutboxRepository(), aggregate.PopEvents()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
