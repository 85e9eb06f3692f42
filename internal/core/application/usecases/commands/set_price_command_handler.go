package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// SetPriceCommandHandler handles the business logic for pricing an order.
// Pricing is a provider-only operation and is allowed exactly once, while
// the order is still Registered.
type SetPriceCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory OrderUoWFactory
}

// NewSetPriceCommandHandler creates a handler for pricing operations.
func NewSetPriceCommandHandler(policy *services.AccessPolicy, uowFactory OrderUoWFactory) SetPriceCommandHandler {
	return SetPriceCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing command. Loads the order, applies the fees,
// and stages the resulting events atomically with the update.
func (h *SetPriceCommandHandler) Handle(ctx context.Context, cmd SetPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.RequireProvider(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPrice(cmd.FulfillmentFee(), cmd.ShipmentFee()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = stageEvents(ctx, uow.OutboxRepository(), aggregate.PopEvents()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
