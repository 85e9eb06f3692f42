package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// SetTrackingCommandHandler attaches a shipment tracking code to an order.
// Provider-only operation, allowed in every status.
type SetTrackingCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory OrderUoWFactory
}

// NewSetTrackingCommandHandler creates a handler for tracking updates.
func NewSetTrackingCommandHandler(policy *services.AccessPolicy, uowFactory OrderUoWFactory) SetTrackingCommandHandler {
	return SetTrackingCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking update command.
func (h *SetTrackingCommandHandler) Handle(ctx context.Context, cmd SetTrackingCommand) error {
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

	if err = aggregate.SetTracking(cmd.TrackingCode()); err != nil {
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
