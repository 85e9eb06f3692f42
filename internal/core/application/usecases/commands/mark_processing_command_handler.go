package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// MarkProcessingCommandHandler moves a priced order into Processing.
// Provider-only operation.
type MarkProcessingCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory OrderUoWFactory
}

// NewMarkProcessingCommandHandler creates a handler for the acknowledgement operation.
func NewMarkProcessingCommandHandler(policy *services.AccessPolicy, uowFactory OrderUoWFactory) MarkProcessingCommandHandler {
	return MarkProcessingCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement command.
func (h *MarkProcessingCommandHandler) Handle(ctx context.Context, cmd MarkProcessingCommand) error {
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

	if err = aggregate.MarkProcessing(); err != nil {
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
