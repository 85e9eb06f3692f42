package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// RequestPaymentCommandHandler opens the payment window of a processing
// order. Provider-only operation.
type RequestPaymentCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory OrderUoWFactory
}

// NewRequestPaymentCommandHandler creates a handler for the payment request operation.
func NewRequestPaymentCommandHandler(policy *services.AccessPolicy, uowFactory OrderUoWFactory) RequestPaymentCommandHandler {
	return RequestPaymentCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the payment request command.
func (h *RequestPaymentCommandHandler) Handle(ctx context.Context, cmd RequestPaymentCommand) error {
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

	if err = aggregate.RequestPayment(); err != nil {
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
