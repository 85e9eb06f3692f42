package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// UploadInvoiceCommandHandler attaches an invoice reference to a paid order.
// Uploading is single-use; a second upload fails on the status check.
// Provider-only operation.
type UploadInvoiceCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory OrderUoWFactory
}

// NewUploadInvoiceCommandHandler creates a handler for invoice uploads.
func NewUploadInvoiceCommandHandler(policy *services.AccessPolicy, uowFactory OrderUoWFactory) UploadInvoiceCommandHandler {
	return UploadInvoiceCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice upload command.
func (h *UploadInvoiceCommandHandler) Handle(ctx context.Context, cmd UploadInvoiceCommand) error {
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

	if err = aggregate.UploadInvoice(cmd.InvoiceURI()); err != nil {
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
