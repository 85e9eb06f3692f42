package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CloseOrderCommandHandler closes an invoiced order and pays out the held
// funds: the fulfillment fee to the provider, the shipment fee to the
// courier. All three balance movements and the status change commit in one
// transaction, so the payout is all-or-nothing and the sum of balances is
// preserved. Provider-only operation.
type CloseOrderCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory EscrowUoWFactory
}

// NewCloseOrderCommandHandler creates a handler for payout operations.
func NewCloseOrderCommandHandler(policy *services.AccessPolicy, uowFactory EscrowUoWFactory) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the close command.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
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

	// Capture the split before the transition; fees are immutable once priced.
	fulfillmentFee := aggregate.FulfillmentFee()
	shipmentFee := aggregate.ShipmentFee()
	total, err := aggregate.TotalFee()
	if err != nil {
		return err
	}

	if err = aggregate.Close(); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	if err = h.move(ctx, accountRepo, escrow.HoldingAddress(), total, h.policy.Provider(), fulfillmentFee); err != nil {
		return err
	}

	if err = h.credit(ctx, accountRepo, h.policy.Courier(), shipmentFee); err != nil {
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

// move debits the source account and credits the destination in one pass.
func (h *CloseOrderCommandHandler) move(
	ctx context.Context,
	accountRepo ports.AccountRepository,
	from kernel.Address,
	debit kernel.Money,
	to kernel.Address,
	credit kernel.Money,
) error {
	source, err := accountRepo.Get(ctx, from)
	if err != nil {
		return err
	}

	if err = source.Debit(debit); err != nil {
		return err
	}

	if err = accountRepo.Save(ctx, source); err != nil {
		return err
	}

	return h.credit(ctx, accountRepo, to, credit)
}

func (h *CloseOrderCommandHandler) credit(
	ctx context.Context,
	accountRepo ports.AccountRepository,
	to kernel.Address,
	amount kernel.Money,
) error {
	destination, err := accountRepo.Get(ctx, to)
	if err != nil {
		return err
	}

	if err = destination.Credit(amount); err != nil {
		return err
	}

	return accountRepo.Save(ctx, destination)
}
