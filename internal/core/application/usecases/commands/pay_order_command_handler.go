package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/services"
)

// PayOrderCommandHandler handles the client's payment for an order.
// The order transition and the credit of the holding account commit in one
// transaction: if either fails, neither the status change nor the funds
// movement survives. Client-only operation.
type PayOrderCommandHandler struct {
	policy     *services.AccessPolicy
	uowFactory EscrowUoWFactory
}

// NewPayOrderCommandHandler creates a handler for payment operations.
// Requires an EscrowUoWFactory because payment touches both the order and
// the holding account.
func NewPayOrderCommandHandler(policy *services.AccessPolicy, uowFactory EscrowUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		policy:     policy,
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command. The aggregate enforces both the
// status and the exact-amount rule before any funds move.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.RequireClient(cmd.Caller()); err != nil {
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

	if err = aggregate.Pay(cmd.Amount()); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	holding, err := accountRepo.Get(ctx, escrow.HoldingAddress())
	if err != nil {
		return err
	}

	if err = holding.Credit(cmd.Amount()); err != nil {
		return err
	}

	if err = accountRepo.Save(ctx, holding); err != nil {
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
