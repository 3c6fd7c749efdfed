package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// UpdateFulfillmentCommandHandler handles admin edits of an order's
// fulfillment state. The edit is all-or-nothing: the orchestrator either
// returns a fully validated candidate or the complete list of violations,
// and nothing is persisted on failure.
//
// Example:
//
//	handler := NewUpdateFulfillmentCommandHandler(uowFactory, publisher, log)
//	packed := "dikemas"
//	cmd, _ := NewUpdateFulfillmentCommand(orderID, fulfillment.Patch{Status: &packed})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("fulfillment update rejected: %w", err)
//	}
type UpdateFulfillmentCommandHandler struct {
	uowFactory   OrderUoWFactory
	orchestrator services.UpdateOrchestrator
	publisher    ports.OrderEventPublisher
	log          *slog.Logger
}

// NewUpdateFulfillmentCommandHandler creates a handler for fulfillment edits.
func NewUpdateFulfillmentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	log *slog.Logger,
) UpdateFulfillmentCommandHandler {
	return UpdateFulfillmentCommandHandler{
		uowFactory:   uowFactory,
		orchestrator: services.NewUpdateOrchestrator(),
		publisher:    publisher,
		log:          log,
	}
}

// Handle processes the fulfillment edit command.
// Loads the order, runs the patch through the update orchestrator, and
// persists the validated candidate under the order's optimistic version.
// All orchestrator violations are joined into a single returned error.
func (h *UpdateFulfillmentCommandHandler) Handle(ctx context.Context, cmd UpdateFulfillmentCommand) error {
	if err := cmd.Validate(); err != nil {
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

	candidate, applyErrors := h.orchestrator.Apply(aggregate.Metadata(), cmd.Patch(), nil)
	if len(applyErrors) > 0 {
		return errors.Join(applyErrors...)
	}

	if err = aggregate.ApplyMetadata(candidate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishFulfillmentChanged(ctx, aggregate); err != nil {
		h.log.Warn("publish fulfillment change failed",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
