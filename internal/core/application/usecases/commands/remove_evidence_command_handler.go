package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// RemoveEvidenceCommandHandler handles the deletion of an evidence photo.
// The slot is cleared on the aggregate first; only after the transaction
// commits is the stored image removed, so a rollback never loses a photo
// the order still references.
type RemoveEvidenceCommandHandler struct {
	uowFactory OrderUoWFactory
	storage    ports.EvidenceStorage
	publisher  ports.OrderEventPublisher
	log        *slog.Logger
}

// NewRemoveEvidenceCommandHandler creates a handler for evidence deletion.
func NewRemoveEvidenceCommandHandler(
	uowFactory OrderUoWFactory,
	storage ports.EvidenceStorage,
	publisher ports.OrderEventPublisher,
	log *slog.Logger,
) RemoveEvidenceCommandHandler {
	return RemoveEvidenceCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		publisher:  publisher,
		log:        log,
	}
}

// Handle processes the evidence deletion command.
// The order's fulfillment status stays where it is regardless of which
// photo is removed.
func (h *RemoveEvidenceCommandHandler) Handle(ctx context.Context, cmd RemoveEvidenceCommand) error {
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

	imageRef, _ := aggregate.EvidenceRef(cmd.Slot())
	if err = aggregate.RemoveEvidence(cmd.Slot()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.storage.Delete(ctx, imageRef); err != nil {
		h.log.Warn("delete evidence image failed", "image_ref", imageRef, "error", err)
	}

	if err = h.publisher.PublishFulfillmentChanged(ctx, aggregate); err != nil {
		h.log.Warn("publish fulfillment change failed",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
