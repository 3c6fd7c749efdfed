package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AttachEvidenceCommandHandler handles evidence photo uploads.
// The derived status advance goes through the update orchestrator inside
// the transaction. Image references are deterministic per order and slot,
// so a re-upload overwrites the stored image in place; the handler removes
// a stored image on failure only when the slot was empty before, keeping
// the path that backs an existing reference intact.
type AttachEvidenceCommandHandler struct {
	uowFactory   OrderUoWFactory
	storage      ports.EvidenceStorage
	orchestrator services.UpdateOrchestrator
	publisher    ports.OrderEventPublisher
	log          *slog.Logger
}

// NewAttachEvidenceCommandHandler creates a handler for evidence uploads.
func NewAttachEvidenceCommandHandler(
	uowFactory OrderUoWFactory,
	storage ports.EvidenceStorage,
	publisher ports.OrderEventPublisher,
	log *slog.Logger,
) AttachEvidenceCommandHandler {
	return AttachEvidenceCommandHandler{
		uowFactory:   uowFactory,
		storage:      storage,
		orchestrator: services.NewUpdateOrchestrator(),
		publisher:    publisher,
		log:          log,
	}
}

// Handle processes the evidence upload command.
// Stores the image, advances the order to the slot's milestone status when
// legal, and records the image reference on the aggregate. Replacing the
// photo of an already-reached milestone is an idempotent update.
func (h *AttachEvidenceCommandHandler) Handle(ctx context.Context, cmd AttachEvidenceCommand) error {
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

	previousRef, hadPrevious := aggregate.EvidenceRef(cmd.Slot())

	imageRef, err := h.storage.Put(ctx, cmd.OrderID(), cmd.Slot(), cmd.Content())
	if err != nil {
		return err
	}

	evidence := fulfillment.EvidenceEvent{Slot: cmd.Slot(), ImageRef: imageRef}
	candidate, applyErrors := h.orchestrator.Apply(aggregate.Metadata(), fulfillment.Patch{}, &evidence)
	if len(applyErrors) > 0 {
		h.discardImageIfNew(ctx, imageRef, hadPrevious)
		return errors.Join(applyErrors...)
	}

	if err = aggregate.ApplyMetadata(candidate); err != nil {
		h.discardImageIfNew(ctx, imageRef, hadPrevious)
		return err
	}
	if err = aggregate.AttachEvidence(cmd.Slot(), imageRef); err != nil {
		h.discardImageIfNew(ctx, imageRef, hadPrevious)
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		h.discardImageIfNew(ctx, imageRef, hadPrevious)
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		h.discardImageIfNew(ctx, imageRef, hadPrevious)
		return err
	}

	if hadPrevious && previousRef != imageRef {
		h.discardImage(ctx, previousRef)
	}

	if err = h.publisher.PublishFulfillmentChanged(ctx, aggregate); err != nil {
		h.log.Warn("publish fulfillment change failed",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}

// discardImage removes an image that ended up unreferenced. Best effort:
// a leaked image is logged, never turned into a command failure.
func (h *AttachEvidenceCommandHandler) discardImage(ctx context.Context, imageRef string) {
	if err := h.storage.Delete(ctx, imageRef); err != nil {
		h.log.Warn("discard evidence image failed", "image_ref", imageRef, "error", err)
	}
}

// discardImageIfNew discards a just-stored image after a failed command,
// but only when the slot was empty before the upload. An occupied slot's
// path still backs the reference persisted on the order and must survive.
func (h *AttachEvidenceCommandHandler) discardImageIfNew(
	ctx context.Context,
	imageRef string,
	hadPrevious bool,
) {
	if hadPrevious {
		return
	}
	h.discardImage(ctx, imageRef)
}
