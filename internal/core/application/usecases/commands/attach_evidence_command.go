package commands

import (
	"errors"
	"io"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAttachEvidenceCommandIsNotConstructed = errors.New(
		"AttachEvidenceCommand must be created via NewAttachEvidenceCommand constructor",
	)
	ErrEvidenceContentIsRequired = errors.New("evidence image content is required")
)

// AttachEvidenceCommand represents an evidence photo upload for one of the
// order's fixed slots. The upload couples to the status engine: a stored
// photo advances the order to the slot's milestone status when the
// transition table allows it.
type AttachEvidenceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	slot    fulfillment.EvidenceSlot
	content io.Reader

	guard guard.ConstructorGuard
}

// NewAttachEvidenceCommand creates a command to upload an evidence photo.
// The slot arrives as its wire token and is parsed here.
func NewAttachEvidenceCommand(
	orderID kernel.UUID,
	slot string,
	content io.Reader,
) (AttachEvidenceCommand, error) {
	attachCommand := AttachEvidenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		attachCommand.setOrderID(orderID),
		attachCommand.setSlot(slot),
		attachCommand.setContent(content),
	); err != nil {
		return AttachEvidenceCommand{}, err
	}

	return attachCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrAttachEvidenceCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c AttachEvidenceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Slot returns the parsed evidence slot.
func (c AttachEvidenceCommand) Slot() fulfillment.EvidenceSlot {
	return c.slot
}

// Content returns the image content to store.
func (c AttachEvidenceCommand) Content() io.Reader {
	return c.content
}

func (c *AttachEvidenceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachEvidenceCommand) setSlot(slot string) error {
	parsed, err := fulfillment.EvidenceSlotFromString(slot)
	if err != nil {
		return err
	}

	c.slot = parsed
	return nil
}

func (c *AttachEvidenceCommand) setContent(content io.Reader) error {
	if content == nil {
		return ErrEvidenceContentIsRequired
	}

	c.content = content
	return nil
}
