package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveEvidenceCommandIsNotConstructed = errors.New(
	"RemoveEvidenceCommand must be created via NewRemoveEvidenceCommand constructor",
)

// RemoveEvidenceCommand represents the deletion of an evidence photo from
// one of the order's slots. Removing evidence never rolls the fulfillment
// status back.
type RemoveEvidenceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	slot    fulfillment.EvidenceSlot

	guard guard.ConstructorGuard
}

// NewRemoveEvidenceCommand creates a command to delete an evidence photo.
func NewRemoveEvidenceCommand(orderID kernel.UUID, slot string) (RemoveEvidenceCommand, error) {
	removeCommand := RemoveEvidenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setOrderID(orderID),
		removeCommand.setSlot(slot),
	); err != nil {
		return RemoveEvidenceCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEvidenceCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c RemoveEvidenceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Slot returns the parsed evidence slot.
func (c RemoveEvidenceCommand) Slot() fulfillment.EvidenceSlot {
	return c.slot
}

func (c *RemoveEvidenceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveEvidenceCommand) setSlot(slot string) error {
	parsed, err := fulfillment.EvidenceSlotFromString(slot)
	if err != nil {
		return err
	}

	c.slot = parsed
	return nil
}
