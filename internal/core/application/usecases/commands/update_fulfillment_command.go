package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateFulfillmentCommandIsNotConstructed = errors.New(
		"UpdateFulfillmentCommand must be created via NewUpdateFulfillmentCommand constructor",
	)
	ErrPatchIsEmpty = errors.New("patch contains no fields")
)

// UpdateFulfillmentCommand represents an admin edit of an order's
// fulfillment state. The patch carries raw form values; normalization and
// validation happen in the update orchestrator so every violation is
// reported in one pass.
type UpdateFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   fulfillment.Patch

	guard guard.ConstructorGuard
}

// NewUpdateFulfillmentCommand creates a command to edit an order's
// fulfillment state. Requires a valid order ID and a non-empty patch.
func NewUpdateFulfillmentCommand(
	orderID kernel.UUID,
	patch fulfillment.Patch,
) (UpdateFulfillmentCommand, error) {
	updateCommand := UpdateFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setPatch(patch),
	); err != nil {
		return UpdateFulfillmentCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFulfillmentCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order being edited.
func (c UpdateFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Patch returns the raw edit to apply.
func (c UpdateFulfillmentCommand) Patch() fulfillment.Patch {
	return c.patch
}

func (c *UpdateFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateFulfillmentCommand) setPatch(patch fulfillment.Patch) error {
	if patch.IsEmpty() {
		return ErrPatchIsEmpty
	}

	c.patch = patch
	return nil
}
