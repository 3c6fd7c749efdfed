package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateOrderCommand represents a request to register a paid order entering
// fulfillment. Shipping area and order type arrive as raw form tokens and
// are parsed here, so legacy spellings are accepted at the boundary.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Budi Santoso", "dalam_kota", "pesan antar")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, log)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	shippingArea fulfillment.Area
	orderType    fulfillment.OrderType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order ID, requires a customer name, and parses the shipping
// area and order type tokens. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	shippingArea string,
	orderType string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setShippingArea(shippingArea),
		orderCommand.setOrderType(orderType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the paying customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// ShippingArea returns the parsed shipping area.
func (c CreateOrderCommand) ShippingArea() fulfillment.Area {
	return c.shippingArea
}

// OrderType returns the parsed order type.
func (c CreateOrderCommand) OrderType() fulfillment.OrderType {
	return c.orderType
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setShippingArea(shippingArea string) error {
	area, err := fulfillment.AreaFromString(shippingArea)
	if err != nil {
		return err
	}

	c.shippingArea = area
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType string) error {
	parsed, err := fulfillment.OrderTypeFromString(orderType)
	if err != nil {
		return err
	}

	c.orderType = parsed
	return nil
}
