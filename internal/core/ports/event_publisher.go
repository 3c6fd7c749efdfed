package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream consumers about fulfillment
// changes. Publishing happens after the transaction commits; a failed
// publish is logged and never rolls back the state change.
type OrderEventPublisher interface {
	// PublishFulfillmentChanged emits an event describing the order's new
	// fulfillment state.
	PublishFulfillmentChanged(ctx context.Context, aggregate *order.Order) error
}
