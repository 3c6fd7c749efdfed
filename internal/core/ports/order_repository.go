// Package ports defines the contracts between the fulfillment domain and
// infrastructure adapters. These interfaces enable dependency inversion:
// use cases depend on them, adapters implement them.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate guarded by its
	// optimistic-concurrency version. The stored row must still carry the
	// version the aggregate was loaded with; on a mismatch the update is
	// rejected with a version conflict error and the stored version wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves every order currently in the given canonical
	// fulfillment status.
	GetAllInStatus(ctx context.Context, status fulfillment.Status) ([]*order.Order, error)

	// GetStuckSince retrieves non-terminal orders whose fulfillment state
	// has not changed since the cutoff. Used by the stuck-order report job.
	GetStuckSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
