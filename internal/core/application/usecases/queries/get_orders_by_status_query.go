package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves every order in one canonical fulfillment
// status. The status arrives as a raw token and goes through the same total
// normalization as stored values, so legacy spellings filter correctly.
//
// Example:
//
//	query := NewGetOrdersByStatusQuery("Sedang Dikirim")
//	handler := NewGetOrdersByStatusQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders in transit\n", len(orders))
type GetOrdersByStatusQuery struct {
	status fulfillment.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for the given status token.
// Normalization is total: an unrecognized token filters for
// awaiting_processing, the same bucket unrecognized stored values land in.
func NewGetOrdersByStatusQuery(status string) GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{
		status: fulfillment.NormalizeStatus(status),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the canonical status to filter by.
func (q GetOrdersByStatusQuery) Status() fulfillment.Status {
	return q.status
}
