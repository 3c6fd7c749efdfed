package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetStatusCatalogQueryIsNotConstructed = errors.New(
		"GetStatusCatalogQuery must be created via NewGetStatusCatalogQuery constructor",
	)
)

// GetStatusCatalogQuery retrieves the ordered status catalog, optionally
// narrowed to the statuses applicable to one shipping area. The catalog
// backs the admin dashboard's status picker and badge rendering.
type GetStatusCatalogQuery struct {
	area *fulfillment.Area

	guard guard.ConstructorGuard
}

// NewGetStatusCatalogQuery creates a query for the full status catalog.
func NewGetStatusCatalogQuery() GetStatusCatalogQuery {
	return GetStatusCatalogQuery{guard: guard.NewConstructorGuard()}
}

// NewGetStatusCatalogQueryForArea creates a query for the statuses
// applicable to one shipping area. The area arrives as a raw token.
func NewGetStatusCatalogQueryForArea(area string) (GetStatusCatalogQuery, error) {
	parsed, err := fulfillment.AreaFromString(area)
	if err != nil {
		return GetStatusCatalogQuery{}, err
	}

	return GetStatusCatalogQuery{
		area:  &parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusCatalogQueryIsNotConstructed if validation fails.
func (q GetStatusCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusCatalogQueryIsNotConstructed)
}

// Area returns the optional area filter.
func (q GetStatusCatalogQuery) Area() *fulfillment.Area {
	return q.area
}

// StatusCatalogEntry is one row of the status catalog read model.
type StatusCatalogEntry struct {
	Status string
	Label  string
	Color  string
}
