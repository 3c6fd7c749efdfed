package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
)

// GetStatusCatalogQueryHandler serves the status catalog read model.
// The catalog is a fixed domain table, so this handler needs no database.
type GetStatusCatalogQueryHandler struct{}

// NewGetStatusCatalogQueryHandler creates a handler for catalog queries.
func NewGetStatusCatalogQueryHandler() GetStatusCatalogQueryHandler {
	return GetStatusCatalogQueryHandler{}
}

// Handle executes the query, returning the catalog in pipeline order.
func (h GetStatusCatalogQueryHandler) Handle(
	_ context.Context,
	query GetStatusCatalogQuery,
) ([]StatusCatalogEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var infos []fulfillment.StatusInfo
	if area := query.Area(); area != nil {
		infos = fulfillment.StatusesForArea(*area)
	} else {
		infos = fulfillment.AllStatuses()
	}

	entries := make([]StatusCatalogEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, StatusCatalogEntry{
			Status: info.Status.String(),
			Label:  info.Label,
			Color:  info.Color,
		})
	}

	return entries, nil
}
