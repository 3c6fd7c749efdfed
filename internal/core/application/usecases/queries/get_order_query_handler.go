package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its complete fulfillment
// state from the database, decorated with the status catalog attributes
// and the required-field list for the admin form.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve a single order.
// Returns an object-not-found error when no order carries the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			shipping_area,
			order_type,
			pickup_method,
			courier_service,
			tracking_number,
			delivery_location,
			pickup_location,
			admin_note,
			evidence,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	view, err := scanOrderView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, err
	}

	return view, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderView maps one orders row into the read model.
func scanOrderView(row rowScanner) (OrderView, error) {
	var (
		id           uuid.UUID
		view         OrderView
		status       int
		shippingArea int
		orderType    int
		pickupMethod int
		evidenceJSON []byte
	)

	err := row.Scan(
		&id,
		&view.CustomerName,
		&status,
		&shippingArea,
		&orderType,
		&pickupMethod,
		&view.CourierService,
		&view.TrackingNumber,
		&view.DeliveryLocation,
		&view.PickupLocation,
		&view.AdminNote,
		&evidenceJSON,
		&view.Version,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	view.ID = orderID

	canonical := fulfillment.Status(status)
	view.Status = canonical.String()
	view.StatusLabel = canonical.Label()
	view.StatusColor = canonical.Color()
	view.ShippingArea = fulfillment.Area(shippingArea).String()
	view.OrderType = fulfillment.OrderType(orderType).String()
	view.PickupMethod = fulfillment.PickupMethod(pickupMethod).String()

	view.Evidence = make(map[string]string)
	if len(evidenceJSON) > 0 {
		if err = json.Unmarshal(evidenceJSON, &view.Evidence); err != nil {
			return OrderView{}, err
		}
	}

	// Best effort: unsupported pairs persisted by legacy data simply carry
	// no required-field list.
	required, reqErr := fulfillment.NewMetadataPolicy().RequiredFields(
		fulfillment.Area(shippingArea), fulfillment.OrderType(orderType))
	if reqErr == nil {
		view.RequiredFields = required
	}

	return view, nil
}
