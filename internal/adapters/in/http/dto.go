package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderRequest is the payload for registering a new order.
type CreateOrderRequest struct {
	CustomerName string `json:"customer_name"`
	ShippingArea string `json:"shipping_area"`
	OrderType    string `json:"order_type"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UpdateFulfillmentRequest is the patch payload for an admin edit.
// Absent fields stay unchanged; empty strings clear the field.
type UpdateFulfillmentRequest struct {
	Status           *string `json:"status,omitempty"`
	ShippingArea     *string `json:"shipping_area,omitempty"`
	OrderType        *string `json:"order_type,omitempty"`
	PickupMethod     *string `json:"pickup_method,omitempty"`
	CourierService   *string `json:"courier_service,omitempty"`
	TrackingNumber   *string `json:"tracking_number,omitempty"`
	DeliveryLocation *string `json:"delivery_location,omitempty"`
	PickupLocation   *string `json:"pickup_location,omitempty"`
	AdminNote        *string `json:"admin_note,omitempty"`
}

// toPatch maps the request body onto the domain patch.
func (r UpdateFulfillmentRequest) toPatch() fulfillment.Patch {
	return fulfillment.Patch{
		Status:           r.Status,
		ShippingArea:     r.ShippingArea,
		OrderType:        r.OrderType,
		PickupMethod:     r.PickupMethod,
		CourierService:   r.CourierService,
		TrackingNumber:   r.TrackingNumber,
		DeliveryLocation: r.DeliveryLocation,
		PickupLocation:   r.PickupLocation,
		AdminNote:        r.AdminNote,
	}
}

// OrderResponse is the wire form of the order read model.
type OrderResponse struct {
	ID               string            `json:"id"`
	CustomerName     string            `json:"customer_name"`
	Status           string            `json:"status"`
	StatusLabel      string            `json:"status_label"`
	StatusColor      string            `json:"status_color"`
	ShippingArea     string            `json:"shipping_area"`
	OrderType        string            `json:"order_type"`
	PickupMethod     string            `json:"pickup_method,omitempty"`
	CourierService   string            `json:"courier_service,omitempty"`
	TrackingNumber   string            `json:"tracking_number,omitempty"`
	DeliveryLocation string            `json:"delivery_location,omitempty"`
	PickupLocation   string            `json:"pickup_location,omitempty"`
	AdminNote        string            `json:"admin_note,omitempty"`
	RequiredFields   []string          `json:"required_fields,omitempty"`
	Evidence         map[string]string `json:"evidence,omitempty"`
	Version          int               `json:"version"`
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:               view.ID.String(),
		CustomerName:     view.CustomerName,
		Status:           view.Status,
		StatusLabel:      view.StatusLabel,
		StatusColor:      view.StatusColor,
		ShippingArea:     view.ShippingArea,
		OrderType:        view.OrderType,
		PickupMethod:     view.PickupMethod,
		CourierService:   view.CourierService,
		TrackingNumber:   view.TrackingNumber,
		DeliveryLocation: view.DeliveryLocation,
		PickupLocation:   view.PickupLocation,
		AdminNote:        view.AdminNote,
		RequiredFields:   view.RequiredFields,
		Evidence:         view.Evidence,
		Version:          view.Version,
	}
}

// StatusCatalogResponse is one entry of the status catalog.
type StatusCatalogResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// FieldErrorResponse reports one metadata field violation.
type FieldErrorResponse struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Fields  []FieldErrorResponse `json:"fields,omitempty"`
}

// newErrorResponse maps a use-case error onto an HTTP status and payload.
// Fulfillment rule violations come back as 400 with every accumulated field
// error; stale-version writes as 409; unknown identifiers as 404.
func newErrorResponse(err error) (int, ErrorResponse) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, order.ErrEvidenceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, fulfillment.ErrIllegalTransition),
		errors.Is(err, fulfillment.ErrTerminalState),
		errors.Is(err, fulfillment.ErrInvalidMetadata),
		errors.Is(err, fulfillment.ErrUnsupportedCombination),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	response := ErrorResponse{
		Code:    status,
		Message: err.Error(),
	}

	var invalidErr *fulfillment.InvalidMetadataError
	if errors.As(err, &invalidErr) {
		for _, fieldErr := range invalidErr.Fields {
			response.Fields = append(response.Fields, FieldErrorResponse{
				Field:  fieldErr.Field,
				Reason: fieldErr.Reason,
			})
		}
	}

	return status, response
}
