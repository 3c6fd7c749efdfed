package http

import (
	"net/http"
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "abc"), http.StatusNotFound},
		{"evidence not found", order.ErrEvidenceNotFound, http.StatusNotFound},
		{"version conflict", errs.NewVersionConflictError("order", 3), http.StatusConflict},
		{"illegal transition", fulfillment.NewIllegalTransitionError(
			fulfillment.Received, fulfillment.Packed), http.StatusBadRequest},
		{"unsupported combination", fulfillment.NewUnsupportedCombinationError(
			fulfillment.InterCity, fulfillment.Pickup), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("customer_name"), http.StatusBadRequest},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			status, response := newErrorResponse(test.err)
			assert.Equal(t, test.expected, status)
			assert.Equal(t, test.expected, response.Code)
			assert.Equal(t, test.err.Error(), response.Message)
		})
	}
}

func TestNewErrorResponse_CarriesFieldViolations(t *testing.T) {
	err := fulfillment.NewInvalidMetadataError([]fulfillment.FieldError{
		{Field: "tracking_number", Reason: "TIKI requires 10-16 digits"},
		{Field: "delivery_location", Reason: "delivery_location is required for intra-city delivery orders"},
	})

	status, response := newErrorResponse(err)
	require.Equal(t, http.StatusBadRequest, status)
	require.Len(t, response.Fields, 2)
	assert.Equal(t, "tracking_number", response.Fields[0].Field)
	assert.Equal(t, "TIKI requires 10-16 digits", response.Fields[0].Reason)
}

func TestUpdateFulfillmentRequest_ToPatch(t *testing.T) {
	status := "dikemas"
	cleared := ""
	request := UpdateFulfillmentRequest{
		Status:         &status,
		TrackingNumber: &cleared,
	}

	patch := request.toPatch()
	require.NotNil(t, patch.Status)
	assert.Equal(t, "dikemas", *patch.Status)
	require.NotNil(t, patch.TrackingNumber)
	assert.Empty(t, *patch.TrackingNumber)
	assert.Nil(t, patch.ShippingArea)
	assert.False(t, patch.IsEmpty())
}
