package fulfillment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaFromString(t *testing.T) {
	t.Run("should parse canonical and legacy tokens", func(t *testing.T) {
		testCases := []struct {
			raw      string
			expected fulfillment.Area
		}{
			{"intra_city", fulfillment.IntraCity},
			{"dalam_kota", fulfillment.IntraCity},
			{"Dalam Kota", fulfillment.IntraCity},
			{"inter_city", fulfillment.InterCity},
			{"luar_kota", fulfillment.InterCity},
			{"LUAR KOTA", fulfillment.InterCity},
		}

		for _, tc := range testCases {
			area, err := fulfillment.AreaFromString(tc.raw)
			require.NoError(t, err, "input %q", tc.raw)
			assert.Equal(t, tc.expected, area)
		}
	})

	t.Run("should reject unknown tokens", func(t *testing.T) {
		_, err := fulfillment.AreaFromString("mars")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shipping_area")
	})
}

func TestOrderTypeFromString(t *testing.T) {
	t.Run("should parse canonical and legacy tokens", func(t *testing.T) {
		orderType, err := fulfillment.OrderTypeFromString("deliver")
		require.NoError(t, err)
		assert.Equal(t, fulfillment.Deliver, orderType)

		orderType, err = fulfillment.OrderTypeFromString("Pesan Ambil")
		require.NoError(t, err)
		assert.Equal(t, fulfillment.Pickup, orderType)
	})

	t.Run("should reject unknown tokens", func(t *testing.T) {
		_, err := fulfillment.OrderTypeFromString("dine_in")
		require.Error(t, err)
	})
}

func TestPickupMethodFromString(t *testing.T) {
	t.Run("should parse known methods", func(t *testing.T) {
		testCases := []struct {
			raw      string
			expected fulfillment.PickupMethod
		}{
			{"self", fulfillment.PickupSelf},
			{"sendiri", fulfillment.PickupSelf},
			{"courier", fulfillment.PickupCourier},
			{"deliveryman", fulfillment.PickupCourier},
			{"ride_hailing", fulfillment.PickupRideHailing},
			{"ojek_online", fulfillment.PickupRideHailing},
		}

		for _, tc := range testCases {
			method, err := fulfillment.PickupMethodFromString(tc.raw)
			require.NoError(t, err, "input %q", tc.raw)
			assert.Equal(t, tc.expected, method)
		}
	})

	t.Run("empty string means none", func(t *testing.T) {
		method, err := fulfillment.PickupMethodFromString("")
		require.NoError(t, err)
		assert.Equal(t, fulfillment.PickupMethodNone, method)
		assert.False(t, method.IsSet())
	})

	t.Run("should reject unknown methods", func(t *testing.T) {
		_, err := fulfillment.PickupMethodFromString("teleport")
		require.Error(t, err)
	})
}

func TestCourierServiceFromString(t *testing.T) {
	t.Run("should match known freight services case-insensitively", func(t *testing.T) {
		assert.Equal(t, fulfillment.TIKI, fulfillment.CourierServiceFromString("tiki"))
		assert.Equal(t, fulfillment.JNE, fulfillment.CourierServiceFromString("JNE"))
		assert.Equal(t, fulfillment.Travel, fulfillment.CourierServiceFromString(" Travel "))
	})

	t.Run("any other non-empty name is other", func(t *testing.T) {
		assert.Equal(t, fulfillment.OtherService, fulfillment.CourierServiceFromString("Pos Indonesia"))
	})

	t.Run("empty string means none", func(t *testing.T) {
		assert.Equal(t, fulfillment.CourierServiceNone, fulfillment.CourierServiceFromString(""))
	})
}

func TestCourierService_ValidateTrackingNumber(t *testing.T) {
	t.Run("TIKI accepts 10-16 digits", func(t *testing.T) {
		assert.Nil(t, fulfillment.TIKI.ValidateTrackingNumber("0123456789"))
		assert.Nil(t, fulfillment.TIKI.ValidateTrackingNumber("0123456789012345"))
	})

	t.Run("TIKI rejects short or non-digit numbers", func(t *testing.T) {
		for _, number := range []string{"12345", "12345678901234567", "ABC1234567"} {
			fieldErr := fulfillment.TIKI.ValidateTrackingNumber(number)

			require.NotNil(t, fieldErr, "number %q", number)
			assert.Equal(t, "tracking_number", fieldErr.Field)
			assert.Equal(t, "TIKI requires 10-16 digits", fieldErr.Reason)
		}
	})

	t.Run("JNE accepts 16-20 alphanumeric characters", func(t *testing.T) {
		assert.Nil(t, fulfillment.JNE.ValidateTrackingNumber("1234567890123456"))
		assert.Nil(t, fulfillment.JNE.ValidateTrackingNumber("AB12345678901234CD56"))
	})

	t.Run("JNE rejects wrong length or non-alphanumeric input", func(t *testing.T) {
		for _, number := range []string{"short", "123456789012345678901", "1234-5678-9012-3456"} {
			fieldErr := fulfillment.JNE.ValidateTrackingNumber(number)

			require.NotNil(t, fieldErr, "number %q", number)
			assert.Equal(t, "JNE requires 16-20 alphanumeric characters", fieldErr.Reason)
		}
	})

	t.Run("TRAVEL forbids tracking numbers", func(t *testing.T) {
		assert.Nil(t, fulfillment.Travel.ValidateTrackingNumber(""))

		fieldErr := fulfillment.Travel.ValidateTrackingNumber("anything")
		require.NotNil(t, fieldErr)
		assert.Equal(t, "TRAVEL shipments carry no tracking number", fieldErr.Reason)
	})

	t.Run("other services accept anything", func(t *testing.T) {
		assert.Nil(t, fulfillment.OtherService.ValidateTrackingNumber(""))
		assert.Nil(t, fulfillment.OtherService.ValidateTrackingNumber("WHATEVER-123"))
	})

	t.Run("empty number is accepted for TIKI and JNE", func(t *testing.T) {
		assert.Nil(t, fulfillment.TIKI.ValidateTrackingNumber(""))
		assert.Nil(t, fulfillment.JNE.ValidateTrackingNumber(""))
	})
}
