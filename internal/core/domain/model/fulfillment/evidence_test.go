package fulfillment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvidenceSlotFromString(t *testing.T) {
	t.Run("should parse all slot tokens", func(t *testing.T) {
		testCases := []struct {
			raw      string
			expected fulfillment.EvidenceSlot
		}{
			{"ready_for_pickup_photo", fulfillment.ReadyForPickupPhoto},
			{"picked_up_photo", fulfillment.PickedUpPhoto},
			{"delivered_photo", fulfillment.DeliveredPhoto},
			{"shipment_proof_photo", fulfillment.ShipmentProofPhoto},
		}

		for _, tc := range testCases {
			slot, err := fulfillment.EvidenceSlotFromString(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, slot)
			assert.Equal(t, tc.raw, slot.String())
		}
	})

	t.Run("should reject unknown slots", func(t *testing.T) {
		_, err := fulfillment.EvidenceSlotFromString("selfie")
		require.Error(t, err)
	})
}

func TestEvidenceSlot_TargetStatus(t *testing.T) {
	t.Run("staging photo forks on order type", func(t *testing.T) {
		assert.Equal(t, fulfillment.ReadyToShip,
			fulfillment.ReadyForPickupPhoto.TargetStatus(fulfillment.Deliver))
		assert.Equal(t, fulfillment.ReadyForPickup,
			fulfillment.ReadyForPickupPhoto.TargetStatus(fulfillment.Pickup))
	})

	t.Run("fixed milestone slots", func(t *testing.T) {
		assert.Equal(t, fulfillment.InTransit,
			fulfillment.PickedUpPhoto.TargetStatus(fulfillment.Deliver))
		assert.Equal(t, fulfillment.Received,
			fulfillment.DeliveredPhoto.TargetStatus(fulfillment.Deliver))
		assert.Equal(t, fulfillment.InTransit,
			fulfillment.ShipmentProofPhoto.TargetStatus(fulfillment.Deliver))
	})

	t.Run("unknown slot maps to unknown status", func(t *testing.T) {
		assert.Equal(t, fulfillment.StatusUnknown,
			fulfillment.EvidenceSlotUnknown.TargetStatus(fulfillment.Deliver))
	})
}
