// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Fulfillment enums are stored as their integer values; the free-form
// metadata fields as text; the evidence slot map as a jsonb document keyed
// by slot token. Version backs the optimistic-concurrency guard on updates.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName     string
	Status           int `gorm:"index"`
	ShippingArea     int
	OrderType        int
	PickupMethod     int
	CourierService   string
	TrackingNumber   string
	DeliveryLocation string
	PickupLocation   string
	AdminNote        string
	Evidence         []byte `gorm:"type:jsonb"`
	Version          int
	UpdatedAt        time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	metadata := aggregate.Metadata()

	evidence := make(map[string]string)
	for slot, ref := range aggregate.EvidenceRefs() {
		evidence[slot.String()] = ref
	}
	evidenceJSON, err := json.Marshal(evidence)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerName:     aggregate.CustomerName(),
		Status:           int(metadata.Status()),
		ShippingArea:     int(metadata.Area()),
		OrderType:        int(metadata.OrderType()),
		PickupMethod:     int(metadata.PickupMethod()),
		CourierService:   metadata.CourierService(),
		TrackingNumber:   metadata.TrackingNumber(),
		DeliveryLocation: metadata.DeliveryLocation(),
		PickupLocation:   metadata.PickupLocation(),
		AdminNote:        metadata.AdminNote(),
		Evidence:         evidenceJSON,
		Version:          aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including metadata and evidence slots
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	metadata, err := fulfillment.RestoreMetadata(
		fulfillment.Status(dto.Status),
		fulfillment.Area(dto.ShippingArea),
		fulfillment.OrderType(dto.OrderType),
		fulfillment.PickupMethod(dto.PickupMethod),
		dto.CourierService,
		dto.TrackingNumber,
		dto.DeliveryLocation,
		dto.PickupLocation,
		dto.AdminNote,
	)
	if err != nil {
		return nil, err
	}

	evidence := make(map[fulfillment.EvidenceSlot]string)
	if len(dto.Evidence) > 0 {
		var raw map[string]string
		if err = json.Unmarshal(dto.Evidence, &raw); err != nil {
			return nil, err
		}
		for token, ref := range raw {
			slot, slotErr := fulfillment.EvidenceSlotFromString(token)
			if slotErr != nil {
				return nil, slotErr
			}
			evidence[slot] = ref
		}
	}

	return order.RestoreOrder(id, dto.CustomerName, metadata, evidence, dto.Version)
}
