package fulfillment

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// ErrMetadataIsNotConstructed is returned when a Metadata instance was not
// created through NewMetadata or RestoreMetadata.
var ErrMetadataIsNotConstructed = errors.New(
	"Metadata must be created via NewMetadata or RestoreMetadata constructor",
)

// Metadata is the mutable fulfillment envelope of an order: its canonical
// status plus the shipping fields the policy validates and the orchestrator
// patches. It is a value object; updates produce new instances.
//
// Construction enforces only structural invariants (canonical enum members,
// supported area/order-type pair on creation). Cross-field rules - which
// fields are required or forbidden for the current area and order type -
// are the MetadataPolicy's concern, because a candidate must be expressible
// before it is validated.
type Metadata struct {
	status           Status
	area             Area
	orderType        OrderType
	pickupMethod     PickupMethod
	courierService   string
	trackingNumber   string
	deliveryLocation string
	pickupLocation   string
	adminNote        string

	guard guard.ConstructorGuard
}

// NewMetadata creates the fulfillment envelope for a freshly paid order.
// The order starts in AwaitingProcessing. Intra-city orders default to
// PickupSelf; inter-city orders carry no pickup method. The unsupported
// inter-city pickup combination is rejected outright.
func NewMetadata(area Area, orderType OrderType) (Metadata, error) {
	if err := errors.Join(area.Validate(), orderType.Validate()); err != nil {
		return Metadata{}, err
	}

	if area == InterCity && orderType == Pickup {
		return Metadata{}, NewUnsupportedCombinationError(area, orderType)
	}

	pickupMethod := PickupMethodNone
	if area == IntraCity {
		pickupMethod = PickupSelf
	}

	return Metadata{
		status:       AwaitingProcessing,
		area:         area,
		orderType:    orderType,
		pickupMethod: pickupMethod,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreMetadata reconstructs a Metadata value from persistence or builds
// an orchestrator candidate. Only enum membership is validated; the result
// may still violate the metadata policy and must pass through
// MetadataPolicy.Validate before being persisted.
func RestoreMetadata(
	status Status,
	area Area,
	orderType OrderType,
	pickupMethod PickupMethod,
	courierService string,
	trackingNumber string,
	deliveryLocation string,
	pickupLocation string,
	adminNote string,
) (Metadata, error) {
	if err := errors.Join(status.Validate(), area.Validate(), orderType.Validate()); err != nil {
		return Metadata{}, err
	}

	return Metadata{
		status:           status,
		area:             area,
		orderType:        orderType,
		pickupMethod:     pickupMethod,
		courierService:   courierService,
		trackingNumber:   trackingNumber,
		deliveryLocation: deliveryLocation,
		pickupLocation:   pickupLocation,
		adminNote:        adminNote,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Metadata instance was properly constructed.
func (m Metadata) Validate() error {
	return m.guard.Validate(ErrMetadataIsNotConstructed)
}

// Status returns the canonical fulfillment status.
func (m Metadata) Status() Status {
	return m.status
}

// Area returns the shipping area.
func (m Metadata) Area() Area {
	return m.area
}

// OrderType returns the order type.
func (m Metadata) OrderType() OrderType {
	return m.orderType
}

// PickupMethod returns the pickup method (PickupMethodNone when unset).
func (m Metadata) PickupMethod() PickupMethod {
	return m.pickupMethod
}

// CourierService returns the courier service name ("" when unset).
// For inter-city orders this is one of the known freight services;
// intra-city orders may carry a free-form courier name.
func (m Metadata) CourierService() string {
	return m.courierService
}

// TrackingNumber returns the freight tracking number ("" when unset).
func (m Metadata) TrackingNumber() string {
	return m.trackingNumber
}

// DeliveryLocation returns the customer delivery address ("" when unset).
func (m Metadata) DeliveryLocation() string {
	return m.deliveryLocation
}

// PickupLocation returns the pickup point address ("" when unset).
func (m Metadata) PickupLocation() string {
	return m.pickupLocation
}

// AdminNote returns the free-form operator note ("" when unset).
func (m Metadata) AdminNote() string {
	return m.adminNote
}

// IsEqual reports whether two metadata values are identical field by field.
// Used to recognize idempotent no-op updates against terminal orders.
func (m Metadata) IsEqual(other Metadata) bool {
	return m.status == other.status &&
		m.area == other.area &&
		m.orderType == other.orderType &&
		m.pickupMethod == other.pickupMethod &&
		m.courierService == other.courierService &&
		m.trackingNumber == other.trackingNumber &&
		m.deliveryLocation == other.deliveryLocation &&
		m.pickupLocation == other.pickupLocation &&
		m.adminNote == other.adminNote
}
