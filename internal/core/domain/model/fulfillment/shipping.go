package fulfillment

import (
	"fmt"
	"regexp"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Area distinguishes local fulfillment from third-party freight.
type Area int

const (
	// AreaUnknown represents an invalid or undefined shipping area.
	AreaUnknown Area = iota

	// IntraCity fulfillment is handled locally by store-controlled
	// couriers, ride-hailing services, or customer self-pickup.
	IntraCity

	// InterCity fulfillment is handled by third-party freight/courier
	// services with tracking numbers.
	InterCity
)

// AreaFromString parses a shipping area token ("intra_city"/"inter_city",
// with the legacy "dalam_kota"/"luar_kota" spellings accepted).
// Matching is case-insensitive and ignores surrounding whitespace.
func AreaFromString(raw string) (Area, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "intra_city", "dalam_kota", "dalam kota":
		return IntraCity, nil
	case "inter_city", "luar_kota", "luar kota":
		return InterCity, nil
	default:
		return AreaUnknown, errs.NewValueIsInvalidErrorWithCause("shipping_area",
			fmt.Errorf("%q is not a valid shipping area", raw))
	}
}

// Validate checks the Area value is a member of the valid set.
func (a Area) Validate() error {
	if a != IntraCity && a != InterCity {
		return errs.NewValueIsInvalidErrorWithCause("shipping_area",
			fmt.Errorf("%d is not a valid shipping area", a))
	}
	return nil
}

func (a Area) String() string {
	switch a {
	case IntraCity:
		return "intra_city"
	case InterCity:
		return "inter_city"
	default:
		return "unknown"
	}
}

// OrderType determines which location field applies to an order.
type OrderType int

const (
	// OrderTypeUnknown represents an invalid or undefined order type.
	OrderTypeUnknown OrderType = iota

	// Deliver orders ("Pesan Antar") are brought to the customer's
	// delivery location.
	Deliver

	// Pickup orders ("Pesan Ambil") are collected by the customer from
	// the pickup location.
	Pickup
)

// OrderTypeFromString parses an order type token ("deliver"/"pickup", with
// the legacy "pesan antar"/"pesan ambil" labels accepted).
func OrderTypeFromString(raw string) (OrderType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "deliver", "pesan antar", "pesan_antar":
		return Deliver, nil
	case "pickup", "pesan ambil", "pesan_ambil":
		return Pickup, nil
	default:
		return OrderTypeUnknown, errs.NewValueIsInvalidErrorWithCause("order_type",
			fmt.Errorf("%q is not a valid order type", raw))
	}
}

// Validate checks the OrderType value is a member of the valid set.
func (t OrderType) Validate() error {
	if t != Deliver && t != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("order_type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t OrderType) String() string {
	switch t {
	case Deliver:
		return "deliver"
	case Pickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// PickupMethod describes who moves an intra-city package.
// PickupMethodNone is a legal value: inter-city orders must not carry a
// pickup method at all.
type PickupMethod int

const (
	// PickupMethodNone means no pickup method is set. Required state for
	// inter-city orders, invalid for intra-city ones.
	PickupMethodNone PickupMethod = iota

	// PickupSelf: the customer or a store deliveryman handles the package
	// directly ("sendiri").
	PickupSelf

	// PickupCourier: a store-controlled courier delivers the package.
	PickupCourier

	// PickupRideHailing: a ride-hailing service (GoSend, GrabExpress)
	// moves the package.
	PickupRideHailing
)

// PickupMethodFromString parses a pickup method token. The empty string
// parses to PickupMethodNone.
func PickupMethodFromString(raw string) (PickupMethod, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return PickupMethodNone, nil
	case "self", "sendiri":
		return PickupSelf, nil
	case "courier", "kurir", "deliveryman":
		return PickupCourier, nil
	case "ride_hailing", "ojek", "ojek_online":
		return PickupRideHailing, nil
	default:
		return PickupMethodNone, errs.NewValueIsInvalidErrorWithCause("pickup_method",
			fmt.Errorf("%q is not a valid pickup method", raw))
	}
}

func (m PickupMethod) String() string {
	switch m {
	case PickupSelf:
		return "self"
	case PickupCourier:
		return "courier"
	case PickupRideHailing:
		return "ride_hailing"
	default:
		return ""
	}
}

// IsSet reports whether a pickup method has been chosen.
func (m PickupMethod) IsSet() bool {
	return m != PickupMethodNone
}

// CourierService identifies the freight service carrying an inter-city
// order. Intra-city orders carry free-form courier names instead and never
// parse into this set.
type CourierService int

const (
	// CourierServiceNone means no courier service is set.
	CourierServiceNone CourierService = iota

	// TIKI freight. Tracking numbers are 10-16 digits.
	TIKI

	// JNE freight. Tracking numbers are 16-20 alphanumeric characters.
	JNE

	// Travel freight (intercity travel car). Carries no tracking number.
	Travel

	// OtherService covers any other freight provider. No tracking number
	// format constraint applies.
	OtherService
)

var (
	tikiTrackingPattern = regexp.MustCompile(`^[0-9]{10,16}$`)
	jneTrackingPattern  = regexp.MustCompile(`^[A-Za-z0-9]{16,20}$`)
)

// CourierServiceFromString parses an inter-city courier service name.
// TIKI, JNE, and TRAVEL are matched case-insensitively; any other
// non-empty name is OtherService; the empty string is CourierServiceNone.
func CourierServiceFromString(raw string) CourierService {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		return CourierServiceNone
	case "TIKI":
		return TIKI
	case "JNE":
		return JNE
	case "TRAVEL":
		return Travel
	default:
		return OtherService
	}
}

func (s CourierService) String() string {
	switch s {
	case TIKI:
		return "TIKI"
	case JNE:
		return "JNE"
	case Travel:
		return "TRAVEL"
	case OtherService:
		return "other"
	default:
		return ""
	}
}

// ValidateTrackingNumber checks a candidate tracking number against the
// format constraint of the service:
//
//	TIKI   -> 10-16 digits
//	JNE    -> 16-20 alphanumeric characters
//	TRAVEL -> must be empty (travel shipments carry no tracking number)
//	other  -> no format constraint
//
// An empty tracking number is accepted for every service; for TRAVEL it is
// the only accepted value. Returns a FieldError carrying the violated
// constraint, or nil when the number is acceptable.
func (s CourierService) ValidateTrackingNumber(trackingNumber string) *FieldError {
	trackingNumber = strings.TrimSpace(trackingNumber)

	switch s {
	case TIKI:
		if trackingNumber != "" && !tikiTrackingPattern.MatchString(trackingNumber) {
			return &FieldError{Field: FieldTrackingNumber, Reason: "TIKI requires 10-16 digits"}
		}
	case JNE:
		if trackingNumber != "" && !jneTrackingPattern.MatchString(trackingNumber) {
			return &FieldError{Field: FieldTrackingNumber, Reason: "JNE requires 16-20 alphanumeric characters"}
		}
	case Travel:
		if trackingNumber != "" {
			return &FieldError{Field: FieldTrackingNumber, Reason: "TRAVEL shipments carry no tracking number"}
		}
	case CourierServiceNone, OtherService:
		// no format constraint
	}

	return nil
}
