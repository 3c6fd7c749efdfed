package fulfillment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the canonical fulfillment state of an order.
// It implements a forward-only state machine; multiple historical naming
// schemes (English and Indonesian, inconsistently cased) normalize onto
// this single closed set via NormalizeStatus.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// AwaitingProcessing is the initial status after payment: the order
	// has entered fulfillment but has not been packed yet.
	AwaitingProcessing

	// Packed indicates the order has been packaged and is waiting for a
	// shipping or pickup decision.
	Packed

	// ReadyToShip indicates the package is staged for courier handover.
	ReadyToShip

	// ReadyForPickup indicates the package is staged for customer pickup.
	// Intra-city only; inter-city fulfillment skips this state.
	ReadyForPickup

	// InTransit indicates the package has left the store.
	InTransit

	// Received indicates delivery or pickup has been confirmed.
	// This is a terminal state with no further transitions allowed.
	Received
)

// getStatusStrings returns the persisted canonical token for every Status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		AwaitingProcessing: "awaiting_processing",
		Packed:             "packed",
		ReadyToShip:        "ready_to_ship",
		ReadyForPickup:     "ready_for_pickup",
		InTransit:          "in_transit",
		Received:           "received",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingProcessing: "awaiting_processing",
		Packed:             "packed",
		ReadyToShip:        "ready_to_ship",
		ReadyForPickup:     "ready_for_pickup",
		InTransit:          "in_transit",
		Received:           "received",
	}
}

// statusAliases maps every known legacy spelling (lower-cased, trimmed) to
// its canonical Status. Keys cover both historical admin-panel labels and
// canonical tokens themselves, so normalization is idempotent.
func statusAliases() map[string]Status {
	return map[string]Status{
		"received":         Received,
		"delivered":        Received,
		"sudah di terima":  Received,
		"diterima":         Received,
		"in transit":       InTransit,
		"in_transit":       InTransit,
		"sedang dikirim":   InTransit,
		"dikirim":          InTransit,
		"dalam pengiriman": InTransit,
		"ready to ship":    ReadyToShip,
		"ready_to_ship":    ReadyToShip,
		"siap dikirim":     ReadyToShip,
		"siap kirim":       ReadyToShip,
		"ready for pickup": ReadyForPickup,
		"ready_for_pickup": ReadyForPickup,
		"siap diambil":     ReadyForPickup,
		"siap ambil":       ReadyForPickup,
		"siap di ambil":    ReadyForPickup,
		"packed":           Packed,
		"dikemas":          Packed,
		"diproses":         Packed,
	}
}

// NormalizeStatus maps an arbitrary raw status string onto the canonical
// status set. Matching is case-insensitive and ignores surrounding
// whitespace. The function is total: any string that matches no known
// alias, including the empty string, normalizes to AwaitingProcessing.
func NormalizeStatus(raw string) Status {
	key := strings.ToLower(strings.TrimSpace(raw))
	if status, ok := statusAliases()[key]; ok {
		return status
	}
	return AwaitingProcessing
}

// Validate checks if the Status value is a member of the canonical set.
// StatusUnknown (0) and out-of-range values are invalid. Used to ensure
// Status values restored from external sources are canonical before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical snake_case token for the status, e.g.
// "ready_to_ship". This token is what gets persisted and what external
// callers exchange. Returns "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Received
}

// transitionTable lists the legal "to" targets for every canonical "from"
// status. Transitions are forward-only and monotonic; Received has no
// outgoing edges.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		AwaitingProcessing: {Packed, ReadyToShip, ReadyForPickup},
		Packed:             {ReadyToShip, ReadyForPickup, InTransit},
		ReadyToShip:        {InTransit, Received},
		ReadyForPickup:     {Received},
		InTransit:          {Received},
		Received:           {},
	}
}

// CanTransitionTo reports whether moving from s to the target status is a
// legal edge of the fulfillment state machine. A same-status "transition"
// is always valid: it is an idempotent no-op update and bypasses the table.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// HasReached reports whether the status sits at or beyond the target on the
// fulfillment pipeline: either the two are equal, or some chain of legal
// transitions leads from the target to s. Evidence re-uploads use this to
// recognize a milestone the order has already passed.
func (s Status) HasReached(target Status) bool {
	if s == target {
		return true
	}

	visited := make(map[Status]bool)
	queue := []Status{target}
	for len(queue) > 0 {
		from := queue[0]
		queue = queue[1:]
		for _, to := range transitionTable()[from] {
			if to == s {
				return true
			}
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
	}
	return false
}

// Next returns the deterministic successor of the status along the main
// fulfillment path. ReadyForPickup branches directly to Received, and
// Received is terminal and idempotent (its successor is itself). Callers
// use this to suggest the expected next step to operators.
func (s Status) Next() Status {
	switch s {
	case AwaitingProcessing:
		return Packed
	case Packed:
		return ReadyToShip
	case ReadyToShip:
		return InTransit
	case ReadyForPickup:
		return Received
	case InTransit:
		return Received
	case Received:
		return Received
	default:
		return AwaitingProcessing
	}
}
