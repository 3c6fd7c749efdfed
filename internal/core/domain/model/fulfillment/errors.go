package fulfillment

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying every failure the fulfillment engine can
// produce. Callers branch on these with errors.Is and map them to
// transport-level responses; the engine itself never logs or retries.
var (
	// ErrIllegalTransition: the requested or evidence-derived status does
	// not follow the transition table.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrTerminalState: a mutation was attempted after the order reached
	// received. No order may be "un-received" through this engine.
	ErrTerminalState = errors.New("order is in terminal state")

	// ErrInvalidMetadata: one or more required/forbidden-field violations.
	// Always reported as a batch so the operator can fix everything at once.
	ErrInvalidMetadata = errors.New("invalid fulfillment metadata")

	// ErrUnsupportedCombination: no valid field set exists for the
	// requested area/order-type pair (inter-city pickup).
	ErrUnsupportedCombination = errors.New("unsupported shipping combination")
)

// FieldError describes a single metadata field violation. Field is the
// snake_case field name as exchanged with callers; Reason is a
// machine-readable, human-presentable explanation.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IllegalTransitionError reports a disallowed status edge.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the edge.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// TerminalStateError reports a mutation attempt on a received order.
type TerminalStateError struct {
	Requested Status
}

// NewTerminalStateError creates a TerminalStateError for the requested status.
func NewTerminalStateError(requested Status) *TerminalStateError {
	return &TerminalStateError{Requested: requested}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: cannot move received order to %s", ErrTerminalState, e.Requested)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// InvalidMetadataError batches every field violation found during policy
// validation so callers can surface all problems in one pass.
type InvalidMetadataError struct {
	Fields []FieldError
}

// NewInvalidMetadataError creates an InvalidMetadataError from the
// accumulated field violations.
func NewInvalidMetadataError(fields []FieldError) *InvalidMetadataError {
	return &InvalidMetadataError{Fields: fields}
}

func (e *InvalidMetadataError) Error() string {
	reasons := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		reasons[i] = f.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidMetadata, strings.Join(reasons, "; "))
}

func (e *InvalidMetadataError) Unwrap() error {
	return ErrInvalidMetadata
}

// UnsupportedCombinationError reports an area/order-type pair for which no
// valid metadata exists. This is a configuration error, not a field error.
type UnsupportedCombinationError struct {
	Area      Area
	OrderType OrderType
}

// NewUnsupportedCombinationError creates an UnsupportedCombinationError
// for the pair.
func NewUnsupportedCombinationError(area Area, orderType OrderType) *UnsupportedCombinationError {
	return &UnsupportedCombinationError{Area: area, OrderType: orderType}
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("%s: %s + %s", ErrUnsupportedCombination, e.Area, e.OrderType)
}

func (e *UnsupportedCombinationError) Unwrap() error {
	return ErrUnsupportedCombination
}
