// Package order contains the Order aggregate: a paid customer order moving
// through fulfillment. The aggregate owns its fulfillment metadata envelope
// and the photographic evidence attached to its milestones, and carries the
// version used for optimistic concurrency control at the persistence layer.
package order
