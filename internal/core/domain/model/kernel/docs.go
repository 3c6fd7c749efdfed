// Package kernel contains shared value objects used across domain aggregates.
// These types carry no business rules of their own; they provide validated,
// immutable building blocks (identifiers) for the fulfillment domain model.
package kernel
