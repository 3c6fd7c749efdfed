// Package services contains stateless domain services implementing business
// logic that spans value objects: the fulfillment update orchestrator, which
// merges an admin edit with the current order metadata and validates the
// result as a single atomic candidate.
package services
