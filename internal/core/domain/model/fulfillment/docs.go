// Package fulfillment contains the order fulfillment status engine: the
// canonical shipping status set with its normalization of legacy spellings,
// the status transition table, the shipping metadata value object, and the
// policy deciding which metadata fields are required, optional, or forbidden
// for a given shipping area and order type.
//
// Everything in this package is pure and side-effect-free. Persistence,
// transport, and file storage live in the adapters; the engine only
// validates and produces data.
//
// Status lifecycle:
//
//	awaiting_processing ──> packed ──> ready_to_ship ──> in_transit ──> received
//	         │                 │              │
//	         │                 └──> ready_for_pickup ────────────────────┘
//	         └─────────────────────────┘
//
// Transitions are forward-only. received is terminal: no status mutation is
// permitted once an order has been confirmed received.
package fulfillment
