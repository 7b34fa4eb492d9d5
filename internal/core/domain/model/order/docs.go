// Package order provides the Order aggregate root: the sale of an offer, or of a
// custom-ordered car, to a visitor or client at an agreed price.
//
// The package includes:
//   - Order: identity, sale terms, logistics and lifecycle of a sale
//   - Status: the lifecycle state machine, driven by an explicit transition table
//   - Type and ProcessStatus: inside (stock) versus outside (imported) orders and the
//     logistics sub-state of the latter
//   - CustomCar: the vehicle descriptor of outside orders
//
// Lifecycle:
//
//	pending ──confirm──> confirmed ──complete──> completed
//	   │                    │
//	   └──────cancel────────┴──────> canceled
//
// completed and canceled are terminal: no transition and no field edit succeeds
// afterwards. Removing an order (withdraw) is a separate action allowed only for
// pending and canceled orders.
package order
