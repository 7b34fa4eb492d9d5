// Package services provides domain services that coordinate several aggregates.
//
// The package includes:
//   - SaleCoordinator: applies an order lifecycle event and fans its side effects
//     out to the linked offer and visitor
//
// The coordinator works purely in memory; the caller loads the aggregates inside
// one unit of work and persists all of them or none.
package services
