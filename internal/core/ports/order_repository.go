package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
)

type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// A second active order for the same offer is reported as a conflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order together with its payments.
	Delete(ctx context.Context, aggregate *order.Order) error

	// ExistsForOffer reports whether an order in one of statuses references the offer.
	ExistsForOffer(ctx context.Context, offerID kernel.UUID, statuses ...order.Status) (bool, error)

	// ExistsForVisitor reports whether an order in one of statuses references the visitor.
	ExistsForVisitor(ctx context.Context, visitorID kernel.UUID, statuses ...order.Status) (bool, error)
}
