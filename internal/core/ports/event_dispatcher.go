package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
)

// EventDispatcher publishes domain events of a committed unit of work.
// The transaction is already durable when Dispatch runs, so implementations
// handle their own failures instead of returning them.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events ...kernel.DomainEvent)
}
