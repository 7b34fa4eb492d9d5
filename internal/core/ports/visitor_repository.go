package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/visitor"
)

type VisitorRepository interface {
	// Add persists a new visitor together with its interests.
	Add(ctx context.Context, aggregate *visitor.Visitor) error

	// Update persists the visitor and replaces its interests.
	Update(ctx context.Context, aggregate *visitor.Visitor) error

	Get(ctx context.Context, id kernel.UUID) (*visitor.Visitor, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*visitor.Visitor, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
