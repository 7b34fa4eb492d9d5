package ports

import (
	"context"

	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/kernel"
)

type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error
	Update(ctx context.Context, aggregate *client.Client) error
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetForUpdate locks the client row so concurrent ledger entries do not lose balance updates.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*client.Client, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
