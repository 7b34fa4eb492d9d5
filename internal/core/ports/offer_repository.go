package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
)

type OfferRepository interface {
	Add(ctx context.Context, aggregate *offer.Offer) error
	Update(ctx context.Context, aggregate *offer.Offer) error
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetForUpdate locks the offer row. Two transactions placing orders on the
	// same offer serialize here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
