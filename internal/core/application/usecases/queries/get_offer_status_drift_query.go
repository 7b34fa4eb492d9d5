package queries

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOfferStatusDriftQueryIsNotConstructed = errors.New(
	"GetOfferStatusDriftQuery must be created via NewGetOfferStatusDriftQuery constructor",
)

// GetOfferStatusDriftQuery finds offers whose status disagrees with the orders
// referencing them: sold when a completed order exists, reserved when a pending
// or confirmed one exists, available otherwise.
type GetOfferStatusDriftQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOfferStatusDriftQuery() GetOfferStatusDriftQuery {
	return GetOfferStatusDriftQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOfferStatusDriftQuery) Validate() error {
	return q.guard.Validate(ErrGetOfferStatusDriftQueryIsNotConstructed)
}

type OfferStatusDrift struct {
	OfferID  kernel.UUID
	Actual   offer.Status
	Expected offer.Status
}

type GetOfferStatusDriftQueryHandler struct {
	db *gorm.DB
}

func NewGetOfferStatusDriftQueryHandler(db *gorm.DB) GetOfferStatusDriftQueryHandler {
	return GetOfferStatusDriftQueryHandler{db: db}
}

func (h GetOfferStatusDriftQueryHandler) Handle(
	ctx context.Context,
	query GetOfferStatusDriftQuery,
) ([]OfferStatusDrift, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT f.id, f.status, e.expected
		FROM offers f
		CROSS JOIN LATERAL (
			SELECT CASE
				WHEN EXISTS (
					SELECT 1 FROM orders o WHERE o.offer_id = f.id AND o.status = 'completed'
				) THEN 'sold'
				WHEN EXISTS (
					SELECT 1 FROM orders o WHERE o.offer_id = f.id AND o.status IN ('pending', 'confirmed')
				) THEN 'reserved'
				ELSE 'available'
			END AS expected
		) e
		WHERE f.status <> e.expected
		ORDER BY f.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drifts := make([]OfferStatusDrift, 0)
	for rows.Next() {
		var (
			id               uuid.UUID
			actual, expected string
		)
		if err = rows.Scan(&id, &actual, &expected); err != nil {
			return nil, err
		}
		drifts = append(drifts, OfferStatusDrift{
			OfferID:  kernel.UUIDFromGoogle(id),
			Actual:   offer.Status(actual),
			Expected: offer.Status(expected),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drifts, nil
}
