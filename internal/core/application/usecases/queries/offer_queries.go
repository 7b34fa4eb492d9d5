package queries

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOfferQueryIsNotConstructed = errors.New(
		"GetOfferQuery must be created via NewGetOfferQuery constructor",
	)
	ErrListOffersQueryIsNotConstructed = errors.New(
		"ListOffersQuery must be created via NewListOffersQuery constructor",
	)
)

const offerColumns = `id, brand, model, year, km, price, location, owner_name, owner_phone,
	images, status, created_at, updated_at`

type GetOfferQuery struct {
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOfferQuery(offerID kernel.UUID) (GetOfferQuery, error) {
	if err := offerID.Validate(); err != nil {
		return GetOfferQuery{}, err
	}
	return GetOfferQuery{offerID: offerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOfferQuery) Validate() error {
	return q.guard.Validate(ErrGetOfferQueryIsNotConstructed)
}

type ListOffersQuery struct {
	status offer.Status

	guard guard.ConstructorGuard
}

// NewListOffersQuery lists offers in status, or all offers when status is empty.
func NewListOffersQuery(status offer.Status) (ListOffersQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return ListOffersQuery{}, err
		}
	}
	return ListOffersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOffersQuery) Validate() error {
	return q.guard.Validate(ErrListOffersQueryIsNotConstructed)
}

type GetOfferQueryHandler struct {
	db *gorm.DB
}

func NewGetOfferQueryHandler(db *gorm.DB) GetOfferQueryHandler {
	return GetOfferQueryHandler{db: db}
}

func (h GetOfferQueryHandler) Handle(ctx context.Context, query GetOfferQuery) (OfferView, error) {
	if err := query.Validate(); err != nil {
		return OfferView{}, err
	}

	var rows []offerRow
	err := h.db.WithContext(ctx).
		Raw("SELECT "+offerColumns+" FROM offers WHERE id = ?", query.offerID.Bytes()).
		Scan(&rows).Error
	if err != nil {
		return OfferView{}, err
	}
	if len(rows) == 0 {
		return OfferView{}, errs.NewObjectNotFoundError("offer", query.offerID.String())
	}

	return rows[0].view()
}

type ListOffersQueryHandler struct {
	db *gorm.DB
}

func NewListOffersQueryHandler(db *gorm.DB) ListOffersQueryHandler {
	return ListOffersQueryHandler{db: db}
}

// Handle returns matching offers, newest first.
func (h ListOffersQueryHandler) Handle(ctx context.Context, query ListOffersQuery) ([]OfferView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("offers").Select(offerColumns)
	if query.status != "" {
		tx = tx.Where("status = ?", query.status.String())
	}

	var rows []offerRow
	if err := tx.Order("created_at DESC, id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	offers := make([]OfferView, 0, len(rows))
	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return nil, err
		}
		offers = append(offers, v)
	}

	return offers, nil
}
