package orderrepo

import (
	"context"
	"errors"

	"dealership/internal/adapters/out/postgres/pgerr"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. Losing the race for an offer against
// another active order surfaces as a conflict through ActiveOfferIndex.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order by ID and locks its row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

// Delete removes an order. Its payments go with it.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

// ExistsForOffer reports whether an order in one of statuses references the offer.
// No statuses means any status.
func (r *GormOrderRepository) ExistsForOffer(
	ctx context.Context,
	offerID kernel.UUID,
	statuses ...order.Status,
) (bool, error) {
	return r.exists(ctx, "offer_id", offerID, statuses)
}

// ExistsForVisitor reports whether an order in one of statuses references the visitor.
func (r *GormOrderRepository) ExistsForVisitor(
	ctx context.Context,
	visitorID kernel.UUID,
	statuses ...order.Status,
) (bool, error) {
	return r.exists(ctx, "visitor_id", visitorID, statuses)
}

func (r *GormOrderRepository) exists(
	ctx context.Context,
	column string,
	id kernel.UUID,
	statuses []order.Status,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	query := r.db.WithContext(ctx).Model(&OrderDTO{}).Where(clause.Eq{Column: clause.Column{Name: column}, Value: id.Bytes()})
	if len(statuses) > 0 {
		raw := make([]string, 0, len(statuses))
		for _, s := range statuses {
			raw = append(raw, s.String())
		}
		query = query.Where("status IN ?", raw)
	}

	var count int64
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, pgerr.Translate(err)
	}

	return count > 0, nil
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerr.Translate(err)
	}

	return toDomain(dto)
}

func translateWriteError(err error) error {
	switch {
	case pgerr.IsUniqueViolation(err, ActiveOfferIndex):
		return errs.NewConflictErrorWithCause("offer", "offer is already reserved", err)
	case pgerr.IsForeignKeyViolation(err):
		return errs.NewObjectNotFoundErrorWithCause(pgerr.Constraint(err), "reference", err)
	default:
		return pgerr.Translate(err)
	}
}
