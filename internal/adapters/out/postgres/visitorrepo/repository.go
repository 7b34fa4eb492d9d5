package visitorrepo

import (
	"context"
	"errors"

	"dealership/internal/adapters/out/postgres/pgerr"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVisitorRepository implements ports.VisitorRepository using GORM.
type GormVisitorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormVisitorRepository(db *gorm.DB, tracker aggregateTracker) *GormVisitorRepository {
	return &GormVisitorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the visitor and its interests. An interest pointing at an unknown
// offer is reported as not found.
func (r *GormVisitorRepository) Add(ctx context.Context, aggregate *visitor.Visitor) error {
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

// Update rewrites the visitor row and replaces its interests.
// Use it inside a transaction so the interest swap is atomic.
func (r *GormVisitorRepository) Update(ctx context.Context, aggregate *visitor.Visitor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&VisitorDTO{}).Where("id = ?", dto.ID).Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("visitor", aggregate.ID().String())
	}

	if err := db.Where("visitor_id = ?", dto.ID).Delete(&InterestDTO{}).Error; err != nil {
		return pgerr.Translate(err)
	}

	if len(dto.Interests) > 0 {
		if err := db.Create(&dto.Interests).Error; err != nil {
			return translateWriteError(err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVisitorRepository) Get(ctx context.Context, id kernel.UUID) (*visitor.Visitor, error) {
	return r.get(ctx, id, false)
}

func (r *GormVisitorRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*visitor.Visitor, error) {
	return r.get(ctx, id, true)
}

// Delete removes the visitor. Interests cascade, orders keep their row with visitor_id set to NULL.
func (r *GormVisitorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VisitorDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("visitor", id.String())
	}

	return nil
}

func (r *GormVisitorRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*visitor.Visitor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto VisitorDTO
	err := query.
		Preload("Interests", func(db *gorm.DB) *gorm.DB {
			return db.Order("priority, offer_id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("visitor", id.String())
		}
		return nil, pgerr.Translate(err)
	}

	return toDomain(dto)
}

func translateWriteError(err error) error {
	if pgerr.IsForeignKeyViolation(err) {
		return errs.NewObjectNotFoundErrorWithCause("offer", "interest", err)
	}
	return pgerr.Translate(err)
}
