package queries

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetVisitorQueryIsNotConstructed = errors.New(
		"GetVisitorQuery must be created via NewGetVisitorQuery constructor",
	)
	ErrListVisitorsQueryIsNotConstructed = errors.New(
		"ListVisitorsQuery must be created via NewListVisitorsQuery constructor",
	)
)

const visitorColumns = "id, name, phone, car_brand, car_model, budget, status, created_at, updated_at"

type GetVisitorQuery struct {
	visitorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVisitorQuery(visitorID kernel.UUID) (GetVisitorQuery, error) {
	if err := visitorID.Validate(); err != nil {
		return GetVisitorQuery{}, err
	}
	return GetVisitorQuery{visitorID: visitorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVisitorQuery) Validate() error {
	return q.guard.Validate(ErrGetVisitorQueryIsNotConstructed)
}

type ListVisitorsQuery struct {
	status visitor.Status

	guard guard.ConstructorGuard
}

// NewListVisitorsQuery lists visitors in status, or all visitors when status is empty.
func NewListVisitorsQuery(status visitor.Status) (ListVisitorsQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return ListVisitorsQuery{}, err
		}
	}
	return ListVisitorsQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVisitorsQuery) Validate() error {
	return q.guard.Validate(ErrListVisitorsQueryIsNotConstructed)
}

// visitorReader loads visitor rows and attaches their interests, highest priority first.
type visitorReader struct {
	db *gorm.DB
}

func (r visitorReader) read(ctx context.Context, rows []visitorRow) ([]VisitorView, error) {
	if len(rows) == 0 {
		return []VisitorView{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID.String())
	}

	var interests []interestRow
	err := r.db.WithContext(ctx).
		Table("visitor_interests").
		Select("visitor_id, offer_id, priority").
		Where("visitor_id IN ?", ids).
		Order("priority, offer_id").
		Scan(&interests).Error
	if err != nil {
		return nil, err
	}

	byVisitor := make(map[uuid.UUID][]interestRow, len(rows))
	for _, i := range interests {
		byVisitor[i.VisitorID] = append(byVisitor[i.VisitorID], i)
	}

	visitors := make([]VisitorView, 0, len(rows))
	for _, row := range rows {
		v, viewErr := row.view(byVisitor[row.ID])
		if viewErr != nil {
			return nil, viewErr
		}
		visitors = append(visitors, v)
	}

	return visitors, nil
}

type GetVisitorQueryHandler struct {
	reader visitorReader
}

func NewGetVisitorQueryHandler(db *gorm.DB) GetVisitorQueryHandler {
	return GetVisitorQueryHandler{reader: visitorReader{db: db}}
}

func (h GetVisitorQueryHandler) Handle(ctx context.Context, query GetVisitorQuery) (VisitorView, error) {
	if err := query.Validate(); err != nil {
		return VisitorView{}, err
	}

	var rows []visitorRow
	err := h.reader.db.WithContext(ctx).
		Raw("SELECT "+visitorColumns+" FROM visitors WHERE id = ?", query.visitorID.Bytes()).
		Scan(&rows).Error
	if err != nil {
		return VisitorView{}, err
	}
	if len(rows) == 0 {
		return VisitorView{}, errs.NewObjectNotFoundError("visitor", query.visitorID.String())
	}

	visitors, err := h.reader.read(ctx, rows)
	if err != nil {
		return VisitorView{}, err
	}
	return visitors[0], nil
}

type ListVisitorsQueryHandler struct {
	reader visitorReader
}

func NewListVisitorsQueryHandler(db *gorm.DB) ListVisitorsQueryHandler {
	return ListVisitorsQueryHandler{reader: visitorReader{db: db}}
}

func (h ListVisitorsQueryHandler) Handle(ctx context.Context, query ListVisitorsQuery) ([]VisitorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.reader.db.WithContext(ctx).Table("visitors").Select(visitorColumns)
	if query.status != "" {
		tx = tx.Where("status = ?", query.status.String())
	}

	var rows []visitorRow
	if err := tx.Order("created_at DESC, id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return h.reader.read(ctx, rows)
}
