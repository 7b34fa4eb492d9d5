package queries

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ListOrdersQuery filters orders by status and type. Empty filters match everything.
type ListOrdersQuery struct {
	status    order.Status
	orderType order.Type

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status order.Status, orderType order.Type) (ListOrdersQuery, error) {
	var statusErr, typeErr error
	if status != "" {
		statusErr = status.Validate()
	}
	if orderType != "" {
		typeErr = orderType.Validate()
	}
	if err := errors.Join(statusErr, typeErr); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{status: status, orderType: orderType, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func selectOrders(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("orders AS o").
		Select(orderColumns).
		Joins("LEFT JOIN offers AS f ON f.id = o.offer_id").
		Joins("LEFT JOIN visitors AS v ON v.id = o.visitor_id")
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var rows []orderRow
	err := selectOrders(ctx, h.db).
		Where("o.id = ?", query.orderID.Bytes()).
		Scan(&rows).Error
	if err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.orderID.String())
	}

	return rows[0].view()
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns matching orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := selectOrders(ctx, h.db)
	if query.status != "" {
		tx = tx.Where("o.status = ?", query.status.String())
	}
	if query.orderType != "" {
		tx = tx.Where("o.type = ?", query.orderType.String())
	}

	var rows []orderRow
	if err := tx.Order("o.created_at DESC, o.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return nil, err
		}
		orders = append(orders, v)
	}

	return orders, nil
}
