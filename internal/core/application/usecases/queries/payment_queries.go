package queries

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery returns the payment history of one order.
type ListPaymentsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(orderID kernel.UUID) (ListPaymentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListPaymentsQuery{}, err
	}
	return ListPaymentsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

// Handle lists payments oldest first. An unknown order is reported as not found
// rather than as an empty history.
func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var orders int64
	if err := db.Table("orders").Where("id = ?", query.orderID.Bytes()).Count(&orders).Error; err != nil {
		return nil, err
	}
	if orders == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.orderID.String())
	}

	var rows []paymentRow
	err := db.Raw(`
		SELECT id, order_id, client_id, amount, method, status, reference, note, paid_at, created_at
		FROM payments
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.orderID.Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	payments := make([]PaymentView, 0, len(rows))
	for _, row := range rows {
		v, viewErr := row.view()
		if viewErr != nil {
			return nil, viewErr
		}
		payments = append(payments, v)
	}

	return payments, nil
}
