package commands

import (
	"context"
)

// UpdateOrderCommandHandler applies patches to pending and confirmed orders.
// Completed and canceled orders are rejected with a precondition error.
type UpdateOrderCommandHandler struct {
	uowFactory SaleUoWFactory
	retry      RetryPolicy
}

func NewUpdateOrderCommandHandler(uowFactory SaleUoWFactory, retry RetryPolicy) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		retry:      retry,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return OrderDetails{}, err
	}

	var details OrderDetails
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow SaleUoW) error {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.Update(cmd.Patch()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		off, v, err := loadParties(ctx, uow, o, false)
		if err != nil {
			return err
		}

		details = OrderDetails{Order: o, Offer: off, Visitor: v}
		return nil
	})
	if err != nil {
		return OrderDetails{}, err
	}

	return details, nil
}
