package commands

import (
	"context"

	"dealership/internal/core/domain/services"
)

// CompleteOrderCommandHandler completes confirmed orders: the offer is sold and
// the visitor converted in the same transaction.
type CompleteOrderCommandHandler struct {
	uowFactory  SaleUoWFactory
	retry       RetryPolicy
	coordinator services.SaleCoordinator
}

func NewCompleteOrderCommandHandler(uowFactory SaleUoWFactory, retry RetryPolicy) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory:  uowFactory,
		retry:       retry,
		coordinator: services.NewSaleCoordinator(),
	}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (OrderDetails, error) {
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

		off, v, err := loadParties(ctx, uow, o, true)
		if err != nil {
			return err
		}

		if err = h.coordinator.Complete(o, off, v); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		if err = saveParties(ctx, uow, off, v); err != nil {
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
