package commands

import (
	"context"

	"dealership/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels pending and confirmed orders: the offer goes
// back to available and the visitor is marked lost in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory  SaleUoWFactory
	retry       RetryPolicy
	coordinator services.SaleCoordinator
}

func NewCancelOrderCommandHandler(uowFactory SaleUoWFactory, retry RetryPolicy) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:  uowFactory,
		retry:       retry,
		coordinator: services.NewSaleCoordinator(),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (OrderDetails, error) {
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

		if err = h.coordinator.Cancel(o, off, v); err != nil {
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
