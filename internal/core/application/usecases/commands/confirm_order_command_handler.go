package commands

import (
	"context"

	"dealership/internal/core/domain/services"
)

// ConfirmOrderCommandHandler confirms pending orders. The offer and visitor are
// already reserved and interested, so only the order row is written.
type ConfirmOrderCommandHandler struct {
	uowFactory  SaleUoWFactory
	retry       RetryPolicy
	coordinator services.SaleCoordinator
}

func NewConfirmOrderCommandHandler(uowFactory SaleUoWFactory, retry RetryPolicy) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory:  uowFactory,
		retry:       retry,
		coordinator: services.NewSaleCoordinator(),
	}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (OrderDetails, error) {
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

		if err = h.coordinator.Confirm(o); err != nil {
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
