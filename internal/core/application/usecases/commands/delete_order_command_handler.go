package commands

import (
	"context"

	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/core/domain/services"
)

// DeleteOrderCommandHandler withdraws orders. Removing a pending order releases
// its offer and sends the visitor back to contacted; removing a canceled order
// touches nothing else. Confirmed and completed orders cannot be removed.
type DeleteOrderCommandHandler struct {
	uowFactory  SaleUoWFactory
	retry       RetryPolicy
	coordinator services.SaleCoordinator
}

func NewDeleteOrderCommandHandler(uowFactory SaleUoWFactory, retry RetryPolicy) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory:  uowFactory,
		retry:       retry,
		coordinator: services.NewSaleCoordinator(),
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow SaleUoW) error {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.ValidateWithdraw(); err != nil {
			return err
		}

		var (
			off *offer.Offer
			v   *visitor.Visitor
		)
		if o.HoldsOffer() {
			if off, v, err = loadParties(ctx, uow, o, true); err != nil {
				return err
			}
		}

		changed, err := h.coordinator.Withdraw(o, off, v)
		if err != nil {
			return err
		}

		if changed {
			if err = saveParties(ctx, uow, off, v); err != nil {
				return err
			}
		}

		return orderRepo.Delete(ctx, o)
	})
}
