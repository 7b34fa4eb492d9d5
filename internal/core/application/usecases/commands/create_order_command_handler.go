package commands

import (
	"context"
	"strings"

	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. The offer row is locked for the whole
// transaction, so of two concurrent orders on the same offer only the first
// reserves it; the second sees it reserved and fails with a conflict.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, DefaultRetryPolicy())
//	details, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // offer already reserved or sold
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown offer, visitor or client
//	}
type CreateOrderCommandHandler struct {
	uowFactory  SaleUoWFactory
	retry       RetryPolicy
	coordinator services.SaleCoordinator
}

func NewCreateOrderCommandHandler(uowFactory SaleUoWFactory, retry RetryPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		retry:       retry,
		coordinator: services.NewSaleCoordinator(),
	}
}

// Handle inserts the pending order, reserves the offer and marks the visitor
// interested in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return OrderDetails{}, err
	}

	var details OrderDetails
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow SaleUoW) error {
		orderRepo := uow.OrderRepository()
		offerRepo := uow.OfferRepository()
		visitorRepo := uow.VisitorRepository()
		clientRepo := uow.ClientRepository()

		draft := cmd.Draft()

		var (
			off *offer.Offer
			v   *visitor.Visitor
			c   *client.Client
			err error
		)

		if draft.OfferID != nil {
			if off, err = offerRepo.GetForUpdate(ctx, *draft.OfferID); err != nil {
				return err
			}
		}

		if draft.VisitorID != nil {
			if v, err = visitorRepo.GetForUpdate(ctx, *draft.VisitorID); err != nil {
				return err
			}
		}

		if draft.ClientID != nil {
			if c, err = clientRepo.Get(ctx, *draft.ClientID); err != nil {
				return err
			}
		}

		draft.ClientName, draft.ClientPhone = resolveContact(draft, c, v)

		o, err := h.coordinator.Place(cmd.OrderID(), draft, off, v)
		if err != nil {
			return err
		}

		if off != nil {
			if err = offerRepo.Update(ctx, off); err != nil {
				return err
			}
		}

		if v != nil {
			if err = visitorRepo.Update(ctx, v); err != nil {
				return err
			}
		}

		if err = orderRepo.Add(ctx, o); err != nil {
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

// resolveContact fills a missing client name or phone from the client, then from the visitor.
func resolveContact(draft order.Draft, c *client.Client, v *visitor.Visitor) (string, string) {
	name, phone := strings.TrimSpace(draft.ClientName), strings.TrimSpace(draft.ClientPhone)

	if c != nil {
		name, phone = firstNonEmpty(name, c.Name()), firstNonEmpty(phone, c.Phone())
	}
	if v != nil {
		name, phone = firstNonEmpty(name, v.Name()), firstNonEmpty(phone, v.Phone())
	}

	return name, phone
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
