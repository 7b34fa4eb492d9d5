package commands

import (
	"context"

	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"
)

// loadParties fetches the offer and visitor referenced by o. With lock set the
// rows stay locked until the unit of work ends; callers lock the order first,
// then the offer, then the visitor.
func loadParties(
	ctx context.Context,
	uow interface {
		OfferRepoFactory
		VisitorRepoFactory
	},
	o *order.Order,
	lock bool,
) (*offer.Offer, *visitor.Visitor, error) {
	var (
		off *offer.Offer
		v   *visitor.Visitor
		err error
	)

	if id := o.OfferID(); id != nil {
		offerRepo := uow.OfferRepository()
		if lock {
			off, err = offerRepo.GetForUpdate(ctx, *id)
		} else {
			off, err = offerRepo.Get(ctx, *id)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	if id := o.VisitorID(); id != nil {
		visitorRepo := uow.VisitorRepository()
		if lock {
			v, err = visitorRepo.GetForUpdate(ctx, *id)
		} else {
			v, err = visitorRepo.Get(ctx, *id)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return off, v, nil
}

// saveParties writes back the offer and visitor changed by a workflow step.
func saveParties(
	ctx context.Context,
	uow interface {
		OfferRepoFactory
		VisitorRepoFactory
	},
	off *offer.Offer,
	v *visitor.Visitor,
) error {
	if off != nil {
		if err := uow.OfferRepository().Update(ctx, off); err != nil {
			return err
		}
	}

	if v != nil {
		if err := uow.VisitorRepository().Update(ctx, v); err != nil {
			return err
		}
	}

	return nil
}
