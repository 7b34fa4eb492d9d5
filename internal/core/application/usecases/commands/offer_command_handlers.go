package commands

import (
	"context"

	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"
)

type CreateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	retry      RetryPolicy
}

func NewCreateOfferCommandHandler(uowFactory OfferUoWFactory, retry RetryPolicy) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) (*offer.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *offer.Offer
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow OfferUoW) error {
		o, err := offer.NewOffer(cmd.OfferID(), cmd.Listing())
		if err != nil {
			return err
		}

		if err = uow.OfferRepository().Add(ctx, o); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

type UpdateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	retry      RetryPolicy
}

func NewUpdateOfferCommandHandler(uowFactory OfferUoWFactory, retry RetryPolicy) UpdateOfferCommandHandler {
	return UpdateOfferCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h UpdateOfferCommandHandler) Handle(ctx context.Context, cmd UpdateOfferCommand) (*offer.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *offer.Offer
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow OfferUoW) error {
		offerRepo := uow.OfferRepository()

		o, err := offerRepo.GetForUpdate(ctx, cmd.OfferID())
		if err != nil {
			return err
		}

		if err = o.UpdateListing(cmd.Patch().Apply(o.Listing())); err != nil {
			return err
		}

		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ChangeOfferStatusCommandHandler applies admin status overrides. An offer that
// a pending, confirmed or completed order points at keeps the status the order
// workflow gave it.
type ChangeOfferStatusCommandHandler struct {
	uowFactory OfferUoWFactory
	retry      RetryPolicy
}

func NewChangeOfferStatusCommandHandler(
	uowFactory OfferUoWFactory,
	retry RetryPolicy,
) ChangeOfferStatusCommandHandler {
	return ChangeOfferStatusCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h ChangeOfferStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOfferStatusCommand) (*offer.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *offer.Offer
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow OfferUoW) error {
		offerRepo := uow.OfferRepository()

		o, err := offerRepo.GetForUpdate(ctx, cmd.OfferID())
		if err != nil {
			return err
		}

		referenced, err := uow.OrderRepository().ExistsForOffer(ctx, o.ID(),
			order.Pending, order.Confirmed, order.Completed)
		if err != nil {
			return err
		}
		if referenced {
			return errs.NewConflictError("offer", "offer status is managed by its order")
		}

		if err = o.ChangeStatus(cmd.Status()); err != nil {
			return err
		}

		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteOfferCommandHandler removes offers that are neither reserved nor sold.
type DeleteOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	retry      RetryPolicy
}

func NewDeleteOfferCommandHandler(uowFactory OfferUoWFactory, retry RetryPolicy) DeleteOfferCommandHandler {
	return DeleteOfferCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h DeleteOfferCommandHandler) Handle(ctx context.Context, cmd DeleteOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow OfferUoW) error {
		offerRepo := uow.OfferRepository()

		o, err := offerRepo.GetForUpdate(ctx, cmd.OfferID())
		if err != nil {
			return err
		}

		if err = o.ValidateDelete(); err != nil {
			return err
		}

		return offerRepo.Delete(ctx, o.ID())
	})
}
