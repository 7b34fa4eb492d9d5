package services

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"
)

var (
	ErrOfferMismatch   = errors.New("offer does not match the order")
	ErrVisitorMismatch = errors.New("visitor does not match the order")
)

// SaleCoordinator keeps offers and visitors in step with the orders that reference them.
//
// Side effects per event:
//
//	event     order       offer       visitor
//	place     pending     reserved    interested
//	confirm   confirmed   -           -
//	complete  completed   sold        converted
//	cancel    canceled    available   lost
//	withdraw  (removed)   available   contacted   (pending orders only)
//
// The offer and visitor arguments may be nil only when the order does not reference one.
type SaleCoordinator struct{}

func NewSaleCoordinator() SaleCoordinator {
	return SaleCoordinator{}
}

// Place builds a pending order from draft and reserves its offer.
// The offer must be available: sold and reserved offers are reported as conflicts.
func (s SaleCoordinator) Place(
	id kernel.UUID,
	draft order.Draft,
	off *offer.Offer,
	v *visitor.Visitor,
) (*order.Order, error) {
	o, err := order.NewOrder(id, draft)
	if err != nil {
		return nil, err
	}

	if err = s.match(o, off, v); err != nil {
		return nil, err
	}

	if off != nil {
		if err = off.Reserve(); err != nil {
			return nil, err
		}
	}

	if v != nil {
		v.MarkInterested()
	}

	return o, nil
}

func (s SaleCoordinator) Confirm(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Confirm()
}

func (s SaleCoordinator) Complete(o *order.Order, off *offer.Offer, v *visitor.Visitor) error {
	if err := s.prepare(o, off, v); err != nil {
		return err
	}

	if err := o.Complete(); err != nil {
		return err
	}

	if off != nil {
		if err := off.Sell(); err != nil {
			return err
		}
	}

	if v != nil {
		v.MarkConverted()
	}

	return nil
}

func (s SaleCoordinator) Cancel(o *order.Order, off *offer.Offer, v *visitor.Visitor) error {
	if err := s.prepare(o, off, v); err != nil {
		return err
	}

	if err := o.Cancel(); err != nil {
		return err
	}

	if off != nil {
		if err := off.Release(); err != nil {
			return err
		}
	}

	if v != nil {
		v.MarkLost()
	}

	return nil
}

// Withdraw checks that the order may be removed and, when it still holds its
// offer, releases the offer and sends the visitor back to contacted. The order
// records a WithdrawnEvent.
// It reports whether offer and visitor were changed.
func (s SaleCoordinator) Withdraw(o *order.Order, off *offer.Offer, v *visitor.Visitor) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if err := o.ValidateWithdraw(); err != nil {
		return false, err
	}

	if !o.HoldsOffer() {
		return false, o.Withdraw()
	}

	if err := s.match(o, off, v); err != nil {
		return false, err
	}

	if off != nil {
		if err := off.Release(); err != nil {
			return false, err
		}
	}

	if v != nil {
		v.MarkContacted()
	}

	return true, o.Withdraw()
}

func (s SaleCoordinator) prepare(o *order.Order, off *offer.Offer, v *visitor.Visitor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return s.match(o, off, v)
}

func (s SaleCoordinator) match(o *order.Order, off *offer.Offer, v *visitor.Visitor) error {
	if err := matchID(o.OfferID(), off, ErrOfferMismatch); err != nil {
		return err
	}
	return matchID(o.VisitorID(), v, ErrVisitorMismatch)
}

type identified interface {
	comparable
	ID() kernel.UUID
	Validate() error
}

func matchID[T identified](want *kernel.UUID, got T, mismatch error) error {
	var zero T
	switch {
	case want == nil && got == zero:
		return nil
	case want == nil || got == zero:
		return mismatch
	}
	if err := got.Validate(); err != nil {
		return err
	}
	if !got.ID().IsEqual(*want) {
		return mismatch
	}
	return nil
}
