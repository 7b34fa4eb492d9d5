package offer

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer")

// Offer is a vehicle listing.
//
// Status transitions driven by orders:
//
//	available ──Reserve──> reserved ──Sell──> sold
//	    ^                     │
//	    └───────Release───────┘
type Offer struct {
	id        kernel.UUID
	listing   Listing
	status    Status
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOffer creates an available offer.
//
// Parameters:
//   - id: offer identifier, must not be nil
//   - listing: brand, model, year, mileage and asking price, see Listing.Validate
//
// Returns:
//   - *Offer with status available
//   - error joining every invalid field otherwise
//
// Example:
//
//	off, err := offer.NewOffer(kernel.NewUUID(), offer.Listing{
//	    Brand: "Renault", Model: "Clio", Year: 2020, Km: 41000,
//	    Price: kernel.MustMoney("18500"),
//	})
func NewOffer(id kernel.UUID, listing Listing) (*Offer, error) {
	now := time.Now().UTC()
	o := &Offer{
		status:    Available,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setListing(listing),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer rebuilds an offer loaded from storage. Unlike NewOffer it takes
// the stored status and timestamps as they are.
func RestoreOffer(id kernel.UUID, listing Listing, status Status, createdAt, updatedAt time.Time) (*Offer, error) {
	o := &Offer{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setListing(listing),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Offer) ID() kernel.UUID      { return o.id }
func (o *Offer) Listing() Listing     { return o.listing.clone() }
func (o *Offer) Status() Status       { return o.status }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }
func (o *Offer) Price() kernel.Money  { return o.listing.Price }
func (o *Offer) IsAvailable() bool    { return o.status == Available }

// ValidateReserve reports why the offer cannot be taken by a new order.
func (o *Offer) ValidateReserve() error {
	switch o.status {
	case Available:
		return nil
	case Sold:
		return errs.NewConflictError("offer", "offer is already sold")
	case Reserved:
		return errs.NewConflictError("offer", "offer is already reserved")
	default:
		return o.status.Validate()
	}
}

// Reserve moves an available offer to reserved. It is called when an order is
// placed on the offer and fails with ErrConflict when the offer is reserved or sold.
//
// Example:
//
//	if err := off.Reserve(); err != nil {
//	    return err // 409 at the HTTP edge
//	}
func (o *Offer) Reserve() error {
	if err := o.ValidateReserve(); err != nil {
		return err
	}
	o.status = Reserved
	o.touch()
	return nil
}

// Sell moves a reserved offer to sold when its order completes.
// Returns ErrConflict for offers that are not reserved.
func (o *Offer) Sell() error {
	if o.status != Reserved {
		return errs.NewConflictError("offer", "offer "+o.status.String()+" cannot be sold, it is not reserved")
	}
	o.status = Sold
	o.touch()
	return nil
}

// Release returns a reserved offer to available when its order is canceled or
// withdrawn. Releasing an available offer is a no-op; a sold offer gives ErrConflict.
//
// Example:
//
//	if o.HoldsOffer() {
//	    if err := off.Release(); err != nil {
//	        return err
//	    }
//	}
func (o *Offer) Release() error {
	switch o.status {
	case Available:
		return nil
	case Reserved:
		o.status = Available
		o.touch()
		return nil
	default:
		return errs.NewConflictError("offer", "a sold offer cannot be released")
	}
}

// ChangeStatus is the admin escape hatch. The caller must ensure no active order references the offer.
func (o *Offer) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	o.touch()
	return nil
}

// UpdateListing replaces the descriptive fields of an unsold offer.
//
// Returns:
//   - nil on success
//   - ErrConflict for a sold offer
//   - the joined validation errors of an invalid listing; the offer keeps its
//     previous listing
func (o *Offer) UpdateListing(listing Listing) error {
	if o.status == Sold {
		return errs.NewConflictError("offer", "a sold offer cannot be modified")
	}
	if err := o.setListing(listing); err != nil {
		return err
	}
	o.touch()
	return nil
}

// ValidateDelete fails for offers bound to an order.
func (o *Offer) ValidateDelete() error {
	switch o.status {
	case Sold:
		return errs.NewConflictError("offer", "a sold offer cannot be deleted")
	case Reserved:
		return errs.NewConflictError("offer", "a reserved offer cannot be deleted")
	default:
		return nil
	}
}

func (o *Offer) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setListing(listing Listing) error {
	if err := listing.Validate(); err != nil {
		return err
	}
	o.listing = listing.clone()
	return nil
}

func (o *Offer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
