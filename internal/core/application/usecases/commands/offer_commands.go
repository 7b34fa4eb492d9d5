package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/pkg/guard"
)

var (
	ErrCreateOfferCommandIsNotConstructed = errors.New(
		"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
	)
	ErrUpdateOfferCommandIsNotConstructed = errors.New(
		"UpdateOfferCommand must be created via NewUpdateOfferCommand constructor",
	)
	ErrChangeOfferStatusCommandIsNotConstructed = errors.New(
		"ChangeOfferStatusCommand must be created via NewChangeOfferStatusCommand constructor",
	)
	ErrDeleteOfferCommandIsNotConstructed = errors.New(
		"DeleteOfferCommand must be created via NewDeleteOfferCommand constructor",
	)
)

// CreateOfferCommand lists a new vehicle as available.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	listing offer.Listing

	guard guard.ConstructorGuard
}

func NewCreateOfferCommand(offerID kernel.UUID, listing offer.Listing) (CreateOfferCommand, error) {
	if err := errors.Join(offerID.Validate(), listing.Validate()); err != nil {
		return CreateOfferCommand{}, err
	}

	return CreateOfferCommand{offerID: offerID, listing: listing, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

func (c CreateOfferCommand) OfferID() kernel.UUID   { return c.offerID }
func (c CreateOfferCommand) Listing() offer.Listing { return c.listing }

// ListingPatch holds the descriptive offer fields to change. Nil fields are kept.
type ListingPatch struct {
	Brand      *string
	Model      *string
	Year       *int
	Km         *int
	Price      *kernel.Money
	Location   *string
	OwnerName  *string
	OwnerPhone *string
	Images     *[]string
}

// Apply returns l with the patch fields replaced.
func (p ListingPatch) Apply(l offer.Listing) offer.Listing {
	if p.Brand != nil {
		l.Brand = *p.Brand
	}
	if p.Model != nil {
		l.Model = *p.Model
	}
	if p.Year != nil {
		l.Year = *p.Year
	}
	if p.Km != nil {
		l.Km = *p.Km
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.OwnerName != nil {
		l.OwnerName = *p.OwnerName
	}
	if p.OwnerPhone != nil {
		l.OwnerPhone = *p.OwnerPhone
	}
	if p.Images != nil {
		l.Images = append([]string(nil), (*p.Images)...)
	}
	return l
}

// UpdateOfferCommand edits the listing of an unsold offer. It never changes the status.
type UpdateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	patch   ListingPatch

	guard guard.ConstructorGuard
}

func NewUpdateOfferCommand(offerID kernel.UUID, patch ListingPatch) (UpdateOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return UpdateOfferCommand{}, err
	}

	return UpdateOfferCommand{offerID: offerID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOfferCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfferCommandIsNotConstructed)
}

func (c UpdateOfferCommand) OfferID() kernel.UUID { return c.offerID }
func (c UpdateOfferCommand) Patch() ListingPatch  { return c.patch }

// ChangeOfferStatusCommand is the admin override of an offer status. It is only
// honoured while no order other than a canceled one references the offer.
type ChangeOfferStatusCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	status  offer.Status

	guard guard.ConstructorGuard
}

func NewChangeOfferStatusCommand(offerID kernel.UUID, status offer.Status) (ChangeOfferStatusCommand, error) {
	if err := errors.Join(offerID.Validate(), status.Validate()); err != nil {
		return ChangeOfferStatusCommand{}, err
	}

	return ChangeOfferStatusCommand{offerID: offerID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeOfferStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOfferStatusCommandIsNotConstructed)
}

func (c ChangeOfferStatusCommand) OfferID() kernel.UUID { return c.offerID }
func (c ChangeOfferStatusCommand) Status() offer.Status { return c.status }

type DeleteOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOfferCommand(offerID kernel.UUID) (DeleteOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return DeleteOfferCommand{}, err
	}

	return DeleteOfferCommand{offerID: offerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOfferCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOfferCommandIsNotConstructed)
}

func (c DeleteOfferCommand) OfferID() kernel.UUID { return c.offerID }
