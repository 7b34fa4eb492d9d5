package visitor

import (
	"errors"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrVisitorIsNotConstructed = errors.New("Visitor must be created via NewVisitor or RestoreVisitor")

// Profile holds what a visitor told the dealership about themselves.
type Profile struct {
	Name     string
	Phone    string
	CarBrand string
	CarModel string
	Budget   kernel.Money
}

// Visitor is a prospective buyer. Its status follows the outcome of the last
// order it took part in: interested while an order is open, converted when the
// order completes, lost when it is canceled and contacted when it is withdrawn.
type Visitor struct {
	id        kernel.UUID
	profile   Profile
	status    Status
	interests []Interest
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewVisitor registers a visitor with status new. Interests must reference
// distinct offers with priorities between 1 and 5.
//
// Example:
//
//	interest, _ := visitor.NewInterest(offerID, 1)
//	v, err := visitor.NewVisitor(kernel.NewUUID(), visitor.Profile{
//	    Name: "A", Phone: "0555", CarBrand: "Renault",
//	}, []visitor.Interest{interest})
func NewVisitor(id kernel.UUID, profile Profile, interests []Interest) (*Visitor, error) {
	now := time.Now().UTC()
	v := &Visitor{
		status:    New,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setProfile(profile),
		v.setInterests(interests),
	); err != nil {
		return nil, err
	}

	return v, nil
}

func RestoreVisitor(
	id kernel.UUID,
	profile Profile,
	status Status,
	interests []Interest,
	createdAt, updatedAt time.Time,
) (*Visitor, error) {
	v := &Visitor{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setProfile(profile),
		v.setStatus(status),
		v.setInterests(interests),
	); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Visitor) Validate() error {
	if v == nil {
		return ErrVisitorIsNotConstructed
	}
	return v.guard.Validate(ErrVisitorIsNotConstructed)
}

func (v *Visitor) IsEqual(other *Visitor) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Visitor) ID() kernel.UUID      { return v.id }
func (v *Visitor) Profile() Profile     { return v.profile }
func (v *Visitor) Name() string         { return v.profile.Name }
func (v *Visitor) Phone() string        { return v.profile.Phone }
func (v *Visitor) Status() Status       { return v.status }
func (v *Visitor) CreatedAt() time.Time { return v.createdAt }
func (v *Visitor) UpdatedAt() time.Time { return v.updatedAt }

func (v *Visitor) Interests() []Interest {
	return append([]Interest(nil), v.interests...)
}

// The Mark methods are driven by the order workflow and never fail.
func (v *Visitor) MarkContacted()  { v.moveTo(Contacted) }
func (v *Visitor) MarkInterested() { v.moveTo(Interested) }
func (v *Visitor) MarkConverted()  { v.moveTo(Converted) }
func (v *Visitor) MarkLost()       { v.moveTo(Lost) }

// ChangeStatus is the admin update. Any valid status is accepted.
func (v *Visitor) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.moveTo(status)
	return nil
}

func (v *Visitor) moveTo(status Status) {
	v.status = status
	v.updatedAt = time.Now().UTC()
}

func (v *Visitor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Visitor) setProfile(profile Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.profile = profile
	return nil
}

func (v *Visitor) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Visitor) setInterests(interests []Interest) error {
	if err := validateInterests(interests); err != nil {
		return err
	}
	v.interests = append([]Interest(nil), interests...)
	return nil
}
