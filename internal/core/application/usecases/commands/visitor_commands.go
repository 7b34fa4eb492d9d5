package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var (
	ErrCreateVisitorCommandIsNotConstructed = errors.New(
		"CreateVisitorCommand must be created via NewCreateVisitorCommand constructor",
	)
	ErrChangeVisitorStatusCommandIsNotConstructed = errors.New(
		"ChangeVisitorStatusCommand must be created via NewChangeVisitorStatusCommand constructor",
	)
	ErrDeleteVisitorCommandIsNotConstructed = errors.New(
		"DeleteVisitorCommand must be created via NewDeleteVisitorCommand constructor",
	)
)

// CreateVisitorCommand registers a prospective buyer with the offers they asked about.
type CreateVisitorCommand struct { //nolint:recvcheck //using for validation
	visitorID kernel.UUID
	profile   visitor.Profile
	interests []visitor.Interest

	guard guard.ConstructorGuard
}

func NewCreateVisitorCommand(
	visitorID kernel.UUID,
	profile visitor.Profile,
	interests []visitor.Interest,
) (CreateVisitorCommand, error) {
	var nameErr error
	if profile.Name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(visitorID.Validate(), nameErr); err != nil {
		return CreateVisitorCommand{}, err
	}

	return CreateVisitorCommand{
		visitorID: visitorID,
		profile:   profile,
		interests: append([]visitor.Interest(nil), interests...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVisitorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVisitorCommandIsNotConstructed)
}

func (c CreateVisitorCommand) VisitorID() kernel.UUID        { return c.visitorID }
func (c CreateVisitorCommand) Profile() visitor.Profile      { return c.profile }
func (c CreateVisitorCommand) Interests() []visitor.Interest { return c.interests }

// ChangeVisitorStatusCommand is the admin update of a visitor status.
type ChangeVisitorStatusCommand struct { //nolint:recvcheck //using for validation
	visitorID kernel.UUID
	status    visitor.Status

	guard guard.ConstructorGuard
}

func NewChangeVisitorStatusCommand(visitorID kernel.UUID, status visitor.Status) (ChangeVisitorStatusCommand, error) {
	if err := errors.Join(visitorID.Validate(), status.Validate()); err != nil {
		return ChangeVisitorStatusCommand{}, err
	}

	return ChangeVisitorStatusCommand{visitorID: visitorID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeVisitorStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVisitorStatusCommandIsNotConstructed)
}

func (c ChangeVisitorStatusCommand) VisitorID() kernel.UUID { return c.visitorID }
func (c ChangeVisitorStatusCommand) Status() visitor.Status { return c.status }

type DeleteVisitorCommand struct { //nolint:recvcheck //using for validation
	visitorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteVisitorCommand(visitorID kernel.UUID) (DeleteVisitorCommand, error) {
	if err := visitorID.Validate(); err != nil {
		return DeleteVisitorCommand{}, err
	}

	return DeleteVisitorCommand{visitorID: visitorID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteVisitorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVisitorCommandIsNotConstructed)
}

func (c DeleteVisitorCommand) VisitorID() kernel.UUID { return c.visitorID }
