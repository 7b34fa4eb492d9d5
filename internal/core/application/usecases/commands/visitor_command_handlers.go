package commands

import (
	"context"

	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/pkg/errs"
)

// CreateVisitorCommandHandler stores new visitors. An interest in an unknown
// offer fails the whole command with a not-found error.
type CreateVisitorCommandHandler struct {
	uowFactory VisitorUoWFactory
	retry      RetryPolicy
}

func NewCreateVisitorCommandHandler(uowFactory VisitorUoWFactory, retry RetryPolicy) CreateVisitorCommandHandler {
	return CreateVisitorCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h CreateVisitorCommandHandler) Handle(ctx context.Context, cmd CreateVisitorCommand) (*visitor.Visitor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *visitor.Visitor
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow VisitorUoW) error {
		v, err := visitor.NewVisitor(cmd.VisitorID(), cmd.Profile(), cmd.Interests())
		if err != nil {
			return err
		}

		if err = uow.VisitorRepository().Add(ctx, v); err != nil {
			return err
		}

		created = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ChangeVisitorStatusCommandHandler is the manual status override. Visitors
// referenced by a pending or confirmed order follow the workflow only.
type ChangeVisitorStatusCommandHandler struct {
	uowFactory VisitorUoWFactory
	retry      RetryPolicy
}

func NewChangeVisitorStatusCommandHandler(
	uowFactory VisitorUoWFactory,
	retry RetryPolicy,
) ChangeVisitorStatusCommandHandler {
	return ChangeVisitorStatusCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h ChangeVisitorStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeVisitorStatusCommand,
) (*visitor.Visitor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *visitor.Visitor
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow VisitorUoW) error {
		visitorRepo := uow.VisitorRepository()

		v, err := visitorRepo.GetForUpdate(ctx, cmd.VisitorID())
		if err != nil {
			return err
		}

		held, err := uow.OrderRepository().ExistsForVisitor(ctx, v.ID(), order.Pending, order.Confirmed)
		if err != nil {
			return err
		}
		if held {
			return errs.NewConflictError("visitor", "visitor status is driven by an open order")
		}

		if err = v.ChangeStatus(cmd.Status()); err != nil {
			return err
		}

		if err = visitorRepo.Update(ctx, v); err != nil {
			return err
		}

		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteVisitorCommandHandler removes visitors that take no part in an open order.
type DeleteVisitorCommandHandler struct {
	uowFactory VisitorUoWFactory
	retry      RetryPolicy
}

func NewDeleteVisitorCommandHandler(uowFactory VisitorUoWFactory, retry RetryPolicy) DeleteVisitorCommandHandler {
	return DeleteVisitorCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h DeleteVisitorCommandHandler) Handle(ctx context.Context, cmd DeleteVisitorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow VisitorUoW) error {
		visitorRepo := uow.VisitorRepository()

		v, err := visitorRepo.GetForUpdate(ctx, cmd.VisitorID())
		if err != nil {
			return err
		}

		active, err := uow.OrderRepository().ExistsForVisitor(ctx, v.ID(), order.Pending, order.Confirmed)
		if err != nil {
			return err
		}
		if active {
			return errs.NewConflictError("visitor", "visitor takes part in an open order")
		}

		return visitorRepo.Delete(ctx, v.ID())
	})
}
