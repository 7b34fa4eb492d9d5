package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// orderTarget is the part shared by the commands that act on one existing order.
type orderTarget struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderTarget(orderID kernel.UUID) (orderTarget, error) {
	if err := orderID.Validate(); err != nil {
		return orderTarget{}, err
	}
	return orderTarget{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (t orderTarget) OrderID() kernel.UUID {
	return t.orderID
}

// ConfirmOrderCommand moves a pending order to confirmed.
type ConfirmOrderCommand struct{ orderTarget }

func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	t, err := newOrderTarget(orderID)
	return ConfirmOrderCommand{t}, err
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// CompleteOrderCommand moves a confirmed order to completed and sells its offer.
type CompleteOrderCommand struct{ orderTarget }

func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	t, err := newOrderTarget(orderID)
	return CompleteOrderCommand{t}, err
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CancelOrderCommand cancels a pending or confirmed order and releases its offer.
type CancelOrderCommand struct{ orderTarget }

func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	t, err := newOrderTarget(orderID)
	return CancelOrderCommand{t}, err
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// DeleteOrderCommand removes a pending or canceled order.
type DeleteOrderCommand struct{ orderTarget }

func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	t, err := newOrderTarget(orderID)
	return DeleteOrderCommand{t}, err
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}
