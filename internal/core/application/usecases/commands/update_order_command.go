package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand edits the terms, contact and logistics fields of an active
// order. Nil patch fields are left as they are.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.UUID, patch order.Patch) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}
