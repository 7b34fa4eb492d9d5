package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order, either on a stock offer (inside) or for
// a custom car (outside).
//
// Client name and phone may be left empty when a client or visitor is given;
// the handler then copies them from the client, or failing that from the visitor.
//
// Example:
//
//	offerID, _ := kernel.UUIDFromString("8f0c...")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.Draft{
//	    OfferID:     &offerID,
//	    ClientName:  "A",
//	    ClientPhone: "0555",
//	    AgreedPrice: kernel.MustMoney("18000"),
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	draft   order.Draft

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, draft order.Draft) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDraft(draft),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Draft() order.Draft {
	return c.draft
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDraft(draft order.Draft) error {
	if (draft.OfferID == nil) == (draft.CustomCar == nil) {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", order.ErrVehicleIsAmbiguous)
	}

	if draft.Deposit.GreaterThan(draft.AgreedPrice) {
		return errs.NewValueIsInvalidErrorWithCause("deposit", order.ErrDepositExceedsPrice)
	}

	contactKnown := draft.ClientName != "" && draft.ClientPhone != ""
	if !contactKnown && draft.ClientID == nil && draft.VisitorID == nil {
		return errs.NewValueIsRequiredError("clientName")
	}

	c.draft = draft
	return nil
}
