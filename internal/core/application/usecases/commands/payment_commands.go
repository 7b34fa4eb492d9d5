package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var (
	ErrCreatePaymentCommandIsNotConstructed = errors.New(
		"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
	)
	ErrMarkPaymentPaidCommandIsNotConstructed = errors.New(
		"MarkPaymentPaidCommand must be created via NewMarkPaymentPaidCommand constructor",
	)
	ErrDeletePaymentCommandIsNotConstructed = errors.New(
		"DeletePaymentCommand must be created via NewDeletePaymentCommand constructor",
	)
)

// PaymentDraft describes a payment to record against an order.
type PaymentDraft struct {
	OrderID   kernel.UUID
	ClientID  *kernel.UUID
	Amount    kernel.Money
	Method    payment.Method
	Reference string
	Note      string
}

// CreatePaymentCommand records an unpaid payment. Without a client the order's
// client, if any, is billed.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	draft     PaymentDraft

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(paymentID kernel.UUID, draft PaymentDraft) (CreatePaymentCommand, error) {
	errList := []error{paymentID.Validate(), draft.OrderID.Validate(), draft.Method.Validate()}
	if draft.ClientID != nil {
		errList = append(errList, draft.ClientID.Validate())
	}
	if draft.Amount.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("amount", payment.ErrAmountMustBePositive))
	}

	if err := errors.Join(errList...); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{paymentID: paymentID, draft: draft, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c CreatePaymentCommand) Draft() PaymentDraft    { return c.draft }

type MarkPaymentPaidCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkPaymentPaidCommand(paymentID kernel.UUID) (MarkPaymentPaidCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return MarkPaymentPaidCommand{}, err
	}

	return MarkPaymentPaidCommand{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkPaymentPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentPaidCommandIsNotConstructed)
}

func (c MarkPaymentPaidCommand) PaymentID() kernel.UUID { return c.paymentID }

type DeletePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePaymentCommand(paymentID kernel.UUID) (DeletePaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return DeletePaymentCommand{}, err
	}

	return DeletePaymentCommand{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrDeletePaymentCommandIsNotConstructed)
}

func (c DeletePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
