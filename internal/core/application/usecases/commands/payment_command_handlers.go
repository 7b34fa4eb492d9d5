package commands

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler records payments. The billed client's remaining
// balance grows by the amount until the payment is settled or deleted.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	retry      RetryPolicy
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory, retry RetryPolicy) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *payment.Payment
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow PaymentUoW) error {
		draft := cmd.Draft()

		o, err := uow.OrderRepository().Get(ctx, draft.OrderID)
		if err != nil {
			return err
		}

		clientID := draft.ClientID
		if clientID == nil {
			clientID = o.ClientID()
		}

		var c *client.Client
		if clientID != nil {
			if c, err = uow.ClientRepository().GetForUpdate(ctx, *clientID); err != nil {
				return err
			}
		}

		p, err := payment.NewPayment(cmd.PaymentID(), o.ID(), clientID, draft.Amount, draft.Method,
			draft.Reference, draft.Note)
		if err != nil {
			return err
		}

		if err = uow.PaymentRepository().Add(ctx, p); err != nil {
			return err
		}

		if c != nil {
			c.ChargeBalance(p.Amount())
			if err = uow.ClientRepository().Update(ctx, c); err != nil {
				return err
			}
		}

		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// MarkPaymentPaidCommandHandler settles payments and moves the amount to the
// client's total spent.
type MarkPaymentPaidCommandHandler struct {
	uowFactory PaymentUoWFactory
	retry      RetryPolicy
	now        func() time.Time
}

func NewMarkPaymentPaidCommandHandler(uowFactory PaymentUoWFactory, retry RetryPolicy) MarkPaymentPaidCommandHandler {
	return MarkPaymentPaidCommandHandler{uowFactory: uowFactory, retry: retry, now: time.Now}
}

func (h MarkPaymentPaidCommandHandler) Handle(ctx context.Context, cmd MarkPaymentPaidCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var paid *payment.Payment
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow PaymentUoW) error {
		paymentRepo := uow.PaymentRepository()

		p, err := paymentRepo.GetForUpdate(ctx, cmd.PaymentID())
		if err != nil {
			return err
		}

		if err = p.MarkPaid(h.now()); err != nil {
			return err
		}

		if err = paymentRepo.Update(ctx, p); err != nil {
			return err
		}

		if clientID := p.ClientID(); clientID != nil {
			clientRepo := uow.ClientRepository()

			c, getErr := clientRepo.GetForUpdate(ctx, *clientID)
			if getErr != nil {
				return getErr
			}

			c.RecordPayment(p.Amount())
			if err = clientRepo.Update(ctx, c); err != nil {
				return err
			}
		}

		paid = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paid, nil
}

// DeletePaymentCommandHandler removes unpaid payments and takes the charge back
// from the client's balance.
type DeletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	retry      RetryPolicy
}

func NewDeletePaymentCommandHandler(uowFactory PaymentUoWFactory, retry RetryPolicy) DeletePaymentCommandHandler {
	return DeletePaymentCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h DeletePaymentCommandHandler) Handle(ctx context.Context, cmd DeletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow PaymentUoW) error {
		paymentRepo := uow.PaymentRepository()

		p, err := paymentRepo.GetForUpdate(ctx, cmd.PaymentID())
		if err != nil {
			return err
		}

		if err = p.ValidateDelete(); err != nil {
			return err
		}

		if clientID := p.ClientID(); clientID != nil {
			clientRepo := uow.ClientRepository()

			c, getErr := clientRepo.GetForUpdate(ctx, *clientID)
			if getErr != nil {
				return getErr
			}

			c.ReverseCharge(p.Amount())
			if err = clientRepo.Update(ctx, c); err != nil {
				return err
			}
		}

		return paymentRepo.Delete(ctx, p.ID())
	})
}
