package payment

import (
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var (
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
	ErrAmountMustBePositive    = errors.New("payment amount must be greater than zero")
)

type Status string

const (
	Unpaid Status = "unpaid"
	Paid   Status = "paid"
)

func (s Status) Validate() error {
	switch s {
	case Unpaid, Paid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid payment status", string(s)))
	}
}

type Method string

const (
	Cash         Method = "cash"
	BankTransfer Method = "bank_transfer"
	Card         Method = "card"
	Check        Method = "check"
)

func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Method) Validate() error {
	switch m {
	case Cash, BankTransfer, Card, Check:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

// Payment is one installment against an order. It starts unpaid and may be
// billed to a client, whose ledger follows it.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	clientID  *kernel.UUID
	amount    kernel.Money
	method    Method
	status    Status
	reference string
	note      string
	paidAt    *time.Time
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates an unpaid payment.
//
// Parameters:
//   - id, orderID: required identifiers
//   - clientID: optional; nil when the order has no client
//   - amount: must be greater than zero
//   - method: one of the Method constants, see ParseMethod
//
// Example:
//
//	method, _ := payment.ParseMethod("cash")
//	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), o.ClientID(),
//	    kernel.MustMoney("500"), method, "", "first installment")
func NewPayment(
	id, orderID kernel.UUID,
	clientID *kernel.UUID,
	amount kernel.Money,
	method Method,
	reference, note string,
) (*Payment, error) {
	p := &Payment{
		status:    Unpaid,
		reference: reference,
		note:      note,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIDs(id, orderID, clientID),
		p.setAmount(amount),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	p.method = method

	return p, nil
}

func RestorePayment(
	id, orderID kernel.UUID,
	clientID *kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	reference, note string,
	paidAt *time.Time,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		method:    method,
		status:    status,
		reference: reference,
		note:      note,
		paidAt:    paidAt,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIDs(id, orderID, clientID),
		p.setAmount(amount),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID      { return p.id }
func (p *Payment) OrderID() kernel.UUID { return p.orderID }
func (p *Payment) Amount() kernel.Money { return p.amount }
func (p *Payment) Method() Method       { return p.method }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) Reference() string    { return p.reference }
func (p *Payment) Note() string         { return p.note }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) IsPaid() bool         { return p.status == Paid }

func (p *Payment) ClientID() *kernel.UUID {
	if p.clientID == nil {
		return nil
	}
	id := *p.clientID
	return &id
}

func (p *Payment) PaidAt() *time.Time {
	if p.paidAt == nil {
		return nil
	}
	t := *p.paidAt
	return &t
}

// MarkPaid settles an unpaid payment at the given time.
// Returns ErrPreconditionFailed when the payment is already paid.
func (p *Payment) MarkPaid(at time.Time) error {
	if p.status == Paid {
		return errs.NewPreconditionFailedError("payment", "payment is already paid")
	}
	p.status = Paid
	paidAt := at.UTC()
	p.paidAt = &paidAt
	return nil
}

// ValidateDelete keeps settled payments in the history.
func (p *Payment) ValidateDelete() error {
	if p.status == Paid {
		return errs.NewConflictError("payment", "a paid payment cannot be deleted")
	}
	return nil
}

func (p *Payment) setIDs(id, orderID kernel.UUID, clientID *kernel.UUID) error {
	var errList []error
	errList = append(errList, id.Validate(), orderID.Validate())
	if clientID != nil {
		errList = append(errList, clientID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	p.id = id
	p.orderID = orderID
	if clientID != nil {
		c := *clientID
		p.clientID = &c
	}
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("amount", ErrAmountMustBePositive)
	}
	p.amount = amount
	return nil
}
