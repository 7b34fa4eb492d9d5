package order

import (
	"errors"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	ErrVehicleIsAmbiguous    = errors.New("exactly one of offer or custom car must be given")
	ErrDepositExceedsPrice   = errors.New("deposit must not exceed the agreed price")
	ErrProcessStatusInside   = errors.New("process status is only tracked for outside orders")
)

// Draft carries what is needed to place a new order. Exactly one of OfferID and
// CustomCar must be set.
type Draft struct {
	OfferID     *kernel.UUID
	CustomCar   *CustomCar
	VisitorID   *kernel.UUID
	ClientID    *kernel.UUID
	ClientName  string
	ClientPhone string
	AgreedPrice kernel.Money
	Deposit     kernel.Money
	Remarks     string
}

// Patch lists the editable fields of an active order. Nil fields are left untouched.
type Patch struct {
	AgreedPrice       *kernel.Money
	Deposit           *kernel.Money
	Profit            *kernel.Money
	Remarks           *string
	ClientName        *string
	ClientPhone       *string
	ProcessStatus     *ProcessStatus
	ShippingReference *string
	ExpectedArrival   *time.Time
}

// Snapshot is the full persisted state of an order.
type Snapshot struct {
	ID                kernel.UUID
	OfferID           *kernel.UUID
	CustomCar         *CustomCar
	VisitorID         *kernel.UUID
	ClientID          *kernel.UUID
	ClientName        string
	ClientPhone       string
	AgreedPrice       kernel.Money
	Deposit           kernel.Money
	Profit            *kernel.Money
	Status            Status
	Type              Type
	ProcessStatus     ProcessStatus
	Remarks           string
	ShippingReference string
	ExpectedArrival   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Order is the sale aggregate root. It owns the terms of one sale and its
// lifecycle; the offer and the visitor it references are separate aggregates
// that the sale coordinator moves in step with it.
//
// Invariants:
//   - an order references either an offer (inside) or a custom car (outside), never both
//   - 0 <= deposit <= agreedPrice
//   - the client name and phone are always known
//   - completed and canceled orders are immutable
//   - status changes follow the transition table in status.go
//
// Every lifecycle change is recorded as a kernel.DomainEvent. The unit of work
// publishes the recorded events after it commits; see DomainEvents.
type Order struct {
	id          kernel.UUID
	offerID     *kernel.UUID
	customCar   *CustomCar
	visitorID   *kernel.UUID
	clientID    *kernel.UUID
	clientName  string
	clientPhone string
	agreedPrice kernel.Money
	deposit     kernel.Money
	profit      *kernel.Money
	status      Status
	orderType   Type

	processStatus     ProcessStatus
	remarks           string
	shippingReference string
	expectedArrival   *time.Time

	createdAt time.Time
	updatedAt time.Time

	// events recorded since the order was built or last cleared
	events []kernel.DomainEvent

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order and records a PlacedEvent. It does not touch
// the offer or the visitor; that is the job of the sale coordinator.
//
// Parameters:
//   - id: identifier of the new order
//   - draft: the sale terms; exactly one of OfferID and CustomCar
//
// Returns:
//   - *Order: a pending order, inside when OfferID is set and outside (process
//     status ordered) when CustomCar is set
//   - error: every invalid field joined, e.g. ErrValueIsRequired for a missing
//     client phone and ErrValueIsInvalid wrapping ErrDepositExceedsPrice
//
// Example:
//
//	offerID := off.ID()
//	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
//	    OfferID:     &offerID,
//	    ClientName:  "Amel",
//	    ClientPhone: "0660",
//	    AgreedPrice: kernel.MustMoney("8800"),
//	    Deposit:     kernel.MustMoney("800"),
//	})
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, draft Draft) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		remarks:   draft.Remarks,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVehicle(draft.OfferID, draft.CustomCar),
		o.setParties(draft.VisitorID, draft.ClientID),
		o.setClientContact(draft.ClientName, draft.ClientPhone),
		o.setTerms(draft.AgreedPrice, draft.Deposit),
	); err != nil {
		return nil, err
	}

	if o.orderType == Outside {
		o.processStatus = Ordered
	}

	o.record(PlacedEvent{
		OrderID:     o.id,
		Type:        o.orderType,
		OfferID:     copyPtr(o.offerID),
		VisitorID:   copyPtr(o.visitorID),
		AgreedPrice: o.agreedPrice,
		OccurredAt:  now,
	})

	return o, nil
}

// RestoreOrder rebuilds an order from storage without recording events. A
// canceled order may have lost its offer reference when the offer was deleted
// afterwards, so such a snapshot is accepted with neither offer nor custom car
// as long as its stored type is valid.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		profit:            s.Profit,
		remarks:           s.Remarks,
		shippingReference: s.ShippingReference,
		expectedArrival:   s.ExpectedArrival,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		guard:             guard.NewConstructorGuard(),
	}

	vehicleErr := o.setVehicle(s.OfferID, s.CustomCar)
	if vehicleErr != nil && s.Status == Canceled && s.OfferID == nil && s.CustomCar == nil {
		vehicleErr = s.Type.Validate()
		o.orderType = s.Type
	}

	if err := errors.Join(
		o.setID(s.ID),
		vehicleErr,
		o.setParties(s.VisitorID, s.ClientID),
		o.setClientContact(s.ClientName, s.ClientPhone),
		o.setTerms(s.AgreedPrice, s.Deposit),
		o.setStatus(s.Status),
		o.setProcessStatus(s.ProcessStatus),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports ErrOrderIsNotConstructed for orders not built by NewOrder or
// RestoreOrder. Repositories call it before every write.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) ClientName() string           { return o.clientName }
func (o *Order) ClientPhone() string          { return o.clientPhone }
func (o *Order) AgreedPrice() kernel.Money    { return o.agreedPrice }
func (o *Order) Deposit() kernel.Money        { return o.deposit }
func (o *Order) Status() Status               { return o.status }
func (o *Order) Type() Type                   { return o.orderType }
func (o *Order) ProcessStatus() ProcessStatus { return o.processStatus }
func (o *Order) Remarks() string              { return o.remarks }
func (o *Order) ShippingReference() string    { return o.shippingReference }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
func (o *Order) OfferID() *kernel.UUID        { return copyPtr(o.offerID) }
func (o *Order) CustomCar() *CustomCar        { return copyPtr(o.customCar) }
func (o *Order) VisitorID() *kernel.UUID      { return copyPtr(o.visitorID) }
func (o *Order) ClientID() *kernel.UUID       { return copyPtr(o.clientID) }
func (o *Order) Profit() *kernel.Money        { return copyPtr(o.profit) }
func (o *Order) ExpectedArrival() *time.Time  { return copyPtr(o.expectedArrival) }

// RemainingAmount is what the buyer still owes after the deposit.
func (o *Order) RemainingAmount() kernel.Money {
	return o.agreedPrice.SubFloor(o.deposit)
}

// Confirm moves a pending order to confirmed and records a ConfirmedEvent.
//
// Returns:
//   - nil on success
//   - ErrPreconditionFailed ("only pending orders can be confirmed") otherwise
//
// Example:
//
//	if err := o.Confirm(); err != nil {
//	    return err // 412 at the HTTP edge
//	}
func (o *Order) Confirm() error {
	if err := o.apply(Confirm); err != nil {
		return err
	}
	o.record(ConfirmedEvent{OrderID: o.id, OccurredAt: o.updatedAt})
	return nil
}

// Complete moves a confirmed order to completed and records a CompletedEvent.
// The caller marks the offer sold and the visitor converted in the same
// transaction (see services.SaleCoordinator.Complete).
//
// Returns ErrPreconditionFailed ("only confirmed orders can be completed") when
// the order is not confirmed.
func (o *Order) Complete() error {
	if err := o.apply(Complete); err != nil {
		return err
	}
	o.record(CompletedEvent{OrderID: o.id, OfferID: copyPtr(o.offerID), OccurredAt: o.updatedAt})
	return nil
}

// Cancel moves a pending or confirmed order to canceled and records a
// CanceledEvent.
//
// Returns:
//   - nil on success
//   - ErrPreconditionFailed with "cannot cancel a completed order" or
//     "order is already canceled"
//
// Example:
//
//	if err := o.Cancel(); err != nil {
//	    return err
//	}
//	// release the offer, mark the visitor lost
func (o *Order) Cancel() error {
	if err := o.apply(Cancel); err != nil {
		return err
	}
	o.record(CanceledEvent{
		OrderID:    o.id,
		OfferID:    copyPtr(o.offerID),
		VisitorID:  copyPtr(o.visitorID),
		OccurredAt: o.updatedAt,
	})
	return nil
}

// ValidateWithdraw reports whether the order may be deleted: only pending and
// canceled orders may. Confirmed and completed orders give ErrConflict.
func (o *Order) ValidateWithdraw() error {
	return o.status.ValidateRemove()
}

// Withdraw checks ValidateWithdraw and records a WithdrawnEvent. The order
// itself is unchanged; deleting the row is the repository's job.
//
// Example:
//
//	if err := o.Withdraw(); err != nil {
//	    return err
//	}
//	return uow.OrderRepository().Delete(ctx, o)
func (o *Order) Withdraw() error {
	if err := o.ValidateWithdraw(); err != nil {
		return err
	}
	o.record(WithdrawnEvent{
		OrderID:    o.id,
		Status:     o.status,
		OfferID:    copyPtr(o.offerID),
		VisitorID:  copyPtr(o.visitorID),
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// DomainEvents returns the events recorded since the order was built or since
// the last ClearDomainEvents, oldest first.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return append([]kernel.DomainEvent(nil), o.events...)
}

// ClearDomainEvents forgets the recorded events once they are published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// HoldsOffer reports whether the order still keeps its offer reserved and its visitor engaged.
func (o *Order) HoldsOffer() bool {
	return o.status.IsActive()
}

// Update applies patch atomically: either every field changes or none does.
// Only pending and confirmed orders are editable. The process status may only
// be set on outside orders.
//
// Parameters:
//   - patch: fields to change; nil fields are left untouched
//
// Returns:
//   - nil when every field was applied
//   - ErrPreconditionFailed for completed or canceled orders
//   - the joined validation errors of all rejected fields otherwise, with the
//     order left as it was
//
// Example:
//
//	price := kernel.MustMoney("9100")
//	remarks := "trade-in agreed"
//	if err := o.Update(order.Patch{AgreedPrice: &price, Remarks: &remarks}); err != nil {
//	    return err
//	}
func (o *Order) Update(patch Patch) error {
	if err := o.status.ValidateUpdate(); err != nil {
		return err
	}

	next := *o
	var errList []error

	if patch.AgreedPrice != nil || patch.Deposit != nil {
		price, deposit := o.agreedPrice, o.deposit
		if patch.AgreedPrice != nil {
			price = *patch.AgreedPrice
		}
		if patch.Deposit != nil {
			deposit = *patch.Deposit
		}
		errList = append(errList, next.setTerms(price, deposit))
	}

	if patch.ClientName != nil || patch.ClientPhone != nil {
		name, phone := o.clientName, o.clientPhone
		if patch.ClientName != nil {
			name = *patch.ClientName
		}
		if patch.ClientPhone != nil {
			phone = *patch.ClientPhone
		}
		errList = append(errList, next.setClientContact(name, phone))
	}

	if patch.ProcessStatus != nil {
		errList = append(errList, next.changeProcessStatus(*patch.ProcessStatus))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	if patch.Profit != nil {
		next.profit = copyPtr(patch.Profit)
	}
	if patch.Remarks != nil {
		next.remarks = *patch.Remarks
	}
	if patch.ShippingReference != nil {
		next.shippingReference = *patch.ShippingReference
	}
	if patch.ExpectedArrival != nil {
		next.expectedArrival = copyPtr(patch.ExpectedArrival)
	}

	next.updatedAt = time.Now().UTC()
	*o = next
	return nil
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) apply(event Event) error {
	next, err := o.status.Apply(event)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) changeProcessStatus(ps ProcessStatus) error {
	if o.orderType != Outside {
		return errs.NewValueIsInvalidErrorWithCause("processStatus", ErrProcessStatusInside)
	}
	if ps == NoProcess {
		return errs.NewValueIsRequiredError("processStatus")
	}
	if err := ps.Validate(); err != nil {
		return err
	}
	o.processStatus = ps
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVehicle(offerID *kernel.UUID, car *CustomCar) error {
	switch {
	case offerID != nil && car == nil:
		if err := offerID.Validate(); err != nil {
			return err
		}
		o.offerID = copyPtr(offerID)
		o.orderType = Inside
	case offerID == nil && car != nil:
		o.customCar = copyPtr(car)
		o.orderType = Outside
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicle", ErrVehicleIsAmbiguous)
	}
	return nil
}

func (o *Order) setParties(visitorID, clientID *kernel.UUID) error {
	var errList []error
	if visitorID != nil {
		errList = append(errList, visitorID.Validate())
	}
	if clientID != nil {
		errList = append(errList, clientID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.visitorID = copyPtr(visitorID)
	o.clientID = copyPtr(clientID)
	return nil
}

func (o *Order) setClientContact(name, phone string) error {
	var errList []error
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("clientName"))
	}
	if strings.TrimSpace(phone) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("clientPhone"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.clientName = name
	o.clientPhone = phone
	return nil
}

func (o *Order) setTerms(agreedPrice, deposit kernel.Money) error {
	if deposit.GreaterThan(agreedPrice) {
		return errs.NewValueIsInvalidErrorWithCause("deposit", ErrDepositExceedsPrice)
	}
	o.agreedPrice = agreedPrice
	o.deposit = deposit
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setProcessStatus(ps ProcessStatus) error {
	if err := ps.Validate(); err != nil {
		return err
	}
	if ps != NoProcess && o.orderType == Inside {
		return errs.NewValueIsInvalidErrorWithCause("processStatus", ErrProcessStatusInside)
	}
	o.processStatus = ps
	return nil
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
