package order

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
)

const (
	PlacedEventName    = "order.placed"
	ConfirmedEventName = "order.confirmed"
	CompletedEventName = "order.completed"
	CanceledEventName  = "order.canceled"
	WithdrawnEventName = "order.withdrawn"
)

// PlacedEvent is recorded by NewOrder.
type PlacedEvent struct {
	OrderID     kernel.UUID
	Type        Type
	OfferID     *kernel.UUID
	VisitorID   *kernel.UUID
	AgreedPrice kernel.Money
	OccurredAt  time.Time
}

func (e PlacedEvent) EventName() string        { return PlacedEventName }
func (e PlacedEvent) AggregateID() kernel.UUID { return e.OrderID }

type ConfirmedEvent struct {
	OrderID    kernel.UUID
	OccurredAt time.Time
}

func (e ConfirmedEvent) EventName() string        { return ConfirmedEventName }
func (e ConfirmedEvent) AggregateID() kernel.UUID { return e.OrderID }

// CompletedEvent marks the sale of OfferID, nil for outside orders.
type CompletedEvent struct {
	OrderID    kernel.UUID
	OfferID    *kernel.UUID
	OccurredAt time.Time
}

func (e CompletedEvent) EventName() string        { return CompletedEventName }
func (e CompletedEvent) AggregateID() kernel.UUID { return e.OrderID }

type CanceledEvent struct {
	OrderID    kernel.UUID
	OfferID    *kernel.UUID
	VisitorID  *kernel.UUID
	OccurredAt time.Time
}

func (e CanceledEvent) EventName() string        { return CanceledEventName }
func (e CanceledEvent) AggregateID() kernel.UUID { return e.OrderID }

// WithdrawnEvent is recorded when an order is removed. Status is the status it
// had when it was removed, either pending or canceled.
type WithdrawnEvent struct {
	OrderID    kernel.UUID
	Status     Status
	OfferID    *kernel.UUID
	VisitorID  *kernel.UUID
	OccurredAt time.Time
}

func (e WithdrawnEvent) EventName() string        { return WithdrawnEventName }
func (e WithdrawnEvent) AggregateID() kernel.UUID { return e.OrderID }
