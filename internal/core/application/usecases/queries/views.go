// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read flat views straight from the database;
// the same views describe the aggregates returned by commands.
package queries

import (
	"time"

	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/visitor"
)

// OfferView is the read model of an offer.
type OfferView struct {
	ID         kernel.UUID
	Brand      string
	Model      string
	Year       int
	Km         int
	Price      kernel.Money
	Location   string
	OwnerName  string
	OwnerPhone string
	Images     []string
	Status     offer.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InterestView is an offer a visitor asked about, with its priority.
type InterestView struct {
	OfferID  kernel.UUID
	Priority int
}

type VisitorView struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	CarBrand  string
	CarModel  string
	Budget    kernel.Money
	Status    visitor.Status
	Interests []InterestView
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientView struct {
	ID               kernel.UUID
	Name             string
	Phone            string
	TotalSpent       kernel.Money
	RemainingBalance kernel.Money
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OfferSummary is the part of an offer shown next to an order.
type OfferSummary struct {
	ID     kernel.UUID
	Brand  string
	Model  string
	Year   int
	Price  kernel.Money
	Status offer.Status
}

// VisitorSummary is the part of a visitor shown next to an order.
type VisitorSummary struct {
	ID     kernel.UUID
	Name   string
	Phone  string
	Status visitor.Status
}

type CustomCarView struct {
	Brand string
	Model string
	Year  int
	Color string
	VIN   string
}

// OrderView is an order with its offer and visitor summaries resolved.
// Offer is nil for outside orders and for orders whose offer was deleted.
type OrderView struct {
	ID                kernel.UUID
	Type              order.Type
	Status            order.Status
	ProcessStatus     order.ProcessStatus
	Offer             *OfferSummary
	CustomCar         *CustomCarView
	Visitor           *VisitorSummary
	ClientID          *kernel.UUID
	ClientName        string
	ClientPhone       string
	AgreedPrice       kernel.Money
	Deposit           kernel.Money
	RemainingAmount   kernel.Money
	Profit            *kernel.Money
	Remarks           string
	ShippingReference string
	ExpectedArrival   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PaymentView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	ClientID  *kernel.UUID
	Amount    kernel.Money
	Method    payment.Method
	Status    payment.Status
	Reference string
	Note      string
	PaidAt    *time.Time
	CreatedAt time.Time
}

func OfferViewOf(o *offer.Offer) OfferView {
	l := o.Listing()
	return OfferView{
		ID:         o.ID(),
		Brand:      l.Brand,
		Model:      l.Model,
		Year:       l.Year,
		Km:         l.Km,
		Price:      l.Price,
		Location:   l.Location,
		OwnerName:  l.OwnerName,
		OwnerPhone: l.OwnerPhone,
		Images:     l.Images,
		Status:     o.Status(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func VisitorViewOf(v *visitor.Visitor) VisitorView {
	p := v.Profile()
	view := VisitorView{
		ID:        v.ID(),
		Name:      p.Name,
		Phone:     p.Phone,
		CarBrand:  p.CarBrand,
		CarModel:  p.CarModel,
		Budget:    p.Budget,
		Status:    v.Status(),
		Interests: make([]InterestView, 0, len(v.Interests())),
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
	}
	for _, i := range v.Interests() {
		view.Interests = append(view.Interests, InterestView{OfferID: i.OfferID(), Priority: i.Priority()})
	}
	return view
}

func ClientViewOf(c *client.Client) ClientView {
	return ClientView{
		ID:               c.ID(),
		Name:             c.Name(),
		Phone:            c.Phone(),
		TotalSpent:       c.TotalSpent(),
		RemainingBalance: c.RemainingBalance(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

func PaymentViewOf(p *payment.Payment) PaymentView {
	return PaymentView{
		ID:        p.ID(),
		OrderID:   p.OrderID(),
		ClientID:  p.ClientID(),
		Amount:    p.Amount(),
		Method:    p.Method(),
		Status:    p.Status(),
		Reference: p.Reference(),
		Note:      p.Note(),
		PaidAt:    p.PaidAt(),
		CreatedAt: p.CreatedAt(),
	}
}

// OrderViewOf describes o together with the offer and visitor loaded alongside it.
// Either may be nil.
func OrderViewOf(o *order.Order, off *offer.Offer, v *visitor.Visitor) OrderView {
	view := OrderView{
		ID:                o.ID(),
		Type:              o.Type(),
		Status:            o.Status(),
		ProcessStatus:     o.ProcessStatus(),
		ClientID:          o.ClientID(),
		ClientName:        o.ClientName(),
		ClientPhone:       o.ClientPhone(),
		AgreedPrice:       o.AgreedPrice(),
		Deposit:           o.Deposit(),
		RemainingAmount:   o.RemainingAmount(),
		Profit:            o.Profit(),
		Remarks:           o.Remarks(),
		ShippingReference: o.ShippingReference(),
		ExpectedArrival:   o.ExpectedArrival(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}

	if off != nil {
		l := off.Listing()
		view.Offer = &OfferSummary{
			ID:     off.ID(),
			Brand:  l.Brand,
			Model:  l.Model,
			Year:   l.Year,
			Price:  l.Price,
			Status: off.Status(),
		}
	}

	if car := o.CustomCar(); car != nil {
		view.CustomCar = &CustomCarView{
			Brand: car.Brand(),
			Model: car.Model(),
			Year:  car.Year(),
			Color: car.Color(),
			VIN:   car.VIN(),
		}
	}

	if v != nil {
		view.Visitor = &VisitorSummary{ID: v.ID(), Name: v.Name(), Phone: v.Phone(), Status: v.Status()}
	}

	return view
}
