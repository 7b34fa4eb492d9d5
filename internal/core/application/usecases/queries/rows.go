package queries

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/visitor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type offerRow struct {
	ID         uuid.UUID                   `gorm:"column:id"`
	Brand      string                      `gorm:"column:brand"`
	Model      string                      `gorm:"column:model"`
	Year       int                         `gorm:"column:year"`
	Km         int                         `gorm:"column:km"`
	Price      decimal.Decimal             `gorm:"column:price"`
	Location   string                      `gorm:"column:location"`
	OwnerName  string                      `gorm:"column:owner_name"`
	OwnerPhone string                      `gorm:"column:owner_phone"`
	Images     datatypes.JSONSlice[string] `gorm:"column:images"`
	Status     string                      `gorm:"column:status"`
	CreatedAt  time.Time                   `gorm:"column:created_at"`
	UpdatedAt  time.Time                   `gorm:"column:updated_at"`
}

func (r offerRow) view() (OfferView, error) {
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return OfferView{}, err
	}

	images := []string(r.Images)
	if images == nil {
		images = []string{}
	}

	return OfferView{
		ID:         kernel.UUIDFromGoogle(r.ID),
		Brand:      r.Brand,
		Model:      r.Model,
		Year:       r.Year,
		Km:         r.Km,
		Price:      price,
		Location:   r.Location,
		OwnerName:  r.OwnerName,
		OwnerPhone: r.OwnerPhone,
		Images:     images,
		Status:     offer.Status(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

type visitorRow struct {
	ID        uuid.UUID       `gorm:"column:id"`
	Name      string          `gorm:"column:name"`
	Phone     string          `gorm:"column:phone"`
	CarBrand  string          `gorm:"column:car_brand"`
	CarModel  string          `gorm:"column:car_model"`
	Budget    decimal.Decimal `gorm:"column:budget"`
	Status    string          `gorm:"column:status"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

type interestRow struct {
	VisitorID uuid.UUID `gorm:"column:visitor_id"`
	OfferID   uuid.UUID `gorm:"column:offer_id"`
	Priority  int       `gorm:"column:priority"`
}

func (r visitorRow) view(interests []interestRow) (VisitorView, error) {
	budget, err := kernel.NewMoney(r.Budget)
	if err != nil {
		return VisitorView{}, err
	}

	v := VisitorView{
		ID:        kernel.UUIDFromGoogle(r.ID),
		Name:      r.Name,
		Phone:     r.Phone,
		CarBrand:  r.CarBrand,
		CarModel:  r.CarModel,
		Budget:    budget,
		Status:    visitor.Status(r.Status),
		Interests: make([]InterestView, 0, len(interests)),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	for _, i := range interests {
		v.Interests = append(v.Interests, InterestView{OfferID: kernel.UUIDFromGoogle(i.OfferID), Priority: i.Priority})
	}
	return v, nil
}

type clientRow struct {
	ID               uuid.UUID       `gorm:"column:id"`
	Name             string          `gorm:"column:name"`
	Phone            string          `gorm:"column:phone"`
	TotalSpent       decimal.Decimal `gorm:"column:total_spent"`
	RemainingBalance decimal.Decimal `gorm:"column:remaining_balance"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (r clientRow) view() (ClientView, error) {
	spent, spentErr := kernel.NewMoney(r.TotalSpent)
	remaining, remainingErr := kernel.NewMoney(r.RemainingBalance)
	if err := errors.Join(spentErr, remainingErr); err != nil {
		return ClientView{}, err
	}

	return ClientView{
		ID:               kernel.UUIDFromGoogle(r.ID),
		Name:             r.Name,
		Phone:            r.Phone,
		TotalSpent:       spent,
		RemainingBalance: remaining,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}

type paymentRow struct {
	ID        uuid.UUID       `gorm:"column:id"`
	OrderID   uuid.UUID       `gorm:"column:order_id"`
	ClientID  *uuid.UUID      `gorm:"column:client_id"`
	Amount    decimal.Decimal `gorm:"column:amount"`
	Method    string          `gorm:"column:method"`
	Status    string          `gorm:"column:status"`
	Reference string          `gorm:"column:reference"`
	Note      string          `gorm:"column:note"`
	PaidAt    *time.Time      `gorm:"column:paid_at"`
	CreatedAt time.Time       `gorm:"column:created_at"`
}

func (r paymentRow) view() (PaymentView, error) {
	amount, err := kernel.NewMoney(r.Amount)
	if err != nil {
		return PaymentView{}, err
	}

	return PaymentView{
		ID:        kernel.UUIDFromGoogle(r.ID),
		OrderID:   kernel.UUIDFromGoogle(r.OrderID),
		ClientID:  optionalID(r.ClientID),
		Amount:    amount,
		Method:    payment.Method(r.Method),
		Status:    payment.Status(r.Status),
		Reference: r.Reference,
		Note:      r.Note,
		PaidAt:    r.PaidAt,
		CreatedAt: r.CreatedAt,
	}, nil
}

// orderColumns selects an order with the summaries of its offer (f) and visitor (v).
const orderColumns = `
	o.id, o.offer_id, o.visitor_id, o.client_id,
	o.custom_car_brand, o.custom_car_model, o.custom_car_year, o.custom_car_color, o.custom_car_vin,
	o.client_name, o.client_phone, o.agreed_price, o.deposit, o.profit,
	o.status, o.type, o.process_status, o.remarks, o.shipping_reference, o.expected_arrival,
	o.created_at, o.updated_at,
	f.brand AS offer_brand, f.model AS offer_model, f.year AS offer_year,
	f.price AS offer_price, f.status AS offer_status,
	v.name AS visitor_name, v.phone AS visitor_phone, v.status AS visitor_status`

type orderRow struct {
	ID                uuid.UUID           `gorm:"column:id"`
	OfferID           *uuid.UUID          `gorm:"column:offer_id"`
	VisitorID         *uuid.UUID          `gorm:"column:visitor_id"`
	ClientID          *uuid.UUID          `gorm:"column:client_id"`
	CustomCarBrand    string              `gorm:"column:custom_car_brand"`
	CustomCarModel    string              `gorm:"column:custom_car_model"`
	CustomCarYear     int                 `gorm:"column:custom_car_year"`
	CustomCarColor    string              `gorm:"column:custom_car_color"`
	CustomCarVIN      string              `gorm:"column:custom_car_vin"`
	ClientName        string              `gorm:"column:client_name"`
	ClientPhone       string              `gorm:"column:client_phone"`
	AgreedPrice       decimal.Decimal     `gorm:"column:agreed_price"`
	Deposit           decimal.Decimal     `gorm:"column:deposit"`
	Profit            decimal.NullDecimal `gorm:"column:profit"`
	Status            string              `gorm:"column:status"`
	Type              string              `gorm:"column:type"`
	ProcessStatus     string              `gorm:"column:process_status"`
	Remarks           string              `gorm:"column:remarks"`
	ShippingReference string              `gorm:"column:shipping_reference"`
	ExpectedArrival   *time.Time          `gorm:"column:expected_arrival"`
	CreatedAt         time.Time           `gorm:"column:created_at"`
	UpdatedAt         time.Time           `gorm:"column:updated_at"`

	OfferBrand  *string             `gorm:"column:offer_brand"`
	OfferModel  *string             `gorm:"column:offer_model"`
	OfferYear   *int                `gorm:"column:offer_year"`
	OfferPrice  decimal.NullDecimal `gorm:"column:offer_price"`
	OfferStatus *string             `gorm:"column:offer_status"`

	VisitorName   *string `gorm:"column:visitor_name"`
	VisitorPhone  *string `gorm:"column:visitor_phone"`
	VisitorStatus *string `gorm:"column:visitor_status"`
}

func (r orderRow) view() (OrderView, error) {
	agreed, agreedErr := kernel.NewMoney(r.AgreedPrice)
	deposit, depositErr := kernel.NewMoney(r.Deposit)
	if err := errors.Join(agreedErr, depositErr); err != nil {
		return OrderView{}, err
	}

	v := OrderView{
		ID:                kernel.UUIDFromGoogle(r.ID),
		Type:              order.Type(r.Type),
		Status:            order.Status(r.Status),
		ProcessStatus:     order.ProcessStatus(r.ProcessStatus),
		ClientID:          optionalID(r.ClientID),
		ClientName:        r.ClientName,
		ClientPhone:       r.ClientPhone,
		AgreedPrice:       agreed,
		Deposit:           deposit,
		RemainingAmount:   agreed.SubFloor(deposit),
		Remarks:           r.Remarks,
		ShippingReference: r.ShippingReference,
		ExpectedArrival:   r.ExpectedArrival,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}

	if r.Profit.Valid {
		profit, err := kernel.NewMoney(r.Profit.Decimal)
		if err != nil {
			return OrderView{}, err
		}
		v.Profit = &profit
	}

	if r.OfferID != nil && r.OfferStatus != nil {
		price, err := kernel.NewMoney(r.OfferPrice.Decimal)
		if err != nil {
			return OrderView{}, err
		}
		v.Offer = &OfferSummary{
			ID:     kernel.UUIDFromGoogle(*r.OfferID),
			Brand:  deref(r.OfferBrand),
			Model:  deref(r.OfferModel),
			Year:   deref(r.OfferYear),
			Price:  price,
			Status: offer.Status(*r.OfferStatus),
		}
	}

	if r.CustomCarBrand != "" {
		v.CustomCar = &CustomCarView{
			Brand: r.CustomCarBrand,
			Model: r.CustomCarModel,
			Year:  r.CustomCarYear,
			Color: r.CustomCarColor,
			VIN:   r.CustomCarVIN,
		}
	}

	if r.VisitorID != nil && r.VisitorStatus != nil {
		v.Visitor = &VisitorSummary{
			ID:     kernel.UUIDFromGoogle(*r.VisitorID),
			Name:   deref(r.VisitorName),
			Phone:  deref(r.VisitorPhone),
			Status: visitor.Status(*r.VisitorStatus),
		}
	}

	return v, nil
}

func optionalID(id *uuid.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	k := kernel.UUIDFromGoogle(*id)
	return &k
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
