// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Custom cars are stored inline in the orders table under the custom_car_ prefix.
package orderrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActiveOfferIndex backs the rule that an offer has at most one pending or confirmed order.
const ActiveOfferIndex = "orders_active_offer_uidx"

type OrderDTO struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	OfferID           *uuid.UUID          `gorm:"column:offer_id;type:uuid"`
	CustomCar         CustomCarDTO        `gorm:"embedded;embeddedPrefix:custom_car_"`
	VisitorID         *uuid.UUID          `gorm:"column:visitor_id;type:uuid"`
	ClientID          *uuid.UUID          `gorm:"column:client_id;type:uuid"`
	ClientName        string              `gorm:"column:client_name"`
	ClientPhone       string              `gorm:"column:client_phone"`
	AgreedPrice       decimal.Decimal     `gorm:"column:agreed_price;type:numeric(12,2)"`
	Deposit           decimal.Decimal     `gorm:"column:deposit;type:numeric(12,2)"`
	Profit            decimal.NullDecimal `gorm:"column:profit;type:numeric(12,2)"`
	Status            string              `gorm:"column:status"`
	Type              string              `gorm:"column:type"`
	ProcessStatus     string              `gorm:"column:process_status"`
	Remarks           string              `gorm:"column:remarks"`
	ShippingReference string              `gorm:"column:shipping_reference"`
	ExpectedArrival   *time.Time          `gorm:"column:expected_arrival"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CustomCarDTO is empty (Brand == "") for inside orders.
type CustomCarDTO struct {
	Brand string `gorm:"column:brand"`
	Model string `gorm:"column:model"`
	Year  int    `gorm:"column:year"`
	Color string `gorm:"column:color"`
	VIN   string `gorm:"column:vin"`
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                o.ID().Bytes(),
		OfferID:           rawID(o.OfferID()),
		VisitorID:         rawID(o.VisitorID()),
		ClientID:          rawID(o.ClientID()),
		ClientName:        o.ClientName(),
		ClientPhone:       o.ClientPhone(),
		AgreedPrice:       o.AgreedPrice().Decimal(),
		Deposit:           o.Deposit().Decimal(),
		Status:            o.Status().String(),
		Type:              o.Type().String(),
		ProcessStatus:     o.ProcessStatus().String(),
		Remarks:           o.Remarks(),
		ShippingReference: o.ShippingReference(),
		ExpectedArrival:   o.ExpectedArrival(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}

	if car := o.CustomCar(); car != nil {
		dto.CustomCar = CustomCarDTO{
			Brand: car.Brand(),
			Model: car.Model(),
			Year:  car.Year(),
			Color: car.Color(),
			VIN:   car.VIN(),
		}
	}

	if profit := o.Profit(); profit != nil {
		dto.Profit = decimal.NewNullDecimal(profit.Decimal())
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.AgreedPrice)
	if err != nil {
		return nil, err
	}

	deposit, err := kernel.NewMoney(dto.Deposit)
	if err != nil {
		return nil, err
	}

	snapshot := order.Snapshot{
		ID:                id,
		OfferID:           domainID(dto.OfferID),
		VisitorID:         domainID(dto.VisitorID),
		ClientID:          domainID(dto.ClientID),
		ClientName:        dto.ClientName,
		ClientPhone:       dto.ClientPhone,
		AgreedPrice:       price,
		Deposit:           deposit,
		Status:            order.Status(dto.Status),
		Type:              order.Type(dto.Type),
		ProcessStatus:     order.ProcessStatus(dto.ProcessStatus),
		Remarks:           dto.Remarks,
		ShippingReference: dto.ShippingReference,
		ExpectedArrival:   dto.ExpectedArrival,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	}

	if dto.CustomCar.Brand != "" {
		car, carErr := order.NewCustomCar(dto.CustomCar.Brand, dto.CustomCar.Model, dto.CustomCar.Year,
			dto.CustomCar.Color, dto.CustomCar.VIN)
		if carErr != nil {
			return nil, carErr
		}
		snapshot.CustomCar = &car
	}

	if dto.Profit.Valid {
		profit, profitErr := kernel.NewMoney(dto.Profit.Decimal)
		if profitErr != nil {
			return nil, profitErr
		}
		snapshot.Profit = &profit
	}

	return order.RestoreOrder(snapshot)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) *kernel.UUID {
	if raw == nil {
		return nil
	}
	id := kernel.UUIDFromGoogle(*raw)
	return &id
}
