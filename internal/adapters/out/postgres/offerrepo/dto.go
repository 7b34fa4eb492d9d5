// Package offerrepo persists Offer aggregates in the offers table.
package offerrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OfferDTO struct {
	ID         uuid.UUID                   `gorm:"column:id;type:uuid;primaryKey"`
	Brand      string                      `gorm:"column:brand"`
	Model      string                      `gorm:"column:model"`
	Year       int                         `gorm:"column:year"`
	Km         int                         `gorm:"column:km"`
	Price      decimal.Decimal             `gorm:"column:price;type:numeric(12,2)"`
	Location   string                      `gorm:"column:location"`
	OwnerName  string                      `gorm:"column:owner_name"`
	OwnerPhone string                      `gorm:"column:owner_phone"`
	Status     string                      `gorm:"column:status"`
	Images     datatypes.JSONSlice[string] `gorm:"column:images;type:jsonb"`
	CreatedAt  time.Time                   `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt  time.Time                   `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(o *offer.Offer) OfferDTO {
	l := o.Listing()
	images := l.Images
	if images == nil {
		images = []string{}
	}

	return OfferDTO{
		ID:         o.ID().Bytes(),
		Brand:      l.Brand,
		Model:      l.Model,
		Year:       l.Year,
		Km:         l.Km,
		Price:      l.Price.Decimal(),
		Location:   l.Location,
		OwnerName:  l.OwnerName,
		OwnerPhone: l.OwnerPhone,
		Status:     o.Status().String(),
		Images:     images,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	listing := offer.Listing{
		Brand:      dto.Brand,
		Model:      dto.Model,
		Year:       dto.Year,
		Km:         dto.Km,
		Price:      price,
		Location:   dto.Location,
		OwnerName:  dto.OwnerName,
		OwnerPhone: dto.OwnerPhone,
		Images:     dto.Images,
	}

	return offer.RestoreOffer(id, listing, offer.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}
