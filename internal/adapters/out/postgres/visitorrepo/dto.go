// Package visitorrepo persists Visitor aggregates in the visitors and visitor_interests tables.
package visitorrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/visitor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VisitorDTO struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name      string          `gorm:"column:name"`
	Phone     string          `gorm:"column:phone"`
	CarBrand  string          `gorm:"column:car_brand"`
	CarModel  string          `gorm:"column:car_model"`
	Budget    decimal.Decimal `gorm:"column:budget;type:numeric(12,2)"`
	Status    string          `gorm:"column:status"`
	Interests []InterestDTO   `gorm:"foreignKey:VisitorID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (VisitorDTO) TableName() string {
	return "visitors"
}

type InterestDTO struct {
	VisitorID uuid.UUID `gorm:"column:visitor_id;type:uuid;primaryKey"`
	OfferID   uuid.UUID `gorm:"column:offer_id;type:uuid;primaryKey"`
	Priority  int16     `gorm:"column:priority"`
}

func (InterestDTO) TableName() string {
	return "visitor_interests"
}

func fromDomain(v *visitor.Visitor) VisitorDTO {
	p := v.Profile()
	dto := VisitorDTO{
		ID:        v.ID().Bytes(),
		Name:      p.Name,
		Phone:     p.Phone,
		CarBrand:  p.CarBrand,
		CarModel:  p.CarModel,
		Budget:    p.Budget.Decimal(),
		Status:    v.Status().String(),
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
	}

	for _, in := range v.Interests() {
		dto.Interests = append(dto.Interests, InterestDTO{
			VisitorID: dto.ID,
			OfferID:   in.OfferID().Bytes(),
			Priority:  int16(in.Priority()),
		})
	}

	return dto
}

func toDomain(dto VisitorDTO) (*visitor.Visitor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	budget, err := kernel.NewMoney(dto.Budget)
	if err != nil {
		return nil, err
	}

	interests := make([]visitor.Interest, 0, len(dto.Interests))
	for _, in := range dto.Interests {
		interest, inErr := visitor.NewInterest(kernel.UUIDFromGoogle(in.OfferID), int(in.Priority))
		if inErr != nil {
			return nil, inErr
		}
		interests = append(interests, interest)
	}

	profile := visitor.Profile{
		Name:     dto.Name,
		Phone:    dto.Phone,
		CarBrand: dto.CarBrand,
		CarModel: dto.CarModel,
		Budget:   budget,
	}

	return visitor.RestoreVisitor(id, profile, visitor.Status(dto.Status), interests, dto.CreatedAt, dto.UpdatedAt)
}
