// Package clientrepo persists Client aggregates in the clients table.
package clientrepo

import (
	"time"

	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientDTO struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name             string          `gorm:"column:name"`
	Phone            string          `gorm:"column:phone"`
	TotalSpent       decimal.Decimal `gorm:"column:total_spent;type:numeric(12,2)"`
	RemainingBalance decimal.Decimal `gorm:"column:remaining_balance;type:numeric(12,2)"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:               c.ID().Bytes(),
		Name:             c.Name(),
		Phone:            c.Phone(),
		TotalSpent:       c.TotalSpent().Decimal(),
		RemainingBalance: c.RemainingBalance().Decimal(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	spent, err := kernel.NewMoney(dto.TotalSpent)
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.RemainingBalance)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Phone, spent, balance, dto.CreatedAt, dto.UpdatedAt)
}
