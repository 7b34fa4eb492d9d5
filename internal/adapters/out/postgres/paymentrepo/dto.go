// Package paymentrepo persists Payment aggregates in the payments table.
package paymentrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid"`
	ClientID  *uuid.UUID      `gorm:"column:client_id;type:uuid"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	Method    string          `gorm:"column:method"`
	Status    string          `gorm:"column:status"`
	Reference string          `gorm:"column:reference"`
	Note      string          `gorm:"column:note"`
	PaidAt    *time.Time      `gorm:"column:paid_at"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime:false"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	var clientID *uuid.UUID
	if id := p.ClientID(); id != nil {
		raw := id.Bytes()
		clientID = &raw
	}

	return PaymentDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		ClientID:  clientID,
		Amount:    p.Amount().Decimal(),
		Method:    string(p.Method()),
		Status:    string(p.Status()),
		Reference: p.Reference(),
		Note:      p.Note(),
		PaidAt:    p.PaidAt(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var clientID *kernel.UUID
	if dto.ClientID != nil {
		cID, clientErr := kernel.UUIDFromBytes((*dto.ClientID)[:])
		if clientErr != nil {
			return nil, clientErr
		}
		clientID = &cID
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, clientID, amount, payment.Method(dto.Method),
		payment.Status(dto.Status), dto.Reference, dto.Note, dto.PaidAt, dto.CreatedAt)
}
