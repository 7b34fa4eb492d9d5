package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error
	Update(ctx context.Context, aggregate *payment.Payment) error
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
