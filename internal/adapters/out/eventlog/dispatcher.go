// Package eventlog publishes committed domain events to the structured log.
package eventlog

import (
	"context"
	"log/slog"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
)

// SlogDispatcher writes one INFO record per event.
type SlogDispatcher struct {
	logger *slog.Logger
}

func NewSlogDispatcher(logger *slog.Logger) *SlogDispatcher {
	return &SlogDispatcher{logger: logger.With("component", "events")}
}

func (d *SlogDispatcher) Dispatch(ctx context.Context, events ...kernel.DomainEvent) {
	for _, e := range events {
		attrs := append([]any{
			slog.String("event", e.EventName()),
			slog.String("aggregate_id", e.AggregateID().String()),
		}, details(e)...)
		d.logger.InfoContext(ctx, "domain event", attrs...)
	}
}

func details(e kernel.DomainEvent) []any {
	switch e := e.(type) {
	case order.PlacedEvent:
		return append([]any{
			slog.String("type", e.Type.String()),
			slog.String("agreed_price", e.AgreedPrice.String()),
		}, parties(e.OfferID, e.VisitorID)...)
	case order.CompletedEvent:
		return parties(e.OfferID, nil)
	case order.CanceledEvent:
		return parties(e.OfferID, e.VisitorID)
	case order.WithdrawnEvent:
		return append([]any{slog.String("status", e.Status.String())}, parties(e.OfferID, e.VisitorID)...)
	default:
		return nil
	}
}

func parties(offerID, visitorID *kernel.UUID) []any {
	var attrs []any
	if offerID != nil {
		attrs = append(attrs, slog.String("offer_id", offerID.String()))
	}
	if visitorID != nil {
		attrs = append(attrs, slog.String("visitor_id", visitorID.String()))
	}
	return attrs
}
