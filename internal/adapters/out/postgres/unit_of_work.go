// Package postgres provides the GORM-based Unit of Work that the order workflow
// runs in. One unit of work wraps one database transaction; every repository it
// hands out is bound to that transaction, so a workflow step that touches an
// order, its offer, its visitor and a client commits or rolls back as one.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// ... mutate o, its offer and its visitor ...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op that returns
// gorm.ErrInvalidTransaction, which the deferred call ignores.
//
// Domain events:
//
// Repositories register every aggregate they write. After a successful Commit
// the unit of work collects the events those aggregates recorded, clears them
// and hands them to the factory's ports.EventDispatcher in write order. A
// rolled back unit of work publishes nothing.
//
// Concurrency:
//   - each UnitOfWork instance owns exactly one transaction and must not be
//     shared between goroutines
//   - rows read with GetForUpdate stay locked until Commit or Rollback
//   - serialization failures, deadlocks and lock timeouts surface as
//     errs.ErrTransient so callers can retry the whole unit of work
package postgres

import (
	"context"
	"slices"

	"dealership/internal/adapters/out/postgres/clientrepo"
	"dealership/internal/adapters/out/postgres/offerrepo"
	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/adapters/out/postgres/paymentrepo"
	"dealership/internal/adapters/out/postgres/pgerr"
	"dealership/internal/adapters/out/postgres/visitorrepo"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// FactoryOption configures a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithEventDispatcher publishes committed domain events through d.
func WithEventDispatcher(d ports.EventDispatcher) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.dispatcher = d
	}
}

type discardDispatcher struct{}

func (discardDispatcher) Dispatch(context.Context, ...kernel.DomainEvent) {}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	dispatcher ports.EventDispatcher
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, WithEventDispatcher(dispatcher))
//
// Without WithEventDispatcher committed events are discarded.
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db, dispatcher: discardDispatcher{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a fresh unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		dispatcher:        f.dispatcher,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	dispatcher        ports.EventDispatcher
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Translate(tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit makes the changes permanent and publishes the recorded domain events.
// A commit rejected by PostgreSQL for serialization reasons is reported as
// transient and publishes nothing.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return pgerr.Translate(err)
	}

	if events := uow.collectEvents(); len(events) > 0 {
		uow.dispatcher.Dispatch(ctx, events...)
	}
	return nil
}

// Rollback discards the changes and forgets the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VisitorRepository() ports.VisitorRepository {
	return visitorrepo.NewGormVisitorRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add, Update or order Delete.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// collectEvents drains the events of every tracked aggregate, visiting each
// aggregate once even when it was written several times.
func (uow *GormUnitOfWork) collectEvents() []kernel.DomainEvent {
	var (
		events []kernel.DomainEvent
		seen   []eventSource
	)
	for _, t := range uow.trackedAggregates {
		src, ok := t.Aggregate.(eventSource)
		if !ok || slices.Contains(seen, src) {
			continue
		}
		seen = append(seen, src)
		events = append(events, src.DomainEvents()...)
		src.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}

// TrackedIDs lists the IDs of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
