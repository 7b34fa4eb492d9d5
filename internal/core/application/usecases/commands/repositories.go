// Package commands contains business operations that modify system state.
// Every command runs in exactly one unit of work: the handler begins a
// transaction, loads what it needs with row locks, lets the domain decide,
// writes every touched aggregate and commits. Nothing is written when any step fails.
package commands

import (
	"context"

	"dealership/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	VisitorRepoFactory interface {
		VisitorRepository() ports.VisitorRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// SaleUoW spans the order workflow: an order together with the offer,
	// visitor and client it references.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   off, err := uow.OfferRepository().GetForUpdate(ctx, *o.OfferID())
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SaleUoW interface {
		TxManager
		OrderRepoFactory
		OfferRepoFactory
		VisitorRepoFactory
		ClientRepoFactory
	}

	SaleUoWFactory interface {
		Create() SaleUoW
	}

	// OfferUoW manages offers. Orders are consulted before admin status edits.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
		OrderRepoFactory
	}

	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// VisitorUoW manages visitors. Orders are consulted before deletion.
	VisitorUoW interface {
		TxManager
		VisitorRepoFactory
		OrderRepoFactory
	}

	VisitorUoWFactory interface {
		Create() VisitorUoW
	}

	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// PaymentUoW spans the ledger: a payment, its order and the client it is billed to.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
		ClientRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
