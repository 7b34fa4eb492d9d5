package cmd

import (
	"log/slog"

	httpin "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/eventlog"
	"dealership/internal/adapters/out/postgres"
	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	dispatcher := eventlog.NewSlogDispatcher(logger)
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithEventDispatcher(dispatcher)),
		logger:     logger,
	}
}

// FuncUoWFactory adapts a constructor function to the narrow factory
// interfaces the command handlers depend on.
type FuncUoWFactory[U any] func() U

func (f FuncUoWFactory[U]) Create() U {
	return f()
}

func (c *CompositionRoot) saleUoWs() commands.SaleUoWFactory {
	return FuncUoWFactory[commands.SaleUoW](func() commands.SaleUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) offerUoWs() commands.OfferUoWFactory {
	return FuncUoWFactory[commands.OfferUoW](func() commands.OfferUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) visitorUoWs() commands.VisitorUoWFactory {
	return FuncUoWFactory[commands.VisitorUoW](func() commands.VisitorUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) clientUoWs() commands.ClientUoWFactory {
	return FuncUoWFactory[commands.ClientUoW](func() commands.ClientUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) paymentUoWs() commands.PaymentUoWFactory {
	return FuncUoWFactory[commands.PaymentUoW](func() commands.PaymentUoW { return c.uowFactory.Create() })
}

// HTTPHandlers wires every use case exposed by the API.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	retry := c.cfg.RetryPolicy()
	sales, offers, visitors := c.saleUoWs(), c.offerUoWs(), c.visitorUoWs()
	clients, payments := c.clientUoWs(), c.paymentUoWs()

	return httpin.Handlers{
		CreateOrder:   commands.NewCreateOrderCommandHandler(sales, retry),
		ConfirmOrder:  commands.NewConfirmOrderCommandHandler(sales, retry),
		CompleteOrder: commands.NewCompleteOrderCommandHandler(sales, retry),
		CancelOrder:   commands.NewCancelOrderCommandHandler(sales, retry),
		UpdateOrder:   commands.NewUpdateOrderCommandHandler(sales, retry),
		DeleteOrder:   commands.NewDeleteOrderCommandHandler(sales, retry),
		GetOrder:      queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:    queries.NewListOrdersQueryHandler(c.gormDB),

		CreateOffer:       commands.NewCreateOfferCommandHandler(offers, retry),
		UpdateOffer:       commands.NewUpdateOfferCommandHandler(offers, retry),
		ChangeOfferStatus: commands.NewChangeOfferStatusCommandHandler(offers, retry),
		DeleteOffer:       commands.NewDeleteOfferCommandHandler(offers, retry),
		GetOffer:          queries.NewGetOfferQueryHandler(c.gormDB),
		ListOffers:        queries.NewListOffersQueryHandler(c.gormDB),

		CreateVisitor:       commands.NewCreateVisitorCommandHandler(visitors, retry),
		ChangeVisitorStatus: commands.NewChangeVisitorStatusCommandHandler(visitors, retry),
		DeleteVisitor:       commands.NewDeleteVisitorCommandHandler(visitors, retry),
		GetVisitor:          queries.NewGetVisitorQueryHandler(c.gormDB),
		ListVisitors:        queries.NewListVisitorsQueryHandler(c.gormDB),

		CreateClient: commands.NewCreateClientCommandHandler(clients, retry),
		DeleteClient: commands.NewDeleteClientCommandHandler(clients, retry),
		GetClient:    queries.NewGetClientQueryHandler(c.gormDB),
		ListClients:  queries.NewListClientsQueryHandler(c.gormDB),

		CreatePayment:   commands.NewCreatePaymentCommandHandler(payments, retry),
		MarkPaymentPaid: commands.NewMarkPaymentPaidCommandHandler(payments, retry),
		DeletePayment:   commands.NewDeletePaymentCommandHandler(payments, retry),
		ListPayments:    queries.NewListPaymentsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) HTTPServer() *httpin.Server {
	return httpin.NewServer(c.HTTPHandlers(), c.logger)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetOfferStatusDriftQueryHandler(c.gormDB),
		c.cfg.ReconcileSchedule,
		c.logger,
	)
}
