// Package http exposes the dealership use cases over a JSON API built on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is any command or query handler returning a result.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// VoidHandler is a command handler with no result.
type VoidHandler[C any] interface {
	Handle(ctx context.Context, c C) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder   Handler[commands.CreateOrderCommand, commands.OrderDetails]
	ConfirmOrder  Handler[commands.ConfirmOrderCommand, commands.OrderDetails]
	CompleteOrder Handler[commands.CompleteOrderCommand, commands.OrderDetails]
	CancelOrder   Handler[commands.CancelOrderCommand, commands.OrderDetails]
	UpdateOrder   Handler[commands.UpdateOrderCommand, commands.OrderDetails]
	DeleteOrder   VoidHandler[commands.DeleteOrderCommand]
	GetOrder      Handler[queries.GetOrderQuery, queries.OrderView]
	ListOrders    Handler[queries.ListOrdersQuery, []queries.OrderView]

	CreateOffer       Handler[commands.CreateOfferCommand, *offer.Offer]
	UpdateOffer       Handler[commands.UpdateOfferCommand, *offer.Offer]
	ChangeOfferStatus Handler[commands.ChangeOfferStatusCommand, *offer.Offer]
	DeleteOffer       VoidHandler[commands.DeleteOfferCommand]
	GetOffer          Handler[queries.GetOfferQuery, queries.OfferView]
	ListOffers        Handler[queries.ListOffersQuery, []queries.OfferView]

	CreateVisitor       Handler[commands.CreateVisitorCommand, *visitor.Visitor]
	ChangeVisitorStatus Handler[commands.ChangeVisitorStatusCommand, *visitor.Visitor]
	DeleteVisitor       VoidHandler[commands.DeleteVisitorCommand]
	GetVisitor          Handler[queries.GetVisitorQuery, queries.VisitorView]
	ListVisitors        Handler[queries.ListVisitorsQuery, []queries.VisitorView]

	CreateClient Handler[commands.CreateClientCommand, *client.Client]
	DeleteClient VoidHandler[commands.DeleteClientCommand]
	GetClient    Handler[queries.GetClientQuery, queries.ClientView]
	ListClients  Handler[queries.ListClientsQuery, []queries.ClientView]

	CreatePayment   Handler[commands.CreatePaymentCommand, *payment.Payment]
	MarkPaymentPaid Handler[commands.MarkPaymentPaidCommand, *payment.Payment]
	DeletePayment   VoidHandler[commands.DeletePaymentCommand]
	ListPayments    Handler[queries.ListPaymentsQuery, []queries.PaymentView]
}

var _ servers.ServerInterface = (*Server)(nil)

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

// NewEcho builds an echo instance with request validation, error mapping,
// request logging, the Swagger UI and every route of s registered.
func NewEcho(s *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	router, err := newOpenAPIRouter(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))
	e.Use(requestValidator(router))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, s)

	return e, nil
}

// bind decodes the request body into dst and validates it.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(dst)
}
