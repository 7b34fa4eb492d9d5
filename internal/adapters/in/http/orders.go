package http

import (
	"errors"
	"net/http"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	OfferID     *string           `json:"offerId" validate:"omitempty,uuid"`
	CustomCar   *customCarPayload `json:"customCar"`
	VisitorID   *string           `json:"visitorId" validate:"omitempty,uuid"`
	ClientID    *string           `json:"clientId" validate:"omitempty,uuid"`
	ClientName  string            `json:"clientName" validate:"max=255"`
	ClientPhone string            `json:"clientPhone" validate:"max=50"`
	AgreedPrice string            `json:"agreedPrice" validate:"required,numeric"`
	Deposit     string            `json:"deposit" validate:"omitempty,numeric"`
	Remarks     string            `json:"remarks"`
}

func (r createOrderRequest) draft() (order.Draft, error) {
	offerID, offerErr := parseOptionalID("offerId", r.OfferID)
	visitorID, visitorErr := parseOptionalID("visitorId", r.VisitorID)
	clientID, clientErr := parseOptionalID("clientId", r.ClientID)
	price, priceErr := parseMoney("agreedPrice", r.AgreedPrice)
	deposit, depositErr := parseMoneyOrZero("deposit", r.Deposit)

	var (
		car    *order.CustomCar
		carErr error
	)
	if r.CustomCar != nil {
		var c order.CustomCar
		c, carErr = order.NewCustomCar(r.CustomCar.Brand, r.CustomCar.Model, r.CustomCar.Year,
			r.CustomCar.Color, r.CustomCar.VIN)
		car = &c
	}

	if err := errors.Join(offerErr, visitorErr, clientErr, priceErr, depositErr, carErr); err != nil {
		return order.Draft{}, err
	}

	return order.Draft{
		OfferID:     offerID,
		CustomCar:   car,
		VisitorID:   visitorID,
		ClientID:    clientID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		AgreedPrice: price,
		Deposit:     deposit,
		Remarks:     r.Remarks,
	}, nil
}

type updateOrderRequest struct {
	AgreedPrice       *string    `json:"agreedPrice" validate:"omitempty,numeric"`
	Deposit           *string    `json:"deposit" validate:"omitempty,numeric"`
	Profit            *string    `json:"profit" validate:"omitempty,numeric"`
	Remarks           *string    `json:"remarks"`
	ClientName        *string    `json:"clientName" validate:"omitempty,max=255"`
	ClientPhone       *string    `json:"clientPhone" validate:"omitempty,max=50"`
	ProcessStatus     *string    `json:"processStatus"`
	ShippingReference *string    `json:"shippingReference" validate:"omitempty,max=100"`
	ExpectedArrival   *time.Time `json:"expectedArrival"`
}

func (r updateOrderRequest) patch() (order.Patch, error) {
	price, priceErr := parseOptionalMoney("agreedPrice", r.AgreedPrice)
	deposit, depositErr := parseOptionalMoney("deposit", r.Deposit)
	profit, profitErr := parseOptionalMoney("profit", r.Profit)

	var (
		ps    *order.ProcessStatus
		psErr error
	)
	if r.ProcessStatus != nil {
		var parsed order.ProcessStatus
		parsed, psErr = order.ParseProcessStatus(*r.ProcessStatus)
		ps = &parsed
	}

	if err := errors.Join(priceErr, depositErr, profitErr, psErr); err != nil {
		return order.Patch{}, err
	}

	return order.Patch{
		AgreedPrice:       price,
		Deposit:           deposit,
		Profit:            profit,
		Remarks:           r.Remarks,
		ClientName:        r.ClientName,
		ClientPhone:       r.ClientPhone,
		ProcessStatus:     ps,
		ShippingReference: r.ShippingReference,
		ExpectedArrival:   r.ExpectedArrival,
	}, nil
}

func respondOrder(c echo.Context, status int, d commands.OrderDetails) error {
	return c.JSON(status, newOrderResponse(queries.OrderViewOf(d.Order, d.Offer, d.Visitor)))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	draft, err := req.draft()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), draft)
	if err != nil {
		return err
	}

	details, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respondOrder(c, http.StatusCreated, details)
}

// ListOrders handles GET /api/v1/orders?status=&type=.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(order.Status(valueOf(params.Status)), order.Type(valueOf(params.Type)))
	if err != nil {
		return err
	}

	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, newOrderResponse))
}

func (s *Server) GetOrder(c echo.Context, id servers.Id) error {
	query, err := queries.NewGetOrderQuery(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderResponse(view))
}

func (s *Server) ConfirmOrder(c echo.Context, id servers.Id) error {
	return s.transition(c, kernel.UUIDFromGoogle(id), func(id kernel.UUID) (commands.OrderDetails, error) {
		cmd, err := commands.NewConfirmOrderCommand(id)
		if err != nil {
			return commands.OrderDetails{}, err
		}
		return s.h.ConfirmOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) CompleteOrder(c echo.Context, id servers.Id) error {
	return s.transition(c, kernel.UUIDFromGoogle(id), func(id kernel.UUID) (commands.OrderDetails, error) {
		cmd, err := commands.NewCompleteOrderCommand(id)
		if err != nil {
			return commands.OrderDetails{}, err
		}
		return s.h.CompleteOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) CancelOrder(c echo.Context, id servers.Id) error {
	return s.transition(c, kernel.UUIDFromGoogle(id), func(id kernel.UUID) (commands.OrderDetails, error) {
		cmd, err := commands.NewCancelOrderCommand(id)
		if err != nil {
			return commands.OrderDetails{}, err
		}
		return s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) transition(c echo.Context, id kernel.UUID, apply func(kernel.UUID) (commands.OrderDetails, error)) error {
	details, err := apply(id)
	if err != nil {
		return err
	}

	return respondOrder(c, http.StatusOK, details)
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(c echo.Context, id servers.Id) error {
	var req updateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	patch, err := req.patch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(kernel.UUIDFromGoogle(id), patch)
	if err != nil {
		return err
	}

	details, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respondOrder(c, http.StatusOK, details)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeleteOrderCommand(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
