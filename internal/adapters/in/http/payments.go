package http

import (
	"errors"
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type createPaymentRequest struct {
	OrderID   string  `json:"orderId" validate:"required,uuid"`
	ClientID  *string `json:"clientId" validate:"omitempty,uuid"`
	Amount    string  `json:"amount" validate:"required,numeric"`
	Method    string  `json:"method" validate:"required"`
	Reference string  `json:"reference" validate:"max=100"`
	Note      string  `json:"note"`
}

func (r createPaymentRequest) draft() (commands.PaymentDraft, error) {
	orderID, orderErr := parseID("orderId", r.OrderID)
	clientID, clientErr := parseOptionalID("clientId", r.ClientID)
	amount, amountErr := parseMoney("amount", r.Amount)
	method, methodErr := payment.ParseMethod(r.Method)

	if err := errors.Join(orderErr, clientErr, amountErr, methodErr); err != nil {
		return commands.PaymentDraft{}, err
	}

	return commands.PaymentDraft{
		OrderID:   orderID,
		ClientID:  clientID,
		Amount:    amount,
		Method:    method,
		Reference: r.Reference,
		Note:      r.Note,
	}, nil
}

func (s *Server) CreatePayment(c echo.Context) error {
	var req createPaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	draft, err := req.draft()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), draft)
	if err != nil {
		return err
	}

	created, err := s.h.CreatePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newPaymentResponse(queries.PaymentViewOf(created)))
}

// ListPayments handles GET /api/v1/orders/:id/payments.
func (s *Server) ListPayments(c echo.Context, id servers.Id) error {
	query, err := queries.NewListPaymentsQuery(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	views, err := s.h.ListPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, newPaymentResponse))
}

func (s *Server) MarkPaymentPaid(c echo.Context, id servers.Id) error {
	cmd, err := commands.NewMarkPaymentPaidCommand(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	paid, err := s.h.MarkPaymentPaid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPaymentResponse(queries.PaymentViewOf(paid)))
}

func (s *Server) DeletePayment(c echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeletePaymentCommand(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	if err = s.h.DeletePayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
