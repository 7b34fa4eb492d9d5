package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/postgres/pgerr"
	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc[Q, R any] func(ctx context.Context, q Q) (R, error)

func (f handlerFunc[Q, R]) Handle(ctx context.Context, q Q) (R, error) { return f(ctx, q) }

type voidHandlerFunc[C any] func(ctx context.Context, c C) error

func (f voidHandlerFunc[C]) Handle(ctx context.Context, c C) error { return f(ctx, c) }

func newTestEcho(t *testing.T, h httpadapter.Handlers) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := httpadapter.NewEcho(httpadapter.NewServer(h, logger))
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func placedOrder(t *testing.T) commands.OrderDetails {
	t.Helper()
	off, err := offer.NewOffer(kernel.NewUUID(), offer.Listing{
		Brand: "Seat",
		Model: "Ibiza",
		Year:  2018,
		Price: kernel.MustMoney("9000"),
	})
	require.NoError(t, err)
	require.NoError(t, off.Reserve())

	v, err := visitor.NewVisitor(kernel.NewUUID(), visitor.Profile{Name: "Amel", Phone: "0660"}, nil)
	require.NoError(t, err)
	v.MarkInterested()

	offerID, visitorID := off.ID(), v.ID()
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		OfferID:     &offerID,
		VisitorID:   &visitorID,
		ClientName:  "Amel",
		ClientPhone: "0660",
		AgreedPrice: kernel.MustMoney("8800"),
		Deposit:     kernel.MustMoney("800"),
	})
	require.NoError(t, err)

	return commands.OrderDetails{Order: o, Offer: off, Visitor: v}
}

func TestHealth(t *testing.T) {
	rec := do(newTestEcho(t, httpadapter.Handlers{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder_Created(t *testing.T) {
	details := placedOrder(t)
	var received commands.CreateOrderCommand

	e := newTestEcho(t, httpadapter.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, commands.OrderDetails](
			func(_ context.Context, cmd commands.CreateOrderCommand) (commands.OrderDetails, error) {
				received = cmd
				return details, nil
			}),
	})

	body := `{"offerId":"` + details.Offer.ID().String() + `","visitorId":"` + details.Visitor.ID().String() +
		`","agreedPrice":"8800","deposit":"800"}`
	rec := do(e, http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, received.Draft().OfferID)
	assert.True(t, received.Draft().OfferID.IsEqual(details.Offer.ID()))
	assert.Equal(t, "800.00", received.Draft().Deposit.String())

	resp := decode(t, rec)
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "inside", resp["type"])
	assert.Equal(t, "8000.00", resp["remainingAmount"])
	assert.Equal(t, "reserved", resp["offer"].(map[string]any)["status"])
	assert.Equal(t, "interested", resp["visitor"].(map[string]any)["status"])
}

func TestCreateOrder_ValidationErrors(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{})

	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{"clientName":"A","clientPhone":"1","customCar":{"brand":"VW","model":"Golf","year":2020}}`},
		{"malformed offer id", `{"offerId":"42","clientName":"A","clientPhone":"1","agreedPrice":"10"}`},
		{"no vehicle", `{"clientName":"A","clientPhone":"1","agreedPrice":"10"}`},
		{"both vehicles", `{"offerId":"` + kernel.NewUUID().String() +
			`","customCar":{"brand":"VW","model":"Golf","year":2020},"clientName":"A","clientPhone":"1","agreedPrice":"10"}`},
		{"deposit above price", `{"customCar":{"brand":"VW","model":"Golf","year":2020},` +
			`"clientName":"A","clientPhone":"1","agreedPrice":"10","deposit":"11"}`},
		{"price beyond the stored precision", `{"customCar":{"brand":"VW","model":"Golf","year":2020},` +
			`"clientName":"A","clientPhone":"1","agreedPrice":"100000000000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/orders", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, "validation_error", decode(t, rec)["code"])
		})
	}
}

func TestOrderErrors_MapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound, "not_found"},
		{"precondition", errs.NewPreconditionFailedError("order", "only pending orders can be confirmed"),
			http.StatusPreconditionFailed, "precondition_failed"},
		{"conflict", errs.NewConflictError("offer", "offer is already sold"), http.StatusConflict, "conflict"},
		{"transient", errs.NewTransientError(errors.New("serialization failure")), http.StatusServiceUnavailable, "retry_later"},
		{"numeric overflow", pgerr.Translate(&pgconn.PgError{Code: pgerr.NumericValueOutOfRange, ColumnName: "agreed_price"}),
			http.StatusBadRequest, "validation_error"},
		{"check violation", pgerr.Translate(&pgconn.PgError{Code: pgerr.CheckViolation, ConstraintName: "orders_deposit_check"}),
			http.StatusBadRequest, "validation_error"},
		{"unexpected", io.ErrUnexpectedEOF, http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, httpadapter.Handlers{
				ConfirmOrder: handlerFunc[commands.ConfirmOrderCommand, commands.OrderDetails](
					func(context.Context, commands.ConfirmOrderCommand) (commands.OrderDetails, error) {
						return commands.OrderDetails{}, tt.err
					}),
			})

			rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/confirm", "")

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec)["code"])
		})
	}
}

func TestOrderRoutes_MalformedID(t *testing.T) {
	rec := do(newTestEcho(t, httpadapter.Handlers{}), http.MethodPost, "/api/v1/orders/not-a-uuid/cancel", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrder_PassesPatch(t *testing.T) {
	details := placedOrder(t)
	var received commands.UpdateOrderCommand

	e := newTestEcho(t, httpadapter.Handlers{
		UpdateOrder: handlerFunc[commands.UpdateOrderCommand, commands.OrderDetails](
			func(_ context.Context, cmd commands.UpdateOrderCommand) (commands.OrderDetails, error) {
				received = cmd
				return details, nil
			}),
	})

	rec := do(e, http.MethodPatch, "/api/v1/orders/"+details.Order.ID().String(),
		`{"remarks":"call after 5pm","expectedArrival":"2026-11-02T10:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, received.Patch().Remarks)
	assert.Equal(t, "call after 5pm", *received.Patch().Remarks)
	require.NotNil(t, received.Patch().ExpectedArrival)
	assert.True(t, received.Patch().ExpectedArrival.Equal(time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)))
	assert.Nil(t, received.Patch().AgreedPrice)
}

func TestDeleteOrder_NoContent(t *testing.T) {
	called := false
	e := newTestEcho(t, httpadapter.Handlers{
		DeleteOrder: voidHandlerFunc[commands.DeleteOrderCommand](
			func(context.Context, commands.DeleteOrderCommand) error {
				called = true
				return nil
			}),
	})

	rec := do(e, http.MethodDelete, "/api/v1/orders/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}

func TestListOrders_FiltersAndInvalidStatus(t *testing.T) {
	details := placedOrder(t)
	e := newTestEcho(t, httpadapter.Handlers{
		ListOrders: handlerFunc[queries.ListOrdersQuery, []queries.OrderView](
			func(context.Context, queries.ListOrdersQuery) ([]queries.OrderView, error) {
				return []queries.OrderView{queries.OrderViewOf(details.Order, details.Offer, details.Visitor)}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders?status=pending&type=inside", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, details.Order.ID().String(), list[0]["id"])

	rec = do(e, http.MethodGet, "/api/v1/orders?status=archived", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/orders?type=leased", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "validation_error", resp["code"])
	assert.Contains(t, resp["message"], "type")
}

func TestChangeOfferStatus_UnknownStatus(t *testing.T) {
	rec := do(newTestEcho(t, httpadapter.Handlers{}), http.MethodPut,
		"/api/v1/offers/"+kernel.NewUUID().String()+"/status", `{"status":"leased"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateVisitor_InterestPriorityOutOfRange(t *testing.T) {
	rec := do(newTestEcho(t, httpadapter.Handlers{}), http.MethodPost, "/api/v1/visitors",
		`{"name":"Nour","interests":[{"offerId":"`+kernel.NewUUID().String()+`","priority":9}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["message"], "interests[0].priority")
}

func TestCreatePayment_UnknownMethod(t *testing.T) {
	rec := do(newTestEcho(t, httpadapter.Handlers{}), http.MethodPost, "/api/v1/payments",
		`{"orderId":"`+kernel.NewUUID().String()+`","amount":"10","method":"barter"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decode(t, rec)["code"])
}
