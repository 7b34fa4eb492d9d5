package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ErrorCode.
const (
	ErrorCodeConflict           ErrorCode = "conflict"
	ErrorCodeInternal           ErrorCode = "internal"
	ErrorCodeNotFound           ErrorCode = "not_found"
	ErrorCodePreconditionFailed ErrorCode = "precondition_failed"
	ErrorCodeRetryLater         ErrorCode = "retry_later"
	ErrorCodeValidationError    ErrorCode = "validation_error"
)

// Defines values for OfferStatus.
const (
	OfferStatusAvailable OfferStatus = "available"
	OfferStatusReserved  OfferStatus = "reserved"
	OfferStatusSold      OfferStatus = "sold"
)

// Defines values for OrderStatus.
const (
	OrderStatusCanceled  OrderStatus = "canceled"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPending   OrderStatus = "pending"
)

// Defines values for OrderType.
const (
	OrderTypeInside  OrderType = "inside"
	OrderTypeOutside OrderType = "outside"
)

// Defines values for VisitorStatus.
const (
	VisitorStatusContacted  VisitorStatus = "contacted"
	VisitorStatusConverted  VisitorStatus = "converted"
	VisitorStatusInterested VisitorStatus = "interested"
	VisitorStatusLost       VisitorStatus = "lost"
	VisitorStatusNew        VisitorStatus = "new"
)

// Error defines model for Error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorCode defines model for Error.Code.
type ErrorCode string

// OfferStatus defines model for OfferStatus.
type OfferStatus string

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderType defines model for OrderType.
type OrderType string

// VisitorStatus defines model for VisitorStatus.
type VisitorStatus string

// Id defines model for Id.
type Id = openapi_types.UUID

// ListOffersParams defines parameters for ListOffers.
type ListOffersParams struct {
	Status *OfferStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
	Type   *OrderType   `form:"type,omitempty" json:"type,omitempty"`
}

// ListVisitorsParams defines parameters for ListVisitors.
type ListVisitorsParams struct {
	Status *VisitorStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /api/v1/clients)
	ListClients(ctx echo.Context) error

	// (POST /api/v1/clients)
	CreateClient(ctx echo.Context) error

	// (DELETE /api/v1/clients/{id})
	DeleteClient(ctx echo.Context, id Id) error

	// (GET /api/v1/clients/{id})
	GetClient(ctx echo.Context, id Id) error

	// (GET /api/v1/offers)
	ListOffers(ctx echo.Context, params ListOffersParams) error

	// (POST /api/v1/offers)
	CreateOffer(ctx echo.Context) error

	// (DELETE /api/v1/offers/{id})
	DeleteOffer(ctx echo.Context, id Id) error

	// (GET /api/v1/offers/{id})
	GetOffer(ctx echo.Context, id Id) error

	// (PATCH /api/v1/offers/{id})
	UpdateOffer(ctx echo.Context, id Id) error

	// (PUT /api/v1/offers/{id}/status)
	ChangeOfferStatus(ctx echo.Context, id Id) error

	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error

	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id Id) error

	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id Id) error

	// (PATCH /api/v1/orders/{id})
	UpdateOrder(ctx echo.Context, id Id) error

	// (POST /api/v1/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id Id) error

	// (POST /api/v1/orders/{id}/complete)
	CompleteOrder(ctx echo.Context, id Id) error

	// (POST /api/v1/orders/{id}/confirm)
	ConfirmOrder(ctx echo.Context, id Id) error

	// (GET /api/v1/orders/{id}/payments)
	ListPayments(ctx echo.Context, id Id) error

	// (POST /api/v1/payments)
	CreatePayment(ctx echo.Context) error

	// (DELETE /api/v1/payments/{id})
	DeletePayment(ctx echo.Context, id Id) error

	// (POST /api/v1/payments/{id}/pay)
	MarkPaymentPaid(ctx echo.Context, id Id) error

	// (GET /api/v1/visitors)
	ListVisitors(ctx echo.Context, params ListVisitorsParams) error

	// (POST /api/v1/visitors)
	CreateVisitor(ctx echo.Context) error

	// (DELETE /api/v1/visitors/{id})
	DeleteVisitor(ctx echo.Context, id Id) error

	// (GET /api/v1/visitors/{id})
	GetVisitor(ctx echo.Context, id Id) error

	// (PUT /api/v1/visitors/{id}/status)
	ChangeVisitorStatus(ctx echo.Context, id Id) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListClients converts echo context to params.
func (w *ServerInterfaceWrapper) ListClients(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListClients(ctx)
	return err
}

// CreateClient converts echo context to params.
func (w *ServerInterfaceWrapper) CreateClient(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateClient(ctx)
	return err
}

// DeleteClient converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteClient(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteClient(ctx, id)
	return err
}

// GetClient converts echo context to params.
func (w *ServerInterfaceWrapper) GetClient(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetClient(ctx, id)
	return err
}

// ListOffers converts echo context to params.
func (w *ServerInterfaceWrapper) ListOffers(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOffersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOffers(ctx, params)
	return err
}

// CreateOffer converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOffer(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOffer(ctx)
	return err
}

// DeleteOffer converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOffer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOffer(ctx, id)
	return err
}

// GetOffer converts echo context to params.
func (w *ServerInterfaceWrapper) GetOffer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOffer(ctx, id)
	return err
}

// UpdateOffer converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOffer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOffer(ctx, id)
	return err
}

// ChangeOfferStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOfferStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeOfferStatus(ctx, id)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "type" -------------

	err = runtime.BindQueryParameter("form", true, false, "type", ctx.QueryParams(), &params.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, id)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, id)
	return err
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrder(ctx, id)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, id)
	return err
}

// CompleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompleteOrder(ctx, id)
	return err
}

// ConfirmOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ConfirmOrder(ctx, id)
	return err
}

// ListPayments converts echo context to params.
func (w *ServerInterfaceWrapper) ListPayments(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPayments(ctx, id)
	return err
}

// CreatePayment converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePayment(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreatePayment(ctx)
	return err
}

// DeletePayment converts echo context to params.
func (w *ServerInterfaceWrapper) DeletePayment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeletePayment(ctx, id)
	return err
}

// MarkPaymentPaid converts echo context to params.
func (w *ServerInterfaceWrapper) MarkPaymentPaid(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkPaymentPaid(ctx, id)
	return err
}

// ListVisitors converts echo context to params.
func (w *ServerInterfaceWrapper) ListVisitors(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListVisitorsParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListVisitors(ctx, params)
	return err
}

// CreateVisitor converts echo context to params.
func (w *ServerInterfaceWrapper) CreateVisitor(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateVisitor(ctx)
	return err
}

// DeleteVisitor converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteVisitor(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteVisitor(ctx, id)
	return err
}

// GetVisitor converts echo context to params.
func (w *ServerInterfaceWrapper) GetVisitor(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetVisitor(ctx, id)
	return err
}

// ChangeVisitorStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeVisitorStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeVisitorStatus(ctx, id)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/clients", wrapper.ListClients)
	router.POST(baseURL+"/api/v1/clients", wrapper.CreateClient)
	router.DELETE(baseURL+"/api/v1/clients/:id", wrapper.DeleteClient)
	router.GET(baseURL+"/api/v1/clients/:id", wrapper.GetClient)
	router.GET(baseURL+"/api/v1/offers", wrapper.ListOffers)
	router.POST(baseURL+"/api/v1/offers", wrapper.CreateOffer)
	router.DELETE(baseURL+"/api/v1/offers/:id", wrapper.DeleteOffer)
	router.GET(baseURL+"/api/v1/offers/:id", wrapper.GetOffer)
	router.PATCH(baseURL+"/api/v1/offers/:id", wrapper.UpdateOffer)
	router.PUT(baseURL+"/api/v1/offers/:id/status", wrapper.ChangeOfferStatus)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/api/v1/orders/:id", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:id", wrapper.UpdateOrder)
	router.POST(baseURL+"/api/v1/orders/:id/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:id/complete", wrapper.CompleteOrder)
	router.POST(baseURL+"/api/v1/orders/:id/confirm", wrapper.ConfirmOrder)
	router.GET(baseURL+"/api/v1/orders/:id/payments", wrapper.ListPayments)
	router.POST(baseURL+"/api/v1/payments", wrapper.CreatePayment)
	router.DELETE(baseURL+"/api/v1/payments/:id", wrapper.DeletePayment)
	router.POST(baseURL+"/api/v1/payments/:id/pay", wrapper.MarkPaymentPaid)
	router.GET(baseURL+"/api/v1/visitors", wrapper.ListVisitors)
	router.POST(baseURL+"/api/v1/visitors", wrapper.CreateVisitor)
	router.DELETE(baseURL+"/api/v1/visitors/:id", wrapper.DeleteVisitor)
	router.GET(baseURL+"/api/v1/visitors/:id", wrapper.GetVisitor)
	router.PUT(baseURL+"/api/v1/visitors/:id/status", wrapper.ChangeVisitorStatus)

}
