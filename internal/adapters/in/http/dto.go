package http

import (
	"time"

	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

func parseID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

func parseOptionalID(param string, raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(param, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseMoney reads a decimal string such as "12500.00".
func parseMoney(param, raw string) (kernel.Money, error) {
	m, err := kernel.MoneyFromString(raw)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return m, nil
}

// parseMoneyOrZero treats an empty string as zero.
func parseMoneyOrZero(param, raw string) (kernel.Money, error) {
	if raw == "" {
		return kernel.ZeroMoney(), nil
	}
	return parseMoney(param, raw)
}

func parseOptionalMoney(param string, raw *string) (*kernel.Money, error) {
	if raw == nil {
		return nil, nil
	}
	m, err := parseMoney(param, *raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// valueOf reads an optional query enum, empty when absent.
func valueOf[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func moneyString(m *kernel.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

type offerSummaryResponse struct {
	ID     string `json:"id"`
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Year   int    `json:"year"`
	Price  string `json:"price"`
	Status string `json:"status"`
}

type visitorSummaryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type customCarPayload struct {
	Brand string `json:"brand" validate:"required,max=100"`
	Model string `json:"model" validate:"required,max=100"`
	Year  int    `json:"year" validate:"required"`
	Color string `json:"color" validate:"max=50"`
	VIN   string `json:"vin" validate:"max=50"`
}

type orderResponse struct {
	ID                string                  `json:"id"`
	Type              string                  `json:"type"`
	Status            string                  `json:"status"`
	ProcessStatus     string                  `json:"processStatus,omitempty"`
	Offer             *offerSummaryResponse   `json:"offer,omitempty"`
	CustomCar         *customCarPayload       `json:"customCar,omitempty"`
	Visitor           *visitorSummaryResponse `json:"visitor,omitempty"`
	ClientID          *string                 `json:"clientId,omitempty"`
	ClientName        string                  `json:"clientName"`
	ClientPhone       string                  `json:"clientPhone"`
	AgreedPrice       string                  `json:"agreedPrice"`
	Deposit           string                  `json:"deposit"`
	RemainingAmount   string                  `json:"remainingAmount"`
	Profit            *string                 `json:"profit,omitempty"`
	Remarks           string                  `json:"remarks"`
	ShippingReference string                  `json:"shippingReference,omitempty"`
	ExpectedArrival   *time.Time              `json:"expectedArrival,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

func newOrderResponse(v queries.OrderView) orderResponse {
	r := orderResponse{
		ID:                v.ID.String(),
		Type:              v.Type.String(),
		Status:            v.Status.String(),
		ProcessStatus:     v.ProcessStatus.String(),
		ClientID:          idString(v.ClientID),
		ClientName:        v.ClientName,
		ClientPhone:       v.ClientPhone,
		AgreedPrice:       v.AgreedPrice.String(),
		Deposit:           v.Deposit.String(),
		RemainingAmount:   v.RemainingAmount.String(),
		Profit:            moneyString(v.Profit),
		Remarks:           v.Remarks,
		ShippingReference: v.ShippingReference,
		ExpectedArrival:   v.ExpectedArrival,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
	if v.Offer != nil {
		r.Offer = &offerSummaryResponse{
			ID:     v.Offer.ID.String(),
			Brand:  v.Offer.Brand,
			Model:  v.Offer.Model,
			Year:   v.Offer.Year,
			Price:  v.Offer.Price.String(),
			Status: v.Offer.Status.String(),
		}
	}
	if v.CustomCar != nil {
		r.CustomCar = &customCarPayload{
			Brand: v.CustomCar.Brand,
			Model: v.CustomCar.Model,
			Year:  v.CustomCar.Year,
			Color: v.CustomCar.Color,
			VIN:   v.CustomCar.VIN,
		}
	}
	if v.Visitor != nil {
		r.Visitor = &visitorSummaryResponse{
			ID:     v.Visitor.ID.String(),
			Name:   v.Visitor.Name,
			Phone:  v.Visitor.Phone,
			Status: v.Visitor.Status.String(),
		}
	}
	return r
}

type offerResponse struct {
	ID         string    `json:"id"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	Km         int       `json:"km"`
	Price      string    `json:"price"`
	Location   string    `json:"location"`
	OwnerName  string    `json:"ownerName"`
	OwnerPhone string    `json:"ownerPhone"`
	Images     []string  `json:"images"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newOfferResponse(v queries.OfferView) offerResponse {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return offerResponse{
		ID:         v.ID.String(),
		Brand:      v.Brand,
		Model:      v.Model,
		Year:       v.Year,
		Km:         v.Km,
		Price:      v.Price.String(),
		Location:   v.Location,
		OwnerName:  v.OwnerName,
		OwnerPhone: v.OwnerPhone,
		Images:     images,
		Status:     v.Status.String(),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type interestPayload struct {
	OfferID  string `json:"offerId" validate:"required,uuid"`
	Priority int    `json:"priority" validate:"required,min=1,max=5"`
}

type visitorResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	CarBrand  string            `json:"carBrand"`
	CarModel  string            `json:"carModel"`
	Budget    string            `json:"budget"`
	Status    string            `json:"status"`
	Interests []interestPayload `json:"interests"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func newVisitorResponse(v queries.VisitorView) visitorResponse {
	r := visitorResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Phone:     v.Phone,
		CarBrand:  v.CarBrand,
		CarModel:  v.CarModel,
		Budget:    v.Budget.String(),
		Status:    v.Status.String(),
		Interests: make([]interestPayload, 0, len(v.Interests)),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	for _, i := range v.Interests {
		r.Interests = append(r.Interests, interestPayload{OfferID: i.OfferID.String(), Priority: i.Priority})
	}
	return r
}

type clientResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	TotalSpent       string    `json:"totalSpent"`
	RemainingBalance string    `json:"remainingBalance"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newClientResponse(v queries.ClientView) clientResponse {
	return clientResponse{
		ID:               v.ID.String(),
		Name:             v.Name,
		Phone:            v.Phone,
		TotalSpent:       v.TotalSpent.String(),
		RemainingBalance: v.RemainingBalance.String(),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

type paymentResponse struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"orderId"`
	ClientID  *string    `json:"clientId,omitempty"`
	Amount    string     `json:"amount"`
	Method    string     `json:"method"`
	Status    string     `json:"status"`
	Reference string     `json:"reference"`
	Note      string     `json:"note"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newPaymentResponse(v queries.PaymentView) paymentResponse {
	return paymentResponse{
		ID:        v.ID.String(),
		OrderID:   v.OrderID.String(),
		ClientID:  idString(v.ClientID),
		Amount:    v.Amount.String(),
		Method:    string(v.Method),
		Status:    string(v.Status),
		Reference: v.Reference,
		Note:      v.Note,
		PaidAt:    v.PaidAt,
		CreatedAt: v.CreatedAt,
	}
}

// mapSlice converts every view of a list result.
func mapSlice[V, R any](views []V, fn func(V) R) []R {
	out := make([]R, 0, len(views))
	for _, v := range views {
		out = append(out, fn(v))
	}
	return out
}
