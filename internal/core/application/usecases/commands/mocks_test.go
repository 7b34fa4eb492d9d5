package commands_test

import (
	"context"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockOrderRepository) ExistsForOffer(
	ctx context.Context,
	offerID kernel.UUID,
	statuses ...order.Status,
) (bool, error) {
	args := m.Called(ctx, offerID, statuses)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ExistsForVisitor(
	ctx context.Context,
	visitorID kernel.UUID,
	statuses ...order.Status,
) (bool, error) {
	args := m.Called(ctx, visitorID, statuses)
	return args.Bool(0), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.Offer) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockVisitorRepository struct{ mock.Mock }

func (m *MockVisitorRepository) Add(ctx context.Context, v *visitor.Visitor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVisitorRepository) Update(ctx context.Context, v *visitor.Visitor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVisitorRepository) Get(ctx context.Context, id kernel.UUID) (*visitor.Visitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*visitor.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*visitor.Visitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*visitor.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct {
	mock.Mock
	orders   *MockOrderRepository
	offers   *MockOfferRepository
	visitors *MockVisitorRepository
	clients  *MockClientRepository
	payments *MockPaymentRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:   new(MockOrderRepository),
		offers:   new(MockOfferRepository),
		visitors: new(MockVisitorRepository),
		clients:  new(MockClientRepository),
		payments: new(MockPaymentRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository     { return m.orders }
func (m *MockUoW) OfferRepository() ports.OfferRepository     { return m.offers }
func (m *MockUoW) VisitorRepository() ports.VisitorRepository { return m.visitors }
func (m *MockUoW) ClientRepository() ports.ClientRepository   { return m.clients }
func (m *MockUoW) PaymentRepository() ports.PaymentRepository { return m.payments }

func (m *MockUoW) AssertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.offers.AssertExpectations(t)
	m.visitors.AssertExpectations(t)
	m.clients.AssertExpectations(t)
	m.payments.AssertExpectations(t)
}

// expectCommitted sets up a unit of work that begins, commits and then gets the deferred rollback.
func (m *MockUoW) expectCommitted(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// expectRolledBack sets up a unit of work that begins and is rolled back without commit.
func (m *MockUoW) expectRolledBack(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// MockUoWFactory hands out prepared units of work in order.
type MockUoWFactory[U any] struct{ mock.Mock }

func (m *MockUoWFactory[U]) Create() U {
	return m.Called().Get(0).(U)
}

func factoryOf[U any](uows ...*MockUoW) *MockUoWFactory[U] {
	f := new(MockUoWFactory[U])
	for _, u := range uows {
		f.On("Create").Return(u).Once()
	}
	return f
}

var (
	_ commands.SaleUoW    = (*MockUoW)(nil)
	_ commands.OfferUoW   = (*MockUoW)(nil)
	_ commands.VisitorUoW = (*MockUoW)(nil)
	_ commands.ClientUoW  = (*MockUoW)(nil)
	_ commands.PaymentUoW = (*MockUoW)(nil)
)
