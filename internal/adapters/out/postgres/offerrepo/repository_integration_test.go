package offerrepo_test

import (
	"context"
	"testing"

	"dealership/internal/adapters/out/postgres/offerrepo"
	"dealership/internal/adapters/out/postgres/pgtest"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OfferRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *offerrepo.GormOfferRepository
	tracker    *MockAggregateTracker
}

func (suite *OfferRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OfferRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = offerrepo.NewGormOfferRepository(suite.database.DB, suite.tracker)
}

func (suite *OfferRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *OfferRepositoryIntegrationTestSuite) TestAdd_ValidOffer_RoundTrips() {
	ctx := context.Background()
	o := suite.newOffer()

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	l := got.Listing()
	suite.Equal("Renault", l.Brand)
	suite.Equal("Clio", l.Model)
	suite.Equal(2018, l.Year)
	suite.Equal(84000, l.Km)
	suite.Equal("9900.00", l.Price.String())
	suite.Equal([]string{"front.jpg", "back.jpg"}, l.Images)
	suite.Equal(offer.Available, got.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestUpdate_StatusChange_IsPersisted() {
	ctx := context.Background()
	o := suite.newOffer()
	suite.tracker.On("TrackAggregate", o.ID(), o).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Reserve())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(offer.Reserved, got.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestUpdate_NonExistentOffer_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOffer())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestGet_NonExistentOffer_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OfferRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	o := suite.newOffer()
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, o.ID()), errs.ErrObjectNotFound)
}

func (suite *OfferRepositoryIntegrationTestSuite) newOffer() *offer.Offer {
	o, err := offer.NewOffer(kernel.NewUUID(), offer.Listing{
		Brand:  "Renault",
		Model:  "Clio",
		Year:   2018,
		Km:     84000,
		Price:  kernel.MustMoney("9900"),
		Images: []string{"front.jpg", "back.jpg"},
	})
	suite.Require().NoError(err)
	return o
}

func TestOfferRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OfferRepositoryIntegrationTestSuite))
}
