package commands_test

import (
	"testing"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var referencingStatuses = []order.Status{order.Pending, order.Confirmed, order.Completed}

func TestCreateOfferCommandHandler_Handle_StartsAvailable(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.offers.On("Add", ctx, mock.AnythingOfType("*offer.Offer")).Return(nil).Once()
	factory := factoryOf[commands.OfferUoW](uow)

	cmd, err := commands.NewCreateOfferCommand(id, offer.Listing{
		Brand: "Peugeot",
		Model: "208",
		Year:  2020,
		Price: kernel.MustMoney("14500"),
	})
	require.NoError(t, err)

	created, err := commands.NewCreateOfferCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(id))
	assert.Equal(t, offer.Available, created.Status())
	uow.AssertAll(t)
}

func TestNewCreateOfferCommand_InvalidListing(t *testing.T) {
	_, err := commands.NewCreateOfferCommand(kernel.NewUUID(), offer.Listing{Model: "208"})
	require.Error(t, err)
}

func TestUpdateOfferCommandHandler_Handle_KeepsStatus(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Reserved)
	price := kernel.MustMoney("17500")
	location := "Oran"

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
	uow.offers.On("Update", ctx, off).Return(nil).Once()
	factory := factoryOf[commands.OfferUoW](uow)

	cmd, err := commands.NewUpdateOfferCommand(off.ID(), commands.ListingPatch{Price: &price, Location: &location})
	require.NoError(t, err)

	updated, err := commands.NewUpdateOfferCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "17500.00", updated.Price().String())
	assert.Equal(t, "Oran", updated.Listing().Location)
	assert.Equal(t, "Dacia", updated.Listing().Brand)
	assert.Equal(t, offer.Reserved, updated.Status())
	uow.AssertAll(t)
}

func TestUpdateOfferCommandHandler_Handle_Sold_Conflict(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Sold)
	brand := "Renault"

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
	factory := factoryOf[commands.OfferUoW](uow)

	cmd, err := commands.NewUpdateOfferCommand(off.ID(), commands.ListingPatch{Brand: &brand})
	require.NoError(t, err)

	_, err = commands.NewUpdateOfferCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertAll(t)
}

func TestChangeOfferStatusCommandHandler_Handle_Unreferenced(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Available)

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
	uow.orders.On("ExistsForOffer", ctx, off.ID(), referencingStatuses).Return(false, nil).Once()
	uow.offers.On("Update", ctx, off).Return(nil).Once()
	factory := factoryOf[commands.OfferUoW](uow)

	cmd, err := commands.NewChangeOfferStatusCommand(off.ID(), offer.Sold)
	require.NoError(t, err)

	updated, err := commands.NewChangeOfferStatusCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, offer.Sold, updated.Status())
	uow.AssertAll(t)
}

func TestChangeOfferStatusCommandHandler_Handle_ReferencedByOrder_Conflict(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Reserved)

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
	uow.orders.On("ExistsForOffer", ctx, off.ID(), referencingStatuses).Return(true, nil).Once()
	factory := factoryOf[commands.OfferUoW](uow)

	cmd, err := commands.NewChangeOfferStatusCommand(off.ID(), offer.Available)
	require.NoError(t, err)

	_, err = commands.NewChangeOfferStatusCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, offer.Reserved, off.Status())
	uow.AssertAll(t)
}

func TestNewChangeOfferStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOfferStatusCommand(kernel.NewUUID(), offer.Status("leased"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteOfferCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		status   offer.Status
		conflict bool
	}{
		{offer.Available, false},
		{offer.Reserved, true},
		{offer.Sold, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			ctx := t.Context()
			off := testOffer(t, tt.status)

			uow := newMockUoW()
			uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
			if tt.conflict {
				uow.expectRolledBack(ctx)
			} else {
				uow.expectCommitted(ctx)
				uow.offers.On("Delete", ctx, off.ID()).Return(nil).Once()
			}
			factory := factoryOf[commands.OfferUoW](uow)

			cmd, err := commands.NewDeleteOfferCommand(off.ID())
			require.NoError(t, err)

			err = commands.NewDeleteOfferCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

			if tt.conflict {
				require.ErrorIs(t, err, errs.ErrConflict)
			} else {
				require.NoError(t, err)
			}
			uow.AssertAll(t)
		})
	}
}
