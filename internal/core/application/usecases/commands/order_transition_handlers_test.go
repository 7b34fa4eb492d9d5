package commands_test

import (
	"testing"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Reserved)
	v := testVisitor(t, visitor.Interested)
	o := testOrder(t, order.Pending, off, v)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.orders.On("Update", ctx, o).Return(nil).Once(),
		uow.offers.On("Get", ctx, off.ID()).Return(off, nil).Once(),
		uow.visitors.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := factoryOf[commands.SaleUoW](uow)

	cmd, err := commands.NewConfirmOrderCommand(o.ID())
	require.NoError(t, err)

	details, err := commands.NewConfirmOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, details.Order.Status())
	assert.Equal(t, offer.Reserved, details.Offer.Status())
	assert.Equal(t, visitor.Interested, details.Visitor.Status())
	uow.AssertAll(t)
}

func TestConfirmOrderCommandHandler_Handle_NotPending_PreconditionFailed(t *testing.T) {
	for _, status := range []order.Status{order.Confirmed, order.Completed, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			o := testOrder(t, status, testOffer(t, offer.Reserved), nil)

			uow := newMockUoW()
			uow.expectRolledBack(ctx)
			uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
			factory := factoryOf[commands.SaleUoW](uow)

			cmd, err := commands.NewConfirmOrderCommand(o.ID())
			require.NoError(t, err)

			_, err = commands.NewConfirmOrderCommandHandler(factory, fastRetry).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrPreconditionFailed)
			require.ErrorContains(t, err, "only pending orders can be confirmed")
			uow.AssertAll(t)
		})
	}
}

func TestConfirmOrderCommandHandler_Handle_UnknownOrder_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.orders.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	factory := factoryOf[commands.SaleUoW](uow)

	cmd, err := commands.NewConfirmOrderCommand(id)
	require.NoError(t, err)

	_, err = commands.NewConfirmOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCompleteOrderCommandHandler_Handle_SellsOfferAndConvertsVisitor(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Reserved)
	v := testVisitor(t, visitor.Interested)
	o := testOrder(t, order.Confirmed, off, v)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once(),
		uow.visitors.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once(),
		uow.orders.On("Update", ctx, o).Return(nil).Once(),
		uow.offers.On("Update", ctx, off).Return(nil).Once(),
		uow.visitors.On("Update", ctx, v).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := factoryOf[commands.SaleUoW](uow)

	cmd, err := commands.NewCompleteOrderCommand(o.ID())
	require.NoError(t, err)

	details, err := commands.NewCompleteOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, details.Order.Status())
	assert.Equal(t, offer.Sold, details.Offer.Status())
	assert.Equal(t, visitor.Converted, details.Visitor.Status())
	uow.AssertAll(t)
}

func TestCompleteOrderCommandHandler_Handle_Pending_PreconditionFailed(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Reserved)
	o := testOrder(t, order.Pending, off, nil)

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
	factory := factoryOf[commands.SaleUoW](uow)

	cmd, err := commands.NewCompleteOrderCommand(o.ID())
	require.NoError(t, err)

	_, err = commands.NewCompleteOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, offer.Reserved, off.Status())
	uow.AssertAll(t)
}

func TestCancelOrderCommandHandler_Handle_ReleasesOfferAndLosesVisitor(t *testing.T) {
	for _, status := range []order.Status{order.Pending, order.Confirmed} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			off := testOffer(t, offer.Reserved)
			v := testVisitor(t, visitor.Interested)
			o := testOrder(t, status, off, v)

			uow := newMockUoW()
			uow.expectCommitted(ctx)
			uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
			uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
			uow.visitors.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once()
			uow.orders.On("Update", ctx, o).Return(nil).Once()
			uow.offers.On("Update", ctx, off).Return(nil).Once()
			uow.visitors.On("Update", ctx, v).Return(nil).Once()
			factory := factoryOf[commands.SaleUoW](uow)

			cmd, err := commands.NewCancelOrderCommand(o.ID())
			require.NoError(t, err)

			details, err := commands.NewCancelOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, order.Canceled, details.Order.Status())
			assert.Equal(t, offer.Available, details.Offer.Status())
			assert.Equal(t, visitor.Lost, details.Visitor.Status())
			uow.AssertAll(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_Terminal_PreconditionFailed(t *testing.T) {
	tests := []struct {
		status  order.Status
		offer   offer.Status
		message string
	}{
		{order.Completed, offer.Sold, "cannot cancel a completed order"},
		{order.Canceled, offer.Available, "order is already canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			ctx := t.Context()
			off := testOffer(t, tt.offer)
			o := testOrder(t, tt.status, off, nil)

			uow := newMockUoW()
			uow.expectRolledBack(ctx)
			uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
			uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once()
			factory := factoryOf[commands.SaleUoW](uow)

			cmd, err := commands.NewCancelOrderCommand(o.ID())
			require.NoError(t, err)

			_, err = commands.NewCancelOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrPreconditionFailed)
			require.ErrorContains(t, err, tt.message)
			assert.Equal(t, tt.offer, off.Status())
			uow.AssertAll(t)
		})
	}
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Confirmed, nil, nil)
	remarks := "customs paperwork sent"
	ps := order.Shipping

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.orders.On("Update", ctx, o).Return(nil).Once()
	factory := factoryOf[commands.SaleUoW](uow)

	cmd, err := commands.NewUpdateOrderCommand(o.ID(), order.Patch{Remarks: &remarks, ProcessStatus: &ps})
	require.NoError(t, err)

	details, err := commands.NewUpdateOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, remarks, details.Order.Remarks())
	assert.Equal(t, order.Shipping, details.Order.ProcessStatus())
	uow.AssertAll(t)
}

func TestUpdateOrderCommandHandler_Handle_Terminal_PreconditionFailed(t *testing.T) {
	for _, status := range []order.Status{order.Completed, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			o := testOrder(t, status, nil, nil)
			price := kernel.MustMoney("1")

			uow := newMockUoW()
			uow.expectRolledBack(ctx)
			uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
			factory := factoryOf[commands.SaleUoW](uow)

			cmd, err := commands.NewUpdateOrderCommand(o.ID(), order.Patch{AgreedPrice: &price})
			require.NoError(t, err)

			_, err = commands.NewUpdateOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrPreconditionFailed)
			assert.Equal(t, "18000.00", o.AgreedPrice().String())
			uow.AssertAll(t)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_PendingOrder_WithdrawsParties(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Reserved)
	v := testVisitor(t, visitor.Interested)
	o := testOrder(t, order.Pending, off, v)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.offers.On("GetForUpdate", ctx, off.ID()).Return(off, nil).Once(),
		uow.visitors.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once(),
		uow.offers.On("Update", ctx, off).Return(nil).Once(),
		uow.visitors.On("Update", ctx, v).Return(nil).Once(),
		uow.orders.On("Delete", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := factoryOf[commands.SaleUoW](uow)

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	require.NoError(t, commands.NewDeleteOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd))

	assert.Equal(t, offer.Available, off.Status())
	assert.Equal(t, visitor.Contacted, v.Status())
	uow.AssertAll(t)
}

func TestDeleteOrderCommandHandler_Handle_CanceledOrder_LeavesPartiesAlone(t *testing.T) {
	ctx := t.Context()
	off := testOffer(t, offer.Reserved)
	o := testOrder(t, order.Canceled, off, testVisitor(t, visitor.Lost))

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.orders.On("Delete", ctx, o).Return(nil).Once()
	factory := factoryOf[commands.SaleUoW](uow)

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	require.NoError(t, commands.NewDeleteOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd))

	assert.Equal(t, offer.Reserved, off.Status())
	uow.AssertAll(t)
}

func TestDeleteOrderCommandHandler_Handle_ConfirmedOrCompleted_Conflict(t *testing.T) {
	for _, status := range []order.Status{order.Confirmed, order.Completed} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			o := testOrder(t, status, testOffer(t, offer.Reserved), nil)

			uow := newMockUoW()
			uow.expectRolledBack(ctx)
			uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
			factory := factoryOf[commands.SaleUoW](uow)

			cmd, err := commands.NewDeleteOrderCommand(o.ID())
			require.NoError(t, err)

			err = commands.NewDeleteOrderCommandHandler(factory, commands.NoRetry()).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrConflict)
			uow.AssertAll(t)
		})
	}
}
