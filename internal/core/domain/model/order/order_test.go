package order_test

import (
	"testing"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func insideDraft() order.Draft {
	return order.Draft{
		OfferID:     ptr(kernel.NewUUID()),
		VisitorID:   ptr(kernel.NewUUID()),
		ClientName:  "A",
		ClientPhone: "0555",
		AgreedPrice: kernel.MustMoney("18000"),
		Deposit:     kernel.MustMoney("2000"),
	}
}

func outsideDraft(t *testing.T) order.Draft {
	t.Helper()
	car, err := order.NewCustomCar("Hyundai", "Tucson", 2023, "grey", "KMHJ381")
	require.NoError(t, err)
	return order.Draft{
		CustomCar:   &car,
		ClientName:  "B",
		ClientPhone: "0666",
		AgreedPrice: kernel.MustMoney("31000"),
	}
}

func newOrder(t *testing.T, draft order.Draft) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), draft)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending inside order", func(t *testing.T) {
		draft := insideDraft()
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, draft)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Inside, o.Type())
		assert.Equal(t, order.NoProcess, o.ProcessStatus())
		assert.True(t, o.OfferID().IsEqual(*draft.OfferID))
		assert.Nil(t, o.CustomCar())
		assert.Equal(t, "16000.00", o.RemainingAmount().String())
		assert.True(t, o.HoldsOffer())
	})

	t.Run("should create outside order with ordered process status", func(t *testing.T) {
		o := newOrder(t, outsideDraft(t))

		assert.Equal(t, order.Outside, o.Type())
		assert.Equal(t, order.Ordered, o.ProcessStatus())
		assert.Nil(t, o.OfferID())
		require.NotNil(t, o.CustomCar())
		assert.Equal(t, "Tucson", o.CustomCar().Model())
	})

	t.Run("should reject both offer and custom car", func(t *testing.T) {
		draft := outsideDraft(t)
		draft.OfferID = ptr(kernel.NewUUID())

		_, err := order.NewOrder(kernel.NewUUID(), draft)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, order.ErrVehicleIsAmbiguous)
	})

	t.Run("should reject neither offer nor custom car", func(t *testing.T) {
		draft := insideDraft()
		draft.OfferID = nil

		_, err := order.NewOrder(kernel.NewUUID(), draft)

		assert.ErrorIs(t, err, order.ErrVehicleIsAmbiguous)
	})

	t.Run("should require client contact", func(t *testing.T) {
		draft := insideDraft()
		draft.ClientName = ""
		draft.ClientPhone = ""

		_, err := order.NewOrder(kernel.NewUUID(), draft)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "clientName")
		assert.Contains(t, err.Error(), "clientPhone")
	})

	t.Run("should reject deposit above price", func(t *testing.T) {
		draft := insideDraft()
		draft.Deposit = kernel.MustMoney("18000.01")

		_, err := order.NewOrder(kernel.NewUUID(), draft)

		assert.ErrorIs(t, err, order.ErrDepositExceedsPrice)
	})

	t.Run("should accept zero price", func(t *testing.T) {
		draft := insideDraft()
		draft.AgreedPrice = kernel.ZeroMoney()
		draft.Deposit = kernel.ZeroMoney()

		_, err := order.NewOrder(kernel.NewUUID(), draft)

		assert.NoError(t, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should confirm then complete", func(t *testing.T) {
		o := newOrder(t, insideDraft())

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
		assert.False(t, o.HoldsOffer())
	})

	t.Run("should not complete before confirm", func(t *testing.T) {
		o := newOrder(t, insideDraft())

		err := o.Complete()

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should not cancel twice", func(t *testing.T) {
		o := newOrder(t, insideDraft())
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "order is already canceled")
	})

	t.Run("should not cancel completed order", func(t *testing.T) {
		o := newOrder(t, insideDraft())
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Complete())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "cannot cancel a completed order")
	})

	t.Run("should allow withdraw of pending and canceled only", func(t *testing.T) {
		o := newOrder(t, insideDraft())
		require.NoError(t, o.ValidateWithdraw())

		require.NoError(t, o.Confirm())
		require.ErrorIs(t, o.ValidateWithdraw(), errs.ErrConflict)

		require.NoError(t, o.Cancel())
		require.NoError(t, o.ValidateWithdraw())
	})
}

func TestOrder_Update(t *testing.T) {
	t.Run("should patch terms and remarks", func(t *testing.T) {
		o := newOrder(t, insideDraft())

		err := o.Update(order.Patch{
			AgreedPrice: ptr(kernel.MustMoney("17500")),
			Profit:      ptr(kernel.MustMoney("1500")),
			Remarks:     ptr("negotiated"),
			ClientName:  ptr("Ahmed"),
		})

		require.NoError(t, err)
		assert.Equal(t, "17500.00", o.AgreedPrice().String())
		assert.Equal(t, "2000.00", o.Deposit().String())
		assert.Equal(t, "1500.00", o.Profit().String())
		assert.Equal(t, "negotiated", o.Remarks())
		assert.Equal(t, "Ahmed", o.ClientName())
		assert.Equal(t, "0555", o.ClientPhone())
	})

	t.Run("should leave order untouched when any field is invalid", func(t *testing.T) {
		o := newOrder(t, insideDraft())

		err := o.Update(order.Patch{
			Remarks: ptr("changed"),
			Deposit: ptr(kernel.MustMoney("99999")),
		})

		require.ErrorIs(t, err, order.ErrDepositExceedsPrice)
		assert.Empty(t, o.Remarks())
		assert.Equal(t, "2000.00", o.Deposit().String())
	})

	t.Run("should track logistics of outside order", func(t *testing.T) {
		o := newOrder(t, outsideDraft(t))
		arrival := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

		err := o.Update(order.Patch{
			ProcessStatus:     ptr(order.Shipping),
			ShippingReference: ptr("MSCU1234567"),
			ExpectedArrival:   &arrival,
		})

		require.NoError(t, err)
		assert.Equal(t, order.Shipping, o.ProcessStatus())
		assert.Equal(t, "MSCU1234567", o.ShippingReference())
		assert.Equal(t, arrival, *o.ExpectedArrival())
	})

	t.Run("should reject process status on inside order", func(t *testing.T) {
		o := newOrder(t, insideDraft())

		err := o.Update(order.Patch{ProcessStatus: ptr(order.Customs)})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, order.ErrProcessStatusInside)
	})

	t.Run("should reject edits once terminal", func(t *testing.T) {
		for _, finish := range []func(o *order.Order) error{
			func(o *order.Order) error { return o.Cancel() },
			func(o *order.Order) error {
				if err := o.Confirm(); err != nil {
					return err
				}
				return o.Complete()
			},
		} {
			o := newOrder(t, insideDraft())
			require.NoError(t, finish(o))

			err := o.Update(order.Patch{Remarks: ptr("late")})

			require.ErrorIs(t, err, errs.ErrPreconditionFailed)
			assert.Empty(t, o.Remarks())
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	base := func() order.Snapshot {
		return order.Snapshot{
			ID:          kernel.NewUUID(),
			OfferID:     ptr(kernel.NewUUID()),
			ClientName:  "A",
			ClientPhone: "0555",
			AgreedPrice: kernel.MustMoney("18000"),
			Deposit:     kernel.ZeroMoney(),
			Status:      order.Confirmed,
			Type:        order.Inside,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
	}

	t.Run("should restore stored order", func(t *testing.T) {
		o, err := order.RestoreOrder(base())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, created, o.CreatedAt())
	})

	t.Run("should tolerate canceled order whose offer was deleted", func(t *testing.T) {
		s := base()
		s.OfferID = nil
		s.Status = order.Canceled

		o, err := order.RestoreOrder(s)

		require.NoError(t, err)
		assert.Nil(t, o.OfferID())
		assert.Equal(t, order.Inside, o.Type())
	})

	t.Run("should reject active order without vehicle", func(t *testing.T) {
		s := base()
		s.OfferID = nil

		_, err := order.RestoreOrder(s)

		assert.ErrorIs(t, err, order.ErrVehicleIsAmbiguous)
	})

	t.Run("should reject process status on inside order", func(t *testing.T) {
		s := base()
		s.ProcessStatus = order.Arrived

		_, err := order.RestoreOrder(s)

		assert.ErrorIs(t, err, order.ErrProcessStatusInside)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestNewCustomCar(t *testing.T) {
	_, err := order.NewCustomCar("", "", 1700, "", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func eventNames(o *order.Order) []string {
	var names []string
	for _, e := range o.DomainEvents() {
		names = append(names, e.EventName())
	}
	return names
}

func TestOrder_DomainEvents(t *testing.T) {
	t.Run("should record placement with the sale terms", func(t *testing.T) {
		draft := insideDraft()
		o := newOrder(t, draft)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		placed, ok := events[0].(order.PlacedEvent)
		require.True(t, ok)
		assert.True(t, placed.AggregateID().IsEqual(o.ID()))
		assert.Equal(t, order.Inside, placed.Type)
		assert.True(t, placed.OfferID.IsEqual(*draft.OfferID))
		assert.Equal(t, "18000.00", placed.AgreedPrice.String())
	})

	t.Run("should record each transition in order", func(t *testing.T) {
		o := newOrder(t, insideDraft())

		require.NoError(t, o.Confirm())
		require.NoError(t, o.Complete())

		assert.Equal(t, []string{order.PlacedEventName, order.ConfirmedEventName, order.CompletedEventName}, eventNames(o))
	})

	t.Run("should not record rejected transitions", func(t *testing.T) {
		o := newOrder(t, insideDraft())
		o.ClearDomainEvents()

		require.ErrorIs(t, o.Complete(), errs.ErrPreconditionFailed)
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should record cancellation with the released parties", func(t *testing.T) {
		draft := insideDraft()
		o := newOrder(t, draft)
		o.ClearDomainEvents()

		require.NoError(t, o.Cancel())

		events := o.DomainEvents()
		require.Len(t, events, 1)
		canceled, ok := events[0].(order.CanceledEvent)
		require.True(t, ok)
		assert.True(t, canceled.OfferID.IsEqual(*draft.OfferID))
		assert.True(t, canceled.VisitorID.IsEqual(*draft.VisitorID))
	})

	t.Run("should record withdrawal of a canceled order", func(t *testing.T) {
		o := newOrder(t, outsideDraft(t))
		require.NoError(t, o.Cancel())
		o.ClearDomainEvents()

		require.NoError(t, o.Withdraw())

		events := o.DomainEvents()
		require.Len(t, events, 1)
		withdrawn, ok := events[0].(order.WithdrawnEvent)
		require.True(t, ok)
		assert.Equal(t, order.Canceled, withdrawn.Status)
		assert.Nil(t, withdrawn.OfferID)
	})

	t.Run("should refuse to withdraw a confirmed order", func(t *testing.T) {
		o := newOrder(t, insideDraft())
		require.NoError(t, o.Confirm())
		o.ClearDomainEvents()

		require.ErrorIs(t, o.Withdraw(), errs.ErrConflict)
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should not record events when restored", func(t *testing.T) {
		o := newOrder(t, insideDraft())

		restored, err := order.RestoreOrder(order.Snapshot{
			ID:          o.ID(),
			OfferID:     o.OfferID(),
			VisitorID:   o.VisitorID(),
			ClientName:  o.ClientName(),
			ClientPhone: o.ClientPhone(),
			AgreedPrice: o.AgreedPrice(),
			Deposit:     o.Deposit(),
			Status:      o.Status(),
			Type:        o.Type(),
			CreatedAt:   o.CreatedAt(),
			UpdatedAt:   o.UpdatedAt(),
		})

		require.NoError(t, err)
		assert.Empty(t, restored.DomainEvents())
	})
}
