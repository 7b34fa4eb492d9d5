package commands_test

import (
	"testing"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/visitor"

	"github.com/stretchr/testify/require"
)

var fastRetry = commands.RetryPolicy{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}

func testOffer(t *testing.T, status offer.Status) *offer.Offer {
	t.Helper()
	now := time.Now().UTC()
	o, err := offer.RestoreOffer(kernel.NewUUID(), offer.Listing{
		Brand: "Dacia",
		Model: "Sandero",
		Year:  2021,
		Price: kernel.MustMoney("18000"),
	}, status, now, now)
	require.NoError(t, err)
	return o
}

func testVisitor(t *testing.T, status visitor.Status) *visitor.Visitor {
	t.Helper()
	now := time.Now().UTC()
	v, err := visitor.RestoreVisitor(kernel.NewUUID(), visitor.Profile{Name: "Nadia", Phone: "0661"}, status, nil, now, now)
	require.NoError(t, err)
	return v
}

func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), "Karim", "0777")
	require.NoError(t, err)
	return c
}

// testOrder restores an order in status that references off and v (either may be nil).
func testOrder(t *testing.T, status order.Status, off *offer.Offer, v *visitor.Visitor) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	s := order.Snapshot{
		ID:          kernel.NewUUID(),
		ClientName:  "A",
		ClientPhone: "0555",
		AgreedPrice: kernel.MustMoney("18000"),
		Deposit:     kernel.ZeroMoney(),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if off != nil {
		id := off.ID()
		s.OfferID = &id
		s.Type = order.Inside
	} else {
		car, err := order.NewCustomCar("Audi", "A3", 2023, "black", "")
		require.NoError(t, err)
		s.CustomCar = &car
		s.Type = order.Outside
		s.ProcessStatus = order.Ordered
	}
	if v != nil {
		id := v.ID()
		s.VisitorID = &id
	}

	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}
