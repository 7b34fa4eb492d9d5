package commands_test

import (
	"testing"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	offerID := kernel.NewUUID()
	visitorID := kernel.NewUUID()
	car, err := order.NewCustomCar("Audi", "A3", 2023, "", "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		draft   order.Draft
		wantErr error
	}{
		{
			name: "inside order with contact",
			draft: order.Draft{
				OfferID: &offerID, ClientName: "A", ClientPhone: "0555",
				AgreedPrice: kernel.MustMoney("18000"),
			},
		},
		{
			name:  "contact derived from visitor",
			draft: order.Draft{CustomCar: &car, VisitorID: &visitorID, AgreedPrice: kernel.MustMoney("1")},
		},
		{
			name: "both offer and custom car",
			draft: order.Draft{
				OfferID: &offerID, CustomCar: &car, ClientName: "A", ClientPhone: "0555",
			},
			wantErr: order.ErrVehicleIsAmbiguous,
		},
		{
			name:    "neither offer nor custom car",
			draft:   order.Draft{ClientName: "A", ClientPhone: "0555"},
			wantErr: order.ErrVehicleIsAmbiguous,
		},
		{
			name: "deposit above price",
			draft: order.Draft{
				OfferID: &offerID, ClientName: "A", ClientPhone: "0555",
				AgreedPrice: kernel.MustMoney("100"), Deposit: kernel.MustMoney("200"),
			},
			wantErr: order.ErrDepositExceedsPrice,
		},
		{
			name:    "no way to know the client",
			draft:   order.Draft{OfferID: &offerID, AgreedPrice: kernel.MustMoney("100")},
			wantErr: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tt.draft)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Error(t, cmd.Validate())
				return
			}
			require.NoError(t, err)
			assert.NoError(t, cmd.Validate())
		})
	}
}

func TestNewCreateOrderCommand_InvalidID(t *testing.T) {
	offerID := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, order.Draft{
		OfferID: &offerID, ClientName: "A", ClientPhone: "0555",
	})

	require.Error(t, err)
}

func TestOrderTargetCommands_RequireValidID(t *testing.T) {
	_, err := commands.NewConfirmOrderCommand(kernel.UUID{})
	require.Error(t, err)

	_, err = commands.NewCompleteOrderCommand(kernel.UUID{})
	require.Error(t, err)

	_, err = commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)

	_, err = commands.NewDeleteOrderCommand(kernel.UUID{})
	require.Error(t, err)

	cmd, err := commands.NewConfirmOrderCommand(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.ErrorIs(t, commands.ConfirmOrderCommand{}.Validate(), commands.ErrConfirmOrderCommandIsNotConstructed)
}
