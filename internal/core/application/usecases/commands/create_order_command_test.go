package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderParts(t *testing.T) (order.Recipient, order.Dimensions, kernel.Money) {
	t.Helper()
	location, err := kernel.NewGeoPoint(4.6097, -74.0817)
	require.NoError(t, err)
	recipient, err := order.NewRecipient("Ana Torres", "+57 301 555 0101",
		"Cra 7 # 45-10, Bogota", location)
	require.NoError(t, err)
	dims, err := order.NewDimensions(30, 20, 15, 2.5)
	require.NoError(t, err)
	declared, err := kernel.MoneyFromFloat(150000)
	require.NoError(t, err)
	return recipient, dims, declared
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	recipient, dims, declared := validOrderParts(t)
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, recipient,
		dims, declared, order.ServiceTypeExpress)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "Ana Torres", cmd.Recipient().Name())
	assert.Equal(t, order.ServiceTypeExpress, cmd.ServiceType())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	recipient, dims, declared := validOrderParts(t)

	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(),
		recipient, dims, declared, order.ServiceTypeStandard)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnknownServiceType(t *testing.T) {
	recipient, dims, declared := validOrderParts(t)

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		recipient, dims, declared, order.ServiceTypeUnknown)
	require.Error(t, err)
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
