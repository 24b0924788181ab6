package commands_test

import (
	"context"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInConfirmedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockGuideRepository struct{ mock.Mock }

func (m *MockGuideRepository) Add(ctx context.Context, g *shipment.Guide) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGuideRepository) Update(ctx context.Context, g *shipment.Guide) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGuideRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Guide), args.Error(1)
}

func (m *MockGuideRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Guide, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Guide), args.Error(1)
}

type MockGenerateGuideUoW struct{ mock.Mock }

func (m *MockGenerateGuideUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGenerateGuideUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGenerateGuideUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGenerateGuideUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockGenerateGuideUoW) GuideRepository() ports.GuideRepository {
	args := m.Called()
	return args.Get(0).(ports.GuideRepository)
}

func (m *MockGenerateGuideUoW) PickupRepository() ports.PickupRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRepository)
}

type MockGenerateGuideUoWFactory struct{ mock.Mock }

func (m *MockGenerateGuideUoWFactory) Create() commands.GenerateGuideUoW {
	args := m.Called()
	return args.Get(0).(commands.GenerateGuideUoW)
}

func newConfirmedOrder(t *testing.T) *order.Order {
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

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), recipient,
		dims, declared, order.ServiceTypeStandard, testClock.Now())
	require.NoError(t, err)

	price, err := kernel.MoneyFromFloat(18500)
	require.NoError(t, err)
	require.NoError(t, o.Quote(price, 3, testClock.Now()))
	require.NoError(t, o.Confirm(testClock.Now()))
	return o
}

func newGenerateGuideCommand(t *testing.T, orderID kernel.UUID) commands.GenerateGuideCommand {
	t.Helper()
	location, err := kernel.NewGeoPoint(4.6482, -74.1100)
	require.NoError(t, err)
	cmd, err := commands.NewGenerateGuideCommand(kernel.NewUUID(), orderID,
		kernel.NewUUID(), "Servientrega", pickup.TierMedium, pickup.PriorityNormal, location)
	require.NoError(t, err)
	return cmd
}

func TestGenerateGuideCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	confirmedOrder := newConfirmedOrder(t)
	cmd := newGenerateGuideCommand(t, confirmedOrder.ID())

	orderRepo := new(MockOrderRepository)
	guideRepo := new(MockGuideRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockGenerateGuideUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, confirmedOrder.ID()).Return(confirmedOrder, nil).Once(),
		uow.On("GuideRepository").Return(guideRepo).Once(),
		guideRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Guide")).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Add", ctx, mock.AnythingOfType("*pickup.PickupRequest")).Return(nil).Once(),
		orderRepo.On("Update", ctx, confirmedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGenerateGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGenerateGuideCommandHandler(factory, testClock)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.WithGuide, confirmedOrder.Status())
	require.NotNil(t, confirmedOrder.GuideID())
	orderRepo.AssertExpectations(t)
	guideRepo.AssertExpectations(t)
	pickupRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

// A medium-tier shipper gets a direct collection visit; the pickup request
// added to the repository must carry that type.
func TestGenerateGuideCommandHandler_Handle_DerivesPickupType(t *testing.T) {
	ctx := t.Context()

	confirmedOrder := newConfirmedOrder(t)
	cmd := newGenerateGuideCommand(t, confirmedOrder.ID())

	orderRepo := new(MockOrderRepository)
	guideRepo := new(MockGuideRepository)
	pickupRepo := new(MockPickupRepository)
	uow := new(MockGenerateGuideUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, confirmedOrder.ID()).Return(confirmedOrder, nil).Once()
	uow.On("GuideRepository").Return(guideRepo).Once()
	guideRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Guide")).Return(nil).Once()
	uow.On("PickupRepository").Return(pickupRepo).Once()

	var added *pickup.PickupRequest
	pickupRepo.On("Add", ctx, mock.AnythingOfType("*pickup.PickupRequest")).
		Run(func(args mock.Arguments) {
			added = args.Get(1).(*pickup.PickupRequest)
		}).Return(nil).Once()

	orderRepo.On("Update", ctx, confirmedOrder).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockGenerateGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGenerateGuideCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, added)
	require.Equal(t, pickup.DirectPickup, added.PickupType())
	require.Equal(t, confirmedOrder.CustomerID(), added.CustomerID())
}

func TestGenerateGuideCommandHandler_Handle_SecondGuideRejected(t *testing.T) {
	ctx := t.Context()

	confirmedOrder := newConfirmedOrder(t)
	require.NoError(t, confirmedOrder.MarkWithGuide(kernel.NewUUID(), testClock.Now()))

	cmd := newGenerateGuideCommand(t, confirmedOrder.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockGenerateGuideUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, confirmedOrder.ID()).Return(confirmedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGenerateGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGenerateGuideCommandHandler(factory, testClock)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestGenerateGuideCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	cmd := newGenerateGuideCommand(t, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockGenerateGuideUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGenerateGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGenerateGuideCommandHandler(factory, testClock)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
