package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPickupOutcomeUoW struct{ mock.Mock }

func (m *MockPickupOutcomeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupOutcomeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupOutcomeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupOutcomeUoW) PickupRepository() ports.PickupRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRepository)
}

func (m *MockPickupOutcomeUoW) CapacityProvider() ports.CapacityProvider {
	args := m.Called()
	return args.Get(0).(ports.CapacityProvider)
}

func (m *MockPickupOutcomeUoW) GuideRepository() ports.GuideRepository {
	args := m.Called()
	return args.Get(0).(ports.GuideRepository)
}

type MockPickupOutcomeUoWFactory struct{ mock.Mock }

func (m *MockPickupOutcomeUoWFactory) Create() commands.PickupOutcomeUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupOutcomeUoW)
}

// confirmedBooking returns a request booked into the slot, the way
// SchedulePickup leaves them.
func confirmedBooking(t *testing.T, operatorID kernel.UUID) (*pickup.PickupRequest, *pickup.TimeSlot) {
	t.Helper()
	request := newUnscheduledRequest(t)
	slot := newOpenSlot(t, operatorID, 5)
	require.NoError(t, services.NewPickupScheduler().Schedule(request, slot, testClock.Now()))
	request.DrainEvents()
	return request, slot
}

func TestRecordPickupOutcomeCommandHandler_Handle_SuccessCompletesAndStampsGuide(t *testing.T) {
	ctx := t.Context()

	operatorID := kernel.NewUUID()
	request, _ := confirmedBooking(t, operatorID)
	guide, err := shipment.NewGuide(request.GuideID(), kernel.NewUUID(),
		request.CustomerID(), "Servientrega", testClock.Now())
	require.NoError(t, err)
	guide.DrainEvents()

	cmd, err := commands.NewRecordPickupOutcomeCommand(request.ID(), operatorID,
		true, "", "handed over complete", []string{"photo.png"}, "Bogota hub")
	require.NoError(t, err)

	pickupRepo := new(MockPickupRepository)
	guideRepo := new(MockGuideRepository)
	uow := new(MockPickupOutcomeUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		uow.On("GuideRepository").Return(guideRepo).Once(),
		guideRepo.On("Get", ctx, request.GuideID()).Return(guide, nil).Once(),
		guideRepo.On("Update", ctx, guide).Return(nil).Once(),
		pickupRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupOutcomeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPickupOutcomeCommandHandler(factory,
		services.NewPickupScheduler(), testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, pickup.Completed, request.Status())
	require.Equal(t, shipment.PickedUp, guide.Status())
	pickupRepo.AssertExpectations(t)
	guideRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// A failure on the allow-list books the operator's next open slot inside
// the same transaction and moves the reservation atomically.
func TestRecordPickupOutcomeCommandHandler_Handle_FailureAutoReschedules(t *testing.T) {
	ctx := t.Context()

	operatorID := kernel.NewUUID()
	request, oldSlot := confirmedBooking(t, operatorID)

	nextStart := testClock.Now().Add(48 * time.Hour)
	nextSlot, err := pickup.NewTimeSlot(kernel.NewUUID(), operatorID,
		nextStart, nextStart.Add(4*time.Hour), 5)
	require.NoError(t, err)

	cmd, err := commands.NewRecordPickupOutcomeCommand(request.ID(), operatorID,
		false, "customer_not_available", "nobody answered", nil, "")
	require.NoError(t, err)

	pickupRepo := new(MockPickupRepository)
	capacity := new(MockCapacityProvider)
	uow := new(MockPickupOutcomeUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		uow.On("CapacityProvider").Return(capacity).Once(),
		capacity.On("GetSlot", ctx, oldSlot.ID()).Return(oldSlot, nil).Once(),
		capacity.On("NextAvailableSlot", ctx, operatorID, testClock.Now()).Return(nextSlot, nil).Once(),
		capacity.On("SaveSlot", ctx, nextSlot).Return(nil).Once(),
		capacity.On("SaveSlot", ctx, oldSlot).Return(nil).Once(),
		pickupRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupOutcomeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPickupOutcomeCommandHandler(factory,
		services.NewPickupScheduler(), testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, pickup.Confirmed, request.Status())
	require.True(t, request.TimeSlotID().IsEqual(nextSlot.ID()))
	require.Equal(t, 0, oldSlot.CurrentPickups())
	require.Equal(t, 1, nextSlot.CurrentPickups())
	require.Equal(t, 1, request.AttemptCount())
	capacity.AssertExpectations(t)
}

func TestRecordPickupOutcomeCommandHandler_Handle_NoOpenSlotStaysRescheduled(t *testing.T) {
	ctx := t.Context()

	operatorID := kernel.NewUUID()
	request, oldSlot := confirmedBooking(t, operatorID)

	cmd, err := commands.NewRecordPickupOutcomeCommand(request.ID(), operatorID,
		false, "traffic_delay", "", nil, "")
	require.NoError(t, err)

	pickupRepo := new(MockPickupRepository)
	capacity := new(MockCapacityProvider)
	uow := new(MockPickupOutcomeUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		uow.On("CapacityProvider").Return(capacity).Once(),
		capacity.On("GetSlot", ctx, oldSlot.ID()).Return(oldSlot, nil).Once(),
		capacity.On("NextAvailableSlot", ctx, operatorID, testClock.Now()).
			Return(nil, errs.ErrObjectNotFound).Once(),
		pickupRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupOutcomeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPickupOutcomeCommandHandler(factory,
		services.NewPickupScheduler(), testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, pickup.Rescheduled, request.Status())
	require.Equal(t, 1, oldSlot.CurrentPickups())
}

// Reasons off the allow-list never trigger an automatic booking.
func TestRecordPickupOutcomeCommandHandler_Handle_ManualReasonSkipsCapacity(t *testing.T) {
	ctx := t.Context()

	operatorID := kernel.NewUUID()
	request, _ := confirmedBooking(t, operatorID)

	cmd, err := commands.NewRecordPickupOutcomeCommand(request.ID(), operatorID,
		false, "package_not_ready", "", nil, "")
	require.NoError(t, err)

	pickupRepo := new(MockPickupRepository)
	uow := new(MockPickupOutcomeUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		pickupRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupOutcomeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPickupOutcomeCommandHandler(factory,
		services.NewPickupScheduler(), testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, pickup.Rescheduled, request.Status())
	uow.AssertNotCalled(t, "CapacityProvider")
}
