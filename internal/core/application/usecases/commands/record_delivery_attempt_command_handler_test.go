package commands_test

import (
	"context"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGuideUoW struct{ mock.Mock }

func (m *MockGuideUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGuideUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGuideUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGuideUoW) GuideRepository() ports.GuideRepository {
	args := m.Called()
	return args.Get(0).(ports.GuideRepository)
}

type MockGuideUoWFactory struct{ mock.Mock }

func (m *MockGuideUoWFactory) Create() commands.GuideUoW {
	args := m.Called()
	return args.Get(0).(commands.GuideUoW)
}

func newGuideOutForDelivery(t *testing.T) *shipment.Guide {
	t.Helper()
	guide, err := shipment.NewGuide(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), "Servientrega", testClock.Now())
	require.NoError(t, err)
	require.NoError(t, guide.Pickup("Bogota hub", testClock.Now()))
	require.NoError(t, guide.Transit("Medellin hub", testClock.Now()))
	require.NoError(t, guide.OutForDelivery(testClock.Now()))
	guide.DrainEvents()
	return guide
}

func expectGuideRoundTrip(ctx context.Context, uow *MockGuideUoW,
	guideRepo *MockGuideRepository, guide *shipment.Guide) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GuideRepository").Return(guideRepo).Once(),
		guideRepo.On("Get", ctx, guide.ID()).Return(guide, nil).Once(),
		guideRepo.On("Update", ctx, guide).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestRecordDeliveryAttemptCommandHandler_Handle_SuccessDelivers(t *testing.T) {
	ctx := t.Context()
	guide := newGuideOutForDelivery(t)

	cmd, err := commands.NewRecordDeliveryAttemptCommand(guide.ID(),
		shipment.OutcomeSuccess, "", "left at reception", "Ana Torres",
		"Cra 7 # 45-10, Bogota", []string{"signature.png"})
	require.NoError(t, err)

	guideRepo := new(MockGuideRepository)
	uow := new(MockGuideUoW)
	expectGuideRoundTrip(ctx, uow, guideRepo, guide)

	factory := new(MockGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDeliveryAttemptCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, shipment.Delivered, guide.Status())
	guideRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordDeliveryAttemptCommandHandler_Handle_FailureBurnsAttempt(t *testing.T) {
	ctx := t.Context()
	guide := newGuideOutForDelivery(t)

	cmd, err := commands.NewRecordDeliveryAttemptCommand(guide.ID(),
		shipment.OutcomeFailed, "recipient absent", "", "", "", nil)
	require.NoError(t, err)

	guideRepo := new(MockGuideRepository)
	uow := new(MockGuideUoW)
	expectGuideRoundTrip(ctx, uow, guideRepo, guide)

	factory := new(MockGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDeliveryAttemptCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, shipment.OutForDelivery, guide.Status())
	require.NotNil(t, guide.Retry())
	require.Equal(t, 1, guide.Retry().AttemptCount())
}

// An allow-listed failure reason is recorded as rescheduled while the cycle
// still permits a later attempt, and the event proposes the next window.
func TestRecordDeliveryAttemptCommandHandler_Handle_AllowListedReasonReschedules(t *testing.T) {
	ctx := t.Context()
	guide := newGuideOutForDelivery(t)

	cmd, err := commands.NewRecordDeliveryAttemptCommand(guide.ID(),
		shipment.OutcomeFailed, "customer_not_available", "", "", "", nil)
	require.NoError(t, err)

	guideRepo := new(MockGuideRepository)
	uow := new(MockGuideUoW)
	expectGuideRoundTrip(ctx, uow, guideRepo, guide)

	factory := new(MockGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDeliveryAttemptCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, shipment.OutForDelivery, guide.Status())
	attempts := guide.Retry().Attempts()
	require.Len(t, attempts, 1)
	require.Equal(t, shipment.OutcomeRescheduled, attempts[0].Outcome())

	events := guide.DrainEvents()
	require.Len(t, events, 1)
	recorded, ok := events[0].(shipment.DeliveryAttemptRecorded)
	require.True(t, ok)
	require.Equal(t, shipment.OutcomeRescheduled, recorded.Outcome())
	require.Equal(t, testClock.Now().Add(shipment.DeliveryRetryInterval),
		recorded.NextAttemptAfter())
}

// Reasons off the allow-list stay failed and wait for a manual decision.
func TestRecordDeliveryAttemptCommandHandler_Handle_UnlistedReasonStaysFailed(t *testing.T) {
	ctx := t.Context()
	guide := newGuideOutForDelivery(t)

	cmd, err := commands.NewRecordDeliveryAttemptCommand(guide.ID(),
		shipment.OutcomeFailed, "weather", "", "", "", nil)
	require.NoError(t, err)

	guideRepo := new(MockGuideRepository)
	uow := new(MockGuideUoW)
	expectGuideRoundTrip(ctx, uow, guideRepo, guide)

	factory := new(MockGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDeliveryAttemptCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	attempts := guide.Retry().Attempts()
	require.Len(t, attempts, 1)
	require.Equal(t, shipment.OutcomeFailed, attempts[0].Outcome())

	events := guide.DrainEvents()
	require.Len(t, events, 1)
	recorded, ok := events[0].(shipment.DeliveryAttemptRecorded)
	require.True(t, ok)
	require.True(t, recorded.NextAttemptAfter().IsZero())
}

// The last permitted attempt never reschedules, whatever the reason.
func TestRecordDeliveryAttemptCommandHandler_Handle_LastAttemptIsNeverRescheduled(t *testing.T) {
	ctx := t.Context()
	guide := newGuideOutForDelivery(t)

	for i := 0; i < shipment.DefaultMaxDeliveryAttempts-1; i++ {
		_, err := guide.RecordDeliveryAttempt(shipment.OutcomeFailed,
			"weather", "", testClock.Now())
		require.NoError(t, err)
	}
	guide.DrainEvents()

	cmd, err := commands.NewRecordDeliveryAttemptCommand(guide.ID(),
		shipment.OutcomeFailed, "customer_not_available", "", "", "", nil)
	require.NoError(t, err)

	guideRepo := new(MockGuideRepository)
	uow := new(MockGuideUoW)
	expectGuideRoundTrip(ctx, uow, guideRepo, guide)

	factory := new(MockGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDeliveryAttemptCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, shipment.Returned, guide.Status())
	attempts := guide.Retry().Attempts()
	require.Equal(t, shipment.OutcomeFailed,
		attempts[shipment.DefaultMaxDeliveryAttempts-1].Outcome())
}

// Spending the last attempt turns the parcel around in the same command.
func TestRecordDeliveryAttemptCommandHandler_Handle_ExhaustionReturnsToOrigin(t *testing.T) {
	ctx := t.Context()
	guide := newGuideOutForDelivery(t)

	for i := 0; i < shipment.DefaultMaxDeliveryAttempts-1; i++ {
		_, err := guide.RecordDeliveryAttempt(shipment.OutcomeFailed,
			"recipient absent", "", testClock.Now())
		require.NoError(t, err)
	}

	cmd, err := commands.NewRecordDeliveryAttemptCommand(guide.ID(),
		shipment.OutcomeFailed, "recipient absent", "", "", "", nil)
	require.NoError(t, err)

	guideRepo := new(MockGuideRepository)
	uow := new(MockGuideUoW)
	expectGuideRoundTrip(ctx, uow, guideRepo, guide)

	factory := new(MockGuideUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDeliveryAttemptCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, shipment.Returned, guide.Status())
	require.False(t, guide.Retry().IsOpen())
}

func TestRecordDeliveryAttemptCommandHandler_Handle_RequiresFailureReason(t *testing.T) {
	_, err := commands.NewRecordDeliveryAttemptCommand(kernel.NewUUID(),
		shipment.OutcomeFailed, "", "", "", "", nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
