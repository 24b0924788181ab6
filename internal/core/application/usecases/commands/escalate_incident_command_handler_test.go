package commands_test

import (
	"context"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIncidentRepository struct{ mock.Mock }

func (m *MockIncidentRepository) Add(ctx context.Context, aggregate *incident.Incident) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockIncidentRepository) Update(ctx context.Context, aggregate *incident.Incident) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*incident.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*incident.Incident), args.Error(1)
}

func (m *MockIncidentRepository) GetAllOpenForGuide(ctx context.Context,
	guideID kernel.UUID) ([]*incident.Incident, error) {
	args := m.Called(ctx, guideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*incident.Incident), args.Error(1)
}

type MockIncidentUoW struct{ mock.Mock }

func (m *MockIncidentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockIncidentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockIncidentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockIncidentUoW) IncidentRepository() ports.IncidentRepository {
	args := m.Called()
	return args.Get(0).(ports.IncidentRepository)
}

func (m *MockIncidentUoW) GuideRepository() ports.GuideRepository {
	args := m.Called()
	return args.Get(0).(ports.GuideRepository)
}

type MockIncidentUoWFactory struct{ mock.Mock }

func (m *MockIncidentUoWFactory) Create() commands.IncidentUoW {
	args := m.Called()
	return args.Get(0).(commands.IncidentUoW)
}

func newReportedIncident(t *testing.T) *incident.Incident {
	t.Helper()
	reported, err := incident.NewIncident(kernel.NewUUID(), kernel.NewUUID(),
		incident.TypeDamagedPackage, incident.SeverityMedium,
		"box crushed on arrival", testClock.Now())
	require.NoError(t, err)
	reported.DrainEvents()
	return reported
}

func expectIncidentRoundTrip(ctx context.Context, uow *MockIncidentUoW,
	incidentRepo *MockIncidentRepository, reported *incident.Incident) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IncidentRepository").Return(incidentRepo).Once(),
		incidentRepo.On("Get", ctx, reported.ID()).Return(reported, nil).Once(),
		incidentRepo.On("Update", ctx, reported).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestEscalateIncidentCommandHandler_Handle_RaisesSeverity(t *testing.T) {
	ctx := t.Context()
	reported := newReportedIncident(t)

	cmd, err := commands.NewEscalateIncidentCommand(reported.ID(),
		"no progress after two days")
	require.NoError(t, err)

	incidentRepo := new(MockIncidentRepository)
	uow := new(MockIncidentUoW)
	expectIncidentRoundTrip(ctx, uow, incidentRepo, reported)

	factory := new(MockIncidentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEscalateIncidentCommandHandler(factory, testClock)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, incident.Escalated, reported.Status())
	require.Equal(t, incident.SeverityHigh, reported.Severity())
	incidentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEscalateIncidentCommandHandler_Handle_ClosedIncidentIsRejected(t *testing.T) {
	ctx := t.Context()
	reported := newReportedIncident(t)
	require.NoError(t, reported.Acknowledge("soporte", testClock.Now()))
	require.NoError(t, reported.Resolve("replacement shipped", testClock.Now()))
	require.NoError(t, reported.Close(testClock.Now()))
	reported.DrainEvents()

	cmd, err := commands.NewEscalateIncidentCommand(reported.ID(), "too late")
	require.NoError(t, err)

	incidentRepo := new(MockIncidentRepository)
	uow := new(MockIncidentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IncidentRepository").Return(incidentRepo).Once(),
		incidentRepo.On("Get", ctx, reported.ID()).Return(reported, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIncidentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEscalateIncidentCommandHandler(factory, testClock)
	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestEscalateIncidentCommandHandler_Handle_RequiresReason(t *testing.T) {
	_, err := commands.NewEscalateIncidentCommand(kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
