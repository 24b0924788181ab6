package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/pickuprepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPickupSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPickupSummaryQueryHandler
}

func (suite *GetPickupSummaryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&pickuprepo.TimeSlotDTO{}, &pickuprepo.PickupRequestDTO{},
		&pickuprepo.PickupAttemptDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPickupSummaryQueryHandler(db)
}

func (suite *GetPickupSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPickupSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE pickup_requests, pickup_attempts, time_slots CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetPickupSummaryQueryHandlerTestSuite) TestHandle_NoPickups_ReturnsZeroCounts() {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetPickupSummaryQuery(kernel.NewUUID(), date)
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, summary.Total)
	suite.Equal(date, summary.Date)
}

func (suite *GetPickupSummaryQueryHandlerTestSuite) TestHandle_MixedStatuses_GroupsByStatus() {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	operatorID := kernel.NewUUID()

	statuses := []pickup.Status{
		pickup.Confirmed, pickup.Confirmed,
		pickup.InProgress,
		pickup.Completed, pickup.Completed, pickup.Completed,
		pickup.Failed,
		pickup.Cancelled,
		pickup.Rescheduled,
	}
	for i, status := range statuses {
		suite.savePickup(operatorID, status, date.Add(time.Duration(8+i)*time.Hour))
	}

	// Same operator, next day: must not be counted.
	suite.savePickup(operatorID, pickup.Confirmed, date.AddDate(0, 0, 1).Add(9*time.Hour))
	// Same day, different operator: must not be counted.
	suite.savePickup(kernel.NewUUID(), pickup.Completed, date.Add(9*time.Hour))

	query, err := queries.NewGetPickupSummaryQuery(operatorID, date)
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(summary.OperatorID.IsEqual(operatorID))
	suite.Equal(9, summary.Total)
	suite.Equal(2, summary.Confirmed)
	suite.Equal(1, summary.InProgress)
	suite.Equal(3, summary.Completed)
	suite.Equal(1, summary.Failed)
	suite.Equal(1, summary.Cancelled)
	suite.Equal(1, summary.Other, "Rescheduled should land in the catch-all bucket")
}

func (suite *GetPickupSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPickupSummaryQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
}

func (suite *GetPickupSummaryQueryHandlerTestSuite) savePickup(operatorID kernel.UUID,
	status pickup.Status, scheduledDate time.Time) {
	location, err := kernel.NewGeoPoint(4.6482, -74.1100)
	suite.Require().NoError(err)

	request, err := pickup.RestorePickupRequest(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), pickup.DirectPickup, pickup.PriorityNormal, location,
		status, scheduledDate, nil, &operatorID, nil, nil, 3)
	suite.Require().NoError(err)

	repo := pickuprepo.NewGormPickupRepository(suite.db, &noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), request))
}

func TestGetPickupSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPickupSummaryQueryHandlerTestSuite))
}
