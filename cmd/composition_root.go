package cmd

import (
	"context"
	"log/slog"
	"strings"
	"time"

	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/kafka"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. Every handler
// created here shares the same unit-of-work factory, so each command runs in
// its own transaction and publishes its drained events after commit.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	publisher  *kafka.EventPublisher
	clock      ports.Clock
	scheduler  services.PickupScheduler
	planner    services.RoutePlanner
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from a live database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	publisher := kafka.NewEventPublisher(
		strings.Split(config.KafkaBrokers, ","),
		config.KafkaEventsTopic,
		logger,
	)

	return CompositionRoot{
		gormDB: gormDB,
		uowFactory: publishingUoWFactory{
			inner:     postgres.NewGormUnitOfWorkFactory(gormDB),
			publisher: publisher,
			logger:    logger,
		},
		publisher: publisher,
		clock:     systemClock{},
		scheduler: services.NewPickupScheduler(),
		planner:   services.NewRoutePlanner(),
		logger:    logger,
	}
}

// Close releases outbound connections. Call on shutdown.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

// CreateHTTPHandlers assembles the full handler set the HTTP server serves.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		QuoteOrder:   c.CreateQuoteOrderCommandHandler(),
		ConfirmOrder: c.CreateConfirmOrderCommandHandler(),
		CancelOrder:  c.CreateCancelOrderCommandHandler(),

		GenerateGuide:         c.CreateGenerateGuideCommandHandler(),
		RecordTransit:         c.CreateRecordTransitCommandHandler(),
		MarkOutForDelivery:    c.CreateMarkOutForDeliveryCommandHandler(),
		RecordDeliveryAttempt: c.CreateRecordDeliveryAttemptCommandHandler(),
		CancelGuide:           c.CreateCancelGuideCommandHandler(),

		SchedulePickup:      c.CreateSchedulePickupCommandHandler(),
		AssignPickupToPoint: c.CreateAssignPickupToPointCommandHandler(),
		ReschedulePickup:    c.CreateReschedulePickupCommandHandler(),
		RecordPickupOutcome: c.CreateRecordPickupOutcomeCommandHandler(),
		CancelPickup:        c.CreateCancelPickupCommandHandler(),

		CreateRoute:   c.CreateCreateRouteCommandHandler(),
		StartRoute:    c.CreateStartRouteCommandHandler(),
		CompleteRoute: c.CreateCompleteRouteCommandHandler(),

		ReportIncident:   c.CreateReportIncidentCommandHandler(),
		EscalateIncident: c.CreateEscalateIncidentCommandHandler(),
		ResolveIncident:  c.CreateResolveIncidentCommandHandler(),
		CloseIncident:    c.CreateCloseIncidentCommandHandler(),

		GetShipmentTracking: c.CreateGetShipmentTrackingQueryHandler(),
		GetRouteSummary:     c.CreateGetRouteSummaryQueryHandler(),
		GetOverduePickups:   c.CreateGetOverduePickupsQueryHandler(),
		GetPickupSummary:    c.CreateGetPickupSummaryQueryHandler(),
	}
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverduePickupsQueryHandler(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateQuoteOrderCommandHandler() commands.QuoteOrderCommandHandler {
	return commands.NewQuoteOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGenerateGuideCommandHandler() commands.GenerateGuideCommandHandler {
	var f commands.GenerateGuideUoWFactory = FuncGenerateGuideUoWFactory(func() commands.GenerateGuideUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateGuideCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRecordTransitCommandHandler() commands.RecordTransitCommandHandler {
	return commands.NewRecordTransitCommandHandler(c.guideUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkOutForDeliveryCommandHandler() commands.MarkOutForDeliveryCommandHandler {
	return commands.NewMarkOutForDeliveryCommandHandler(c.guideUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRecordDeliveryAttemptCommandHandler() commands.RecordDeliveryAttemptCommandHandler {
	return commands.NewRecordDeliveryAttemptCommandHandler(c.guideUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelGuideCommandHandler() commands.CancelGuideCommandHandler {
	return commands.NewCancelGuideCommandHandler(c.guideUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	return commands.NewSchedulePickupCommandHandler(c.pickupUoWFactory(), c.scheduler, c.clock)
}

func (c *CompositionRoot) CreateAssignPickupToPointCommandHandler() commands.AssignPickupToPointCommandHandler {
	return commands.NewAssignPickupToPointCommandHandler(c.pickupUoWFactory(), c.scheduler, c.clock)
}

func (c *CompositionRoot) CreateReschedulePickupCommandHandler() commands.ReschedulePickupCommandHandler {
	return commands.NewReschedulePickupCommandHandler(c.pickupUoWFactory(), c.scheduler, c.clock)
}

func (c *CompositionRoot) CreateRecordPickupOutcomeCommandHandler() commands.RecordPickupOutcomeCommandHandler {
	var f commands.PickupOutcomeUoWFactory = FuncPickupOutcomeUoWFactory(func() commands.PickupOutcomeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPickupOutcomeCommandHandler(f, c.scheduler, c.clock)
}

func (c *CompositionRoot) CreateCancelPickupCommandHandler() commands.CancelPickupCommandHandler {
	return commands.NewCancelPickupCommandHandler(c.pickupUoWFactory(), c.scheduler, c.clock)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory(), c.planner, c.clock)
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	return commands.NewStartRouteCommandHandler(c.routeUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.routeUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReportIncidentCommandHandler() commands.ReportIncidentCommandHandler {
	return commands.NewReportIncidentCommandHandler(c.incidentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateEscalateIncidentCommandHandler() commands.EscalateIncidentCommandHandler {
	return commands.NewEscalateIncidentCommandHandler(c.incidentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateResolveIncidentCommandHandler() commands.ResolveIncidentCommandHandler {
	return commands.NewResolveIncidentCommandHandler(c.incidentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCloseIncidentCommandHandler() commands.CloseIncidentCommandHandler {
	return commands.NewCloseIncidentCommandHandler(c.incidentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetShipmentTrackingQueryHandler() queries.GetShipmentTrackingQueryHandler {
	return queries.NewGetShipmentTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteSummaryQueryHandler() queries.GetRouteSummaryQueryHandler {
	return queries.NewGetRouteSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverduePickupsQueryHandler() queries.GetOverduePickupsQueryHandler {
	return queries.NewGetOverduePickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupSummaryQueryHandler() queries.GetPickupSummaryQueryHandler {
	return queries.NewGetPickupSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) guideUoWFactory() commands.GuideUoWFactory {
	return FuncGuideUoWFactory(func() commands.GuideUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pickupUoWFactory() commands.PickupUoWFactory {
	return FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) incidentUoWFactory() commands.IncidentUoWFactory {
	return FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncGuideUoWFactory func() commands.GuideUoW

func (f FuncGuideUoWFactory) Create() commands.GuideUoW {
	return f()
}

type FuncGenerateGuideUoWFactory func() commands.GenerateGuideUoW

func (f FuncGenerateGuideUoWFactory) Create() commands.GenerateGuideUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncPickupOutcomeUoWFactory func() commands.PickupOutcomeUoW

func (f FuncPickupOutcomeUoWFactory) Create() commands.PickupOutcomeUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncIncidentUoWFactory func() commands.IncidentUoW

func (f FuncIncidentUoWFactory) Create() commands.IncidentUoW {
	return f()
}

// systemClock is the production clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// publishingUoWFactory decorates the gorm factory so every unit of work
// publishes its drained events once the transaction commits.
type publishingUoWFactory struct {
	inner     *postgres.GormUnitOfWorkFactory
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func (f publishingUoWFactory) Create() ports.UnitOfWork {
	return &publishingUnitOfWork{
		UnitOfWork: f.inner.Create(),
		publisher:  f.publisher,
		logger:     f.logger,
	}
}

type publishingUnitOfWork struct {
	ports.UnitOfWork
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// Commit commits the wrapped transaction and then ships the drained events.
// The transaction is already durable at publish time, so a publish failure
// is logged and never surfaced to the caller.
func (u *publishingUnitOfWork) Commit(ctx context.Context) error {
	if err := u.UnitOfWork.Commit(ctx); err != nil {
		return err
	}

	events := u.UnitOfWork.DrainedEvents()
	if len(events) == 0 {
		return nil
	}

	if err := u.publisher.Publish(ctx, events); err != nil {
		u.logger.ErrorContext(ctx, "Domain event publication failed",
			"events", len(events), "error", err)
	}

	return nil
}
