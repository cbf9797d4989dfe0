//go:build wireinject
// +build wireinject

package di

import (
	"formpick/internal"
	"formpick/internal/controllers"
	"formpick/internal/providers"
	"formpick/internal/services"
	"formpick/internal/storage"
	"formpick/internal/structures"

	wire "github.com/google/wire"
)

var storageSet = wire.NewSet(
	storage.NewMemoryStore,
	storage.NewZstdCompressor,
	storage.NewFileManager,
	storage.NewPersistentStore,
	storage.NewMigrator,
	storage.NewScheduler,
	wire.Bind(new(storage.RecordStore), new(*storage.PersistentStore)),
	wire.Bind(new(providers.DocumentCounter), new(*storage.MemoryStore)),
)

var serviceSet = wire.NewSet(
	services.NewMemberService,
	services.NewMachineService,
	services.NewScheduleService,
	services.NewWorkoutLogService,
	services.NewAssessmentService,
	services.NewFeedbackService,
	services.NewDashboardService,
	wire.Bind(new(services.MemberServiceInterface), new(*services.MemberService)),
	wire.Bind(new(services.MachineServiceInterface), new(*services.MachineService)),
	wire.Bind(new(services.ScheduleServiceInterface), new(*services.ScheduleService)),
	wire.Bind(new(services.WorkoutLogServiceInterface), new(*services.WorkoutLogService)),
	wire.Bind(new(services.AssessmentServiceInterface), new(*services.AssessmentService)),
	wire.Bind(new(services.FeedbackServiceInterface), new(*services.FeedbackService)),
	wire.Bind(new(services.DashboardServiceInterface), new(*services.DashboardService)),
)

var controllerSet = wire.NewSet(
	controllers.NewResponder,
	controllers.NewHealthController,
	controllers.NewMemberController,
	controllers.NewMachineController,
	controllers.NewScheduleController,
	controllers.NewWorkoutLogController,
	controllers.NewAssessmentController,
	controllers.NewFeedbackController,
	controllers.NewDashboardController,
	wire.Struct(new(internal.Controllers), "*"),
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewClockProvider,
		providers.NewIDProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storageSet,
		serviceSet,
		controllerSet,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
