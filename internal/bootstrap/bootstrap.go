package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursemanager/internal/app/controllers"
	appMigrations "github.com/yigit/coursemanager/internal/app/migrations"
	appRepos "github.com/yigit/coursemanager/internal/app/repositories"
	appRoutes "github.com/yigit/coursemanager/internal/app/routes"
	appServices "github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/config"
	"github.com/yigit/coursemanager/internal/db"
	appMiddleware "github.com/yigit/coursemanager/internal/middleware"
	"github.com/yigit/coursemanager/internal/pkg/cache"
	"github.com/yigit/coursemanager/internal/pkg/logger"
	"github.com/yigit/coursemanager/internal/pkg/metrics"
	"github.com/yigit/coursemanager/internal/seed"
)

// DefaultConfigPath is read when no path is given.
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Infrastructure holds the storage backends selected by configuration.
type Infrastructure struct {
	Store    appRepos.UnitOfWork
	Postgres *db.PostgresDB // nil with the memory store
	Redis    *db.RedisDB    // nil when no Redis URL is configured
}

// Close releases every open connection.
func (i *Infrastructure) Close(lgr zerolog.Logger) {
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			lgr.Error().Err(err).Msg("Failed to close Redis client")
		}
	}
	if i.Postgres != nil {
		i.Postgres.Close()
	}
}

// HealthChecks returns one check per configured backend.
func (i *Infrastructure) HealthChecks() map[string]appRoutes.HealthCheck {
	checks := map[string]appRoutes.HealthCheck{}
	if i.Postgres != nil {
		checks["postgres"] = i.Postgres.Ping
	}
	if i.Redis != nil {
		checks["redis"] = i.Redis.Health
	}
	return checks
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Clock             appServices.Clock
	Metrics           *metrics.Metrics // nil when disabled
	ReportCache       *cache.ReportCache
	DepartmentService *appServices.DepartmentService
	StudentService    *appServices.StudentService
	CourseService     *appServices.CourseService
	EnrollmentService *appServices.EnrollmentService
	ReportService     *appServices.ReportService
	RosterImporter    *appServices.RosterImporter
	Controllers       appRoutes.Controllers
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Str("store", cfg.Store.Driver).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupInfrastructure opens the configured store (running migrations for
// PostgreSQL) and the optional Redis client.
func SetupInfrastructure(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{}

	switch cfg.Store.Driver {
	case config.StorePostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		infra.Postgres = database
		lgr.Info().Msg("Database connection successfully established.")

		migrator := appMigrations.NewMigrator(database.Pool, lgr)
		if dir := cfg.Database.MigrationsDir; dir != "" {
			err = migrator.MigrateFromDirectory(ctx, dir)
		} else {
			err = migrator.MigrateEmbedded(ctx)
		}
		if err != nil {
			infra.Close(lgr)
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
		infra.Store = appRepos.NewPostgresStore(database.Pool)
	default:
		lgr.Info().Msg("Using in-memory store")
		infra.Store = appRepos.NewMemoryStore()
	}

	redisDB, err := db.NewRedisDB(ctx, cfg)
	if err != nil {
		infra.Close(lgr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if redisDB != nil {
		lgr.Info().Msg("Redis report cache enabled")
		infra.Redis = redisDB
	}

	return infra, nil
}

// BuildDependencies initializes services and controllers. clock may be nil.
func BuildDependencies(cfg *config.Config, infra *Infrastructure, clock appServices.Clock, lgr zerolog.Logger) *Dependencies {
	if clock == nil {
		clock = time.Now
	}
	deps := &Dependencies{Clock: clock, Logger: lgr}

	var observers appServices.Observers
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
		observers = append(observers, deps.Metrics)
	}

	// Assigned only when present so the services never see a typed nil.
	var reportCache appServices.ReportCache
	if infra.Redis != nil {
		deps.ReportCache = cache.NewReportCache(infra.Redis.Client, cfg.ReportTTL(), lgr)
		reportCache = deps.ReportCache
		observers = append(observers, deps.ReportCache)
	}

	deps.DepartmentService = appServices.NewDepartmentService(lgr, observers, clock)
	deps.StudentService = appServices.NewStudentService(lgr, observers, clock)
	deps.CourseService = appServices.NewCourseService(lgr, observers, clock)
	deps.EnrollmentService = appServices.NewEnrollmentService(lgr, observers, clock)
	deps.ReportService = appServices.NewReportService(lgr, reportCache)
	deps.RosterImporter = appServices.NewRosterImporter(lgr, deps.StudentService)

	deps.Controllers = appRoutes.Controllers{
		Department: appControllers.NewDepartmentController(deps.DepartmentService, deps.ReportService),
		Student:    appControllers.NewStudentController(deps.StudentService, deps.ReportService, deps.RosterImporter),
		Course:     appControllers.NewCourseController(deps.CourseService),
		Enrollment: appControllers.NewEnrollmentController(deps.EnrollmentService, clock),
		Report:     appControllers.NewReportController(deps.ReportService),
	}

	return deps
}

// SeedIfEnabled loads demo data when the seed section asks for it.
func SeedIfEnabled(ctx context.Context, cfg *config.Config, infra *Infrastructure, deps *Dependencies) error {
	if !cfg.Seed.Enabled {
		return nil
	}
	return seed.CreateDefaultData(ctx, infra.Store, seed.Services{
		Departments: deps.DepartmentService,
		Students:    deps.StudentService,
		Courses:     deps.CourseService,
		Enrollments: deps.EnrollmentService,
	}, deps.Clock(), deps.Logger)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, infra *Infrastructure, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	var requests appMiddleware.RequestObserver
	if deps.Metrics != nil {
		requests = deps.Metrics
	}
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr, requests))

	appRoutes.SetupRouter(router, deps.Controllers, infra.Store, lgr)
	if cfg.Server.Swagger {
		appRoutes.SetupSwagger(router)
	}

	var metricsHandler http.Handler
	if deps.Metrics != nil {
		metricsHandler = deps.Metrics.Handler()
	}
	appRoutes.SetupOperational(router, infra.HealthChecks(), metricsHandler)

	return router
}
