package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usage-insights-service/internal/auth"
	"usage-insights-service/internal/config"
	"usage-insights-service/internal/logging"

	eventsHttp "usage-insights-service/internal/events/adapters/http/fiber"
	eventsRepoPg "usage-insights-service/internal/events/adapters/postgres"
	eventsUsecase "usage-insights-service/internal/events/core/usecase"

	projectsRepoPg "usage-insights-service/internal/projects/adapters/postgres"
	projectsUsecase "usage-insights-service/internal/projects/core/usecase"

	statsHttp "usage-insights-service/internal/stats/adapters/http/fiber"
	statsUsecase "usage-insights-service/internal/stats/core/usecase"

	storagePg "usage-insights-service/internal/storage/postgres"

	json "github.com/goccy/go-json"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "usage-insights-service/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("open postgres")
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logging.Fatal().Err(err).Msg("ping postgres")
	}

	if err := storagePg.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("migrate schema")
	}

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
	projectRepository := projectsRepoPg.NewProjectRepository(projectsRepoPg.NewSQLDB(db))

	// Usecases
	recordEventUC := eventsUsecase.NewRecordEventUseCase(projectRepository, eventRepository, time.Now)
	accessResolver := projectsUsecase.NewAccessResolver(projectRepository)
	overviewUC := statsUsecase.NewGetOverviewUseCase(eventRepository, time.Now)
	listEventsUC := statsUsecase.NewListEventsUseCase(eventRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(logging.RequestLogger())

	// ingestion endpoint, authenticated by project secret
	eventsHandler := eventsHttp.NewEventHandler(recordEventUC)
	app.Post("/api/events", eventsHandler.CreateEvent)

	// stats endpoints, authenticated by bearer token
	statsHandler := statsHttp.NewStatsHandler(overviewUC, listEventsUC, accessResolver)
	stats := app.Group("/api", auth.Middleware(cfg.AuthSecret))
	stats.Get("/stats", statsHandler.GetAllStats)
	stats.Get("/projects/:projectID/stats", statsHandler.GetProjectStats)
	stats.Get("/projects/:projectID/events", statsHandler.ListProjectEvents)

	// Ops surface
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			logging.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logging.Info().Str("addr", cfg.Addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logging.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error().Err(err).Msg("fiber shutdown")
	}

	logging.Info().Msg("server exiting")
}
