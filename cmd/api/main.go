package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"filedepot/internal/config"
	"filedepot/internal/database"
	"filedepot/internal/database/migration"
	handlers "filedepot/internal/http/handler"
	"filedepot/internal/http/middleware"
	"filedepot/internal/otel"
	"filedepot/internal/repository/postgres"
	"filedepot/internal/service"
	"filedepot/internal/storage"
)

func main() {
	// All components write pre-formatted JSON lines through the standard
	// logger, so the prefix and timestamp flags are cleared once here.
	log.SetFlags(0)

	// Load configuration: environment, then the declarative variables file,
	// then defaults (.env auto-loaded if present).
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Printf("tracing init failed: %v", err)
	} else {
		defer shutdownTracing(ctx)
	}

	// Database connectivity probe. Without strict startup a failed probe is
	// logged and the process runs with an unverified handle; queries then
	// surface errors per-request.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		if cfg.StrictStartup {
			log.Fatalf("failed to connect to database: %v", err)
		}
		log.Printf("database probe failed: %v (continuing)", err)
		db, err = database.Open(cfg.Database)
		if err != nil {
			log.Fatalf("failed to open database handle: %v", err)
		}
	}
	defer db.Close()

	migCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := migration.EnsureMigrated(migCtx, db, cfg.Database.Host); err != nil {
		if cfg.StrictStartup {
			cancel()
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Printf("schema initialization failed: %v (continuing)", err)
	}
	cancel()

	objStore, err := storage.NewMinIO(cfg.Storage)
	if err != nil {
		if cfg.StrictStartup {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		log.Printf("object storage init failed: %v (continuing)", err)
		objStore = storage.Unavailable(err)
	}

	fileRepo := postgres.NewFileMetadataPostgres(db)
	recordRepo := postgres.NewRecordPostgres(db)
	fileSvc := service.NewFileService(objStore, fileRepo, time.Duration(cfg.Storage.PresignExpirySec)*time.Second)
	recordSvc := service.NewRecordService(recordRepo)

	reg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, db, fileSvc, recordSvc, reg)

	log.Printf("listening on %s (bucket %s)", cfg.ListenAddr, cfg.Storage.Bucket)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
