package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/catalog"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/repository/relay"
	"portfolio-backend/internal/repository/sqlite"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/validation"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact relay, project catalog and theme settings for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(!cfg.IsProduction())
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "relay", cfg.RelayDriver, "storage", cfg.StorageDriver)

	auditLog := audit.New("portfolio-backend", cfg.Environment)
	defer func() { _ = auditLog.Sync() }()

	ctx := context.Background()
	checks := map[string]usecase.HealthCheck{}

	// 3. Setup Storage
	settingsRepo, closeStorage, err := openSettingsStorage(ctx, cfg, checks)
	if err != nil {
		logger.Log.Error("Failed to open settings storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting uses in-memory store", "error", err)
		} else {
			defer redisClient.Close()
			checks["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
		}
	}

	// 5. Setup Catalog
	projectRepo, err := catalog.Load(cfg.ProjectsFile)
	if err != nil {
		logger.Log.Error("Failed to load project catalog", "file", cfg.ProjectsFile, "error", err)
		os.Exit(1)
	}

	skillRepo, err := catalog.LoadSkills(cfg.SkillsFile)
	if err != nil {
		logger.Log.Error("Failed to load skills", "file", cfg.SkillsFile, "error", err)
		os.Exit(1)
	}

	// 6. Setup Mail Relay
	mailRelay, err := relay.New(cfg)
	if err != nil {
		logger.Log.Error("Failed to configure mail relay", "error", err)
		os.Exit(1)
	}

	// 7. Setup UseCases
	contactUC := usecase.NewContactUsecase(mailRelay, validation.New())
	projectUC := usecase.NewProjectUsecase(projectRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo)
	healthUC := usecase.NewHealthUsecase(checks)

	stopSweeper := make(chan struct{})
	forms := usecase.NewFormRegistry(30 * time.Minute)
	forms.StartSweeper(5*time.Minute, stopSweeper)
	defer close(stopSweeper)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		ProjectUC:  projectUC,
		SkillUC:    skillUC,
		SettingsUC: settingsUC,
		HealthUC:   healthUC,
		Forms:      forms,
		Audit:      auditLog,
		Redis:      redisClient,
		Config:     cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// openSettingsStorage opens the configured store and registers its health check
func openSettingsStorage(ctx context.Context, cfg *config.Config, checks map[string]usecase.HealthCheck) (domain.SettingsRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		repo, err := postgres.NewSettingsRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		checks["database"] = pool.Ping
		return repo, pool.Close, nil

	case config.StorageDriverSQLite, "":
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := sqlite.NewSettingsRepository(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		checks["database"] = db.PingContext
		return repo, func() { _ = db.Close() }, nil

	default:
		return nil, nil, errors.New("unknown storage driver " + cfg.StorageDriver)
	}
}
