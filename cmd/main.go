package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/agri_incident_tracker/internal/config"
	v1 "github.com/shenikar/agri_incident_tracker/internal/handler/http/v1"
	"github.com/shenikar/agri_incident_tracker/internal/metrics"
	"github.com/shenikar/agri_incident_tracker/internal/repository"
	"github.com/shenikar/agri_incident_tracker/internal/seed"
	"github.com/shenikar/agri_incident_tracker/internal/service"
	"github.com/shenikar/agri_incident_tracker/internal/store"
	"github.com/shenikar/agri_incident_tracker/internal/webhook"
	"github.com/shenikar/agri_incident_tracker/pkg/logger"
	"github.com/shenikar/agri_incident_tracker/pkg/postgres"
	redisclient "github.com/shenikar/agri_incident_tracker/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/agri_incident_tracker/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Agricultural Incident Tracker API
// @version 1.0
// @description In-memory incident store for farmer reports: enrichment, recommendations, resource requests and audit trail.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// Побочные каналы остаются nil-интерфейсами, если не настроены
	var archive service.AuditArchive
	var publisher webhook.WebhookPublisher

	// Архив аудита в PostgreSQL
	if cfg.ArchiveEnabled() {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		archive = repository.NewAuditRepository(dbpool)
	} else {
		log.Info("DATABASE_URL is empty, audit archive disabled")
	}

	// Очередь событий в Redis и воркер вебхуков
	if cfg.EventsEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisWebhookPublisher(redisClient)

		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, appMetrics)
		webhookWorker.Start(ctx)
	} else {
		log.Info("REDIS_ADDR is empty, incident events disabled")
	}

	// Хранилище и сервис инцидентов
	incidentStore := store.New()
	incidentService := service.NewIncidentService(incidentStore, log, publisher, archive, appMetrics)

	// Демонстрационные данные
	if cfg.SeedFile != "" {
		loaded, err := seed.NewLoader(incidentService, log).LoadFile(ctx, cfg.SeedFile)
		if err != nil {
			log.WithError(err).Error("Failed to load seed data")
		} else {
			log.Infof("Loaded %d seed reports from %s", loaded, cfg.SeedFile)
		}
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, log)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Swagger UI и метрики Prometheus
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
