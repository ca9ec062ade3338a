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
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/infra_vision/internal/analysis"
	"github.com/shenikar/infra_vision/internal/config"
	v1 "github.com/shenikar/infra_vision/internal/handler/http/v1"
	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/repository"
	"github.com/shenikar/infra_vision/internal/service"
	"github.com/shenikar/infra_vision/internal/webhook"
	"github.com/shenikar/infra_vision/pkg/logger"
	"github.com/shenikar/infra_vision/pkg/postgres"
	redisclient "github.com/shenikar/infra_vision/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/infra_vision/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const sessionJanitorInterval = time.Minute

// @title Infra Vision API
// @version 1.0
// @description Infrastructure incident reporting, spatial analysis and budget assistant API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
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

	// Источник таблицы бюджета: PostgreSQL, если задан DATABASE_URL, иначе встроенная таблица
	budgetRepo := repository.NewStaticBudgetRepository()
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		budgetRepo = repository.NewPostgresBudgetRepository(dbpool)
	}

	// Redis нужен для хранения сессий и для очереди вебхуков
	var redisClient *goredis.Client
	if cfg.SessionStore == config.SessionStoreRedis || cfg.WebhookURL != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Инициализация хранилища сессий
	var sessionRepo service.SessionRepository
	if cfg.SessionStore == config.SessionStoreRedis {
		sessionRepo = repository.NewRedisSessionRepository(redisClient, cfg.SessionTTL)
	} else {
		memoryRepo := repository.NewMemorySessionRepository(cfg.SessionTTL)
		memoryRepo.StartJanitor(ctx, sessionJanitorInterval, log)
		sessionRepo = memoryRepo
	}
	log.WithField("store", cfg.SessionStore).Info("Session store initialized")

	// Инициализация издателя вебхуков и воркера
	var publisher webhook.Publisher = webhook.NopPublisher{}
	if cfg.WebhookURL != "" {
		publisher = webhook.NewRedisPublisher(redisClient)
		webhookWorker := webhook.NewWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Подготовка медиа и внешний сервис анализа
	processor := media.NewPreprocessor(media.NewFFmpegDecoder(cfg.FFmpegPath, cfg.FFprobePath), cfg.FrameCount, cfg.SeekTimeout, log)
	provider := analysis.NewGeminiProvider(cfg, log)

	// Инициализация сервисов
	sessionService := service.NewSessionService(sessionRepo, budgetRepo, log)
	incidentService := service.NewIncidentService(sessionRepo, budgetRepo, processor, provider, publisher, log)
	spatialService := service.NewSpatialService(sessionRepo, processor, provider, log)
	assistantService := service.NewAssistantService(sessionRepo, budgetRepo, provider, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessionService, incidentService, spatialService, assistantService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
