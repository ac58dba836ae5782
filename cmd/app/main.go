package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mission-review-service/api"
	"mission-review-service/internal/config"
	"mission-review-service/internal/database"
	"mission-review-service/internal/gateway/gemini"
	"mission-review-service/internal/gateway/github"
	"mission-review-service/internal/gateway/storage"
	"mission-review-service/internal/handler"
	"mission-review-service/internal/repository"
	"mission-review-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// SQLC queries
	queries := database.New(db)

	// Шлюзы внешних сервисов: авторизация разрешается здесь, на старте.
	// Битые креды валят процесс сразу, а не при первом вебхуке.
	githubClient, err := github.NewClient(github.Config{
		APIURL:           cfg.GithubAPIURL,
		Token:            cfg.GithubToken,
		AppID:            cfg.GithubAppID,
		InstallationID:   cfg.GithubInstallationID,
		PrivateKeyBase64: cfg.GithubPrivateKeyBase64,
	}, logger)
	if err != nil {
		logger.Fatalf("GitHub client init failed: %v", err)
	}

	geminiClient, err := gemini.NewClient(gemini.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
		APIURL: cfg.GeminiAPIURL,
	}, logger)
	if err != nil {
		logger.Fatalf("Gemini client init failed: %v", err)
	}

	objectStorage, err := storage.NewClient(storage.Config{
		Endpoint:  cfg.StorageEndpoint,
		Bucket:    cfg.StorageBucket,
		Token:     cfg.StorageToken,
		PublicURL: cfg.StoragePublicURL,
	})
	if err != nil {
		logger.Warnf("Object storage disabled: %v", err)
		objectStorage = storage.NewDisabled()
	}

	// Репозитории
	missionRepo := repository.NewMissionRepository(queries)
	prRepo := repository.NewPullRequestRepository(queries)
	reviewLogRepo := repository.NewReviewLogRepository(queries)
	userRepo := repository.NewUserRepository(queries)

	// Use Cases
	reviewUC := usecase.NewCommitReviewUseCase(missionRepo, prRepo, reviewLogRepo, githubClient, geminiClient, logger)
	missionUC := usecase.NewMissionUseCase(missionRepo, githubClient, logger)
	userUC := usecase.NewUserUseCase(userRepo, missionRepo, githubClient)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(reviewUC, missionUC, userUC, objectStorage, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
