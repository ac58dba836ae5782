package main

import (
	"context"
	"errors"

	"mission-review-service/internal/config"
	"mission-review-service/internal/database"
	"mission-review-service/internal/domain"
	"mission-review-service/internal/repository"

	"github.com/sirupsen/logrus"
)

// Одноразовое наполнение БД демо-миссиями и пользователями.

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected for seeding")

	queries := database.New(db)
	missionRepo := repository.NewMissionRepository(queries)
	userRepo := repository.NewUserRepository(queries)

	ctx := context.Background()

	missions := []*domain.Mission{
		{
			RepoName:    "one-wave-team3/hello-service",
			Title:       "Hello Service",
			Description: "Реализуйте обработчик /hello, возвращающий приветствие в JSON.",
			SolutionDiff: `diff --git a/internal/service/greeting.go b/internal/service/greeting.go
index 548c894..4776100 100644
--- a/internal/service/greeting.go
+++ b/internal/service/greeting.go
@@ -1,7 +1,7 @@
 package service

 func Greeting() string {
-	return "Hello World!"
+	return "Hello Mission!"
 }`,
		},
		{
			RepoName:    "one-wave-team3/retry-client",
			Title:       "HTTP Retry Client",
			Description: "Добавьте в HTTP-клиент повторные попытки с экспоненциальной задержкой.",
			SolutionDiff: `diff --git a/internal/client/retry.go b/internal/client/retry.go
new file mode 100644
--- /dev/null
+++ b/internal/client/retry.go
@@ -0,0 +1,9 @@
+package client
+
+func withRetry(attempts int, fn func() error) error {
+	var err error
+	for i := 0; i < attempts; i++ {
+		if err = fn(); err == nil {
+			return nil
+		}
+	}
+	return err
+}`,
		},
	}

	for _, mission := range missions {
		exists, err := missionRepo.ExistsByRepoName(ctx, mission.RepoName)
		if err != nil {
			logger.Fatalf("Seeding failed: %v", err)
		}
		if exists {
			logger.Infof("Mission already exists: %s", mission.RepoName)
			continue
		}
		if _, err := missionRepo.Create(ctx, mission); err != nil {
			logger.Fatalf("Seeding failed: %v", err)
		}
		logger.Infof("Seeded mission: %s", mission.RepoName)
	}

	users := []*domain.User{
		{Email: "user1@example.com", Username: "user1"},
		{Email: "user2@example.com", Username: "user2"},
		{Email: "user3@example.com", Username: "user3"},
	}

	for _, user := range users {
		_, err := userRepo.GetByEmail(ctx, user.Email)
		if err == nil {
			logger.Infof("User already exists: %s", user.Email)
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			logger.Fatalf("Seeding failed: %v", err)
		}
		if _, err := userRepo.Create(ctx, user); err != nil {
			logger.Fatalf("Seeding failed: %v", err)
		}
		logger.Infof("Seeded user: %s", user.Email)
	}

	logger.Info("Seeding complete")
}
