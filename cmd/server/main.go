package main

import (
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/di"
	"task_backend/internal/app/router"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskadapters "task_backend/internal/feature/tasks/adapters"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/config"
	infradb "task_backend/internal/platform/db"
	"task_backend/internal/platform/hash"
	jwtmw "task_backend/internal/platform/jwt"
	infraredis "task_backend/internal/platform/redis"
	"task_backend/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AuthTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		slog.Warn("token secrets are not set. Set strong secrets in production.")
	}

	db := infradb.OpenDB(cfg)

	// Redis is optional; without it the auth rate limiter runs in-process.
	var rdb *redisv9.Client
	if cfg.RedisAddr() != "" {
		if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
			slog.Warn("Redis unavailable. Running with in-memory rate limiting.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Platform
	hasher := hash.NewHasher(cfg.SaltRounds)
	issuer := jwtmw.NewIssuer(cfg.AuthTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	taskRepo := taskadapters.NewTaskPostgres(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, hasher)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// Middleware
	gate := jwtmw.AuthRequired(issuer, authUC)
	authLimit := ratelimiter.Middleware(di.NewAuthLimiter(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow))

	r := router.NewRouter(authH, taskH, gate, authLimit)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
