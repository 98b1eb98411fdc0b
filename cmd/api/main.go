package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"interview-scheduler/internal/config"
	"interview-scheduler/internal/db"
	apihttp "interview-scheduler/internal/http"
	"interview-scheduler/internal/repository"
	"interview-scheduler/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	client, err := db.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect", zap.Error(err))
		}
	}()
	if err := db.Ping(ctx, client); err != nil {
		logger.Fatal("mongo ping", zap.Error(err))
	}

	interviewRepo := repository.NewMongoInterviewRepository(client.Database(cfg.DBName))
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPassword)

	loginLimiter := service.NewLoginRateLimiter(time.Minute, 10)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, time.Minute, 10)
		}
		cancel()
	}

	authHandler := apihttp.NewAuthHandler(logger, authSvc, loginLimiter)
	interviewHandler := apihttp.NewInterviewHandler(logger, interviewRepo)
	router := apihttp.NewRouter(logger, cfg.CORSOrigins, authSvc, authHandler, interviewHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
