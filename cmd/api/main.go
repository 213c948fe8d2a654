package main

import (
	"fmt"
	"time"

	"tugas-go/configs"
	v1 "tugas-go/internal/api/v1"
	"tugas-go/internal/api/v1/handlers"
	"tugas-go/internal/auth"
	"tugas-go/internal/events"
	"tugas-go/internal/middleware"
	"tugas-go/internal/repository"
	"tugas-go/pkg/cache"
	"tugas-go/pkg/database"
	"tugas-go/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

func main() {
	// Inisialisasi logger
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	// Load config, berhenti jika DATABASE_URL atau JWT_SECRET kosong
	cfg := configs.LoadConfig()

	// Inisialisasi database
	db := database.ConnectDB(cfg.DatabaseURL)
	defer db.Close()
	logger.SystemLogger.Info("Database Connected")

	// Buat tabel jika belum ada
	repository.CreateTableIfNotExists(db)

	// Inisialisasi Redis, nil jika REDIS_ADDR kosong (cache mati)
	redisClient := database.ConnectRedis(cfg.RedisAddr)
	if redisClient != nil {
		defer redisClient.Close()
		logger.SystemLogger.Info("Redis Connected")
	}

	// Rangkai semua dependensi secara eksplisit, tanpa state global
	tokens := auth.NewManager(cfg.JWTSecret)
	validate := validator.New()
	users := repository.NewPostgresUserRepository(db)
	tasks := repository.NewPostgresTaskRepository(db)
	taskCache := cache.NewTaskCache(redisClient)

	hub := events.NewHub()
	go hub.Run()

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	v1.RegisterRoutes(app, v1.Dependencies{
		Auth:   handlers.NewAuthHandler(users, tokens, validate),
		Tasks:  handlers.NewTaskHandler(tasks, taskCache, hub, validate),
		Users:  handlers.NewUserHandler(users, validate),
		Tokens: tokens,
		Hub:    hub,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.SystemLogger.Info("Application ready", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
