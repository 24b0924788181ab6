package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipping/cmd"
	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)

	gormDB, err := openDatabase(config)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		logger.Error("Schema migration failed", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, gormDB, logger)
	defer func() {
		if closeErr := root.Close(); closeErr != nil {
			logger.Error("Shutdown cleanup failed", "error", closeErr)
		}
	}()

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Background jobs failed to start", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := httpin.NewServer(root.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil {
			logger.Info("HTTP server stopped", "reason", startErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:         envOr("HTTP_PORT", "8080"),
		DBHost:           envOr("DB_HOST", "localhost"),
		DBPort:           envOr("DB_PORT", "5432"),
		DBUser:           envOr("DB_USER", "postgres"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           envOr("DB_NAME", "shipping"),
		DBSslMode:        envOr("DB_SSLMODE", "disable"),
		KafkaBrokers:     envOr("KAFKA_BROKERS", "localhost:9092"),
		KafkaEventsTopic: envOr("KAFKA_EVENTS_TOPIC", "shipping.events"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}
