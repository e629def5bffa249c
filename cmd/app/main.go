package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/arrows94/3d-order-manager/cmd"
	"github.com/arrows94/3d-order-manager/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := root.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, relying on process environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:              envOr("HTTP_PORT", "8080"),
		DBHost:                requireEnv("DB_HOST"),
		DBPort:                requireEnv("DB_PORT"),
		DBUser:                requireEnv("DB_USER"),
		DBPassword:            requireEnv("DB_PASSWORD"),
		DBName:                requireEnv("DB_NAME"),
		DBSslMode:             envOr("DB_SSLMODE", "disable"),
		AdminUser:             requireEnv("ADMIN_USER"),
		AdminPassword:         requireEnv("ADMIN_PASSWORD"),
		UploadDir:             envOr("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes:        envInt64("MAX_UPLOAD_BYTES", 10<<20),
		DefaultCurrency:       envOr("DEFAULT_CURRENCY", "EUR"),
		UploadRetention:       envDuration("UPLOAD_RETENTION", 24*time.Hour),
		UploadCleanupSchedule: envOr("UPLOAD_CLEANUP_SCHEDULE", "0 0 * * * *"),
	}
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Environment variable %s must be a duration: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
