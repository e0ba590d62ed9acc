package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/kafka"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type eventPublisher interface {
	ports.OrderEventPublisher
	Close() error
}

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	location, err := configs.Location()
	if err != nil {
		log.Fatalf("%v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	publisher := newPublisher(configs, logger)
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, location, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		Timezone:              os.Getenv("TIMEZONE"),
		KafkaHost:             os.Getenv("KAFKA_HOST"),
		KafkaOrderEventsTopic: os.Getenv("KAFKA_ORDER_EVENTS_TOPIC"),
		ReportExportDir:       os.Getenv("REPORT_EXPORT_DIR"),
		ReportExportSchedule:  os.Getenv("REPORT_EXPORT_SCHEDULE"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}

func newPublisher(configs cmd.Config, logger *slog.Logger) eventPublisher {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Info("Order events disabled, KAFKA_HOST is not set")
		return kafka.NewNoopPublisher()
	}
	return kafka.NewOrderEventsPublisher(brokers, configs.OrderEventsTopic())
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := httpadapter.LoadOpenAPI()
	if err != nil {
		log.Fatalf("%v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if err = httpadapter.RegisterSwagger(e, doc); err != nil {
		log.Fatalf("%v", err)
	}

	validator, err := httpadapter.RequestValidator(doc)
	if err != nil {
		log.Fatalf("%v", err)
	}
	app.CreateHTTPServer().RegisterRoutes(e.Group("/api/v1", validator))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
