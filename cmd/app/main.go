package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres/claimrepo"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/stockrepo"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/observability"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "marketplace"

func main() {
	configs := getConfigs()
	ctx := context.Background()

	shutdownTracing, err := observability.SetupTracingSDK(ctx, serviceName, configs.OtelEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		_ = shutdownTracing(ctx)
	}()

	db := connectDB(configs)
	migrateDB(db)

	notifier := kafka.NewNotificationProducer(
		[]string{configs.KafkaHost}, configs.KafkaNotificationsTopic)
	defer func() {
		_ = notifier.Close()
	}()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, db, notifier, logger)

	jobManager := jobs.NewJobManager(
		app.CreateReleaseStaleOrdersCommandHandler(),
		staleOrderMaxAge(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		OtelEndpoint:            goDotEnvVariable("OTEL_ENDPOINT"),
		StaleOrderMaxAge:        goDotEnvVariable("STALE_ORDER_MAX_AGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&claimrepo.ClaimDTO{},
		&stockrepo.VariationDTO{},
		&stockrepo.StockRecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
}

func staleOrderMaxAge(configs cmd.Config) time.Duration {
	maxAge, err := time.ParseDuration(configs.StaleOrderMaxAge)
	if err != nil {
		log.Fatalf("Invalid STALE_ORDER_MAX_AGE value %q: %v", configs.StaleOrderMaxAge, err)
	}
	return maxAge
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateDeleteDeliveryCommandHandler(),
		app.CreateAssignDeliveryCourierCommandHandler(),
		app.CreateCreateClaimCommandHandler(),
		app.CreateUpdateClaimStatusCommandHandler(),
		app.CreateUpdateClaimDetailsCommandHandler(),
		app.CreateDeleteClaimCommandHandler(),
		app.CreateGetBuyerOrdersQueryHandler(),
		app.CreateGetUnfulfilledOrdersQueryHandler(),
	)

	e := echo.New()
	e.Use(observability.EchoTracing(serviceName))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
