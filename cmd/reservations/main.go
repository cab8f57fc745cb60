package main

import (
	"os"

	dirhandler "campuspark/internal/directory/handler"
	dirrepository "campuspark/internal/directory/repository"
	dirservice "campuspark/internal/directory/service"
	dirvalidator "campuspark/internal/directory/validator"
	"campuspark/internal/notifications"
	"campuspark/internal/payments"
	"campuspark/internal/reservations/handler"
	"campuspark/internal/reservations/repository"
	"campuspark/internal/reservations/service"
	"campuspark/internal/reservations/validator"
	"campuspark/pkg/app"
	"campuspark/pkg/clock"
	"campuspark/pkg/config"
	"campuspark/pkg/kafka"
	kafka_config "campuspark/pkg/kafka/config"
	kafka_middleware "campuspark/pkg/kafka/middleware"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Reservations service")

	publisher := initPublisher(cfg)
	defer publisher.Close()

	directoryService := initDirectoryServices(cfg)
	reservationService, billingService := initReservationServices(cfg, directoryService, publisher)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		handler.NewReservationHandler(reservationService, billingService, cfg.Log),
		dirhandler.NewDirectoryHandler(directoryService, cfg.Log),
	)
	serverApp.Run()
}

func initDirectoryServices(cfg *config.Config) dirservice.DirectoryService {
	directoryValidator := dirvalidator.NewDirectoryValidator(cfg.Log)
	lotRepo := dirrepository.NewMongoLotRepository(cfg)
	permitRepo := dirrepository.NewMongoPermitRepository(cfg)
	directoryService := dirservice.NewDirectoryService(
		lotRepo,
		permitRepo,
		directoryValidator,
		cfg,
	)

	cfg.Log.Info("Directory service initialized", "database", cfg.MongoDatabaseName)
	return directoryService
}

func initReservationServices(
	cfg *config.Config,
	directoryService dirservice.DirectoryService,
	publisher notifications.Publisher,
) (service.ReservationService, service.BillingService) {
	reservationValidator := validator.NewReservationValidator(cfg.Log)
	reservationRepo := repository.NewMongoReservationRepository(cfg)
	billingRepo := repository.NewMongoBillingEntryRepository(cfg)
	lockRepo := repository.NewReservationLockRepository(cfg)

	reservationService := service.NewReservationService(
		reservationRepo,
		billingRepo,
		lockRepo,
		directoryService,
		initGateway(cfg),
		publisher,
		reservationValidator,
		clock.System(),
		cfg,
	)
	billingService := service.NewBillingService(reservationRepo, billingRepo, cfg)

	cfg.Log.Info("Reservation service initialized", "database", cfg.MongoDatabaseName)
	return reservationService, billingService
}

// The real gateway needs an explicit base URL. Without one we run against
// the sandbox, which approves everything — good for local work, useless
// in production, so log loudly.
func initGateway(cfg *config.Config) payments.Gateway {
	if os.Getenv(config.EnvPaymentBaseURL) == "" {
		cfg.Log.Warn("PAYMENT_BASE_URL not set, using sandbox payment gateway")
		return payments.NewSandboxGateway()
	}
	return payments.NewHTTPGateway(cfg)
}

func initPublisher(cfg *config.Config) notifications.Publisher {
	if os.Getenv(kafka_config.EnvKafkaBrokers) == "" {
		cfg.Log.Warn("KAFKA_BROKERS not set, reservation events will not be published")
		return notifications.NewNoopPublisher()
	}

	kafkaCfg := kafka_config.Load()
	producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.Topic, kafkaCfg.DLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware())
	}

	cfg.Log.Info("Kafka publisher initialized", "topic", kafkaCfg.Topic, "dlq_topic", kafkaCfg.DLQTopic)
	return notifications.NewKafkaPublisher(producer, cfg.Log)
}
