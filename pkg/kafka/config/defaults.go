package kafka_config

import "time"

const (
	// Default Kafka broker
	DefaultKafkaBrokers = "localhost:9092"

	// Producer defaults
	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false

	// Notification topics
	DefaultTopic    = "reservation-events"
	DefaultDLQTopic = "reservation-events-dlq"

	// Middleware defaults
	DefaultEnableMiddleware = true
)
