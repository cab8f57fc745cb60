package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "campuspark"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Metered parking is billed inside [07:00, 19:00) local time.
	DefaultBillableWindowStartHour = 7
	DefaultBillableWindowEndHour   = 19

	DefaultExtensionSurchargeCents = 250
	DefaultMaxExtensionHours       = 24
	DefaultPermitEveningHour       = 16
	DefaultMeteredEveningHour      = 19

	// Cancelling at least this long before the start time refunds in full.
	// Later cancellations refund LateRefundPercent of the amount paid; the
	// policy text only guarantees the 24h rule, so the late percent is
	// deliberately conservative and operator-tunable.
	DefaultFullRefundLeadTime = 24 * time.Hour
	DefaultLateRefundPercent  = 0

	DefaultPaymentBaseURL = "http://localhost:9090"
	DefaultPaymentTimeout = 10 * time.Second

	DefaultLockTTL = 10 * time.Second

	DefaultPaginationLimit = 100
)
