package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvBillableWindowStartHour = "BILLABLE_WINDOW_START_HOUR"
	EnvBillableWindowEndHour   = "BILLABLE_WINDOW_END_HOUR"
	EnvExtensionSurchargeCents = "EXTENSION_SURCHARGE_CENTS"
	EnvMaxExtensionHours       = "MAX_EXTENSION_HOURS"
	EnvPermitEveningHour       = "PERMIT_EVENING_HOUR"
	EnvMeteredEveningHour      = "METERED_EVENING_HOUR"
	EnvFullRefundLeadTime      = "FULL_REFUND_LEAD_TIME"
	EnvLateRefundPercent       = "LATE_REFUND_PERCENT"

	EnvPaymentBaseURL = "PAYMENT_BASE_URL"
	EnvPaymentTimeout = "PAYMENT_TIMEOUT"

	EnvLockTTL = "LOCK_TTL"
)
