package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"campuspark/pkg/client"
	"campuspark/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	BillableWindowStartHour int
	BillableWindowEndHour   int
	ExtensionSurchargeCents int64
	MaxExtensionHours       int
	PermitEveningHour       int
	MeteredEveningHour      int
	FullRefundLeadTime      time.Duration
	LateRefundPercent       int

	PaymentBaseURL string
	PaymentTimeout time.Duration

	LockTTL time.Duration

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		BillableWindowStartHour: getEnvNum(EnvBillableWindowStartHour, DefaultBillableWindowStartHour),
		BillableWindowEndHour:   getEnvNum(EnvBillableWindowEndHour, DefaultBillableWindowEndHour),
		ExtensionSurchargeCents: int64(getEnvNum(EnvExtensionSurchargeCents, DefaultExtensionSurchargeCents)),
		MaxExtensionHours:       getEnvNum(EnvMaxExtensionHours, DefaultMaxExtensionHours),
		PermitEveningHour:       getEnvNum(EnvPermitEveningHour, DefaultPermitEveningHour),
		MeteredEveningHour:      getEnvNum(EnvMeteredEveningHour, DefaultMeteredEveningHour),
		FullRefundLeadTime:      getEnvDuration(EnvFullRefundLeadTime, DefaultFullRefundLeadTime),
		LateRefundPercent:       getEnvNum(EnvLateRefundPercent, DefaultLateRefundPercent),

		PaymentBaseURL: getEnvStr(EnvPaymentBaseURL, DefaultPaymentBaseURL),
		PaymentTimeout: getEnvDuration(EnvPaymentTimeout, DefaultPaymentTimeout),

		LockTTL: getEnvDuration(EnvLockTTL, DefaultLockTTL),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, logger.INFO),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errs = append(errs, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errs = append(errs, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		errs = append(errs, "MongoDatabaseName cannot be empty")
	}

	for name, d := range map[string]time.Duration{
		"MongoConnTimeout":   cfg.MongoConnTimeout,
		"RateLimitWindow":    cfg.RateLimitWindow,
		"RequestTimeout":     cfg.RequestTimeout,
		"IdempotencyTTL":     cfg.IdempotencyTTL,
		"ReadTimeout":        cfg.ReadTimeout,
		"WriteTimeout":       cfg.WriteTimeout,
		"IdleTimeout":        cfg.IdleTimeout,
		"ShutdownTimeout":    cfg.ShutdownTimeout,
		"FullRefundLeadTime": cfg.FullRefundLeadTime,
		"PaymentTimeout":     cfg.PaymentTimeout,
		"LockTTL":            cfg.LockTTL,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.BillableWindowStartHour < 0 || cfg.BillableWindowStartHour > 23 {
		errs = append(errs, fmt.Sprintf("BillableWindowStartHour must be in [0,23], got: %d", cfg.BillableWindowStartHour))
	}
	if cfg.BillableWindowEndHour < 1 || cfg.BillableWindowEndHour > 24 {
		errs = append(errs, fmt.Sprintf("BillableWindowEndHour must be in [1,24], got: %d", cfg.BillableWindowEndHour))
	}
	if cfg.BillableWindowEndHour <= cfg.BillableWindowStartHour {
		errs = append(errs, fmt.Sprintf("BillableWindowEndHour (%d) must be greater than BillableWindowStartHour (%d)",
			cfg.BillableWindowEndHour, cfg.BillableWindowStartHour))
	}
	if cfg.ExtensionSurchargeCents < 0 {
		errs = append(errs, fmt.Sprintf("ExtensionSurchargeCents cannot be negative, got: %d", cfg.ExtensionSurchargeCents))
	}
	if cfg.MaxExtensionHours < 1 || cfg.MaxExtensionHours > 24 {
		errs = append(errs, fmt.Sprintf("MaxExtensionHours must be in [1,24], got: %d", cfg.MaxExtensionHours))
	}
	if cfg.PermitEveningHour < 0 || cfg.PermitEveningHour > 23 {
		errs = append(errs, fmt.Sprintf("PermitEveningHour must be in [0,23], got: %d", cfg.PermitEveningHour))
	}
	if cfg.MeteredEveningHour < 0 || cfg.MeteredEveningHour > 23 {
		errs = append(errs, fmt.Sprintf("MeteredEveningHour must be in [0,23], got: %d", cfg.MeteredEveningHour))
	}
	if cfg.LateRefundPercent < 0 || cfg.LateRefundPercent > 100 {
		errs = append(errs, fmt.Sprintf("LateRefundPercent must be in [0,100], got: %d", cfg.LateRefundPercent))
	}

	if cfg.PaymentBaseURL == "" {
		errs = append(errs, "PaymentBaseURL cannot be empty")
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"billable_window_start_hour", cfg.BillableWindowStartHour,
		"billable_window_end_hour", cfg.BillableWindowEndHour,
		"extension_surcharge_cents", cfg.ExtensionSurchargeCents,
		"max_extension_hours", cfg.MaxExtensionHours,
		"permit_evening_hour", cfg.PermitEveningHour,
		"metered_evening_hour", cfg.MeteredEveningHour,
		"full_refund_lead_time", cfg.FullRefundLeadTime,
		"late_refund_percent", cfg.LateRefundPercent,
		"payment_base_url", cfg.PaymentBaseURL,
		"payment_timeout", cfg.PaymentTimeout,
		"lock_ttl", cfg.LockTTL,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown()
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = 10
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
