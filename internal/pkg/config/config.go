package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultTrackingPollInterval = 30 * time.Second
	defaultMoliAPITimeout       = 10 * time.Second
	defaultSessionTTL           = 24 * time.Hour

	defaultMercadoPagoSDKURL = "https://sdk.mercadopago.com/js/v2"
	defaultGoogleMapsSDKURL  = "https://maps.googleapis.com/maps/api/js"
)

type (
	Tasks struct {
		SessionCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
		PprofEnabled     bool
		PprofPort        string
		PublicOrigin     string // origin для back_urls платежей
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	MoliAPI struct {
		BaseURL      string
		Timeout      time.Duration
		DemoFallback bool
	}

	Session struct {
		Secret string
		TTL    time.Duration
	}

	Tracking struct {
		PollInterval time.Duration
	}

	MercadoPago struct {
		PublicKey string
		SDKURL    string
	}

	GoogleMaps struct {
		APIKey string
		SDKURL string
	}

	Providers struct {
		MercadoPago MercadoPago
		GoogleMaps  GoogleMaps
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ShipmentLocationUpdated ShipmentLocationUpdated
	}

	ShipmentLocationUpdated struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		MoliAPI   MoliAPI
		Session   Session
		Tracking  Tracking
		Providers Providers
		Kafka     Kafka
	}
)

// Load загружает конфигурацию портала.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker загружает конфигурацию воркера геопозиций.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateWorkerConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	sessionCleanupInterval, err := osGetEnvDuration("BACKGROUND_SESSION_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	shipmentLocationTimeout, err := osGetEnvDuration("KAFKA_HANDLER_SHIPMENT_LOCATION_UPDATED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	moliAPITimeout, err := osGetEnvDuration("MOLI_API_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	demoFallback, err := osGetBool("DEMO_FALLBACK")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionTTL, err := osGetEnvDuration("SESSION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollInterval, err := osGetEnvDuration("TRACKING_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	port := os.Getenv("PORT")

	return &Config{
		Tasks: Tasks{
			SessionCleanupInterval: sessionCleanupInterval,
		},
		Server: HTTPServer{
			Port:             port,
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			PublicOrigin:     osGetDefault("PUBLIC_ORIGIN", "http://localhost:"+port),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		MoliAPI: MoliAPI{
			BaseURL:      os.Getenv("MOLI_API_BASE_URL"),
			Timeout:      durationOrDefault(moliAPITimeout, defaultMoliAPITimeout),
			DemoFallback: demoFallback,
		},
		Session: Session{
			Secret: os.Getenv("SESSION_SECRET"),
			TTL:    durationOrDefault(sessionTTL, defaultSessionTTL),
		},
		Tracking: Tracking{
			PollInterval: durationOrDefault(pollInterval, defaultTrackingPollInterval),
		},
		Providers: Providers{
			MercadoPago: MercadoPago{
				PublicKey: os.Getenv("MERCADOPAGO_PUBLIC_KEY"),
				SDKURL:    osGetDefault("MERCADOPAGO_SDK_URL", defaultMercadoPagoSDKURL),
			},
			GoogleMaps: GoogleMaps{
				APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
				SDKURL: osGetDefault("GOOGLE_MAPS_SDK_URL", defaultGoogleMapsSDKURL),
			},
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				ShipmentLocationUpdated: ShipmentLocationUpdated{
					ProcessTimeout: shipmentLocationTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.SessionCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SESSION_CLEANUP_INTERVAL is required")
	}

	if cfg.MoliAPI.BaseURL == "" {
		return errors.New("MOLI_API_BASE_URL is required")
	}

	if cfg.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required")
	}

	if cfg.Tracking.PollInterval < time.Second {
		return errors.New("TRACKING_POLL_INTERVAL must be at least 1s")
	}

	return nil
}

func validateWorkerConfig(cfg *Config) error {
	if cfg.MoliAPI.BaseURL == "" {
		return errors.New("MOLI_API_BASE_URL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.ShipmentLocationUpdated.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_SHIPMENT_LOCATION_UPDATED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetDefault(s, fallback string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return fallback
}

func durationOrDefault(d, fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}
	return d
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
