package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultRedisLockTTL        = 30 * time.Second
	defaultStopServiceTime     = 10 * time.Minute
	defaultLockWaitTimeout     = 5 * time.Second
	defaultLogFileMaxSizeMB    = 100
	defaultLogFileMaxBackups   = 3
	defaultLogFileMaxAgeDays   = 7
	defaultOverdueCheckTimeout = time.Minute
)

type (
	Tasks struct {
		RouteOverdueCheckInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter events per second
		RateLimiterBurst int           // middleware rate limiter burst
		PprofEnabled     bool
		PprofPort        string
	}

	GRPCServer struct {
		HealthPort string // пусто - gRPC health не поднимается
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string // пусто - блокировки только в пределах процесса
		Password string
		DB       int
		LockTTL  time.Duration
	}

	Routing struct {
		SpeedsFile      string
		StopServiceTime time.Duration
		LockWaitTimeout time.Duration
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		RequestEventsTopic string
		RouteEventsTopic   string
		ConsumerGroup      string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		RequestEvents RequestEvents
	}

	RequestEvents struct {
		ProcessTimeout time.Duration
	}

	Logger struct {
		Level          string
		FilePath       string
		FileMaxSizeMB  int
		FileMaxBackups int
		FileMaxAgeDays int
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		GRPC     GRPCServer
		Database Database
		Redis    Redis
		Routing  Routing
		Kafka    Kafka
		Logger   Logger
	}
)

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

// LoadDatabase - только подключение к Postgres, для cmd/migrate.
func LoadDatabase() (Database, error) {
	db := loadDatabase()
	if err := db.validate(); err != nil {
		return Database{}, fmt.Errorf("validation: %w", err)
	}
	return db, nil
}

func loadDatabase() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func (d Database) validate() error {
	if d.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if d.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if d.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if d.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if d.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if d.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

// LoadLogger читается отдельно и без валидации: логгер нужен раньше остального конфига.
func LoadLogger() (Logger, error) {
	maxSize, err := osGetIntDefault("LOG_FILE_MAX_SIZE_MB", defaultLogFileMaxSizeMB)
	if err != nil {
		return Logger{}, err
	}
	maxBackups, err := osGetIntDefault("LOG_FILE_MAX_BACKUPS", defaultLogFileMaxBackups)
	if err != nil {
		return Logger{}, err
	}
	maxAge, err := osGetIntDefault("LOG_FILE_MAX_AGE_DAYS", defaultLogFileMaxAgeDays)
	if err != nil {
		return Logger{}, err
	}

	return Logger{
		Level:          os.Getenv("LOG_LEVEL"),
		FilePath:       os.Getenv("LOG_FILE"),
		FileMaxSizeMB:  maxSize,
		FileMaxBackups: maxBackups,
		FileMaxAgeDays: maxAge,
	}, nil
}

func loadFromEnv() (*Config, error) {
	overdueInterval, err := osGetEnvDuration("BACKGROUND_ROUTE_OVERDUE_CHECK_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestEventsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_REQUEST_EVENTS_PROCESS_TIMEOUT")
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

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisLockTTL, err := osGetEnvDurationDefault("REDIS_LOCK_TTL", defaultRedisLockTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	stopServiceTime, err := osGetEnvDurationDefault("ROUTING_STOP_SERVICE_TIME", defaultStopServiceTime)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lockWaitTimeout, err := osGetEnvDurationDefault("ROUTING_LOCK_WAIT_TIMEOUT", defaultLockWaitTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loggerCfg, err := LoadLogger()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			RouteOverdueCheckInterval: overdueInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		GRPC: GRPCServer{
			HealthPort: os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: loadDatabase(),
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			LockTTL:  redisLockTTL,
		},
		Routing: Routing{
			SpeedsFile:      os.Getenv("ROUTING_SPEEDS_FILE"),
			StopServiceTime: stopServiceTime,
			LockWaitTimeout: lockWaitTimeout,
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			RequestEventsTopic: os.Getenv("KAFKA_REQUEST_EVENTS_TOPIC"),
			RouteEventsTopic:   os.Getenv("KAFKA_ROUTE_EVENTS_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				RequestEvents: RequestEvents{
					ProcessTimeout: requestEventsTimeout,
				},
			},
		},
		Logger: loggerCfg,
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

	if err := cfg.Database.validate(); err != nil {
		return err
	}

	if cfg.Redis.Addr != "" && cfg.Redis.LockTTL <= cfg.Routing.LockWaitTimeout {
		return errors.New("REDIS_LOCK_TTL must be greater than ROUTING_LOCK_WAIT_TIMEOUT")
	}

	if cfg.Routing.StopServiceTime < 0 {
		return errors.New("ROUTING_STOP_SERVICE_TIME must not be negative")
	}
	if cfg.Routing.LockWaitTimeout <= 0 {
		return errors.New("ROUTING_LOCK_WAIT_TIMEOUT must be positive")
	}

	if cfg.Tasks.RouteOverdueCheckInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ROUTE_OVERDUE_CHECK_INTERVAL is required")
	}

	// публикация событий маршрутов опциональна, но без топика смысла не имеет
	if cfg.Kafka.Brokers != "" {
		if cfg.Kafka.RouteEventsTopic == "" {
			return errors.New("KAFKA_ROUTE_EVENTS_TOPIC is required when KAFKA_BROKERS is set")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required")
		}
	}

	return nil
}

// ValidateConsumer - требования воркера, читающего события заявок.
func (k *Kafka) ValidateConsumer() error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.RequestEventsTopic == "" {
		return errors.New("KAFKA_REQUEST_EVENTS_TOPIC is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if k.Handlers.RequestEvents.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_REQUEST_EVENTS_PROCESS_TIMEOUT is required")
	}
	return nil
}

// OverdueCheckTimeout ограничивает один прогон фоновой проверки.
func (t Tasks) OverdueCheckTimeout() time.Duration {
	if t.RouteOverdueCheckInterval < defaultOverdueCheckTimeout {
		return t.RouteOverdueCheckInterval
	}
	return defaultOverdueCheckTimeout
}

func osGetInt(s string) (int, error) {
	return osGetIntDefault(s, 0)
}

func osGetIntDefault(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	return osGetEnvDurationDefault(s, 0)
}

func osGetEnvDurationDefault(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
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
