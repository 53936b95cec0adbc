package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/calendar"
	"github.com/aussiebroadwan/medbook/pkg/jwtx"
)

// Calendar dispatch modes.
const (
	DispatchInline = "inline"
	DispatchAsync  = "async"
	DispatchRedis  = "redis"
)

type Config struct {
	DatabaseURL    string        // sqlite://path, a bare path, or postgres://... (default: sqlite://booking.db)
	JWTSecret      string        // HS256 secret; required in prod, random per process otherwise
	Issuer         string        // iss claim (default: medbook)
	AccessTokenTTL time.Duration // default: 15m
	PepperFile     string        // default: ./pepper
	BootstrapToken string        // empty disables POST /bootstrap

	GoogleCredentialsFile string        // default: google-credentials.json, falls back to google-credentials.json.json
	CalendarEndpoint      string        // overrides the Google API base URL
	CalendarTimeout       time.Duration // per insert (default: 10s)
	CalendarDispatch      string        // inline, async, redis (default: async)
	CalendarWorkers       int           // async only (default: 2)
	CalendarQueueSize     int           // async only (default: 100)
	CalendarQueueName     string        // redis only (default: medbook:calendar:events)

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSAllowedOrigins []string

	Env                 string        // dev, staging, prod (default: dev)
	LogLevel            string        // debug, info, warn, error (default: info)
	LogFormat           string        // json, text (default: json)
	Port                int           // default: 8080
	ShutdownGracePeriod time.Duration // default: 10s
}

func LoadConfig() Config {
	return Config{
		DatabaseURL:    getEnvOrDefault("DATABASE_URL", "sqlite://booking.db"),
		JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
		Issuer:         getEnvOrDefault("AUTH_ISSUER", "medbook"),
		AccessTokenTTL: getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		PepperFile:     getEnvOrDefault("PEPPER_FILE", "pepper"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		GoogleCredentialsFile: getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", calendar.DefaultCredentialsFile),
		CalendarEndpoint:      os.Getenv("CALENDAR_ENDPOINT"),
		CalendarTimeout:       getEnvDurationOrDefault("CALENDAR_TIMEOUT", calendar.DefaultTimeout),
		CalendarDispatch:      strings.ToLower(getEnvOrDefault("CALENDAR_DISPATCH", DispatchAsync)),
		CalendarWorkers:       getEnvIntOrDefault("CALENDAR_WORKERS", 2),
		CalendarQueueSize:     getEnvIntOrDefault("CALENDAR_QUEUE_SIZE", 100),
		CalendarQueueName:     getEnvOrDefault("CALENDAR_QUEUE_NAME", calendar.DefaultQueueName),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("REDIS_DB", 0),

		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Env == "prod" && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required when ENV=prod"))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET_KEY must be at least %d bytes", jwtx.MinSecretLength))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}

	switch c.CalendarDispatch {
	case DispatchInline:
	case DispatchAsync:
		if c.CalendarWorkers <= 0 || c.CalendarQueueSize <= 0 {
			errs = append(errs, errors.New("CALENDAR_WORKERS and CALENDAR_QUEUE_SIZE must be positive"))
		}
	case DispatchRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required when CALENDAR_DISPATCH=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CALENDAR_DISPATCH %q", c.CalendarDispatch))
	}

	if _, _, err := parseDatabaseURL(c.DatabaseURL); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
