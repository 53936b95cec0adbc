package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "JWT_SECRET_KEY", "AUTH_ISSUER", "CALENDAR_DISPATCH", "CORS_ALLOWED_ORIGINS", "PORT", "ENV"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "sqlite://booking.db", cfg.DatabaseURL)
	require.Equal(t, "medbook", cfg.Issuer)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, DispatchAsync, cfg.CalendarDispatch)
	require.Equal(t, 2, cfg.CalendarWorkers)
	require.Equal(t, 100, cfg.CalendarQueueSize)
	require.Equal(t, "medbook:calendar:events", cfg.CalendarQueueName)
	require.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.CalendarTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/medbook")
	t.Setenv("CALENDAR_DISPATCH", "Redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CALENDAR_TIMEOUT", "5")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, DispatchRedis, cfg.CalendarDispatch)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, 5*time.Second, cfg.CalendarTimeout)
	require.Equal(t, time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 8080, cfg.Port, "unparseable values fall back")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			DatabaseURL:       "sqlite://booking.db",
			Env:               "dev",
			Port:              8080,
			AccessTokenTTL:    time.Minute,
			CalendarDispatch:  DispatchAsync,
			CalendarWorkers:   1,
			CalendarQueueSize: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"prod needs secret", func(c *Config) { c.Env = "prod" }, "JWT_SECRET_KEY is required"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "at least 32 bytes"},
		{"redis needs addr", func(c *Config) { c.CalendarDispatch = DispatchRedis }, "REDIS_ADDR"},
		{"unknown dispatch", func(c *Config) { c.CalendarDispatch = "carrier-pigeon" }, "unknown CALENDAR_DISPATCH"},
		{"bad port", func(c *Config) { c.Port = 0 }, "PORT"},
		{"bad database", func(c *Config) { c.DatabaseURL = "mysql://x" }, "unsupported DATABASE_URL"},
		{"zero workers", func(c *Config) { c.CalendarWorkers = 0 }, "CALENDAR_WORKERS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		in, driver, dsn string
		wantErr         bool
	}{
		{in: "sqlite://booking.db", driver: driverSQLite, dsn: "booking.db"},
		{in: "sqlite:/var/lib/medbook.db", driver: driverSQLite, dsn: "/var/lib/medbook.db"},
		{in: "data/booking.db", driver: driverSQLite, dsn: "data/booking.db"},
		{in: ":memory:", driver: driverSQLite, dsn: ":memory:"},
		{in: "postgres://u:p@h/db", driver: driverPostgres, dsn: "postgres://u:p@h/db"},
		{in: "postgresql://u:p@h/db", driver: driverPostgres, dsn: "postgresql://u:p@h/db"},
		{in: "", wantErr: true},
		{in: "sqlite://", wantErr: true},
		{in: "mysql://x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			driver, dsn, err := parseDatabaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.driver, driver)
			require.Equal(t, tt.dsn, dsn)
		})
	}
}
