package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/internal/booking/store/drivers/postgres"
	"github.com/aussiebroadwan/medbook/internal/booking/store/drivers/sqlite"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

// parseDatabaseURL picks the driver from the URL scheme. Anything without
// a scheme is a sqlite file path.
func parseDatabaseURL(raw string) (driver, dsn string, err error) {
	switch {
	case raw == "":
		return "", "", fmt.Errorf("DATABASE_URL is empty")
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return driverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		dsn = strings.TrimPrefix(raw, "sqlite://")
	case strings.HasPrefix(raw, "sqlite:"):
		dsn = strings.TrimPrefix(raw, "sqlite:")
	case strings.Contains(raw, "://"):
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme in %q", raw)
	default:
		dsn = raw
	}

	if dsn == "" {
		return "", "", fmt.Errorf("DATABASE_URL %q has no path", raw)
	}
	return driverSQLite, dsn, nil
}

// openStore connects to the configured database and migrates it.
func openStore(ctx context.Context, databaseURL string) (store.Store, string, error) {
	driver, dsn, err := parseDatabaseURL(databaseURL)
	if err != nil {
		return nil, "", err
	}

	var st store.Store
	switch driver {
	case driverPostgres:
		st, err = postgres.NewStore(ctx, dsn)
	default:
		st, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, "", fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return st, driver, nil
}
