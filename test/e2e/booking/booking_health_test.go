package booking_test

import (
	"testing"

	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/stretchr/testify/require"
)

func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := bookingsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzWithoutCalendar verifies the service is ready even though no
// Google credentials are mounted.
func TestReadyzWithoutCalendar(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := bookingsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "not configured", health.Checks.Calendar)
}
