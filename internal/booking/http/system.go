package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/calendar"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
)

// IndexHandler godoc
//
//	@Summary	Service greeting
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	bookingsdk.MessageResponse
//	@Router		/ [get].
func IndexHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusOK, "Medbook appointment booking API "+version)
	}
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe, always 200 while the process is serving
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	bookingsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, bookingsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database and the calendar queue
//	@Description	A missing calendar credential is reported but does not fail readiness, bookings still work without it
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	bookingsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	bookingsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	dispatcher calendar.Dispatcher,
	mirror *calendar.Mirror,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &bookingsdk.HealthChecks{
			Database: "ok",
			Calendar: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		switch {
		case dispatcher != nil:
			if err := dispatcher.Ready(r.Context()); err != nil {
				checks.Calendar = "error: " + err.Error()
				overallStatus = "degraded"
				statusCode = http.StatusServiceUnavailable
				break
			}
			if !mirror.Configured() {
				checks.Calendar = "not configured"
			}
		default:
			checks.Calendar = "disabled"
		}

		httpx.WriteJSON(w, statusCode, bookingsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
