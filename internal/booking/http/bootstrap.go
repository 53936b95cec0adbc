package http

import (
	"net/http"

	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
	"github.com/aussiebroadwan/medbook/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP seeds the initial doctor accounts.
//
//	@Summary		Bootstrap doctors
//	@Description	Creates the first doctor accounts. Only available when a bootstrap token is configured, and only while no doctor exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token"
//	@Param			request				body		bookingsdk.BootstrapRequest	true	"Doctors to create"
//	@Success		201					{object}	bookingsdk.BootstrapResponse
//	@Failure		400					{object}	bookingsdk.ErrorResponse	"Invalid body or doctor entry"
//	@Failure		401					{object}	bookingsdk.ErrorResponse	"Missing or invalid bootstrap token"
//	@Failure		404					{object}	bookingsdk.ErrorResponse	"Bootstrap not enabled"
//	@Failure		409					{object}	bookingsdk.ErrorResponse	"Already bootstrapped"
//	@Router			/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	if !h.BootstrapService.Enabled() {
		httpx.WriteError(w, http.StatusNotFound, bookingsdk.ErrorCodeNotFound, "bootstrap endpoint is not enabled")
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, bookingsdk.ErrorCodeUnauthorized,
			"bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	var req bookingsdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	seeds := make([]service.DoctorSeed, len(req.Doctors))
	for i, d := range req.Doctors {
		seeds[i] = service.DoctorSeed{
			Email:      d.Email,
			Password:   d.Password,
			Name:       d.Name,
			Phone:      d.Phone,
			CalendarID: d.CalendarID,
		}
	}

	l.Info("bootstrapping doctors", "count", len(seeds))
	ids, err := h.BootstrapService.Bootstrap(r.Context(), token, seeds)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bookingsdk.BootstrapResponse{
		Message: "System bootstrapped successfully",
		IDs:     ids,
	})
}
