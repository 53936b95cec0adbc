package http

import (
	"net/http"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
)

// callerIdentity resolves the verified token on r to an Identity. On
// failure the response has been written and ok is false.
func callerIdentity(w http.ResponseWriter, r *http.Request, auth *service.AuthService) (domain.Identity, bool) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, bookingsdk.ErrorCodeUnauthorized, "missing bearer token")
		return domain.Identity{}, false
	}

	id, err := auth.Identify(r.Context(), claims)
	if err != nil {
		writeServiceError(w, r, err)
		return domain.Identity{}, false
	}
	return id, true
}
