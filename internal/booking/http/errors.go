package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
	"github.com/aussiebroadwan/medbook/pkg/slogx"
)

type errorMapping struct {
	sentinel error
	status   int
	code     string
}

var errorMappings = []errorMapping{
	{service.ErrBadRequest, http.StatusBadRequest, bookingsdk.ErrorCodeBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, bookingsdk.ErrorCodeUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized, bookingsdk.ErrorCodeUnauthorized},
	{service.ErrForbidden, http.StatusForbidden, bookingsdk.ErrorCodeForbidden},
	{service.ErrNotFound, http.StatusNotFound, bookingsdk.ErrorCodeNotFound},
	{service.ErrBootstrapDisabled, http.StatusNotFound, bookingsdk.ErrorCodeNotFound},
	{service.ErrDuplicateEmail, http.StatusConflict, bookingsdk.ErrorCodeConflict},
	{service.ErrBootstrapDone, http.StatusConflict, bookingsdk.ErrorCodeConflict},
}

// writeServiceError maps a service error onto its status code. Anything
// unrecognised is logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			httpx.WriteError(w, m.status, m.code, message(err, m.sentinel))
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	httpx.WriteError(w, http.StatusInternalServerError, bookingsdk.ErrorCodeServerError, "internal server error")
}

// message strips the sentinel prefix from "sentinel: detail" so callers
// see only the detail. A bare sentinel is shown as is.
func message(err, sentinel error) string {
	msg := err.Error()
	if detail, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return detail
	}
	return msg
}

func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, bookingsdk.ErrorCodeBadRequest, "request body must be valid JSON")
}
