package httpx

import (
	"net/http"
	"slices"
	"strings"
)

// RequireRole rejects callers whose token role is not one of roles. It must
// run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(roles, roleFromCtx(r.Context())) {
				next.ServeHTTP(w, r)
				return
			}

			WriteError(w, http.StatusForbidden, "forbidden",
				"requires role "+strings.Join(roles, " or "))
		})
	}
}
