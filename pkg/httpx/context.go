package httpx

import (
	"context"

	"github.com/aussiebroadwan/medbook/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id" // token subject, the account email
	CtxKeyRole   ctxKey = "role"
	CtxKeyClaims ctxKey = "claims"
)

// ClaimsFromContext returns the verified claims stored by AuthnMiddleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// WithClaims stores claims in ctx the same way AuthnMiddleware does.
// Handlers under test use it to skip token minting.
func WithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

func roleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
