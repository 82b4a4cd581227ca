package httpx

import (
	"context"

	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyUserID ctxKey = "user_id"
	ctxKeyClaims ctxKey = "claims"
)

// WithClaims stores verified token claims on ctx.
func WithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, c.Subject)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// ClaimsFromContext returns the claims stored by AuthnMiddleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}

// UserIDFromContext returns the token subject or "".
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}
