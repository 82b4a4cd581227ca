package rbac

import "context"

type principalKey struct{}

// WithPrincipal stores p on ctx for handlers further down the chain.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal resolved for this request. ok is false
// when the request was never authenticated.
func FromContext(ctx context.Context) (p Principal, ok bool) {
	p, ok = ctx.Value(principalKey{}).(Principal)
	return p, ok
}
