package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

// principalGuard resolves the token subject into an rbac.Principal and
// stores it on the request. It must follow httpx.AuthnMiddleware.
func principalGuard(access *service.AccessService) httpx.Guard {
	return func(r *http.Request) (*http.Request, error) {
		ctx := r.Context()
		claims, ok := httpx.ClaimsFromContext(ctx)
		if !ok {
			return nil, httpx.ErrUnauthenticated
		}

		p, err := access.Principal(ctx, claims)
		switch {
		case errors.Is(err, rbac.ErrAuthenticationMissing):
			slogx.FromContext(ctx).Warn("principal resolution failed", "err", err)
			return nil, fmt.Errorf("%w: %w", httpx.ErrUnauthenticated, err)
		case err != nil:
			slogx.FromContext(ctx).Error("principal resolution failed", "err", err)
			return nil, fmt.Errorf("%w: %w", httpx.ErrGuardFailed, err)
		}

		level, _ := rbac.BestLevel(p.Roles)
		ctx = rbac.WithPrincipal(ctx, p)
		ctx = slogx.WithPrincipal(ctx, p.UserID, level)
		return r.WithContext(ctx), nil
	}
}

// principalGuarded adapts a principal check into a Guard.
func principalGuarded(check func(rbac.Principal, *http.Request) error) httpx.Guard {
	return func(r *http.Request) (*http.Request, error) {
		p, ok := rbac.FromContext(r.Context())
		if !ok {
			return nil, httpx.ErrUnauthenticated
		}
		if err := check(p, r); err != nil {
			return nil, err
		}
		return r, nil
	}
}

func requireRole(names ...string) httpx.Guard {
	return principalGuarded(func(p rbac.Principal, _ *http.Request) error {
		return p.RequireRole(names...)
	})
}

func requirePermission(resource string, action domain.Action) httpx.Guard {
	return principalGuarded(func(p rbac.Principal, _ *http.Request) error {
		return p.RequirePermission(resource, action)
	})
}

func requireLevel(level int) httpx.Guard {
	return principalGuarded(func(p rbac.Principal, _ *http.Request) error {
		return p.RequireLevel(level)
	})
}

// requireDepartmentPath checks access to the department named by a path
// wildcard.
func requireDepartmentPath(wildcard string) httpx.Guard {
	return principalGuarded(func(p rbac.Principal, r *http.Request) error {
		return p.RequireDepartment(r.PathValue(wildcard))
	})
}

func requireEventManager(action domain.Action) httpx.Guard {
	return principalGuarded(func(p rbac.Principal, _ *http.Request) error {
		return service.RequireEventManager(p, action)
	})
}

// principal returns the caller stored by principalGuard. Handlers behind
// r.authenticated always have one; the zero Principal makes services answer
// with rbac.ErrAuthenticationMissing otherwise.
func principal(r *http.Request) rbac.Principal {
	p, _ := rbac.FromContext(r.Context())
	return p
}
