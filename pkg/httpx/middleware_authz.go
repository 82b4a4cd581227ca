package httpx

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated makes Guarded answer 401.
	ErrUnauthenticated = errors.New("httpx: unauthenticated")
	// ErrForbidden makes Guarded answer 403.
	ErrForbidden = errors.New("httpx: forbidden")
	// ErrGuardFailed makes Guarded answer 500. Guards wrap it around
	// failures that say nothing about the caller, such as a broken store.
	ErrGuardFailed = errors.New("httpx: guard failed")
)

// Guard inspects a request and either rejects it or returns the request to
// pass on, possibly with a richer context.
type Guard func(r *http.Request) (*http.Request, error)

// Guarded runs guards in order. The first rejection ends the request: 401
// for errors wrapping ErrUnauthenticated, 500 for ErrGuardFailed, 403 for
// everything else.
func Guarded(guards ...Guard) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, g := range guards {
				var err error
				if r, err = g(r); err != nil {
					writeGuardError(w, err)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeGuardError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnauthenticated) {
		WriteError(w, http.StatusUnauthorized, "unauthorized", "Not authorized to access this route")
		return
	}
	if errors.Is(err, ErrGuardFailed) {
		WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
		return
	}
	WriteError(w, http.StatusForbidden, "forbidden", err.Error())
}
