package httpx_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// hit sends one request from addr through h and returns the status.
func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "remote address", want: "10.0.0.7"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.7"}, want: "203.0.113.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 203.0.113.2 "}, want: "203.0.113.2"},
		{
			name:    "forwarded beats real ip",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.3", "X-Real-IP": "203.0.113.4"},
			want:    "203.0.113.3",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.7:5050"
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tc.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestJSONFieldKeyExtractor(t *testing.T) {
	extract := httpx.JSONFieldKeyExtractor("email")

	cases := map[string]struct {
		body string
		want string
	}{
		"normalised":   {body: `{"email":" Deacon@Church.org ","password":"x"}`, want: "deacon@church.org"},
		"missing":      {body: `{"fullName":"Phoebe"}`, want: ""},
		"not json":     {body: "email=phoebe@church.org", want: ""},
		"not a string": {body: `{"email":7}`, want: ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", strings.NewReader(tc.body))
			require.Equal(t, tc.want, extract(req))

			rest, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.Equal(t, tc.body, string(rest), "body must be readable by the handler")
		})
	}
}

func TestCompositeKeyExtractor(t *testing.T) {
	extract := httpx.CompositeKeyExtractor("|", httpx.IPKeyExtractor, httpx.JSONFieldKeyExtractor("email"))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"elder@church.org"}`))
	req.RemoteAddr = "10.0.0.7:5050"
	require.Equal(t, "10.0.0.7|elder@church.org", extract(req))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.RemoteAddr = "10.0.0.7:5050"
	require.Equal(t, "10.0.0.7", extract(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("burst then reject", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code, "request %d", i+1)
		}

		rec := hit(h, "10.0.0.1:1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), `"error":"rate_limit_exceeded"`)
	})

	t.Run("buckets are per key", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:2").Code)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1").Code)
	})

	t.Run("empty key is not limited", func(t *testing.T) {
		noKey := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, noKey)(okHandler)

		for range 4 {
			require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
		}
	})
}

func TestRateLimitByIPAndJSONField(t *testing.T) {
	h := httpx.RateLimitByIPAndJSONField(httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}, "email")(okHandler)

	signin := func(email string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", strings.NewReader(`{"email":"`+email+`"}`))
		req.RemoteAddr = "10.0.0.1:1"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, signin("pastor@church.org"))
	require.Equal(t, http.StatusOK, signin("pastor@church.org"))
	require.Equal(t, http.StatusTooManyRequests, signin("pastor@church.org"))
	require.Equal(t, http.StatusOK, signin("deacon@church.org"))
}

func TestRateLimitProfilesAreOrdered(t *testing.T) {
	profiles := []httpx.RateLimitConfig{httpx.StrictLimit, httpx.ModerateLimit, httpx.LenientLimit, httpx.PublicLimit}
	for i, p := range profiles {
		require.Positive(t, p.RequestsPerWindow)
		require.Positive(t, p.Burst)
		require.Positive(t, p.Window)
		if i > 0 {
			require.Less(t, profiles[i-1].RequestsPerWindow, p.RequestsPerWindow)
		}
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	cases := []struct {
		name string
		env  map[string]string
		want httpx.RateLimitConfig
	}{
		{name: "defaults", want: def},
		{
			name: "overrides",
			env: map[string]string{
				"RATELIMIT_CHECKIN_REQUESTS":   "200",
				"RATELIMIT_CHECKIN_WINDOW_SEC": "30",
				"RATELIMIT_CHECKIN_BURST":      "250",
			},
			want: httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250},
		},
		{
			name: "partial override",
			env:  map[string]string{"RATELIMIT_CHECKIN_BURST": "40"},
			want: httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 40},
		},
		{
			name: "invalid and non-positive values are ignored",
			env: map[string]string{
				"RATELIMIT_CHECKIN_REQUESTS":   "lots",
				"RATELIMIT_CHECKIN_WINDOW_SEC": "-10",
				"RATELIMIT_CHECKIN_BURST":      "0",
			},
			want: def,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			require.Equal(t, tc.want, httpx.ParseRateLimitFromEnv("CHECKIN", def))
		})
	}
}

func BenchmarkRateLimitManyClients(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1_000_000, Window: time.Minute, Burst: 1000})(okHandler)

	for i := 0; b.Loop(); i++ {
		hit(h, fmt.Sprintf("10.%d.%d.1:1", i%255, (i/255)%255))
	}
}
