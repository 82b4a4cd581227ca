package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store/drivers/sqlite"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer    = "https://shepherd.test"
	testPassword  = "correct horse battery"
	testBootstrap = "bootstrap-secret"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "shepherd-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	t      *testing.T
	store  *sqlite.Store
	router *Router
	tokens *service.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	roles := &service.RolesService{Store: s}
	_, err = roles.Initialize(ctx)
	require.NoError(t, err)

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, NumKeys: 1})
	require.NoError(t, err)
	tokens := &service.TokenService{KeyManager: km, Store: s, Issuer: testIssuer, AccessTTL: time.Hour}

	r := NewRouter(km.KeySet, km.Verifier, "test", s, slog.New(slog.DiscardHandler))
	r.AccessService = &service.AccessService{Store: s}
	r.TokenService = tokens
	r.UserService = &service.UserService{Store: s}
	r.RolesService = roles
	r.BootstrapService = &service.BootstrapService{Store: s, Roles: roles, Token: testBootstrap}
	r.MemberService = &service.MemberService{Store: s}
	r.EventService = &service.EventService{Store: s, Issuer: testIssuer}
	r.AttendanceService = &service.AttendanceService{Store: s}
	r.DiscipleshipService = &service.DiscipleshipService{Store: s}
	r.ApplyRoutes()

	return &testServer{t: t, store: s, router: r, tokens: tokens}
}

// seedUser creates an active user holding the named catalog roles and
// returns a bearer token for them.
func (ts *testServer) seedUser(email string, departments []string, roleNames ...string) (domain.User, string) {
	ts.t.Helper()
	ctx := context.Background()

	var roleIDs []string
	if len(roleNames) > 0 {
		roles, err := ts.store.Roles().FindByNames(ctx, roleNames)
		require.NoError(ts.t, err)
		require.Len(ts.t, roles, len(roleNames))
		for _, r := range roles {
			roleIDs = append(roleIDs, r.ID)
		}
	}

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(ts.t, err)
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     "Test " + email,
		PasswordHash: hash,
		Departments:  departments,
		RoleIDs:      roleIDs,
		IsActive:     true,
	}
	if len(roleIDs) > 0 {
		u.PrimaryRoleID = roleIDs[0]
	}
	require.NoError(ts.t, ts.store.Users().CreateUser(ctx, u))

	token, err := ts.tokens.Issue(u, time.Now())
	require.NoError(ts.t, err)
	return u, token
}

func (ts *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	ts.t.Helper()

	req := newJSONRequest(ts.t, method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.serve(req)
}

func (ts *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// newJSONRequest encodes body as JSON. A string body is sent verbatim.
func newJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}
