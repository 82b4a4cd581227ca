package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store/drivers/sqlite"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "shepherd-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	_, err = (&RolesService{Store: s}).Initialize(context.Background())
	require.NoError(t, err)
	return s
}

// seedUser creates an active user holding the named catalog roles.
func seedUser(t *testing.T, s *sqlite.Store, email string, departments []string, roleNames ...string) domain.User {
	t.Helper()
	ctx := context.Background()

	var roleIDs []string
	if len(roleNames) > 0 {
		roles, err := s.Roles().FindByNames(ctx, roleNames)
		require.NoError(t, err)
		require.Len(t, roles, len(roleNames))
		for _, r := range roles {
			roleIDs = append(roleIDs, r.ID)
		}
	}

	u := domain.User{
		ID:          idx.New().String(),
		Email:       email,
		FullName:    "Test " + email,
		Departments: departments,
		RoleIDs:     roleIDs,
		IsActive:    true,
	}
	if len(roleIDs) > 0 {
		u.PrimaryRoleID = roleIDs[0]
	}
	hash, err := cryptox.HashPassword("correct horse battery")
	require.NoError(t, err)
	u.PasswordHash = hash

	require.NoError(t, s.Users().CreateUser(ctx, u))
	return u
}

func principalFor(t *testing.T, s *sqlite.Store, u domain.User) rbac.Principal {
	t.Helper()

	u, err := s.Users().GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	p, err := rbac.Resolve(context.Background(), s.Roles(), u)
	require.NoError(t, err)
	return p
}

func roleByName(t *testing.T, s *sqlite.Store, name string) domain.Role {
	t.Helper()

	r, err := s.Roles().GetRoleByName(context.Background(), name)
	require.NoError(t, err)
	return r
}
