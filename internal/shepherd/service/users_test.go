package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestUserSignup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &UserService{Store: s}

	u, err := svc.Signup(ctx, Signup{
		Email:       " Grace@Example.com ",
		Password:    "long enough",
		FullName:    "Grace Hopper",
		Departments: []string{"Youth"},
	})
	require.NoError(t, err)
	require.Equal(t, "grace@example.com", u.Email)
	require.Empty(t, u.RoleIDs)
	require.True(t, u.IsActive)

	_, err = svc.Signup(ctx, Signup{Email: "grace@example.com", Password: "long enough", FullName: "Again"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Signup(ctx, Signup{Email: "nope", Password: "short"})
	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "email")
	require.Contains(t, verr.Fields, "password")
	require.Contains(t, verr.Fields, "fullName")
}

func TestUserMeResolvesRoles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "elder@example.com", nil, rbac.RoleElder)

	profile, err := (&UserService{Store: s}).Me(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, profile.Roles, 1)
	require.Equal(t, rbac.RoleElder, profile.Roles[0].Name)
}

func TestAssignRoles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &UserService{Store: s}

	senior := principalFor(t, s, seedUser(t, s, "senior@example.com", nil, rbac.RoleSeniorPastor))
	pastor := principalFor(t, s, seedUser(t, s, "pastor@example.com", nil, rbac.RolePastor))
	deacon := principalFor(t, s, seedUser(t, s, "deacon@example.com", nil, rbac.RoleDeacon))
	target := seedUser(t, s, "member@example.com", nil)

	deaconRole := roleByName(t, s, rbac.RoleDeacon)
	elderRole := roleByName(t, s, rbac.RoleElder)

	t.Run("primary defaults to first role", func(t *testing.T) {
		u, err := svc.AssignRoles(ctx, senior, target.ID, []string{deaconRole.ID, elderRole.ID, deaconRole.ID}, "")
		require.NoError(t, err)
		require.ElementsMatch(t, []string{deaconRole.ID, elderRole.ID}, u.RoleIDs)
		require.Equal(t, deaconRole.ID, u.PrimaryRoleID)
	})

	t.Run("primary must be assigned", func(t *testing.T) {
		_, err := svc.AssignRoles(ctx, senior, target.ID, []string{deaconRole.ID}, elderRole.ID)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("requires roles update permission", func(t *testing.T) {
		_, err := svc.AssignRoles(ctx, deacon, target.ID, []string{deaconRole.ID}, "")
		require.ErrorIs(t, err, rbac.ErrAuthorizationDenied)
	})

	t.Run("caller must outrank assigned roles", func(t *testing.T) {
		seniorRole := roleByName(t, s, rbac.RoleSeniorPastor)
		_, err := svc.AssignRoles(ctx, pastor, target.ID, []string{seniorRole.ID}, "")
		var denied *rbac.DeniedError
		require.ErrorAs(t, err, &denied)
		require.Equal(t, "hierarchy", denied.Kind)
	})

	t.Run("unknown roles", func(t *testing.T) {
		_, err := svc.AssignRoles(ctx, senior, target.ID, []string{"missing"}, "")
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("inactive roles cannot be assigned", func(t *testing.T) {
		lane := roleByName(t, s, rbac.RoleLaneLeader)
		require.NoError(t, s.Roles().SetRoleActive(ctx, lane.ID, false))

		_, err := svc.AssignRoles(ctx, senior, target.ID, []string{lane.ID}, "")
		require.ErrorIs(t, err, ErrRoleInactive)
	})

	t.Run("held inactive roles survive reassignment", func(t *testing.T) {
		leader := roleByName(t, s, rbac.RoleDepartmentLeader)
		holder := seedUser(t, s, "holder@example.com", nil, rbac.RoleDepartmentLeader)
		require.NoError(t, s.Roles().SetRoleActive(ctx, leader.ID, false))

		u, err := svc.AssignRoles(ctx, senior, holder.ID, []string{leader.ID, deaconRole.ID}, deaconRole.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{leader.ID, deaconRole.ID}, u.RoleIDs)
		require.Equal(t, deaconRole.ID, u.PrimaryRoleID)

		lane := roleByName(t, s, rbac.RoleLaneLeader)
		_, err = svc.AssignRoles(ctx, senior, holder.ID, []string{leader.ID, lane.ID}, "")
		require.ErrorIs(t, err, ErrRoleInactive)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.AssignRoles(ctx, senior, "missing", []string{deaconRole.ID}, "")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSigninAndAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "https://shepherd.test", NumKeys: 1})
	require.NoError(t, err)
	tokens := &TokenService{KeyManager: km, Store: s, Issuer: "https://shepherd.test", AccessTTL: time.Minute}
	access := &AccessService{Store: s}

	u := seedUser(t, s, "deacon@example.com", []string{"Youth"}, rbac.RoleDeacon)

	t.Run("wrong password", func(t *testing.T) {
		_, err := tokens.Signin(ctx, u.Email, "wrong password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := tokens.Signin(ctx, "ghost@example.com", "correct horse battery")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("issues a verifiable token", func(t *testing.T) {
		tok, err := tokens.Signin(ctx, "Deacon@Example.com", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, time.Minute, tok.ExpiresIn)
		require.NotNil(t, tok.User.LastLogin)

		claims, err := km.Verifier.Verify(tok.Token)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.Subject)

		p, err := access.Principal(ctx, claims)
		require.NoError(t, err)
		require.Equal(t, u.ID, p.UserID)
		require.True(t, p.HasRole(rbac.RoleDeacon))
		require.Equal(t, []string{"Youth"}, p.Departments)
	})

	t.Run("password change revokes older tokens", func(t *testing.T) {
		issued := time.Now().Add(-time.Hour).Truncate(time.Second)
		claims := jwtx.NewAccessClaims(u.ID, u.Email, u.FullName, 2*time.Hour, "https://shepherd.test", nil, issued)

		require.NoError(t, (&UserService{Store: s}).ChangePassword(ctx, u.ID, "correct horse battery", "another long one"))

		_, err := access.Principal(ctx, claims)
		require.ErrorIs(t, err, rbac.ErrAuthenticationMissing)
		require.ErrorIs(t, err, ErrTokenStale)

		claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(2 * time.Second))
		_, err = access.Principal(ctx, claims)
		require.NoError(t, err)
	})

	t.Run("change password checks the current one", func(t *testing.T) {
		err := (&UserService{Store: s}).ChangePassword(ctx, u.ID, "not it", "whatever it is")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown subject", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("missing", "", "", time.Minute, "https://shepherd.test", nil, time.Now())
		_, err := access.Principal(ctx, claims)
		require.ErrorIs(t, err, rbac.ErrAuthenticationMissing)
	})
}

func TestBootstrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	roles := &RolesService{Store: s}
	data := domain.BootstrapData{Email: "Admin@Example.com", FullName: "First Admin", Password: "bootstrap pass"}

	t.Run("disabled without a token", func(t *testing.T) {
		_, err := (&BootstrapService{Store: s, Roles: roles}).Bootstrap(ctx, "", data)
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	svc := &BootstrapService{Store: s, Roles: roles, Token: "let-me-in"}

	t.Run("wrong token", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "let-me-out", data)
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("first user becomes senior pastor", func(t *testing.T) {
		done, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.False(t, done)

		u, err := svc.Bootstrap(ctx, "let-me-in", data)
		require.NoError(t, err)
		require.Equal(t, "admin@example.com", u.Email)

		p := principalFor(t, s, u)
		require.True(t, p.HasRole(rbac.RoleSeniorPastor))
		require.Equal(t, roleByName(t, s, rbac.RoleSeniorPastor).ID, u.PrimaryRoleID)
	})

	t.Run("only once", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "let-me-in", data)
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}
