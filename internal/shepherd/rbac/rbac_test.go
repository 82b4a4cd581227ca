package rbac

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/stretchr/testify/require"
)

func testCatalogRole(t *testing.T, name string) domain.Role {
	t.Helper()
	for _, r := range PredefinedRoles() {
		if r.Name == name {
			r.ID = name
			r.IsActive = true
			return r
		}
	}
	t.Fatalf("role %q not in catalog", name)
	return domain.Role{}
}

func TestExpandActions(t *testing.T) {
	t.Parallel()

	t.Run("manage implies crud", func(t *testing.T) {
		set := ExpandActions(domain.Permission{Resource: "members", Action: domain.ActionManage})
		for _, a := range []domain.Action{
			domain.ActionCreate, domain.ActionRead, domain.ActionUpdate, domain.ActionDelete, domain.ActionManage,
		} {
			require.Contains(t, set, a)
		}
	})

	t.Run("read is only read", func(t *testing.T) {
		set := ExpandActions(domain.Permission{Resource: "members", Action: domain.ActionRead})
		require.Len(t, set, 1)
		require.Contains(t, set, domain.ActionRead)
	})

	t.Run("stored entry is not rewritten", func(t *testing.T) {
		p := domain.Permission{Resource: "events", Action: domain.ActionManage}
		_ = ExpandActions(p)
		require.Equal(t, domain.ActionManage, p.Action)
	})
}

func TestAuthorizeByRole(t *testing.T) {
	t.Parallel()

	pastor := testCatalogRole(t, RolePastor)

	require.True(t, AuthorizeByRole([]domain.Role{pastor}, RoleSeniorPastor, RolePastor))
	require.False(t, AuthorizeByRole([]domain.Role{pastor}, RoleElder))
	require.False(t, AuthorizeByRole(nil, RolePastor))
	require.False(t, AuthorizeByRole([]domain.Role{pastor}))
}

func TestAuthorizeByPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		roles    []string
		resource string
		action   domain.Action
		want     bool
	}{
		{"wildcard manage covers delete anywhere", []string{RoleSeniorPastor}, "finance", domain.ActionDelete, true},
		{"manage covers update", []string{RolePastor}, "members", domain.ActionUpdate, true},
		{"read does not cover update", []string{RoleElder}, "members", domain.ActionUpdate, false},
		{"read covers read", []string{RoleElder}, "members", domain.ActionRead, true},
		{"resource must match", []string{RoleDeacon}, "roles", domain.ActionRead, false},
		{"any role may grant", []string{RoleLaneLeader, RoleDeacon}, "events", domain.ActionCreate, true},
		{"empty set denies", nil, "members", domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := make([]domain.Role, 0, len(tt.roles))
			for _, n := range tt.roles {
				roles = append(roles, testCatalogRole(t, n))
			}
			require.Equal(t, tt.want, AuthorizeByPermission(roles, tt.resource, tt.action))
		})
	}
}

func TestHasDepartmentAccess(t *testing.T) {
	t.Parallel()

	finance := testCatalogRole(t, RoleFinanceOfficer)
	elder := testCatalogRole(t, RoleElder)
	none := domain.Role{Name: "Greeter", Level: 9, DepartmentScope: domain.ScopeNone, AllowedDepartments: []string{"Youth"}}

	require.True(t, HasDepartmentAccess([]domain.Role{finance}, "Finance"))
	require.False(t, HasDepartmentAccess([]domain.Role{finance}, "Youth"))
	require.True(t, HasDepartmentAccess([]domain.Role{elder}, "Youth"))
	require.False(t, HasDepartmentAccess([]domain.Role{none}, "Youth"), "scope none never grants")
	require.False(t, HasDepartmentAccess(nil, "Youth"))
}

func TestMeetsHierarchy(t *testing.T) {
	t.Parallel()

	deacon := testCatalogRole(t, RoleDeacon)
	lane := testCatalogRole(t, RoleLaneLeader)

	require.True(t, MeetsHierarchy([]domain.Role{lane, deacon}, 4))
	require.True(t, MeetsHierarchy([]domain.Role{deacon}, 5))
	require.False(t, MeetsHierarchy([]domain.Role{lane}, 4))
	require.False(t, MeetsHierarchy(nil, 10), "empty role set is denied")

	_, ok := BestLevel(nil)
	require.False(t, ok)
}

func TestInactiveRolesStillGrant(t *testing.T) {
	t.Parallel()

	deacon := testCatalogRole(t, RoleDeacon)
	deacon.IsActive = false

	roles := EffectiveRoles([]domain.Role{deacon})
	require.True(t, AuthorizeByPermission(roles, "events", domain.ActionCreate))
	require.True(t, AuthorizeByRole(roles, RoleDeacon))
}

type fakeRegistry struct {
	roles map[string]domain.Role
	calls int
}

func (f *fakeRegistry) FindByNames(_ context.Context, names []string) ([]domain.Role, error) {
	var out []domain.Role
	for _, r := range f.roles {
		for _, n := range names {
			if r.Name == n {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeRegistry) FindByIDs(_ context.Context, ids []string) ([]domain.Role, error) {
	f.calls++
	var out []domain.Role
	for _, id := range ids {
		if r, ok := f.roles[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	deacon := testCatalogRole(t, RoleDeacon)
	reg := &fakeRegistry{roles: map[string]domain.Role{deacon.ID: deacon}}

	t.Run("missing user id is unauthenticated", func(t *testing.T) {
		_, err := Resolve(ctx, reg, domain.User{})
		require.ErrorIs(t, err, ErrAuthenticationMissing)
	})

	t.Run("unknown role ids are dropped", func(t *testing.T) {
		p, err := Resolve(ctx, reg, domain.User{ID: "u1", RoleIDs: []string{deacon.ID, "ghost"}})
		require.NoError(t, err)
		require.Len(t, p.Roles, 1)
		require.True(t, p.Can("events", domain.ActionDelete))
	})

	t.Run("role edits are seen on next resolve", func(t *testing.T) {
		u := domain.User{ID: "u1", RoleIDs: []string{deacon.ID}}

		p, err := Resolve(ctx, reg, u)
		require.NoError(t, err)
		require.True(t, p.Can("events", domain.ActionCreate))

		edited := deacon
		edited.Permissions = []domain.Permission{{Resource: "members", Action: domain.ActionRead}}
		reg.roles[deacon.ID] = edited

		p, err = Resolve(ctx, reg, u)
		require.NoError(t, err)
		require.False(t, p.Can("events", domain.ActionCreate))
	})
}

func TestPrincipalRequire(t *testing.T) {
	t.Parallel()

	p := Principal{UserID: "u1", Roles: []domain.Role{testCatalogRole(t, RoleDepartmentLeader)}}
	p.Roles[0].AllowedDepartments = []string{"Youth"}

	require.NoError(t, p.RequireDepartment("Youth"))
	require.NoError(t, p.RequireLevel(5))

	err := p.RequireRole(RoleSeniorPastor)
	require.ErrorIs(t, err, ErrAuthorizationDenied)
	var denied *DeniedError
	require.True(t, errors.As(err, &denied))
	require.Equal(t, "role", denied.Kind)

	require.ErrorIs(t, p.RequirePermission("members", domain.ActionRead), ErrAuthorizationDenied)
	require.ErrorIs(t, p.RequireLevel(4), ErrAuthorizationDenied)

	require.ErrorIs(t, Principal{}.RequireRole(RolePastor), ErrAuthenticationMissing)
}

func TestPredefinedRoles(t *testing.T) {
	t.Parallel()

	roles := PredefinedRoles()
	require.Len(t, roles, 7)
	names := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		require.NoError(t, r.Validate(), r.Name)
		names[r.Name] = struct{}{}
	}
	require.Len(t, names, 7, "names must be unique")

	roles[0].Name = "mutated"
	require.Equal(t, RoleSeniorPastor, PredefinedRoles()[0].Name, "each call returns a fresh copy")
}

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		roles, err := ParseCatalog([]byte(`
roles:
  - name: Worship Leader
    description: Leads the worship team
    level: 5
    departmentScope: specific
    allowedDepartments: [Worship]
    permissions:
      - name: manage_worship
        resource: worship
        action: manage
  - name: Usher
    description: Front of house
    level: 8
`))
		require.NoError(t, err)
		require.Len(t, roles, 2)
		require.Equal(t, domain.ScopeSpecific, roles[0].DepartmentScope)
		require.Equal(t, domain.ScopeNone, roles[1].DepartmentScope)
		require.True(t, HasDepartmentAccess(roles[:1], "Worship"))
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := ParseCatalog([]byte("roles:\n  - name: X\n    colour: red\n"))
		require.Error(t, err)
	})

	t.Run("level out of range rejected", func(t *testing.T) {
		_, err := ParseCatalog([]byte("roles:\n  - name: X\n    description: d\n    level: 11\n"))
		require.ErrorIs(t, err, domain.ErrRoleLevelRange)
	})

	t.Run("duplicate names rejected", func(t *testing.T) {
		_, err := ParseCatalog([]byte("roles:\n  - {name: X, description: d, level: 2}\n  - {name: X, description: d, level: 3}\n"))
		require.Error(t, err)
	})
}
