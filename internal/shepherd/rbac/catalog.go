package rbac

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"gopkg.in/yaml.v3"
)

// Names of the predefined system roles.
const (
	RoleSeniorPastor     = "Senior Pastor"
	RolePastor           = "Pastor"
	RoleElder            = "Elder"
	RoleFinanceOfficer   = "Church Finance Officer"
	RoleDeacon           = "Deacon"
	RoleDepartmentLeader = "Department Leader"
	RoleLaneLeader       = "Lane Leader"

	// RoleITOfficer is not seeded. Churches that want it create it as a
	// custom role.
	RoleITOfficer = "IT Officer"
)

// PredefinedRoles returns a fresh copy of the built-in catalog used to seed
// the registry. IDs and timestamps are left for the registry to assign.
func PredefinedRoles() []domain.Role {
	return []domain.Role{
		{
			Name:            RoleSeniorPastor,
			Description:     "Highest church leadership with complete system access and authority",
			Level:           1,
			DepartmentScope: domain.ScopeAll,
			Permissions: []domain.Permission{
				{Name: "full_system_access", Description: "Complete access to all system features", Resource: domain.WildcardResource, Action: domain.ActionManage},
			},
		},
		{
			Name:            RolePastor,
			Description:     "Church pastor with full system access",
			Level:           2,
			DepartmentScope: domain.ScopeAll,
			Permissions: []domain.Permission{
				{Name: "manage_members", Description: "Manage church members", Resource: "members", Action: domain.ActionManage},
				{Name: "manage_roles", Description: "Manage user roles", Resource: "roles", Action: domain.ActionManage},
			},
		},
		{
			Name:            RoleElder,
			Description:     "Church elder with high-level administrative access",
			Level:           3,
			DepartmentScope: domain.ScopeAll,
			Permissions: []domain.Permission{
				{Name: "view_members", Description: "View church members", Resource: "members", Action: domain.ActionRead},
				{Name: "manage_departments", Description: "Manage departments", Resource: "departments", Action: domain.ActionManage},
			},
		},
		{
			Name:               RoleFinanceOfficer,
			Description:        "Responsible for managing church finances and financial records",
			Level:              3,
			DepartmentScope:    domain.ScopeSpecific,
			AllowedDepartments: []string{"Finance"},
			Permissions: []domain.Permission{
				{Name: "finance_management", Description: "Access to financial management features", Resource: "finance", Action: domain.ActionManage},
				{Name: "financial_reports", Description: "Access to financial reports", Resource: "reports", Action: domain.ActionRead},
			},
		},
		{
			Name:            RoleDeacon,
			Description:     "Church deacon with administrative access",
			Level:           4,
			DepartmentScope: domain.ScopeAll,
			Permissions: []domain.Permission{
				{Name: "view_members", Description: "View church members", Resource: "members", Action: domain.ActionRead},
				{Name: "manage_events", Description: "Manage church events", Resource: "events", Action: domain.ActionManage},
			},
		},
		{
			Name:            RoleDepartmentLeader,
			Description:     "Leader of a specific department",
			Level:           5,
			DepartmentScope: domain.ScopeSpecific,
			Permissions: []domain.Permission{
				{Name: "manage_department", Description: "Manage department members and activities", Resource: "department", Action: domain.ActionManage},
			},
		},
		{
			Name:            RoleLaneLeader,
			Description:     "Leader of a specific lane or care cell",
			Level:           6,
			DepartmentScope: domain.ScopeSpecific,
			Permissions: []domain.Permission{
				{Name: "manage_lane", Description: "Manage lane members and activities", Resource: "lane", Action: domain.ActionManage},
			},
		},
	}
}

// catalogFile is the YAML shape accepted by LoadCatalog.
type catalogFile struct {
	Roles []catalogRole `yaml:"roles"`
}

type catalogRole struct {
	Name               string              `yaml:"name"`
	Description        string              `yaml:"description"`
	Level              int                 `yaml:"level"`
	DepartmentScope    string              `yaml:"departmentScope"`
	AllowedDepartments []string            `yaml:"allowedDepartments"`
	Permissions        []catalogPermission `yaml:"permissions"`
}

type catalogPermission struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Resource    string `yaml:"resource"`
	Action      string `yaml:"action"`
}

// LoadCatalog reads a role catalog from a YAML file. An empty path returns
// PredefinedRoles.
func LoadCatalog(path string) ([]domain.Role, error) {
	if path == "" {
		return PredefinedRoles(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - operator supplied path
	if err != nil {
		return nil, fmt.Errorf("rbac: read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog, rejecting unknown fields.
func ParseCatalog(data []byte) ([]domain.Role, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("rbac: parse catalog: %w", err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("rbac: parse catalog: no roles defined")
	}

	seen := make(map[string]struct{}, len(file.Roles))
	roles := make([]domain.Role, 0, len(file.Roles))
	for i, cr := range file.Roles {
		scope := domain.DepartmentScope(cr.DepartmentScope)
		if scope == "" {
			scope = domain.ScopeNone
		}

		perms := make([]domain.Permission, len(cr.Permissions))
		for j, cp := range cr.Permissions {
			perms[j] = domain.Permission{
				Name:        cp.Name,
				Description: cp.Description,
				Resource:    cp.Resource,
				Action:      domain.Action(cp.Action),
			}
		}

		role := domain.Role{
			Name:               cr.Name,
			Description:        cr.Description,
			Level:              cr.Level,
			DepartmentScope:    scope,
			AllowedDepartments: cr.AllowedDepartments,
			Permissions:        perms,
		}
		if err := role.Validate(); err != nil {
			return nil, fmt.Errorf("rbac: catalog role %d: %w", i, err)
		}
		if _, dup := seen[role.Name]; dup {
			return nil, fmt.Errorf("rbac: catalog role %d: duplicate name %q", i, role.Name)
		}
		seen[role.Name] = struct{}{}
		roles = append(roles, role)
	}
	return roles, nil
}
