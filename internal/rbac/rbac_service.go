package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the pharmacy's static permission table. Roles are single-tenant
// and fixed; there is no per-company policy loading.
var policies = [][]string{
	{RoleManager, "employees", "read"},
	{RoleManager, "employees", "write"},
	{RoleManager, "attendances", "read"},
	{RoleManager, "funds", "read"},
	{RoleManager, "funds", "write"},
	{RoleManager, "evaluations", "read"},
	{RoleManager, "evaluations", "write"},
	{RoleManager, "reports", "write"},
	{RoleManager, "proposals", "write"},
	{RoleManager, "shifts", "write"},
	{RoleManager, "dropdowns", "write"},
	{RoleManager, "accounts", "read"},

	{RoleStaff, "reports", "write"},
	{RoleStaff, "shifts", "write"},
}

// roleInheritance: admin can do everything a manager can, manager everything
// a staff member can.
var roleInheritance = [][]string{
	{RoleAdmin, RoleManager},
	{RoleManager, RoleStaff},
}

// adminOnly lists the permissions reserved for the admin role.
var adminOnly = [][]string{
	{RoleAdmin, "accounts", "write"},
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, p := range adminOnly {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range roleInheritance {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
