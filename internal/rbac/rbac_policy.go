package rbac

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

const (
	ResourceUser      = "user"
	ResourceEmployee  = "employee"
	ResourceLookup    = "lookup"
	ResourceClient    = "client"
	ResourceProject   = "project"
	ResourceTimesheet = "timesheet"
)

const (
	ActionRead         = "read"
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionReadAssigned = "read_assigned"
)

// ModelText is a flat RBAC model with role inheritance and "*" wildcards
// on resource and action.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// DefaultPolicies is loaded when no policy file is configured.
var DefaultPolicies = [][]string{
	{RoleEmployee, ResourceLookup, ActionRead},
	{RoleEmployee, ResourceTimesheet, "*"},
	{RoleEmployee, ResourceProject, ActionReadAssigned},
	{RoleHR, ResourceUser, ActionCreate},
	{RoleHR, ResourceEmployee, "*"},
	{RoleHR, ResourceLookup, "*"},
	{RoleHR, ResourceClient, "*"},
	{RoleHR, ResourceProject, "*"},
	{RoleAdmin, "*", "*"},
}

// DefaultGroupings makes admin inherit hr and hr inherit employee.
var DefaultGroupings = [][]string{
	{RoleHR, RoleEmployee},
	{RoleAdmin, RoleHR},
}

func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}
