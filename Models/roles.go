package Models

// Roles. Every role the platform knows is listed here; the guard and the
// dashboard routing both key off these exact strings, so a role missing from
// this block cannot pass RequireRoles or resolve a dashboard.
const (
	RoleSuperAdmin   = "Super Admin"
	RoleSubAdmin     = "Sub Admin"
	RoleCDCAdmin     = "CDC Admin"
	RolePsychiatrist = "Psychiatrist"
	RoleDoctor       = "Doctor"
	RoleParent       = "Parent"
	RoleHelpDesk     = "Help Desk"
	RoleMarketing    = "Marketing"
)

type Role struct {
	Name    string `json:"name"`
	Segment string `json:"segment"`
}

var Roles = []Role{
	{Name: RoleSuperAdmin, Segment: "super-admin"},
	{Name: RoleSubAdmin, Segment: "sub-admin"},
	{Name: RoleCDCAdmin, Segment: "cdc-admin"},
	{Name: RolePsychiatrist, Segment: "psychiatrist"},
	{Name: RoleDoctor, Segment: "doctor"},
	{Name: RoleParent, Segment: "parent"},
	{Name: RoleHelpDesk, Segment: "help-desk"},
	{Name: RoleMarketing, Segment: "marketing"},
}

var dashboardSegments = map[string]string{}

func init() {
	for _, role := range Roles {
		dashboardSegments[role.Name] = role.Segment
	}
}

func IsValidRole(role string) bool {
	_, ok := dashboardSegments[role]
	return ok
}

// DashboardPath maps a role to its dashboard route, e.g.
// "Super Admin" -> "/dashboard/super-admin". Unknown roles get no path.
func DashboardPath(role string) string {
	segment, ok := dashboardSegments[role]
	if !ok {
		return ""
	}
	return "/dashboard/" + segment
}
