package Models

import "testing"

func TestDashboardPath(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{RoleSuperAdmin, "/dashboard/super-admin"},
		{RoleSubAdmin, "/dashboard/sub-admin"},
		{RoleCDCAdmin, "/dashboard/cdc-admin"},
		{RolePsychiatrist, "/dashboard/psychiatrist"},
		{RoleDoctor, "/dashboard/doctor"},
		{RoleParent, "/dashboard/parent"},
		{RoleHelpDesk, "/dashboard/help-desk"},
		{RoleMarketing, "/dashboard/marketing"},
	}
	for _, tc := range cases {
		if got := DashboardPath(tc.role); got != tc.want {
			t.Errorf("DashboardPath(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestDashboardPathUnknownRole(t *testing.T) {
	for _, role := range []string{"", "Admin", "super admin", "parent"} {
		if got := DashboardPath(role); got != "" {
			t.Errorf("DashboardPath(%q) = %q, want empty", role, got)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range Roles {
		if !IsValidRole(role.Name) {
			t.Errorf("IsValidRole(%q) = false", role.Name)
		}
	}
	if IsValidRole("Intern") {
		t.Error("IsValidRole accepted an unknown role")
	}
}

func TestEveryRoleHasASegment(t *testing.T) {
	seen := map[string]bool{}
	for _, role := range Roles {
		if role.Segment == "" {
			t.Errorf("role %q has no dashboard segment", role.Name)
		}
		if seen[role.Segment] {
			t.Errorf("segment %q is used by more than one role", role.Segment)
		}
		seen[role.Segment] = true
	}
}
