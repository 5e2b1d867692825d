package authorize

import "testing"

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		want   bool
	}{
		{"system domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"per-user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},
		{"empty", Domain(""), false},
		{"bare word", Domain("clinic"), false},
		{"user prefix without id", Domain("user:"), false},
		{"user prefix with junk id", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("org:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDomain(tt.domain); got != tt.want {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestUserDomain(t *testing.T) {
	id := "550e8400-e29b-41d4-a716-446655440000"
	if got, want := UserDomain(id), Domain("user:"+id); got != want {
		t.Errorf("UserDomain(%q) = %q, want %q", id, got, want)
	}
}

// Every declared constant has to be registered in its Known* map, or the
// validation layer silently rejects policies that use it.
func TestDeclaredConstantsAreKnown(t *testing.T) {
	for _, a := range []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute, ActionGrant, ActionRevoke,
	} {
		if _, ok := KnownActions[a]; !ok {
			t.Errorf("action %q missing from KnownActions", a)
		}
	}

	for _, r := range []Resource{
		ResourceUser, ResourceAuthSession, ResourceRefreshToken,
		ResourcePatient, ResourceAppointment, ResourceEncounter,
		ResourceMedicationMaster, ResourcePatientMedication,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	} {
		if _, ok := KnownResources[r]; !ok {
			t.Errorf("resource %q missing from KnownResources", r)
		}
	}

	for _, role := range []Role{RoleSuperAdmin, RoleAdmin, RoleDoctor, RoleNurse, RoleUserSelf} {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("role %q missing from KnownRoles", role)
		}
		if name, ok := RoleDisplayNames[role]; !ok || name == "" {
			t.Errorf("role %q has no display name", role)
		}
	}
}

func TestUserRoleToRBACRole(t *testing.T) {
	tests := []struct {
		dbRole string
		want   Role
	}{
		{UserRoleSuperAdmin, RoleSuperAdmin},
		{UserRoleAdmin, RoleAdmin},
		{UserRoleDoctor, RoleDoctor},
		{UserRoleNurse, RoleNurse},
	}

	for _, tt := range tests {
		if got := UserRoleToRBACRole[tt.dbRole]; got != tt.want {
			t.Errorf("UserRoleToRBACRole[%q] = %q, want %q", tt.dbRole, got, tt.want)
		}
	}

	if _, ok := UserRoleToRBACRole["receptionist"]; ok {
		t.Error("unexpected mapping for a role string the schema does not define")
	}
}
