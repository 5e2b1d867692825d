package authorize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

const testModel = `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || p.act == r.act || (p.act == "manage" && (r.act == "create" || r.act == "read" || r.act == "update" || r.act == "delete" || r.act == "list")))
`

// newTestEnforcer builds an enforcer over a throwaway file adapter so tests
// never touch Postgres.
func newTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.conf")
	if err := os.WriteFile(modelPath, []byte(testModel), 0o644); err != nil {
		t.Fatalf("writing model file: %v", err)
	}
	policyPath := filepath.Join(dir, "policy.csv")
	if err := os.WriteFile(policyPath, nil, 0o644); err != nil {
		t.Fatalf("writing policy file: %v", err)
	}

	e, err := casbin.NewDistributedEnforcer(modelPath, fileadapter.NewAdapter(policyPath))
	if err != nil {
		t.Fatalf("creating enforcer: %v", err)
	}
	e.EnableAutoSave(false)
	e.EnableEnforce(true)
	return e
}

func newTestAuthorization(t *testing.T, opts ...Option) IAuthorization {
	t.Helper()
	auth, err := NewAuthorization(newTestEnforcer(t), opts...)
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	return auth
}

func TestNewAuthorizationRejectsNilEnforcer(t *testing.T) {
	if _, err := NewAuthorization(nil); err == nil {
		t.Error("expected an error for a nil enforcer")
	}
}

func TestEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	subject := GroupSubject("33333333-0000-0000-0000-000000000001")

	if _, err := auth.AddRoleForUserInDomain(ctx, subject, RoleDoctor, DomainSys); err != nil {
		t.Fatalf("adding role: %v", err)
	}
	if _, err := auth.AddPermission(ctx, RoleDoctor, DomainSys, ResourcePatient, ActionManage, EffectAllow); err != nil {
		t.Fatalf("adding permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{"manage grants the exact action", subject, DomainSys, ResourcePatient, ActionManage, true, false},
		{"manage expands to read", subject, DomainSys, ResourcePatient, ActionRead, true, false},
		{"manage expands to update", subject, DomainSys, ResourcePatient, ActionUpdate, true, false},
		{"no grant on other resources", subject, DomainSys, ResourceUser, ActionDelete, false, false},
		{"empty subject errors", "", DomainSys, ResourcePatient, ActionRead, false, true},
		{"undeclared domain errors", subject, Domain("clinic"), ResourcePatient, ActionRead, false, true},
		{"undeclared resource errors", subject, DomainSys, Resource("ward"), ActionRead, false, true},
		{"undeclared action errors", subject, DomainSys, ResourcePatient, Action("export"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	subject := GroupSubject("33333333-0000-0000-0000-000000000002")

	if _, err := auth.AddRoleForUserInDomain(ctx, subject, RoleAdmin, DomainSys); err != nil {
		t.Fatalf("adding role: %v", err)
	}
	if _, err := auth.AddPermission(ctx, RoleAdmin, DomainSys, ResourceUser, ActionManage, EffectAllow); err != nil {
		t.Fatalf("adding permission: %v", err)
	}

	if err := auth.MustEnforce(ctx, subject, DomainSys, ResourceUser, ActionManage); err != nil {
		t.Errorf("MustEnforce() on a granted action = %v", err)
	}
	if err := auth.MustEnforce(ctx, subject, DomainSys, ResourceAudit, ActionDelete); !errors.Is(err, ErrForbidden) {
		t.Errorf("MustEnforce() on a denied action = %v, want ErrForbidden", err)
	}
}

func TestSuperAdminBypass(t *testing.T) {
	ctx := context.Background()
	subject := GroupSubject("33333333-0000-0000-0000-000000000003")

	t.Run("enabled", func(t *testing.T) {
		auth := newTestAuthorization(t)
		if _, err := auth.AddRoleForUserInDomain(ctx, subject, RoleSuperAdmin, DomainSys); err != nil {
			t.Fatalf("adding role: %v", err)
		}

		allowed, err := auth.Enforce(ctx, subject, DomainSys, ResourceUser, ActionDelete)
		if err != nil {
			t.Fatalf("Enforce() error = %v", err)
		}
		if !allowed {
			t.Error("super admin should bypass policy checks")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		auth := newTestAuthorization(t, WithSuperAdminBypass(false))
		if _, err := auth.AddRoleForUserInDomain(ctx, subject, RoleSuperAdmin, DomainSys); err != nil {
			t.Fatalf("adding role: %v", err)
		}

		allowed, err := auth.Enforce(ctx, subject, DomainSys, ResourceUser, ActionDelete)
		if err != nil {
			t.Fatalf("Enforce() error = %v", err)
		}
		if allowed {
			t.Error("bypass is off, so the super admin needs an explicit grant")
		}
	})
}

func TestRoleManagement(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	subject := GroupSubject(userID)
	domain := UserDomain(userID)

	added, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	if err != nil {
		t.Fatalf("adding role: %v", err)
	}
	if !added {
		t.Fatal("expected the role grant to be new")
	}

	roles, err := auth.GetRolesForUserInDomain(ctx, subject, domain)
	if err != nil {
		t.Fatalf("listing roles: %v", err)
	}
	if len(roles) != 1 || roles[0] != RoleUserSelf {
		t.Fatalf("roles = %v, want [%s]", roles, RoleUserSelf)
	}

	removed, err := auth.RemoveRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	if err != nil {
		t.Fatalf("removing role: %v", err)
	}
	if !removed {
		t.Fatal("expected the role to be removed")
	}
	if roles, _ := auth.GetRolesForUserInDomain(ctx, subject, domain); len(roles) != 0 {
		t.Errorf("roles after removal = %v, want none", roles)
	}

	if _, err := auth.AddRoleForUserInDomain(ctx, subject, Role("janitor"), domain); err == nil {
		t.Error("expected an error for an undeclared role")
	}
}

func TestPermissionManagement(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	added, err := auth.AddPermission(ctx, RoleNurse, DomainSys, ResourceMedicationMaster, ActionRead, EffectAllow)
	if err != nil {
		t.Fatalf("adding permission: %v", err)
	}
	if !added {
		t.Fatal("expected the permission to be new")
	}

	removed, err := auth.RemovePermission(ctx, RoleNurse, DomainSys, ResourceMedicationMaster, ActionRead, EffectAllow)
	if err != nil {
		t.Fatalf("removing permission: %v", err)
	}
	if !removed {
		t.Fatal("expected the permission to be removed")
	}

	if _, err := auth.AddPermission(ctx, RoleAdmin, DomainSys, ResourceUser, ActionRead, PolicyEffect("maybe")); err == nil {
		t.Error("expected an error for an undeclared effect")
	}
}
