package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Admin: manage staff and records, read audit, no RBAC grants
		{RoleAdmin, DomainSys, ResourceUser, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourcePatient, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceEncounter, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceMedicationMaster, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourcePatientMedication, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAudit, ActionRead, EffectAllow},

		// Doctor: full clinical access, read-only staff directory
		{RoleDoctor, DomainSys, ResourceUser, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceUser, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePatient, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceEncounter, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourceMedicationMaster, ActionManage, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePatientMedication, ActionManage, EffectAllow},

		// Nurse: day-to-day workflow, no deletes on the medication formulary
		{RoleNurse, DomainSys, ResourceUser, ActionRead, EffectAllow},
		{RoleNurse, DomainSys, ResourceUser, ActionList, EffectAllow},
		{RoleNurse, DomainSys, ResourcePatient, ActionManage, EffectAllow},
		{RoleNurse, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleNurse, DomainSys, ResourceEncounter, ActionManage, EffectAllow},
		{RoleNurse, DomainSys, ResourceMedicationMaster, ActionRead, EffectAllow},
		{RoleNurse, DomainSys, ResourceMedicationMaster, ActionList, EffectAllow},
		{RoleNurse, DomainSys, ResourcePatientMedication, ActionManage, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own sessions and tokens
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignStaffRole grants a staff role in the system domain.
// Call this when creating a user or changing their role.
func AssignStaffRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleAdmin, RoleDoctor, RoleNurse:
		// assignable through the API
	case RoleSuperAdmin:
		// valid but expected to be granted from the CLI, not handlers
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveStaffRole revokes a staff role in the system domain.
func RemoveStaffRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// ReplaceStaffRole swaps a user's staff role atomically from the caller's
// point of view: the old role is removed before the new one is granted.
func ReplaceStaffRole(ctx context.Context, auth IAuthorization, userID string, oldRole, newRole Role) error {
	if oldRole == newRole {
		return nil
	}
	if err := RemoveStaffRole(ctx, auth, userID, oldRole); err != nil {
		return err
	}
	return AssignStaffRole(ctx, auth, userID, newRole)
}

// GetStaffRoles returns the roles a user holds in the system domain.
func GetStaffRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainSys)
}
