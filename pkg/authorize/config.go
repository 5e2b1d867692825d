package authorize

import "github.com/caretide/caretide_backend/config"

// Config carries the knobs for the authorization stack.
type Config struct {
	// CasbinModelPath points at the Casbin model file.
	CasbinModelPath string

	// EnableAudit wraps the enforcer so every decision and policy mutation
	// is logged. Clinical access reviews depend on this staying on in
	// production.
	EnableAudit bool

	// SuperadminBypass lets holders of the super admin role skip policy
	// evaluation entirely.
	SuperadminBypass bool

	// PolicySyncEnabled starts the LISTEN/NOTIFY watcher that reloads
	// policies when another replica changes them.
	PolicySyncEnabled bool

	// HealthCheckEnabled ties the readiness probe to policy reload health.
	HealthCheckEnabled bool
}

// FromCentralConfig converts central config.AuthorizationConfig to package
// Config, defaulting the model path when unset.
func FromCentralConfig(c config.AuthorizationConfig) Config {
	out := Config{
		CasbinModelPath:    c.CasbinModelPath,
		EnableAudit:        c.EnableAudit,
		SuperadminBypass:   c.SuperadminBypass,
		PolicySyncEnabled:  c.PolicySyncEnabled,
		HealthCheckEnabled: c.HealthCheckEnabled,
	}
	if out.CasbinModelPath == "" {
		out.CasbinModelPath = "casbin_model.conf"
	}
	return out
}
