package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/caretide/caretide_backend/config"
	entuser "github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/caretide/caretide_backend/pkg/authorize"
	"github.com/caretide/caretide_backend/pkg/database"
	"github.com/caretide/caretide_backend/pkg/util/password"
)

// NewSeedCommand creates the initial super_admin account. It is the only
// way to provision one; the HTTP API refuses the role.
func NewSeedCommand() *cobra.Command {
	var (
		email     string
		plainPass string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the initial super admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			exists, err := client.User.Query().
				Where(entuser.RoleEQ(entuser.RoleSuperAdmin)).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check existing super admin: %w", err)
			}
			if exists {
				fmt.Println("A super admin account already exists, nothing to do.")
				return nil
			}

			password.Configure(password.FromCentralConfig(cfg.Password))

			generated := false
			if plainPass == "" {
				plainPass, err = password.Generate(cfg.Authentication.DefaultPasswordLength)
				if err != nil {
					return fmt.Errorf("failed to generate password: %w", err)
				}
				generated = true
			}
			hash, err := password.Hash(plainPass)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			u, err := client.User.Create().
				SetEmail(email).
				SetPasswordHash(hash).
				SetFirstName(firstName).
				SetLastName(lastName).
				SetRole(entuser.RoleSuperAdmin).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create super admin: %w", err)
			}

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(authorize.FromCentralConfig(cfg.Authorization), casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}
			if err := authorize.AssignStaffRole(ctx, auth, u.ID.String(), authorize.RoleSuperAdmin); err != nil {
				return fmt.Errorf("failed to assign super admin role: %w", err)
			}
			if err := authorize.AssignUserSelfRole(ctx, auth, u.ID.String()); err != nil {
				return fmt.Errorf("failed to assign self role: %w", err)
			}

			fmt.Printf("Super admin %s created.\n", email)
			if generated {
				fmt.Printf("Generated password: %s\n", plainPass)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "super admin email address")
	cmd.Flags().StringVar(&plainPass, "password", "", "password (generated when omitted)")
	cmd.Flags().StringVar(&firstName, "first-name", "System", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "Administrator", "last name")

	return cmd
}
