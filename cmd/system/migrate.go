package system

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/pkg/authorize"
	"github.com/caretide/caretide_backend/pkg/database"
)

// NewMigrateCommand applies the ent schema to the records database and seeds
// the Casbin policy tables. Safe to run repeatedly.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema and seed authorization policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("reading config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			slog.Info("applying schema to records database")
			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("opening ent client: %w", err)
			}
			defer client.Close()

			if err := database.MigrateEnt(ctx, client, cfg.Database.Migrations.SafeMode); err != nil {
				return fmt.Errorf("applying schema: %w", err)
			}

			slog.Info("preparing authorization database")
			dsn := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(authorize.FromCentralConfig(cfg.Authorization), dsn)
			if err != nil {
				return fmt.Errorf("creating enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("creating authorization: %w", err)
			}

			slog.Info("seeding default policies")
			if err := authorize.SeedDefaultPolicies(ctx, auth); err != nil {
				return fmt.Errorf("seeding policies: %w", err)
			}

			fmt.Println("Migrations executed successfully.")
			return nil
		},
	}
}
