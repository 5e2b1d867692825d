package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/pkg/database"
)

// NewInitCommand creates the configured databases on a fresh Postgres host.
// Run it once before `system migrate`.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the application databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("reading config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			fmt.Println("Initializing databases...")
			if err := database.InitializeDatabases(cfg); err != nil {
				return fmt.Errorf("initializing databases: %w", err)
			}
			fmt.Println("Databases initialized successfully.")
			return nil
		},
	}
}
