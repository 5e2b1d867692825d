package system

import "github.com/spf13/cobra"

// NewSystemCommand groups the operational subcommands: database setup,
// migrations, seeding, retention purges, and doc generation.
func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Maintenance and tooling commands",
	}

	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewGenDocsCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewPurgeCommand())

	return cmd
}
