package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenDocsCommand writes Markdown reference docs for the whole CLI tree.
func NewGenDocsCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate Markdown docs for the CareTide CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(outDir)
			if err != nil {
				return fmt.Errorf("resolving output path %q: %w", outDir, err)
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return fmt.Errorf("creating docs directory %q: %w", abs, err)
			}

			// Root() is the full command tree, not just this subcommand.
			if err := doc.GenMarkdownTree(cmd.Root(), abs); err != nil {
				return fmt.Errorf("generating CLI docs: %w", err)
			}

			fmt.Printf("CLI docs generated in %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "outdir", "docs/cli", "output directory for generated docs")

	return cmd
}
