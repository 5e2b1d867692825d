// Package http holds the CLI commands that run the REST API server.
package http

import "github.com/spf13/cobra"

// NewHTTPCommand groups the HTTP server subcommands.
func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "HTTP API server commands",
	}
	cmd.AddCommand(NewStartCommand())
	return cmd
}
