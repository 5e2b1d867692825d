package http

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/caretide/caretide_backend/config"
	apihttp "github.com/caretide/caretide_backend/internal/api/http"
	"github.com/caretide/caretide_backend/pkg/logs"
	"github.com/caretide/caretide_backend/pkg/util/password"
)

// NewStartCommand runs the API server until interrupted.
func NewStartCommand() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			// Set up structured logging before fx starts so all logs use it.
			slog.SetDefault(logs.New(cfg))
			password.Configure(password.FromCentralConfig(cfg.Password))

			apihttp.Start(cfg, shutdownTimeout)
			return nil
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "Maximum time to wait for graceful shutdown")

	return cmd
}
