package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/lifecycle"
	"github.com/caretide/caretide_backend/internal/repo"
	entencounter "github.com/caretide/caretide_backend/internal/repo/encounter"
	entmaster "github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	entpatient "github.com/caretide/caretide_backend/internal/repo/patient"
	entuser "github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/caretide/caretide_backend/pkg/database"
)

// NewPurgeCommand hard-deletes soft-deleted rows older than the configured
// retention window. Which entities qualify comes from the lifecycle table.
func NewPurgeCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove soft-deleted rows past the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			if cfg.Retention.PurgeAfterDays <= 0 {
				fmt.Println("Purging is disabled (retention.purge_after_days is not set).")
				return nil
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			cutoff := time.Now().AddDate(0, 0, -cfg.Retention.PurgeAfterDays)
			fmt.Printf("Purging soft-deleted rows older than %s.\n", cutoff.Format("2006-01-02"))

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			for _, entity := range lifecycle.Entities() {
				if !lifecycle.Purgeable(entity) {
					continue
				}

				n, err := purgeEntity(ctx, client, entity, cutoff, dryRun)
				if err != nil {
					return fmt.Errorf("failed to purge %s: %w", entity, err)
				}
				if dryRun {
					fmt.Printf("%s: %d rows would be removed\n", entity, n)
				} else {
					fmt.Printf("%s: %d rows removed\n", entity, n)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "count rows without deleting them")

	return cmd
}

func purgeEntity(ctx context.Context, client *repo.Client, entity lifecycle.Entity, cutoff time.Time, dryRun bool) (int, error) {
	switch entity {
	case lifecycle.EntityUser:
		q := client.User.Query().Where(
			entuser.IsActive(false),
			entuser.UpdatedAtLT(cutoff),
		)
		if dryRun {
			return q.Count(ctx)
		}
		return client.User.Delete().Where(
			entuser.IsActive(false),
			entuser.UpdatedAtLT(cutoff),
		).Exec(ctx)

	case lifecycle.EntityPatient:
		q := client.Patient.Query().Where(
			entpatient.IsActive(false),
			entpatient.UpdatedAtLT(cutoff),
		)
		if dryRun {
			return q.Count(ctx)
		}
		return client.Patient.Delete().Where(
			entpatient.IsActive(false),
			entpatient.UpdatedAtLT(cutoff),
		).Exec(ctx)

	case lifecycle.EntityEncounter:
		q := client.Encounter.Query().Where(
			entencounter.StatusEQ(entencounter.StatusCancelled),
			entencounter.UpdatedAtLT(cutoff),
		)
		if dryRun {
			return q.Count(ctx)
		}
		return client.Encounter.Delete().Where(
			entencounter.StatusEQ(entencounter.StatusCancelled),
			entencounter.UpdatedAtLT(cutoff),
		).Exec(ctx)

	case lifecycle.EntityMedicationMaster:
		q := client.MedicationMaster.Query().Where(
			entmaster.IsActive(false),
			entmaster.UpdatedAtLT(cutoff),
		)
		if dryRun {
			return q.Count(ctx)
		}
		return client.MedicationMaster.Delete().Where(
			entmaster.IsActive(false),
			entmaster.UpdatedAtLT(cutoff),
		).Exec(ctx)

	default:
		return 0, nil
	}
}
