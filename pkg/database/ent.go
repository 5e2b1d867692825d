package database

import (
	"context"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/repo"
	entmigrate "github.com/caretide/caretide_backend/internal/repo/migrate"
)

// NewEntClient opens an ent client from central config.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewEntClientFromConfig(FromCentralConfig(cfg))
}

// NewEntClientFromConfig opens an ent client from package Config. When query
// logging is enabled, statements slower than the configured threshold are
// logged at warn level.
func NewEntClientFromConfig(cfg Config) (*repo.Client, error) {
	db, err := openSQLDB(cfg)
	if err != nil {
		return nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(dialect.Postgres, db)
	if cfg.EnableLogging {
		drv = &slowQueryDriver{Driver: drv, threshold: cfg.SlowQueryThreshold()}
	}

	return repo.NewClient(repo.Driver(drv)), nil
}

// MigrateEnt applies the ent schema diff. Safe mode keeps the diff additive;
// existing columns and indexes are left alone even when the schema no longer
// declares them.
func MigrateEnt(ctx context.Context, client *repo.Client, safeMode bool) error {
	return client.Schema.Create(ctx,
		entmigrate.WithDropColumn(!safeMode),
		entmigrate.WithDropIndex(!safeMode),
	)
}

type slowQueryDriver struct {
	dialect.Driver
	threshold time.Duration
}

func (d *slowQueryDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Exec(ctx, query, args, v)
	d.observe(ctx, "exec", query, time.Since(start), err)
	return err
}

func (d *slowQueryDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Query(ctx, query, args, v)
	d.observe(ctx, "query", query, time.Since(start), err)
	return err
}

func (d *slowQueryDriver) observe(ctx context.Context, op, query string, elapsed time.Duration, err error) {
	if elapsed < d.threshold && err == nil {
		return
	}
	slog.WarnContext(ctx, "slow query",
		"op", op,
		"query", query,
		"elapsed_ms", elapsed.Milliseconds(),
		"error", err,
	)
}
