package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/caretide/caretide_backend/config"
	_ "github.com/lib/pq"
)

// InitializeDatabases creates every database listed under server.databases,
// skipping ones that already exist. It connects through the maintenance
// database "postgres", so it must run before migrations on a fresh host.
func InitializeDatabases(cfg *config.Config) error {
	if len(cfg.Server.Databases) == 0 {
		return fmt.Errorf("no database names configured under server.databases")
	}

	maintenance := FromCentralConfig(cfg.Database)
	maintenance.DBName = "postgres"

	conn, err := openSQLDB(maintenance)
	if err != nil {
		return fmt.Errorf("connecting to maintenance database: %w", err)
	}
	defer conn.Close()

	for _, name := range cfg.Server.Databases {
		if err := ensureDatabase(conn, name); err != nil {
			return fmt.Errorf("creating database %q: %w", name, err)
		}
	}
	return nil
}

func ensureDatabase(conn *sql.DB, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	const check = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := conn.QueryRowContext(ctx, check, name).Scan(&exists); err != nil {
		return fmt.Errorf("checking for database: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot take a bind parameter for the name.
	if _, err := conn.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE %s", name)); err != nil {
		return fmt.Errorf("executing create: %w", err)
	}
	return nil
}
