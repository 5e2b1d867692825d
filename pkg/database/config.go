package database

import (
	"time"

	"github.com/caretide/caretide_backend/config"
)

// Config holds connection, pooling, migration, and query logging settings
// for one Postgres database.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int

	// AutoMigrate runs the ent schema diff at startup. SafeMode keeps the
	// diff additive only; columns and indexes are never dropped.
	AutoMigrate bool
	SafeMode    bool

	// EnableLogging logs every statement slower than the threshold.
	EnableLogging        bool
	SlowQueryThresholdMs int
}

// DSN returns the Postgres connection string.
func (c Config) DSN() string {
	return buildDSN(c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c Config) ConnMaxLifetime() time.Duration {
	if c.ConnMaxLifetimeMin <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ConnMaxLifetimeMin) * time.Minute
}

func (c Config) SlowQueryThreshold() time.Duration {
	if c.SlowQueryThresholdMs <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(c.SlowQueryThresholdMs) * time.Millisecond
}

// FromCentralConfig converts central config.DatabaseConfig to package Config,
// filling unset pooling values with workable defaults.
func FromCentralConfig(c config.DatabaseConfig) Config {
	out := Config{
		Host:                 c.Host,
		Port:                 c.Port,
		User:                 c.User,
		Password:             c.Password,
		DBName:               c.DBName,
		SSLMode:              c.SSLMode,
		MaxOpenConns:         c.Pool.MaxOpenConns,
		MaxIdleConns:         c.Pool.MaxIdleConns,
		ConnMaxLifetimeMin:   c.Pool.ConnMaxLifetimeMin,
		AutoMigrate:          c.Migrations.AutoMigrate,
		SafeMode:             c.Migrations.SafeMode,
		EnableLogging:        c.Logging.Enabled,
		SlowQueryThresholdMs: c.Logging.SlowQueryThresholdMs,
	}
	if out.Port == 0 {
		out.Port = 5432
	}
	if out.SSLMode == "" {
		out.SSLMode = "disable"
	}
	if out.MaxOpenConns == 0 {
		out.MaxOpenConns = 25
	}
	if out.MaxIdleConns == 0 {
		out.MaxIdleConns = 5
	}
	return out
}

// NewDSN builds a DSN straight from central config.
func NewDSN(c config.DatabaseConfig) string {
	return FromCentralConfig(c).DSN()
}
