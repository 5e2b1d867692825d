package redis

import (
	"time"

	"github.com/caretide/caretide_backend/config"
)

type Config struct {
	Addr     string
	DB       int
	Username string
	Password string

	PoolSize     int
	MinIdleConns int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromCentralConfig maps the central redis section onto a Config, filling
// unset pool and timeout fields with defaults.
func FromCentralConfig(c config.RedisConfig) Config {
	cfg := Config{
		Addr:         c.Addr,
		DB:           c.DB,
		Username:     c.Username,
		Password:     c.Password,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,
		DialTimeout:  time.Duration(c.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(c.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(c.WriteTimeoutSeconds) * time.Second,
	}

	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 10
	}
	if cfg.MinIdleConns <= 0 {
		cfg.MinIdleConns = 2
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 3 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 3 * time.Second
	}

	return cfg
}
