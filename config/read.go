package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caretide/caretide_backend/pkg/constants"
	"github.com/spf13/viper"
)

var GlobalConf *Config

// ReadConfig loads configuration from a file under configPath, letting
// CARETIDE_* environment variables override any key. The file is optional
// when CARETIDE_DATABASE_HOST is set, so containerized deployments can run
// from environment alone.
func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	// CARETIDE_DATABASE_HOST overrides database.host, and so on.
	viper.SetEnvPrefix("CARETIDE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && os.Getenv("CARETIDE_DATABASE_HOST") == "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// MustReadConfig is ReadConfig for command startup paths where a bad config
// should stop the process. It also publishes the result as GlobalConf.
func MustReadConfig(path string) *Config {
	cfg, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	GlobalConf = cfg
	return cfg
}
