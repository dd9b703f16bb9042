// Package config loads runtime settings via Viper from environment variables
// and an optional config file. Env vars take priority over the file; defaults
// cover the common local setup.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the rentals console application.
type Config struct {
	// DataDir is the directory holding the JSON stores
	// (users.json, clients.json, vehicles.json, rentals.json).
	DataDir string

	// AuditFile is the path of the append-only session log (bitácora).
	AuditFile string

	// LogLevel is the structured-log level: debug, info, warn, error.
	LogLevel string

	// RequireClientExists controls whether operator-created rentals must
	// reference a registered client. The historical behavior is off: the
	// operator is trusted and any client id is accepted.
	RequireClientExists bool
}

// Load reads configuration from env vars (DATA_DIR, AUDIT_FILE, LOG_LEVEL,
// REQUIRE_CLIENT_EXISTS) and optionally from a config file named "config"
// (yaml/json/toml) in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // the file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("data_dir", "Docs")
	v.SetDefault("audit_file", "bitacora.txt")
	v.SetDefault("log_level", "info")
	v.SetDefault("require_client_exists", false)

	return &Config{
		DataDir:             v.GetString("data_dir"),
		AuditFile:           v.GetString("audit_file"),
		LogLevel:            v.GetString("log_level"),
		RequireClientExists: v.GetBool("require_client_exists"),
	}, nil
}
