// Package config reads application settings from the environment.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the storefront service.
type Config struct {
	AppPort          string
	CatalogDriver    string
	DatabaseDSN      string
	CatalogSeed      bool
	RabbitMQURL      string
	ActivityExchange string
	Log              LogConfig
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Mode  string // "production" or "development"
	Level string
	File  string // Empty logs to stdout only
}

// RelayEnabled reports whether store activity should be forwarded to RabbitMQ.
func (c Config) RelayEnabled() bool {
	return c.RabbitMQURL != ""
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("CATALOG_DRIVER", "memory")
	v.SetDefault("DATABASE_DSN", "file:etalase.db?cache=shared")
	v.SetDefault("CATALOG_SEED", true)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ACTIVITY_EXCHANGE", "storefront.activity")
	v.SetDefault("LOG_MODE", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
}

// Load applies the defaults, binds environment variables and returns the
// resulting configuration. Pass viper.GetViper() to use the global instance.
func Load(v *viper.Viper) Config {
	SetDefaults(v)
	v.AutomaticEnv() // Load environment variables

	return Config{
		AppPort:          v.GetString("APP_PORT"),
		CatalogDriver:    strings.ToLower(strings.TrimSpace(v.GetString("CATALOG_DRIVER"))),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		CatalogSeed:      v.GetBool("CATALOG_SEED"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		ActivityExchange: v.GetString("ACTIVITY_EXCHANGE"),
		Log: LogConfig{
			Mode:  v.GetString("LOG_MODE"),
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
	}
}
