package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"config-diff/core/database"
	"config-diff/core/logger"
	"config-diff/core/report"
	"config-diff/core/server"
	"config-diff/core/storage"
	"config-diff/feature/compare"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Compare holds the folder comparison settings.
	Compare compare.Config `mapstructure:"compare"`
	// Report holds the report delimiter settings.
	Report report.Config `mapstructure:"report"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for report publishing (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and the .env file in dir.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. COMPARE_WORKERS -> compare.workers)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that cannot produce a usable run.
func (c *Config) Validate() error {
	if _, err := filepath.Match(c.Compare.Filter, ""); err != nil {
		return fmt.Errorf("invalid compare.filter %q: %w", c.Compare.Filter, err)
	}
	if c.Compare.Workers < 0 {
		return fmt.Errorf("compare.workers must not be negative, got %d", c.Compare.Workers)
	}
	if c.Report.Delimiter != "" && c.Report.Delimiter == c.Report.ValueDelimiter {
		return fmt.Errorf("report.delimiter and report.value_delimiter must differ, both are %q", c.Report.Delimiter)
	}
	return nil
}

// bindValues walks the struct and registers every `mapstructure` key in Viper
// with the value of its `default` tag, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
