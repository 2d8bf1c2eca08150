package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the YAML file named by CONFIG_FILE when set, otherwise
// from the environment alone. Environment variables override YAML values, and
// keys absent from both keep the values from Default.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	DB        DatabaseConfig  `yaml:"database"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type GeneratorConfig struct {
	Seed       int64 `yaml:"seed" env:"GEN_SEED"`
	AssetCount int   `yaml:"asset_count" env:"GEN_ASSET_COUNT"`
	AlertCount int   `yaml:"alert_count" env:"GEN_ALERT_COUNT"`
	// ReferenceDate (YYYY-MM-DD) anchors every generated date. Empty means today in UTC.
	ReferenceDate string `yaml:"reference_date" env:"GEN_REFERENCE_DATE"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" env:"DB_PATH"`
}

type ExportConfig struct {
	Dir      string `yaml:"dir" env:"EXPORT_DIR"`
	Manifest bool   `yaml:"manifest" env:"EXPORT_MANIFEST"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

const referenceDateLayout = "2006-01-02"

// Default returns the configuration used when nothing overrides it. Explicit
// zero values from YAML or the environment replace these.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{Seed: 42, AssetCount: 500, AlertCount: 150},
		DB:        DatabaseConfig{Path: "dubai_infrastructure.db"},
		Export:    ExportConfig{Dir: ".", Manifest: true},
		Logging:   LoggingConfig{Level: "info", Format: "json"},
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Generator.AssetCount < 0 {
		return fmt.Errorf("invalid asset count: %d", c.Generator.AssetCount)
	}
	if c.Generator.AlertCount < 0 {
		return fmt.Errorf("invalid alert count: %d", c.Generator.AlertCount)
	}
	if c.Generator.ReferenceDate != "" {
		if _, err := time.Parse(referenceDateLayout, c.Generator.ReferenceDate); err != nil {
			return fmt.Errorf("invalid reference date %q: %w", c.Generator.ReferenceDate, err)
		}
	}

	if c.DB.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export dir must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// Reference returns the time every generated date is relative to: the
// configured reference date, or midnight UTC of now's day.
func (g GeneratorConfig) Reference(now time.Time) (time.Time, error) {
	if g.ReferenceDate == "" {
		now = now.UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	ref, err := time.Parse(referenceDateLayout, g.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference date %q: %w", g.ReferenceDate, err)
	}
	return ref, nil
}
