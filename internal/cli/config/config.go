package config

import (
	"fmt"
	"os"
	"time"

	appErr "primehunt/pkg/errors"
	"primehunt/pkg/utils/logger"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath         = "configs/primehunt.yaml"
	DefaultPollInterval = 100 * time.Millisecond
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
)

// Config holds CLI configuration.
type Config struct {
	PollInterval time.Duration `yaml:"pollInterval"`
	Color        *bool         `yaml:"color"`
	Logger       logger.Config `yaml:"logger"`
}

// ColorEnabled reports whether console colors are on.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Load reads path and fills in defaults. A missing file is not an error:
// the defaults alone describe a complete session.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, appErr.Wrapf(err, appErr.ConfigLoadFailed, "read config file failed: %v", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, appErr.Wrapf(err, appErr.ConfigLoadFailed, "parse config file failed: %v", err)
		}
	}
	applyDefaults(&cfg)
	if cfg.PollInterval < 0 {
		return cfg, appErr.Newf(appErr.ConfigLoadFailed, "pollInterval must not be negative, got %s", cfg.PollInterval)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Color == nil {
		value := true
		cfg.Color = &value
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = DefaultLogLevel
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = DefaultLogFormat
	}
	if cfg.Logger.OutputPath == "" {
		cfg.Logger.OutputPath = logger.OutputStderr
	}
}

// String renders the effective settings for debug logging.
func (c Config) String() string {
	return fmt.Sprintf("pollInterval=%s color=%t log=%s/%s/%s",
		c.PollInterval, c.ColorEnabled(), c.Logger.Level, c.Logger.Format, c.Logger.OutputPath)
}
