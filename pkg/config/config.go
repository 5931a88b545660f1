// Package config loads dashboard runtime configuration from YAML files
// and environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/logging"
)

// Default configuration values exported for documentation and validation
const (
	DefaultDebounceMS         = 100
	DefaultTickMS             = 50
	DefaultOverlayAutoDismiss = 0 // 0 = manual dismiss only
	DefaultLogLevel           = "info"
	DefaultLogDir             = ".fusabi-dash/logs"
)

// configDirName is the per-user and per-project configuration directory.
const configDirName = ".fusabi-dash"

var validLogLevels = map[string]logging.Level{
	"debug": logging.LevelDebug,
	"info":  logging.LevelInfo,
	"warn":  logging.LevelWarn,
	"error": logging.LevelError,
}

// Config represents the complete dashboard runtime configuration
type Config struct {
	Dashboard DashboardConfig `yaml:"dashboard"`
	HotReload HotReloadConfig `yaml:"hot_reload"`
	Overlay   OverlayConfig   `yaml:"overlay"`
	Render    RenderConfig    `yaml:"render"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DashboardConfig selects which dashboard to load and where to resolve
// relative load directives from.
type DashboardConfig struct {
	Entry string `yaml:"entry"` // Entry .fsx file, relative to Root unless absolute
	Root  string `yaml:"root"`  // Root directory for relative paths (default: cwd)
}

// HotReloadConfig controls file watching behavior
type HotReloadConfig struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMS int  `yaml:"debounce_ms"` // Quiet window before a change is reported
}

// OverlayConfig controls the error overlay
type OverlayConfig struct {
	AutoDismissMS int `yaml:"auto_dismiss_ms"` // 0 = stay until dismissed
}

// RenderConfig controls the render loop
type RenderConfig struct {
	TickMS int `yaml:"tick_ms"` // Interval between render passes
}

// LoggingConfig controls the JSONL event log
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"` // debug, info, warn, error
}

// Debounce returns the hot reload debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.HotReload.DebounceMS) * time.Millisecond
}

// Tick returns the render tick interval as a duration.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.Render.TickMS) * time.Millisecond
}

// OverlayAutoDismiss returns the overlay auto-dismiss window, or zero when
// overlays stay until dismissed.
func (c *Config) OverlayAutoDismiss() time.Duration {
	return time.Duration(c.Overlay.AutoDismissMS) * time.Millisecond
}

// LogLevel returns the configured minimum log level.
func (c *Config) LogLevel() logging.Level {
	if lvl, ok := validLogLevels[strings.ToLower(strings.TrimSpace(c.Logging.Level))]; ok {
		return lvl
	}
	return logging.LevelInfo
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HotReload: HotReloadConfig{
			Enabled:    true,
			DebounceMS: DefaultDebounceMS,
		},
		Overlay: OverlayConfig{
			AutoDismissMS: DefaultOverlayAutoDismiss,
		},
		Render: RenderConfig{
			TickMS: DefaultTickMS,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Dir:     DefaultLogDir,
			Level:   DefaultLogLevel,
		},
	}
}

// Load loads configuration from default locations with proper precedence
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// User config (~/.fusabi-dash/config.yaml)
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		userConfigPath := filepath.Join(home, configDirName, "config.yaml")
		if err := loadAndMerge(cfg, userConfigPath); err != nil && !isNotExist(err) {
			return nil, err
		}
	}

	// Project config (./.fusabi-dash/config.yaml)
	projectConfigPath := filepath.Join(".", configDirName, "config.yaml")
	if err := loadAndMerge(cfg, projectConfigPath); err != nil && !isNotExist(err) {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadAndMerge(cfg, path); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.HotReload.DebounceMS < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "hot_reload.debounce_ms must not be negative").
			WithContext("debounce_ms", c.HotReload.DebounceMS)
	}
	if c.Render.TickMS <= 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "render.tick_ms must be positive").
			WithContext("tick_ms", c.Render.TickMS)
	}
	if c.Overlay.AutoDismissMS < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "overlay.auto_dismiss_ms must not be negative").
			WithContext("auto_dismiss_ms", c.Overlay.AutoDismissMS)
	}
	if lvl := strings.TrimSpace(c.Logging.Level); lvl != "" {
		if _, ok := validLogLevels[strings.ToLower(lvl)]; !ok {
			return errors.New(errors.ErrCodeConfigInvalid, "logging.level must be one of debug, info, warn, error").
				WithContext("level", c.Logging.Level).
				WithRemediation("Set logging.level to debug, info, warn, or error")
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FUSABI_DASH_ENTRY"); v != "" {
		cfg.Dashboard.Entry = v
	}
	if v := os.Getenv("FUSABI_DASH_ROOT"); v != "" {
		cfg.Dashboard.Root = v
	}
	if v, ok := envBool("FUSABI_DASH_HOT_RELOAD"); ok {
		cfg.HotReload.Enabled = v
	}
	if v := strings.TrimSpace(os.Getenv("FUSABI_DASH_DEBOUNCE_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HotReload.DebounceMS = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("FUSABI_DASH_TICK_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Render.TickMS = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("FUSABI_DASH_OVERLAY_AUTO_DISMISS_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Overlay.AutoDismissMS = n
		}
	}
	if v, ok := envBool("FUSABI_DASH_LOG_ENABLED"); ok {
		cfg.Logging.Enabled = v
	}
	if v := os.Getenv("FUSABI_DASH_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
		cfg.Logging.Enabled = true
	}
	if v := os.Getenv("FUSABI_DASH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func isNotExist(err error) bool {
	e, ok := err.(*errors.Error)
	if !ok {
		return os.IsNotExist(err)
	}
	return e.Code == errors.ErrCodeConfigLoad && os.IsNotExist(e.Underlying)
}
