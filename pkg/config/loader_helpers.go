package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
)

// loadAndMerge loads a YAML file and merges it into the config.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigLoad, "failed to read config file").WithPath(path)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "failed to parse config file").
			WithPath(path).
			WithRemediation("Check the YAML syntax of the config file")
	}

	// Raw map distinguishes "explicitly set to zero" from "absent".
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "failed to parse config file").WithPath(path)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. String fields merge when non-empty;
// numeric and boolean fields merge only when the key appears in raw.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if override.Dashboard.Entry != "" {
		base.Dashboard.Entry = override.Dashboard.Entry
	}
	if override.Dashboard.Root != "" {
		base.Dashboard.Root = override.Dashboard.Root
	}

	if fieldSet(raw, "hot_reload", "enabled") {
		base.HotReload.Enabled = override.HotReload.Enabled
	}
	if fieldSet(raw, "hot_reload", "debounce_ms") {
		base.HotReload.DebounceMS = override.HotReload.DebounceMS
	}

	if fieldSet(raw, "overlay", "auto_dismiss_ms") {
		base.Overlay.AutoDismissMS = override.Overlay.AutoDismissMS
	}

	if fieldSet(raw, "render", "tick_ms") {
		base.Render.TickMS = override.Render.TickMS
	}

	if fieldSet(raw, "logging", "enabled") {
		base.Logging.Enabled = override.Logging.Enabled
	}
	if override.Logging.Dir != "" {
		base.Logging.Dir = override.Logging.Dir
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
}

func fieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}
