package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/config"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if !cfg.HotReload.Enabled {
		t.Fatal("hot reload should be enabled by default")
	}
	if cfg.HotReload.DebounceMS != config.DefaultDebounceMS {
		t.Fatalf("unexpected debounce: %d", cfg.HotReload.DebounceMS)
	}
	if cfg.Render.TickMS != config.DefaultTickMS {
		t.Fatalf("unexpected tick: %d", cfg.Render.TickMS)
	}
	if cfg.Logging.Enabled {
		t.Fatal("logging should be disabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.HotReload.DebounceMS = 250
	cfg.Render.TickMS = 16
	cfg.Overlay.AutoDismissMS = 5000

	if got := cfg.Debounce(); got != 250*time.Millisecond {
		t.Fatalf("Debounce() = %v", got)
	}
	if got := cfg.Tick(); got != 16*time.Millisecond {
		t.Fatalf("Tick() = %v", got)
	}
	if got := cfg.OverlayAutoDismiss(); got != 5*time.Second {
		t.Fatalf("OverlayAutoDismiss() = %v", got)
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"info", logging.LevelInfo},
		{"WARN", logging.LevelWarn},
		{" error ", logging.LevelError},
		{"", logging.LevelInfo},
		{"bogus", logging.LevelInfo},
	}
	for _, tt := range tests {
		cfg := config.DefaultConfig()
		cfg.Logging.Level = tt.raw
		if got := cfg.LogLevel(); got != tt.want {
			t.Errorf("LogLevel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
dashboard:
  entry: dashboards/main.fsx
  root: ` + dir + `
hot_reload:
  enabled: false
  debounce_ms: 300
render:
  tick_ms: 33
overlay:
  auto_dismiss_ms: 4000
logging:
  enabled: true
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Dashboard.Entry != "dashboards/main.fsx" {
		t.Fatalf("unexpected entry: %q", cfg.Dashboard.Entry)
	}
	if cfg.HotReload.Enabled {
		t.Fatal("hot reload should be disabled by file")
	}
	if cfg.HotReload.DebounceMS != 300 {
		t.Fatalf("unexpected debounce: %d", cfg.HotReload.DebounceMS)
	}
	if cfg.Render.TickMS != 33 {
		t.Fatalf("unexpected tick: %d", cfg.Render.TickMS)
	}
	if cfg.Overlay.AutoDismissMS != 4000 {
		t.Fatalf("unexpected auto dismiss: %d", cfg.Overlay.AutoDismissMS)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	// Absent fields keep defaults.
	if cfg.Logging.Dir != config.DefaultLogDir {
		t.Fatalf("log dir should keep default: %q", cfg.Logging.Dir)
	}
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := config.LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.IsCode(err, errors.ErrCodeConfigLoad) {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestLoadFromPathBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("hot_reload: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := config.LoadFromPath(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.IsCode(err, errors.ErrCodeConfigParse) {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestLoadHierarchy(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()

	t.Setenv("HOME", home)

	userCfgDir := filepath.Join(home, ".fusabi-dash")
	if err := os.MkdirAll(userCfgDir, 0o755); err != nil {
		t.Fatalf("mkdir user config: %v", err)
	}
	userCfg := `
dashboard:
  entry: user.fsx
hot_reload:
  debounce_ms: 500
`
	if err := os.WriteFile(filepath.Join(userCfgDir, "config.yaml"), []byte(userCfg), 0o644); err != nil {
		t.Fatalf("write user config: %v", err)
	}

	projectCfgDir := filepath.Join(project, ".fusabi-dash")
	if err := os.MkdirAll(projectCfgDir, 0o755); err != nil {
		t.Fatalf("mkdir project config: %v", err)
	}
	projectCfg := `
dashboard:
  entry: project.fsx
render:
  tick_ms: 20
`
	if err := os.WriteFile(filepath.Join(projectCfgDir, "config.yaml"), []byte(projectCfg), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(project); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dashboard.Entry != "project.fsx" {
		t.Fatalf("project config should win: %q", cfg.Dashboard.Entry)
	}
	if cfg.HotReload.DebounceMS != 500 {
		t.Fatalf("user debounce should survive: %d", cfg.HotReload.DebounceMS)
	}
	if cfg.Render.TickMS != 20 {
		t.Fatalf("project tick should apply: %d", cfg.Render.TickMS)
	}
}

func TestLoadMissingFilesUsesDefaults(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(project); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HotReload.DebounceMS != config.DefaultDebounceMS {
		t.Fatalf("expected defaults, got debounce %d", cfg.HotReload.DebounceMS)
	}
}

func TestEnvOverrides(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FUSABI_DASH_ENTRY", "env.fsx")
	t.Setenv("FUSABI_DASH_HOT_RELOAD", "off")
	t.Setenv("FUSABI_DASH_DEBOUNCE_MS", "750")
	t.Setenv("FUSABI_DASH_TICK_MS", "100")
	t.Setenv("FUSABI_DASH_LOG_DIR", filepath.Join(project, "logs"))
	t.Setenv("FUSABI_DASH_LOG_LEVEL", "warn")

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(project); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dashboard.Entry != "env.fsx" {
		t.Fatalf("env entry should apply: %q", cfg.Dashboard.Entry)
	}
	if cfg.HotReload.Enabled {
		t.Fatal("env should disable hot reload")
	}
	if cfg.HotReload.DebounceMS != 750 {
		t.Fatalf("env debounce should apply: %d", cfg.HotReload.DebounceMS)
	}
	if cfg.Render.TickMS != 100 {
		t.Fatalf("env tick should apply: %d", cfg.Render.TickMS)
	}
	if !cfg.Logging.Enabled {
		t.Fatal("setting log dir should enable logging")
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("env log level should apply: %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults", func(c *config.Config) {}, false},
		{"negative debounce", func(c *config.Config) { c.HotReload.DebounceMS = -1 }, true},
		{"zero tick", func(c *config.Config) { c.Render.TickMS = 0 }, true},
		{"negative auto dismiss", func(c *config.Config) { c.Overlay.AutoDismissMS = -5 }, true},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "verbose" }, true},
		{"empty log level", func(c *config.Config) { c.Logging.Level = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.IsCode(err, errors.ErrCodeConfigInvalid) {
					t.Fatalf("unexpected error code: %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRunsOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("render:\n  tick_ms: -10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := config.LoadFromPath(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsCode(err, errors.ErrCodeConfigInvalid) {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestResolveDashboardRoot(t *testing.T) {
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Dashboard.Root = dir
	if got := config.ResolveDashboardRoot(cfg); got != dir {
		t.Fatalf("ResolveDashboardRoot = %q, want %q", got, dir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	cfg.Dashboard.Root = ""
	if got := config.ResolveDashboardRoot(cfg); got != cwd {
		t.Fatalf("ResolveDashboardRoot = %q, want cwd %q", got, cwd)
	}

	if got := config.ResolveDashboardRoot(nil); got != cwd {
		t.Fatalf("ResolveDashboardRoot(nil) = %q, want cwd %q", got, cwd)
	}
}

func TestResolveDashboardRootExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.DefaultConfig()
	cfg.Dashboard.Root = "~/dashboards"
	want := filepath.Join(home, "dashboards")
	if got := config.ResolveDashboardRoot(cfg); got != want {
		t.Fatalf("ResolveDashboardRoot = %q, want %q", got, want)
	}
}
