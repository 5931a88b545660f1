package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/config"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/engine"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/logging"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/render/tcellrender"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("fusabi-dash", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "path to a config file (default: ~/.fusabi-dash/config.yaml, ./.fusabi-dash/config.yaml)")
		entry       = fs.String("entry", "", "dashboard entry file (.fsx)")
		root        = fs.String("root", "", "root directory for relative dashboard paths")
		noHotReload = fs.Bool("no-hot-reload", false, "disable file watching")
		logDir      = fs.String("log-dir", "", "write JSONL event logs to this directory")
		showVersion = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Printf("fusabi-dash %s (%s, built %s)\n", version, commit, buildDate)
		return 0
	}
	if fs.NArg() > 0 && *entry == "" {
		*entry = fs.Arg(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *entry != "" {
		cfg.Dashboard.Entry = *entry
	}
	if *root != "" {
		cfg.Dashboard.Root = *root
	}
	if *noHotReload {
		cfg.HotReload.Enabled = false
	}
	if *logDir != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.Dir = *logDir
	}

	var logger *logging.Logger
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Logging.Dir, logging.NewSessionID())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		logger.SetMinLevel(cfg.LogLevel())
		defer logger.Close()
	}

	renderer, err := tcellrender.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer renderer.Fini()

	eng := engine.NewDashboardEngine(renderer, config.ResolveDashboardRoot(cfg))
	if logger != nil {
		eng.SetLogger(logger)
	}
	eng.SetRenderCallback(newDemoView().render)
	eng.SetOverlayAutoDismiss(cfg.OverlayAutoDismiss())

	if cfg.Dashboard.Entry != "" {
		if err := eng.Load(cfg.Dashboard.Entry); err != nil {
			eng.ShowError(err)
		}
	}
	if cfg.HotReload.Enabled {
		if err := eng.EnableHotReloadWithDebounce(cfg.Debounce()); err != nil {
			eng.ShowError(err)
		}
	}

	return eventLoop(eng, renderer, cfg)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// eventLoop drives the synchronous render cycle: input events and file
// changes mutate engine state, ticks flush dirty state to the screen.
func eventLoop(eng *engine.DashboardEngine, renderer *tcellrender.Renderer, cfg *config.Config) int {
	events := make(chan engine.Event)
	go func() {
		defer close(events)
		for {
			ev := renderer.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	ticker := time.NewTicker(cfg.Tick())
	defer ticker.Stop()

	if err := eng.Render(); err != nil {
		eng.ShowError(err)
	}

	for {
		select {
		case <-sigs:
			return 0

		case ev, ok := <-events:
			if !ok {
				return 0
			}
			action, err := eng.HandleEvent(ev)
			if err != nil {
				eng.ShowError(err)
			}
			switch action {
			case engine.ActionQuit:
				return 0
			case engine.ActionRender:
				if err := eng.Render(); err != nil {
					eng.ShowError(err)
				}
			}

		case <-ticker.C:
			for _, path := range eng.PollChanges() {
				if _, err := eng.HandleEvent(engine.FileChangeEvent{Path: path}); err != nil {
					eng.ShowError(err)
				}
			}
			// The demo view animates, so every tick renders.
			if err := eng.Render(); err != nil {
				eng.ShowError(err)
			}
		}
	}
}
