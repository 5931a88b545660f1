// Package engine orchestrates the dashboard lifecycle: loading source
// files, watching them for changes, surfacing failures through a
// dismissible overlay, and driving the synchronous render loop.
package engine

import (
	"fmt"
	"time"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/logging"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/render"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/widgets"
)

// DefaultDebounce is the hot-reload debounce window used when the
// caller does not pick one.
const DefaultDebounce = 100 * time.Millisecond

// RenderCallback paints the widget tree for one frame. The buffer is
// owned by the render call and must not be retained.
type RenderCallback func(buf *buffer.Buffer, area layout.Rect, state *DashboardState)

// DashboardEngine owns the renderer, loader, optional watcher, and
// overlay, and exposes the load/reload/render/event operations the
// host loop drives.
type DashboardEngine struct {
	renderer  render.Renderer
	loader    *FileLoader
	watcher   *FileWatcher
	state     *DashboardState
	rootPath  string
	entryFile string
	overlay   *ErrorOverlay
	callback  RenderCallback
	logger    *logging.Logger

	overlayAutoDismiss time.Duration
}

// NewDashboardEngine creates an engine resolving dashboard paths
// against rootPath. Hot reload starts disabled.
func NewDashboardEngine(renderer render.Renderer, rootPath string) *DashboardEngine {
	return &DashboardEngine{
		renderer: renderer,
		loader:   NewFileLoader(rootPath),
		state:    NewDashboardState(),
		rootPath: rootPath,
	}
}

// SetLogger attaches a structured logger. Nil disables logging.
func (e *DashboardEngine) SetLogger(logger *logging.Logger) {
	e.logger = logger
}

// SetRenderCallback installs the function that paints each frame.
func (e *DashboardEngine) SetRenderCallback(cb RenderCallback) {
	e.callback = cb
}

// ClearRenderCallback removes the render callback. Subsequent renders
// fall back to the placeholder panels.
func (e *DashboardEngine) ClearRenderCallback() {
	e.callback = nil
}

// SetOverlayAutoDismiss makes overlays installed by ShowError hide on
// their own after d. Zero keeps them visible until dismissed.
func (e *DashboardEngine) SetOverlayAutoDismiss(d time.Duration) {
	e.overlayAutoDismiss = d
}

// State returns the engine's dashboard state.
func (e *DashboardEngine) State() *DashboardState {
	return e.state
}

// Renderer returns the underlying renderer.
func (e *DashboardEngine) Renderer() render.Renderer {
	return e.renderer
}

// Loader returns the engine's file loader.
func (e *DashboardEngine) Loader() *FileLoader {
	return e.loader
}

// RootPath returns the path dashboards are resolved against.
func (e *DashboardEngine) RootPath() string {
	return e.rootPath
}

// EntryFile returns the resolved path of the loaded dashboard, or ""
// if none has loaded yet.
func (e *DashboardEngine) EntryFile() string {
	return e.entryFile
}

// HotReloadEnabled reports whether a file watcher is active.
func (e *DashboardEngine) HotReloadEnabled() bool {
	return e.watcher != nil
}

// Load resolves path against the root, loads it and its dependencies,
// registers them with the watcher when hot reload is enabled, and
// marks the state dirty. A failed load leaves the engine usable.
func (e *DashboardEngine) Load(path string) error {
	resolved := e.loader.Resolve(path)
	file, err := e.loader.Load(resolved)
	if err != nil {
		e.logError(logging.CategoryLoader, "load_failed", resolved, err)
		return err
	}

	e.entryFile = file.Path
	if err := e.watchEntry(); err != nil {
		return err
	}
	e.state.MarkDirty()
	e.logFile(logging.CategoryLoader, "loaded", file.Path)
	return nil
}

// Reload invalidates the entry file and everything depending on it,
// then loads it fresh. Fails with an invalid-state error when nothing
// has been loaded.
func (e *DashboardEngine) Reload() error {
	if e.entryFile == "" {
		return errors.New(errors.ErrCodeInvalidState, "no entry file loaded")
	}

	e.loader.Invalidate(e.entryFile)
	file, err := e.loader.Load(e.entryFile)
	if err != nil {
		e.logError(logging.CategoryLoader, "reload_failed", e.entryFile, err)
		return err
	}

	if err := e.watchEntry(); err != nil {
		return err
	}
	e.state.MarkDirty()
	e.logFile(logging.CategoryLoader, "reloaded", file.Path)
	return nil
}

// EnableHotReload starts watching with the default debounce window.
func (e *DashboardEngine) EnableHotReload() error {
	return e.EnableHotReloadWithDebounce(DefaultDebounce)
}

// EnableHotReloadWithDebounce starts a watcher and registers the entry
// file and its known dependencies if one is already loaded. An existing
// watcher is replaced so the new debounce window takes effect.
func (e *DashboardEngine) EnableHotReloadWithDebounce(debounce time.Duration) error {
	watcher, err := NewFileWatcher(debounce)
	if err != nil {
		return err
	}
	if e.watcher != nil {
		e.watcher.Close()
	}
	e.watcher = watcher
	return e.watchEntry()
}

// DisableHotReload stops and drops the watcher.
func (e *DashboardEngine) DisableHotReload() {
	if e.watcher == nil {
		return
	}
	e.watcher.Close()
	e.watcher = nil
}

// PollChanges drains debounced file changes. Returns nil when hot
// reload is disabled or nothing has settled. Background watch errors
// are logged here rather than interrupting the loop.
func (e *DashboardEngine) PollChanges() []string {
	if e.watcher == nil {
		return nil
	}
	if err := e.watcher.Err(); err != nil {
		e.logError(logging.CategoryWatcher, "watch_error", e.entryFile, err)
	}
	return e.watcher.Poll()
}

// watchEntry registers the entry file and its cached dependencies.
func (e *DashboardEngine) watchEntry() error {
	if e.watcher == nil || e.entryFile == "" {
		return nil
	}
	if err := e.watcher.Watch(e.entryFile); err != nil {
		return err
	}
	for _, dep := range e.loader.Dependencies(e.entryFile) {
		if err := e.watcher.Watch(dep); err != nil {
			return err
		}
	}
	return nil
}

// HandleEvent dispatches a host-loop event and returns the action the
// host should take. Reload failures propagate so the caller can
// surface them via ShowError.
func (e *DashboardEngine) HandleEvent(event Event) (Action, error) {
	switch ev := event.(type) {
	case FileChangeEvent:
		e.loader.Invalidate(ev.Path)
		if err := e.Reload(); err != nil {
			return ActionRender, err
		}
		return ActionRender, nil

	case ResizeEvent:
		e.state.MarkDirty()
		return ActionRender, nil

	case KeyEvent:
		if !ev.Ctrl {
			return ActionNone, nil
		}
		switch ev.Rune {
		case 'c':
			return ActionQuit, nil
		case 'r':
			if err := e.Reload(); err != nil {
				return ActionRender, err
			}
			return ActionRender, nil
		case 'd':
			if e.HasError() {
				e.DismissError()
				return ActionRender, nil
			}
		}
		return ActionNone, nil

	default:
		return ActionNone, nil
	}
}

// Render draws one frame: a fresh buffer sized to the renderer, the
// callback or a placeholder, the error overlay on top, then draw and
// flush. The dirty flag clears only after a successful flush.
func (e *DashboardEngine) Render() error {
	size, err := e.renderer.Size()
	if err != nil {
		return err
	}

	buf := buffer.New(size)
	switch {
	case e.callback != nil:
		e.callback(buf, size, e.state)
	case e.entryFile != "":
		e.renderLoadedPlaceholder(buf, size)
	default:
		e.renderEmptyPlaceholder(buf, size)
	}

	if e.overlay != nil {
		e.overlay.Update()
		if e.overlay.Visible() {
			e.overlay.Render(size, buf)
		}
	}

	if err := e.renderer.Draw(buf); err != nil {
		return err
	}
	if err := e.renderer.Flush(); err != nil {
		return err
	}
	e.state.ClearDirty()
	return nil
}

// ShowError installs an overlay for err, replacing any existing one.
// The overlay inherits the configured auto-dismiss duration.
func (e *DashboardEngine) ShowError(err error) {
	overlay := NewErrorOverlay(MessageFromError(err))
	if e.overlayAutoDismiss > 0 {
		overlay.WithAutoDismiss(e.overlayAutoDismiss)
	}
	e.overlay = overlay
	e.state.MarkDirty()
}

// DismissError hides the current overlay, if any.
func (e *DashboardEngine) DismissError() {
	if e.overlay != nil {
		e.overlay.Dismiss()
		e.state.MarkDirty()
	}
}

// HasError reports whether an error overlay is currently visible.
func (e *DashboardEngine) HasError() bool {
	return e.overlay != nil && e.overlay.Visible()
}

// ErrorOverlay returns the current overlay, which may be nil.
func (e *DashboardEngine) ErrorOverlay() *ErrorOverlay {
	return e.overlay
}

// Clear wipes the terminal and resets the dashboard state.
func (e *DashboardEngine) Clear() error {
	if err := e.renderer.Clear(); err != nil {
		return err
	}
	e.state.Clear()
	return nil
}

func (e *DashboardEngine) renderLoadedPlaceholder(buf *buffer.Buffer, area layout.Rect) {
	hotReload := "disabled"
	if e.watcher != nil {
		hotReload = "enabled"
	}
	text := fmt.Sprintf(
		"Loaded: %s\nHot reload: %s\nWidgets: %d\n\nWaiting for Fusabi render callback...\n\nPress Ctrl+R to reload, Ctrl+C to quit",
		e.entryFile, hotReload, e.state.WidgetCount(),
	)
	block := widgets.NewBlock().
		Title(widgets.NewTitle(" Fusabi Dashboard ").WithStyle(style.New().Foreground(style.ColorCyan).Bold(true))).
		Borders(widgets.BordersAll).
		BorderType(widgets.BorderRounded).
		BorderStyle(style.New().Foreground(style.ColorCyan))
	inner := block.Inner(area)
	block.Render(area, buf)
	widgets.NewParagraph(text).
		Style(style.New().Foreground(style.ColorWhite)).
		Render(inner, buf)
}

func (e *DashboardEngine) renderEmptyPlaceholder(buf *buffer.Buffer, area layout.Rect) {
	text := "No dashboard loaded.\n\nLoad a .fsx dashboard file to begin.\n\nPress Ctrl+C to quit"
	block := widgets.NewBlock().
		Title(widgets.NewTitle(" Fusabi Dashboard Engine ").WithStyle(style.New().Foreground(style.ColorBlue).Bold(true))).
		Borders(widgets.BordersAll).
		BorderType(widgets.BorderDouble).
		BorderStyle(style.New().Foreground(style.ColorBlue))
	inner := block.Inner(area)
	block.Render(area, buf)
	widgets.NewParagraph(text).
		Style(style.New().Foreground(style.ColorWhite)).
		Render(inner, buf)
}

func (e *DashboardEngine) logFile(cat logging.Category, eventType, path string) {
	if e.logger != nil {
		e.logger.FileEvent(logging.LevelInfo, cat, eventType, path, "")
	}
}

func (e *DashboardEngine) logError(cat logging.Category, eventType, path string, err error) {
	if e.logger != nil {
		e.logger.Log(logging.Event{
			Level:     logging.LevelError,
			Category:  cat,
			EventType: eventType,
			Path:      path,
			Message:   err.Error(),
		})
	}
}
