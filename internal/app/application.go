// Package app wires the widget, the filesystem and the terminal together
// into the demo browser.
package app

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/filegrid/filegrid/internal/browser"
	"github.com/filegrid/filegrid/internal/config"
	"github.com/filegrid/filegrid/internal/fsx"
	inputui "github.com/filegrid/filegrid/internal/ui/input"
	renderui "github.com/filegrid/filegrid/internal/ui/render"
)

// Application is the running demo host. It owns the screen and the widget
// instance and is the single goroutine driving both, which serializes every
// widget transition.
type Application struct {
	screen   tcell.Screen
	widget   *browser.Instance
	renderer *renderui.Renderer
	input    *inputui.Handler
	logger   *zap.Logger
	cfg      config.Config

	path  string
	files browser.FileList
	chain browser.FolderChain

	focus  int
	offset int

	// pendingOpen defers navigation out of widget callbacks so a prop
	// update never happens while an interaction is still being applied.
	pendingOpen *browser.FileRecord
	quit        bool
}

// New initializes the terminal and mounts a widget on startPath.
func New(cfg config.Config, startPath string) (*Application, error) {
	logger, err := newLogger(cfg.DebugLog)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	widget := browser.NewInstance()
	widget.Activate()

	a := &Application{
		screen:   screen,
		widget:   widget,
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewHandler(widget.DoubleClickDelay()),
		logger:   logger,
		cfg:      cfg,
	}

	if err := a.navigate(startPath); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the key subscription and the terminal. Safe to call on
// every exit path.
func (a *Application) Close() {
	a.widget.Deactivate()
	a.screen.Fini()
	_ = a.logger.Sync()
}

// navigate lists a directory and pushes it into the widget.
func (a *Application) navigate(path string) error {
	files, err := fsx.ReadFolder(path)
	if err != nil {
		a.logger.Warn("navigation failed", zap.String("path", path), zap.Error(err))
		return err
	}

	a.path = path
	a.files = files
	a.chain = fsx.Chain(path)
	a.focus = 0
	a.offset = 0

	a.logger.Debug("navigated",
		zap.String("path", path),
		zap.Int("entries", len(files)))
	return a.pushProps()
}

// pushProps hands the current host state to the widget, rebuilding its
// sorted view and reconciling its selection.
func (a *Application) pushProps() error {
	opts := a.cfg.Options
	return a.widget.UpdateProps(browser.Props{
		Files:        a.files,
		FolderChain:  a.chain,
		Options:      &opts,
		SortProperty: a.cfg.SortProperty,
		SortOrder:    a.cfg.SortOrder,
		View:         browser.ViewList,
		Callbacks: browser.Callbacks{
			OnFileOpen:        a.onFileOpen,
			OnSelectionChange: a.onSelectionChange,
		},
	})
}

func (a *Application) onFileOpen(f *browser.FileRecord) {
	a.pendingOpen = f
}

func (a *Application) onSelectionChange(sel browser.Selection) {
	a.logger.Debug("selection changed", zap.Int("count", len(sel)))
}

func (a *Application) toggleHidden() error {
	a.cfg.Options.ShowHidden = !a.cfg.Options.ShowHidden
	return a.pushProps()
}

func (a *Application) cycleSort() error {
	switch a.cfg.SortProperty {
	case browser.SortByName:
		a.cfg.SortProperty = browser.SortBySize
	case browser.SortBySize:
		a.cfg.SortProperty = browser.SortByModified
	default:
		a.cfg.SortProperty = browser.SortByName
	}
	return a.pushProps()
}
