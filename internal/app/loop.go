package app

import (
	"go.uber.org/zap"

	"github.com/filegrid/filegrid/internal/browser"
	inputui "github.com/filegrid/filegrid/internal/ui/input"
	renderui "github.com/filegrid/filegrid/internal/ui/render"
)

// Run drives the event loop until the user quits. Every event is processed
// to completion before the next one, so the widget always observes a fully
// settled prior state.
func (a *Application) Run() {
	a.render()

	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		rowAt := func(x, y int) int {
			return renderui.RowAt(x, y, a.offset, len(a.widget.Ordered()))
		}
		intent := a.input.Translate(ev, rowAt)
		if intent == nil {
			continue
		}

		a.apply(intent)

		// Open requests surface as callbacks during apply; navigation is
		// deferred here so it never interleaves with an interaction.
		if f := a.pendingOpen; f != nil {
			a.pendingOpen = nil
			if f.IsDir {
				_ = a.navigate(f.ID)
			} else {
				a.logger.Info("open file", zap.String("id", f.ID))
			}
		}

		a.render()
	}
}

func (a *Application) apply(intent inputui.Intent) {
	switch in := intent.(type) {
	case inputui.QuitIntent:
		a.quit = true

	case inputui.ResizeIntent:
		a.screen.Sync()
		a.clampViewport()

	case inputui.MoveFocusIntent:
		a.moveFocus(in.Delta)

	case inputui.ClickIntent:
		a.focus = in.Row
		a.clampViewport()
		if in.Double {
			_ = a.widget.DoubleClick(in.Row, in.Ctrl, in.Shift)
		} else {
			_ = a.widget.Click(in.Row, in.Ctrl, in.Shift)
		}

	case inputui.WidgetKeyIntent:
		browser.DispatchKey(a.focusTag(), in.Key)

	case inputui.ToggleHiddenIntent:
		_ = a.toggleHidden()
		a.clampViewport()

	case inputui.CycleSortIntent:
		_ = a.cycleSort()
	}
}

// focusTag identifies the focused row for process-wide key routing.
func (a *Application) focusTag() string {
	fileID := ""
	if f := fileAt(a.widget.Ordered(), a.focus); f != nil {
		fileID = f.ID
	}
	return browser.FocusTag(a.widget.ID(), fileID)
}

func fileAt(ordered browser.FileList, idx int) *browser.FileRecord {
	if idx < 0 || idx >= len(ordered) {
		return nil
	}
	return ordered[idx]
}

func (a *Application) moveFocus(delta int) {
	total := len(a.widget.Ordered())
	if total == 0 {
		a.focus = 0
		return
	}
	a.focus += delta
	if a.focus < 0 {
		a.focus = 0
	}
	if a.focus >= total {
		a.focus = total - 1
	}
	a.clampViewport()
}

// clampViewport keeps the focused row visible.
func (a *Application) clampViewport() {
	total := len(a.widget.Ordered())
	if a.focus >= total {
		a.focus = total - 1
	}
	if a.focus < 0 {
		a.focus = 0
	}

	_, height := a.screen.Size()
	rows := renderui.VisibleRows(height)
	if rows <= 0 {
		a.offset = 0
		return
	}
	if a.focus < a.offset {
		a.offset = a.focus
	}
	if a.focus >= a.offset+rows {
		a.offset = a.focus - rows + 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

func (a *Application) render() {
	a.renderer.Render(a.widget, a.focus, a.offset)
}
