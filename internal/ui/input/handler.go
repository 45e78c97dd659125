// Package input converts tcell events into widget interactions.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/filegrid/filegrid/internal/browser"
)

// Intent is a classified input event handed to the application loop.
type Intent interface{}

type MoveFocusIntent struct {
	Delta int
}

// ClickIntent is a pointer click on a display row, already disambiguated
// into single or double.
type ClickIntent struct {
	Row    int
	Ctrl   bool
	Shift  bool
	Double bool
}

// WidgetKeyIntent is one of the keys the widget itself reacts to, routed
// through the focus registry.
type WidgetKeyIntent struct {
	Key browser.Key
}

type ToggleHiddenIntent struct{}

type CycleSortIntent struct{}

type ResizeIntent struct {
	Width  int
	Height int
}

type QuitIntent struct{}

// Handler owns double-click timing. Disambiguation lives here, not in the
// widget: the widget only ever sees already-classified clicks.
type Handler struct {
	doubleClickDelay time.Duration
	lastClickRow     int
	lastClickTime    time.Time
	now              func() time.Time
}

// NewHandler creates a handler with the given click-disambiguation window.
func NewHandler(doubleClickDelay time.Duration) *Handler {
	return &Handler{
		doubleClickDelay: doubleClickDelay,
		lastClickRow:     -1,
		now:              time.Now,
	}
}

// Translate maps a tcell event to an intent, or nil when the event means
// nothing to the application.
func (h *Handler) Translate(ev tcell.Event, rowAt func(x, y int) int) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, hgt := ev.Size()
		return ResizeIntent{Width: w, Height: hgt}
	case *tcell.EventKey:
		return h.translateKey(ev)
	case *tcell.EventMouse:
		return h.translateMouse(ev, rowAt)
	}
	return nil
}

func (h *Handler) translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return QuitIntent{}
	case tcell.KeyUp:
		return MoveFocusIntent{Delta: -1}
	case tcell.KeyDown:
		return MoveFocusIntent{Delta: 1}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return WidgetKeyIntent{Key: browser.KeyBackspace}
	case tcell.KeyEnter:
		return WidgetKeyIntent{Key: browser.KeyEnter}
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return WidgetKeyIntent{Key: browser.KeySpace}
		case 'q':
			return QuitIntent{}
		case 'h':
			return ToggleHiddenIntent{}
		case 's':
			return CycleSortIntent{}
		}
	}
	return nil
}

func (h *Handler) translateMouse(ev *tcell.EventMouse, rowAt func(x, y int) int) Intent {
	if ev.Buttons()&tcell.Button1 == 0 {
		return nil
	}
	x, y := ev.Position()
	row := rowAt(x, y)
	if row < 0 {
		return nil
	}

	mods := ev.Modifiers()
	intent := ClickIntent{
		Row:   row,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	now := h.now()
	if row == h.lastClickRow && now.Sub(h.lastClickTime) <= h.doubleClickDelay {
		intent.Double = true
		// A third rapid click starts a fresh cycle.
		h.lastClickRow = -1
	} else {
		h.lastClickRow = row
		h.lastClickTime = now
	}
	return intent
}
