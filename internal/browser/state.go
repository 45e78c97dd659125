package browser

import "time"

// DefaultDoubleClickDelay is used when the host does not supply one.
const DefaultDoubleClickDelay = 300 * time.Millisecond

// ClickResult is returned by host click callbacks. Handled suppresses the
// widget's default behavior for that interaction.
type ClickResult int

const (
	NotHandled ClickResult = iota
	Handled
)

// ClickEvent carries the interaction context handed to click callbacks.
// Keyboard-originated activation always reports Ctrl true and Shift false,
// so space/enter add to the selection instead of replacing it.
type ClickEvent struct {
	Ctrl     bool
	Shift    bool
	Keyboard bool
}

// Callbacks is the host-facing notification surface. Nil members are simply
// not invoked; there is no error channel back to the widget.
type Callbacks struct {
	OnFileSingleClick func(file *FileRecord, displayIndex int, ev ClickEvent) ClickResult
	OnFileDoubleClick func(file *FileRecord, displayIndex int, ev ClickEvent) ClickResult
	OnFileOpen        func(file *FileRecord)
	OnSelectionChange func(sel Selection)
}

// ViewMode is a presentation hint the host picks for the rendering layer.
// The core carries it through without interpreting it.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewGrid
)

func (v ViewMode) String() string {
	if v == ViewGrid {
		return "grid"
	}
	return "list"
}

// Props is everything the host pushes in on construction and on update.
type Props struct {
	Files       FileList
	FolderChain FolderChain

	// Options nil means DefaultOptions.
	Options          *Options
	SortProperty     SortProperty
	SortOrder        SortOrder
	View             ViewMode
	DisableSelection bool

	// DoubleClickDelay zero means DefaultDoubleClickDelay. The timing itself
	// is owned by the input layer; the core only carries the value through.
	DoubleClickDelay time.Duration

	Callbacks Callbacks
}

// State is the single source of truth for one widget instance.
type State struct {
	// Raw inputs, owned by the host and replaced on every prop update.
	Files            FileList
	FolderChain      FolderChain
	Options          Options
	SortProperty     SortProperty
	SortOrder        SortOrder
	View             ViewMode
	DisableSelection bool
	DoubleClickDelay time.Duration

	// Derived view, rebuilt whole whenever its sort inputs change. Ordered
	// and IDToIndex are never partially updated.
	Ordered   FileList
	IDToIndex map[string]int

	// Selection state, owned internally. Anchor indexes into Ordered;
	// -1 means no anchor.
	Selection Selection
	Anchor    int

	callbacks Callbacks

	// initialized flips on the first prop application; before that there is
	// no prior state to reconcile against, so no notification fires.
	initialized bool
}

// NewState returns an empty state with no anchor and an empty selection.
func NewState() *State {
	return &State{
		Options:   DefaultOptions(),
		Selection: Selection{},
		Anchor:    -1,
	}
}

// FileAt returns the record at a display index, or nil for placeholders and
// out-of-range indices.
func (s *State) FileAt(displayIndex int) *FileRecord {
	if displayIndex < 0 || displayIndex >= len(s.Ordered) {
		return nil
	}
	return s.Ordered[displayIndex]
}

// SelectionEnabled reports whether interactions may change the selection.
// Both the top-level prop and the option toggle can disable it.
func (s *State) SelectionEnabled() bool {
	return !s.DisableSelection && !s.Options.DisableSelection
}

// SelectionSnapshot returns a copy the caller may keep.
func (s *State) SelectionSnapshot() Selection {
	return s.Selection.clone()
}

func (s *State) notifySelection() {
	if cb := s.callbacks.OnSelectionChange; cb != nil {
		cb(s.SelectionSnapshot())
	}
}

func (s *State) doubleClickDelay() time.Duration {
	if s.DoubleClickDelay <= 0 {
		return DefaultDoubleClickDelay
	}
	return s.DoubleClickDelay
}
