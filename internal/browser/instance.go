package browser

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Instance is one mounted file-browser widget: props go in through
// UpdateProps, interactions come in through Click/DoubleClick or the key
// registry, and the host hears back through its callbacks.
//
// An Instance is not safe for concurrent use; the host's event loop must
// serialize calls, which also guarantees every transition observes a fully
// settled prior state.
type Instance struct {
	id      string
	state   *State
	reducer *Reducer
	active  bool
}

// NewInstance creates an inactive instance with an empty file list.
func NewInstance() *Instance {
	return &Instance{
		id:      newInstanceID(),
		state:   NewState(),
		reducer: NewReducer(),
	}
}

func newInstanceID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Degenerate fallback; IDs only need to be unique per process.
		return hex.EncodeToString([]byte(time.Now().Format("150405.000")))
	}
	return hex.EncodeToString(buf[:])
}

// ID is the per-instance identifier used in focus tags.
func (b *Instance) ID() string {
	return b.id
}

// Activate subscribes the instance to process-wide key routing. Idempotent.
func (b *Instance) Activate() {
	if b.active {
		return
	}
	b.active = true
	attachInstance(b)
}

// Deactivate unconditionally releases the key subscription. Safe to call
// repeatedly; hosts should defer it on every exit path so the registry never
// leaks an entry.
func (b *Instance) Deactivate() {
	if !b.active {
		return
	}
	b.active = false
	detachInstance(b.id)
}

// UpdateProps pushes a new set of host inputs through reconciliation.
func (b *Instance) UpdateProps(p Props) error {
	return b.reducer.Reduce(b.state, UpdatePropsAction{Props: p})
}

// Click dispatches an already-classified single click on a display row.
func (b *Instance) Click(displayIndex int, ctrl, shift bool) error {
	return b.reducer.Reduce(b.state, SingleClickAction{Index: displayIndex, Ctrl: ctrl, Shift: shift})
}

// DoubleClick dispatches an already-classified double click on a display row.
func (b *Instance) DoubleClick(displayIndex int, ctrl, shift bool) error {
	return b.reducer.Reduce(b.state, DoubleClickAction{Index: displayIndex, Ctrl: ctrl, Shift: shift})
}

// handleKey is invoked by the key registry once the focus tag resolved to
// this instance. Keyboard activation deliberately behaves like a ctrl-click
// so it adds to the selection instead of replacing it.
func (b *Instance) handleKey(fileID string, key Key) bool {
	switch key {
	case KeyBackspace:
		_ = b.reducer.Reduce(b.state, OpenParentAction{})
		return true
	case KeySpace:
		idx, ok := b.state.IDToIndex[fileID]
		if !ok {
			return false
		}
		_ = b.reducer.Reduce(b.state, SingleClickAction{Index: idx, Ctrl: true, Keyboard: true})
		return true
	case KeyEnter:
		idx, ok := b.state.IDToIndex[fileID]
		if !ok {
			return false
		}
		_ = b.reducer.Reduce(b.state, DoubleClickAction{Index: idx, Ctrl: true, Keyboard: true})
		return true
	}
	return false
}

// ===== OUTPUTS FOR THE RENDERING LAYER =====

// Ordered returns the sorted view. Read-only for callers.
func (b *Instance) Ordered() FileList {
	return b.state.Ordered
}

// Index returns the id-to-position lookup for the sorted view. Read-only.
func (b *Instance) Index() map[string]int {
	return b.state.IDToIndex
}

// FolderChain returns the breadcrumb path last pushed by the host.
func (b *Instance) FolderChain() FolderChain {
	return b.state.FolderChain
}

// IsSelected reports whether a file ID is in the current selection.
func (b *Instance) IsSelected(id string) bool {
	return b.state.Selection[id]
}

// SelectionSnapshot returns a copy of the current selection.
func (b *Instance) SelectionSnapshot() Selection {
	return b.state.SelectionSnapshot()
}

// SortProperty returns the active primary sort key.
func (b *Instance) SortProperty() SortProperty {
	return b.state.SortProperty
}

// SortOrder returns the active sort direction.
func (b *Instance) SortOrder() SortOrder {
	return b.state.SortOrder
}

// Options returns the resolved option toggles.
func (b *Instance) Options() Options {
	return b.state.Options
}

// View returns the host-selected presentation mode.
func (b *Instance) View() ViewMode {
	return b.state.View
}

// DoubleClickDelay returns the click-disambiguation window for the input
// layer.
func (b *Instance) DoubleClickDelay() time.Duration {
	return b.state.doubleClickDelay()
}
