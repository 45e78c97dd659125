package browser

// selectionStatus is computed on every incoming prop update and decides how
// the selection reacts to it.
type selectionStatus int

const (
	selectionOK selectionStatus = iota
	selectionNeedsCleaning
	selectionNeedsResetting
)

// Reducer applies actions to state. All transitions run to completion before
// the next action is applied; a later computation never observes a partial
// update.
type Reducer struct{}

// NewReducer creates a new reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce applies an action to state.
func (r *Reducer) Reduce(state *State, action Action) error {
	switch a := action.(type) {
	case UpdatePropsAction:
		return r.applyProps(state, a.Props)
	case SingleClickAction:
		return r.applySingleClick(state, a)
	case DoubleClickAction:
		return r.applyDoubleClick(state, a)
	case OpenParentAction:
		return r.applyOpenParent(state)
	}
	return nil
}

// ===== RECONCILIATION =====

func (r *Reducer) applyProps(s *State, p Props) error {
	opts := mergeOptions(p.Options)

	// Mounting is not a transition: the first props application only builds
	// the derived state, it never notifies.
	status := selectionOK
	resort := true
	if s.initialized {
		status = diffSelectionStatus(s, p, opts)
		resort = needsResort(s, p, opts)
	}

	s.Files = p.Files
	s.FolderChain = p.FolderChain
	s.Options = opts
	s.SortProperty = p.SortProperty
	s.SortOrder = p.SortOrder
	s.View = p.View
	s.DisableSelection = p.DisableSelection
	s.DoubleClickDelay = p.DoubleClickDelay
	s.callbacks = p.Callbacks
	s.initialized = true

	// Sorting is orthogonal to selection reconciliation and is recomputed on
	// every change to its inputs, whatever the selection status was. It runs
	// first because the anchor indexes the view, so clamping below needs the
	// rebuilt bounds.
	if resort {
		s.Ordered, s.IDToIndex = SortFiles(s.Files, s.Options, s.SortProperty, s.SortOrder)
	}

	switch status {
	case selectionNeedsResetting:
		s.Selection = Selection{}
		s.Anchor = -1
		s.notifySelection()
	case selectionNeedsCleaning:
		// Cleaning works on the raw list: existence is a property of the
		// host-supplied listing, not of the sorted view.
		s.Selection = pruneSelection(s.Selection, p.Files)
		s.Anchor = clampAnchor(s.Anchor, len(s.Ordered))
		// Notified even when the pruned set is identical; the host owns
		// deciding whether anything of interest changed.
		s.notifySelection()
	}
	return nil
}

// diffSelectionStatus compares the incoming props against the current state.
// Navigation (the chain's terminal folder identity changing) or selection
// being switched off force a reset; a replaced file list in the same folder
// only needs cleaning.
func diffSelectionStatus(s *State, p Props, opts Options) selectionStatus {
	disabledNow := p.DisableSelection || opts.DisableSelection
	if disabledNow && s.SelectionEnabled() {
		return selectionNeedsResetting
	}
	if currentFolderID(s.FolderChain) != currentFolderID(p.FolderChain) {
		return selectionNeedsResetting
	}
	if !sameFileList(s.Files, p.Files) {
		return selectionNeedsCleaning
	}
	return selectionOK
}

func needsResort(s *State, p Props, opts Options) bool {
	if !sameFileList(s.Files, p.Files) {
		return true
	}
	if s.Options != opts {
		return true
	}
	return s.SortProperty != p.SortProperty || s.SortOrder != p.SortOrder
}

func currentFolderID(chain FolderChain) string {
	if cur := chain.Current(); cur != nil {
		return cur.ID
	}
	return ""
}

// sameFileList reports whether the host handed over the identical slice.
// A replacement slice counts as a content update even when it holds the same
// record pointers: a re-listing of the same folder still has to reconcile.
func sameFileList(a, b FileList) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

// pruneSelection intersects a selection with a raw file list, keeping only
// IDs that still exist and are still selectable.
func pruneSelection(sel Selection, files FileList) Selection {
	next := make(Selection, len(sel))
	for _, f := range files {
		if f.CanSelect() && sel[f.ID] {
			next[f.ID] = true
		}
	}
	return next
}

// clampAnchor keeps a stale anchor inside the bounds of the new list.
func clampAnchor(anchor, length int) int {
	if anchor < 0 || length == 0 {
		return -1
	}
	if anchor >= length {
		return length - 1
	}
	return anchor
}

// ===== INTERACTIONS =====

func modeForClick(ctrl, shift bool) SelectionMode {
	switch {
	case shift:
		return SelectRange
	case ctrl:
		return SelectMultiple
	default:
		return SelectSingle
	}
}

func (r *Reducer) applySingleClick(s *State, a SingleClickAction) error {
	file := s.FileAt(a.Index)
	ev := ClickEvent{Ctrl: a.Ctrl, Shift: a.Shift, Keyboard: a.Keyboard}

	if cb := s.callbacks.OnFileSingleClick; cb != nil {
		if cb(file, a.Index, ev) == Handled {
			return nil
		}
	}
	if !s.SelectionEnabled() {
		return nil
	}

	sel, anchor, changed := Toggle(s.Selection, s.Anchor, s.Ordered, file, a.Index, modeForClick(a.Ctrl, a.Shift))
	s.Selection = sel
	s.Anchor = anchor
	if changed {
		s.notifySelection()
	}
	return nil
}

func (r *Reducer) applyDoubleClick(s *State, a DoubleClickAction) error {
	file := s.FileAt(a.Index)
	ev := ClickEvent{Ctrl: a.Ctrl, Shift: a.Shift, Keyboard: a.Keyboard}

	if cb := s.callbacks.OnFileDoubleClick; cb != nil {
		if cb(file, a.Index, ev) == Handled {
			return nil
		}
	}
	if !file.CanOpen() {
		return nil
	}
	if cb := s.callbacks.OnFileOpen; cb != nil {
		cb(file)
	}
	return nil
}

func (r *Reducer) applyOpenParent(s *State) error {
	parent := s.FolderChain.Parent()
	if !parent.CanOpen() {
		return nil
	}
	if cb := s.callbacks.OnFileOpen; cb != nil {
		cb(parent)
	}
	return nil
}
