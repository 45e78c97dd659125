package browser

import "testing"

// ===== INTERACTION TESTS =====

func clickState(t *testing.T, files FileList, chain FolderChain, cbs Callbacks) (*State, *Reducer) {
	t.Helper()
	state := NewState()
	reducer := NewReducer()
	p := propsFor(files, chain)
	p.Callbacks = cbs
	if err := reducer.Reduce(state, UpdatePropsAction{Props: p}); err != nil {
		t.Fatalf("Failed to apply props: %v", err)
	}
	return state, reducer
}

func TestPlainClickSelectsSingle(t *testing.T) {
	state, reducer := clickState(t, sixFiles(), chainTo("root"), Callbacks{})

	if err := reducer.Reduce(state, SingleClickAction{Index: 1}); err != nil {
		t.Fatalf("Failed to click: %v", err)
	}
	if err := reducer.Reduce(state, SingleClickAction{Index: 3}); err != nil {
		t.Fatalf("Failed to click: %v", err)
	}

	if !state.Selection.Equal(Selection{"f3": true}) {
		t.Errorf("Plain click replaces the selection, got %v", state.Selection)
	}
}

func TestCtrlClickAccumulates(t *testing.T) {
	state, reducer := clickState(t, sixFiles(), chainTo("root"), Callbacks{})

	reducer.Reduce(state, SingleClickAction{Index: 1})
	reducer.Reduce(state, SingleClickAction{Index: 3, Ctrl: true})

	if !state.Selection.Equal(Selection{"f1": true, "f3": true}) {
		t.Errorf("Expected {f1,f3}, got %v", state.Selection)
	}
}

func TestShiftClickSelectsRangeFromAnchor(t *testing.T) {
	state, reducer := clickState(t, sixFiles(), chainTo("root"), Callbacks{})

	reducer.Reduce(state, SingleClickAction{Index: 2})
	reducer.Reduce(state, SingleClickAction{Index: 5, Shift: true})

	want := Selection{"f2": true, "f3": true, "f4": true, "f5": true}
	if !state.Selection.Equal(want) {
		t.Errorf("Expected %v, got %v", want, state.Selection)
	}
	if state.Anchor != 2 {
		t.Errorf("Shift-click keeps the anchor, got %d", state.Anchor)
	}
}

func TestHandledSingleClickSuppressesSelection(t *testing.T) {
	cbs := Callbacks{
		OnFileSingleClick: func(*FileRecord, int, ClickEvent) ClickResult { return Handled },
	}
	state, reducer := clickState(t, sixFiles(), chainTo("root"), cbs)

	reducer.Reduce(state, SingleClickAction{Index: 0})

	if len(state.Selection) != 0 {
		t.Errorf("Handled callback must pre-empt selection, got %v", state.Selection)
	}
}

func TestSingleClickCallbackReceivesContext(t *testing.T) {
	var gotIndex int
	var gotEv ClickEvent
	cbs := Callbacks{
		OnFileSingleClick: func(_ *FileRecord, index int, ev ClickEvent) ClickResult {
			gotIndex = index
			gotEv = ev
			return NotHandled
		},
	}
	state, reducer := clickState(t, sixFiles(), chainTo("root"), cbs)

	reducer.Reduce(state, SingleClickAction{Index: 4, Ctrl: true})

	if gotIndex != 4 || !gotEv.Ctrl || gotEv.Shift {
		t.Errorf("Callback context wrong: index=%d ev=%+v", gotIndex, gotEv)
	}
	if !state.Selection.Equal(Selection{"f4": true}) {
		t.Errorf("NotHandled must fall through to selection, got %v", state.Selection)
	}
}

func TestClickIgnoredWhenSelectionDisabled(t *testing.T) {
	state := NewState()
	reducer := NewReducer()

	p := propsFor(sixFiles(), chainTo("root"))
	p.DisableSelection = true
	if err := reducer.Reduce(state, UpdatePropsAction{Props: p}); err != nil {
		t.Fatalf("Failed to apply props: %v", err)
	}

	reducer.Reduce(state, SingleClickAction{Index: 0})

	if len(state.Selection) != 0 {
		t.Errorf("Selection is disabled, got %v", state.Selection)
	}
}

func TestDoubleClickOpens(t *testing.T) {
	var opened *FileRecord
	cbs := Callbacks{
		OnFileOpen: func(f *FileRecord) { opened = f },
	}
	state, reducer := clickState(t, sixFiles(), chainTo("root"), cbs)

	reducer.Reduce(state, DoubleClickAction{Index: 1})

	if opened == nil || opened.ID != "f1" {
		t.Errorf("Expected f1 opened, got %v", opened)
	}
}

func TestDoubleClickHandledSuppressesOpen(t *testing.T) {
	var opened bool
	cbs := Callbacks{
		OnFileDoubleClick: func(*FileRecord, int, ClickEvent) ClickResult { return Handled },
		OnFileOpen:        func(*FileRecord) { opened = true },
	}
	state, reducer := clickState(t, sixFiles(), chainTo("root"), cbs)

	reducer.Reduce(state, DoubleClickAction{Index: 1})

	if opened {
		t.Errorf("Handled double click must not open")
	}
}

func TestDoubleClickUnopenableIsNoOp(t *testing.T) {
	var opened bool
	cbs := Callbacks{
		OnFileOpen: func(*FileRecord) { opened = true },
	}
	files := FileList{{ID: "x", Name: "x", Openable: Bool(false)}}
	state, reducer := clickState(t, files, chainTo("root"), cbs)

	reducer.Reduce(state, DoubleClickAction{Index: 0})

	if opened {
		t.Errorf("Unopenable records must not open")
	}
}

func TestOpenParent(t *testing.T) {
	var opened *FileRecord
	cbs := Callbacks{
		OnFileOpen: func(f *FileRecord) { opened = f },
	}
	state, reducer := clickState(t, sixFiles(), chainTo("Root", "Docs"), cbs)

	reducer.Reduce(state, OpenParentAction{})

	if opened == nil || opened.ID != "Root" {
		t.Errorf("Expected Root opened, got %v", opened)
	}
}

func TestOpenParentAtRootIsNoOp(t *testing.T) {
	var opened bool
	cbs := Callbacks{
		OnFileOpen: func(*FileRecord) { opened = true },
	}
	state, reducer := clickState(t, sixFiles(), chainTo("Root"), cbs)

	reducer.Reduce(state, OpenParentAction{})

	if opened {
		t.Errorf("No parent: expected no-op")
	}
}

func TestOpenParentUnopenableIsNoOp(t *testing.T) {
	var opened bool
	cbs := Callbacks{
		OnFileOpen: func(*FileRecord) { opened = true },
	}
	chain := FolderChain{
		{ID: "Root", Name: "Root", IsDir: true, Openable: Bool(false)},
		folder("Docs", "Docs"),
	}
	state, reducer := clickState(t, sixFiles(), chain, cbs)

	reducer.Reduce(state, OpenParentAction{})

	if opened {
		t.Errorf("Unopenable parent: expected no-op")
	}
}

func TestSelectionChangeFiresOncePerInteraction(t *testing.T) {
	var notified int
	cbs := Callbacks{
		OnSelectionChange: func(Selection) { notified++ },
	}
	state, reducer := clickState(t, sixFiles(), chainTo("root"), cbs)

	reducer.Reduce(state, SingleClickAction{Index: 0})
	if notified != 1 {
		t.Fatalf("Expected 1 notification, got %d", notified)
	}

	// Sticky re-click: set unchanged, no notification.
	reducer.Reduce(state, SingleClickAction{Index: 0})
	if notified != 1 {
		t.Errorf("Sticky single click must not notify, got %d", notified)
	}
}

func TestClickOutOfRangeIsNoOp(t *testing.T) {
	state, reducer := clickState(t, sixFiles(), chainTo("root"), Callbacks{})

	reducer.Reduce(state, SingleClickAction{Index: 42})

	if len(state.Selection) != 0 || state.Anchor != -1 {
		t.Errorf("Out-of-range click disturbed state: %v %d", state.Selection, state.Anchor)
	}
}
