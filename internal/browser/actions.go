package browser

// Action is the base interface for all state mutations.
type Action interface{}

// ===== HOST PROP ACTIONS =====

// UpdatePropsAction replaces the host-owned inputs and triggers selection
// reconciliation and re-sorting.
type UpdatePropsAction struct {
	Props Props
}

// ===== INTERACTION ACTIONS =====

// SingleClickAction is a classified single click on a display row.
type SingleClickAction struct {
	Index    int
	Ctrl     bool
	Shift    bool
	Keyboard bool
}

// DoubleClickAction is a classified double click on a display row. The
// disambiguation from single clicks happens in the input layer.
type DoubleClickAction struct {
	Index    int
	Ctrl     bool
	Shift    bool
	Keyboard bool
}

// OpenParentAction asks for the parent folder to be opened. A no-op when the
// chain has no parent or the parent is not openable.
type OpenParentAction struct{}
