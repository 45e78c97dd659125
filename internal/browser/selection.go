package browser

// Selection is a set of selected file IDs. Absence means unselected; a
// present key always maps to true.
type Selection map[string]bool

func (s Selection) clone() Selection {
	next := make(Selection, len(s))
	for id := range s {
		next[id] = true
	}
	return next
}

// Equal reports whether two selections contain the same IDs.
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other[id] {
			return false
		}
	}
	return true
}

// SelectionMode classifies one selection interaction.
type SelectionMode int

const (
	// SelectSingle replaces the selection with the target. Clicking an
	// already-selected file keeps the selection and only moves the anchor.
	SelectSingle SelectionMode = iota
	// SelectMultiple flips membership of the target.
	SelectMultiple
	// SelectRange additively selects everything between the anchor and the
	// target. Without a valid anchor it behaves as SelectMultiple.
	SelectRange
)

// Toggle computes the next selection from one interaction. It never mutates
// its inputs; when the interaction produces a new set, changed is true and
// the caller owns the returned map.
//
// Targeting a placeholder or a non-selectable record is a silent no-op that
// leaves both selection and anchor untouched.
func Toggle(sel Selection, anchor int, ordered FileList, target *FileRecord, targetIndex int, mode SelectionMode) (next Selection, nextAnchor int, changed bool) {
	if !target.CanSelect() {
		return sel, anchor, false
	}

	if mode == SelectRange {
		if anchor < 0 || anchor >= len(ordered) {
			// No usable anchor: downgrade this call to SelectMultiple.
			mode = SelectMultiple
		} else {
			lo, hi := anchor, targetIndex
			if lo > hi {
				lo, hi = hi, lo
			}
			next = sel.clone()
			for i := lo; i <= hi && i < len(ordered); i++ {
				if f := ordered[i]; f.CanSelect() {
					next[f.ID] = true
				}
			}
			// The original anchor survives a range extension.
			return next, anchor, true
		}
	}

	if mode == SelectSingle {
		if sel[target.ID] {
			// Sticky single select: the set is unchanged, the anchor moves.
			return sel, targetIndex, false
		}
		return Selection{target.ID: true}, targetIndex, true
	}

	next = sel.clone()
	if next[target.ID] {
		delete(next, target.ID)
	} else {
		next[target.ID] = true
	}
	return next, targetIndex, true
}
