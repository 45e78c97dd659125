package browser

import "time"

// FileRecord is a single entry supplied by the host. Records are identified
// by ID only; two records with the same ID are the same file even if other
// fields changed (rename in place).
//
// A nil *FileRecord inside a list is a loading placeholder: it occupies a
// row but can never be selected or opened.
type FileRecord struct {
	ID       string
	Name     string
	Ext      string
	IsDir    bool
	Hidden   bool
	Size     int64
	Modified time.Time

	// Selectable and Openable default to true when nil.
	Selectable *bool
	Openable   *bool
}

// CanSelect reports whether the record may join the selection set.
func (f *FileRecord) CanSelect() bool {
	return f != nil && (f.Selectable == nil || *f.Selectable)
}

// CanOpen reports whether the record may be activated to open.
func (f *FileRecord) CanOpen() bool {
	return f != nil && (f.Openable == nil || *f.Openable)
}

// Bool is a convenience for building Selectable/Openable fields in literals.
func Bool(v bool) *bool {
	return &v
}

// FileList is the raw listing supplied by the host. Hosts replace the slice
// wholesale on every update and never mutate it in place.
type FileList []*FileRecord

// FolderChain is the breadcrumb path from the root to the folder being
// displayed; the last element is the current folder.
type FolderChain []*FileRecord

// Current returns the folder being displayed, or nil when the chain is
// absent or ends in a placeholder.
func (c FolderChain) Current() *FileRecord {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Parent returns the parent of the current folder, or nil when the chain is
// already at its root.
func (c FolderChain) Parent() *FileRecord {
	if len(c) < 2 {
		return nil
	}
	return c[len(c)-2]
}
