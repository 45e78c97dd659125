package browser

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortProperty selects the primary comparison key.
type SortProperty int

const (
	SortByName SortProperty = iota
	SortBySize
	SortByModified
)

func (p SortProperty) String() string {
	switch p {
	case SortBySize:
		return "size"
	case SortByModified:
		return "modified"
	default:
		return "name"
	}
}

// SortOrder reverses the final comparator result. Folder-first grouping and
// placeholder placement are not affected by it.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

func (o SortOrder) String() string {
	if o == SortDescending {
		return "desc"
	}
	return "asc"
}

// SortFiles computes the ordered view of a raw listing along with an
// id-to-position index for O(1) lookup. It is pure: the input slice is never
// mutated and identical inputs always produce identical output.
//
// Placeholders (nil records) keep their relative order and sink to the end of
// the view. Hidden records are excluded when ShowHidden is off; they remain
// part of the raw list and of any existing selection.
func SortFiles(files FileList, opts Options, prop SortProperty, order SortOrder) (FileList, map[string]int) {
	view := make(FileList, 0, len(files))
	for _, f := range files {
		if f != nil && f.Hidden && !opts.ShowHidden {
			continue
		}
		view = append(view, f)
	}

	// IgnoreCase + Numeric gives case-insensitive natural ordering
	// ("file2" before "file10").
	col := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)

	sort.SliceStable(view, func(i, j int) bool {
		return recordLess(col, view[i], view[j], opts, prop, order)
	})

	index := make(map[string]int, len(view))
	for i, f := range view {
		if f != nil {
			index[f.ID] = i
		}
	}
	return view, index
}

func recordLess(col *collate.Collator, a, b *FileRecord, opts Options, prop SortProperty, order SortOrder) bool {
	// Placeholders sort as a maximal key regardless of order; stable sort
	// keeps their relative positions.
	if (a == nil) != (b == nil) {
		return b == nil
	}
	if a == nil {
		return false
	}

	if opts.FoldersFirst && a.IsDir != b.IsDir {
		return a.IsDir
	}

	c := compareKey(col, a, b, prop)
	if c == 0 {
		// Deterministic tiebreak on identity.
		c = strings.Compare(a.ID, b.ID)
	}
	if order == SortDescending {
		c = -c
	}
	return c < 0
}

func compareKey(col *collate.Collator, a, b *FileRecord, prop SortProperty) int {
	switch prop {
	case SortBySize:
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	case SortByModified:
		switch {
		case a.Modified.Before(b.Modified):
			return -1
		case a.Modified.After(b.Modified):
			return 1
		}
		return 0
	default:
		return col.CompareString(a.Name, b.Name)
	}
}
