package session

import (
	"slices"

	"github.com/katalvlaran/karnaugh/kmap"
)

// Document is a detached snapshot of a session, the input of the exporters.
// Treat it as read-only: Value answers from the values as they were taken.
type Document struct {
	Title    string
	Vars     []string
	Values   string
	Grid     kmap.Grid
	Markings []Marking
	Selected int // position in Markings

	cells []rune // Values split once, nil for documents built by hand
}

// Document snapshots the session. Later edits do not affect it.
func (s *Session) Document() Document {
	return Document{
		Title:    s.title,
		Vars:     slices.Clone(s.vars),
		Values:   s.values,
		Grid:     s.grid,
		Markings: s.Markings(),
		Selected: s.selected,
		cells:    []rune(s.values),
	}
}

// Value returns the value shown in cell index, or "" when the values string
// is shorter. O(1) on snapshots; a Document literal pays O(len(Values)).
func (d Document) Value(index int) string {
	r := d.cells
	if r == nil {
		r = []rune(d.Values)
	}
	if index < 0 || index >= len(r) {
		return ""
	}
	return string(r[index])
}
