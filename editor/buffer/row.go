package buffer

import "github.com/hnimtadd/termedit/editor/syntax"

// RowID identifies a row for its whole life, independent of its position.
type RowID uint64

// Row is one line of the open text. Only the Store writes to a row; render
// and highlight are derived from raw and replaced together on every change.
type Row struct {
	id    RowID
	index int
	// Line content without terminator.
	raw string
	// raw with tabs expanded.
	render string
	// One class per byte of render.
	highlight []syntax.Class

	// Scan state this row was highlighted with, and the state it hands on.
	startState syntax.State
	endState   syntax.State
}

func (r *Row) ID() RowID {
	return r.id
}

// Index is the row's position in the store.
func (r *Row) Index() int {
	return r.index
}

func (r *Row) Raw() string {
	return r.raw
}

// Len returns the number of raw bytes.
func (r *Row) Len() int {
	return len(r.raw)
}

func (r *Row) Render() string {
	return r.render
}

// Highlight returns the class for each render column. The slice is owned by
// the row and is replaced, not modified, on the next change; callers must not
// write to it.
func (r *Row) Highlight() []syntax.Class {
	return r.highlight
}

// EndState is the scan state handed to the following row.
func (r *Row) EndState() syntax.State {
	return r.endState
}
