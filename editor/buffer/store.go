package buffer

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/termedit/editor/syntax"
	"github.com/hnimtadd/termedit/editor/tabstops"
	"github.com/hnimtadd/termedit/editor/utils"
)

var ErrOutOfRange = errors.New("row index out of range")

type Options struct {
	// TabStop is the render stop width. Zero selects
	// tabstops.DefaultInterval.
	TabStop int
	// Lexicon used to highlight rows, nil for none.
	Lexicon *syntax.Lexicon
}

// Store owns the ordered rows of a buffer. Every mutation re-derives the
// render form and highlight of the rows it touches before returning, so
// readers never see a row whose derived state lags its content.
//
// Mutations other than InsertRow are total: out of range positions are
// clamped or ignored, never reported.
type Store struct {
	rows    []*Row
	tabs    *tabstops.Tabstops
	lexicon *syntax.Lexicon

	// Row-level mutations since the last ResetDirty.
	dirty  int
	nextID RowID
}

func NewStore(opts Options) *Store {
	interval := opts.TabStop
	if interval == 0 {
		interval = tabstops.DefaultInterval
	}
	return &Store{
		tabs:    tabstops.NewTabstops(interval),
		lexicon: opts.Lexicon,
		nextID:  1,
	}
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.rows)
}

// Row returns the row at index at, or nil when there is none.
func (s *Store) Row(at int) *Row {
	if at < 0 || at >= len(s.rows) {
		return nil
	}
	return s.rows[at]
}

// IndexOf returns the current index of the row with the given id.
func (s *Store) IndexOf(id RowID) (int, bool) {
	for i, row := range s.rows {
		if row.id == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) Dirty() int {
	return s.dirty
}

// ResetDirty is called once the buffer has been saved.
func (s *Store) ResetDirty() {
	s.dirty = 0
}

func (s *Store) Tabstops() *tabstops.Tabstops {
	return s.tabs
}

func (s *Store) Lexicon() *syntax.Lexicon {
	return s.lexicon
}

// SetLexicon switches the lexicon and rescans every row. It does not count
// as a mutation.
func (s *Store) SetLexicon(lex *syntax.Lexicon) {
	s.lexicon = lex
	for i := range s.rows {
		s.scan(i)
	}
}

// InsertRow inserts a row holding text at index at, which must be in
// [0, Len()].
func (s *Store) InsertRow(at int, text string) (RowID, error) {
	if at < 0 || at > len(s.rows) {
		return 0, fmt.Errorf("%w: insert at %d of %d", ErrOutOfRange, at, len(s.rows))
	}

	row := &Row{id: s.nextID, index: at, raw: text}
	s.nextID++
	s.rows = utils.Insert(s.rows, at, row)
	for j := at + 1; j < len(s.rows); j++ {
		s.rows[j].index++
	}

	s.update(at)
	s.dirty++
	return row.id, nil
}

// DeleteRow removes the row at index at. Out of range indices are ignored.
func (s *Store) DeleteRow(at int) {
	if at < 0 || at >= len(s.rows) {
		return
	}

	s.rows = utils.Remove(s.rows, at)
	for j := at; j < len(s.rows); j++ {
		s.rows[j].index--
	}

	s.carry(at)
	s.dirty++
}

// InsertChar inserts ch into row at before column col, clamped to
// [0, row length].
func (s *Store) InsertChar(at int, col int, ch byte) {
	row := s.Row(at)
	if row == nil {
		return
	}
	col = utils.Clamp(col, 0, len(row.raw))

	raw := make([]byte, 0, len(row.raw)+1)
	raw = append(raw, row.raw[:col]...)
	raw = append(raw, ch)
	raw = append(raw, row.raw[col:]...)
	row.raw = string(raw)

	s.update(at)
	s.dirty++
}

// DeleteChar removes the byte at column col of row at. It does nothing when
// col is outside [0, row length).
func (s *Store) DeleteChar(at int, col int) {
	row := s.Row(at)
	if row == nil || col < 0 || col >= len(row.raw) {
		return
	}

	row.raw = row.raw[:col] + row.raw[col+1:]

	s.update(at)
	s.dirty++
}

// AppendString concatenates text onto row at.
func (s *Store) AppendString(at int, text string) {
	row := s.Row(at)
	if row == nil {
		return
	}

	row.raw += text

	s.update(at)
	s.dirty++
}

// SplitRow moves everything from column col of row at into a new row
// inserted after it. col is clamped to [0, row length]. The split counts as
// a single mutation.
func (s *Store) SplitRow(at int, col int) {
	row := s.Row(at)
	if row == nil {
		return
	}
	col = utils.Clamp(col, 0, len(row.raw))

	tail := &Row{id: s.nextID, index: at + 1, raw: row.raw[col:]}
	s.nextID++
	row.raw = row.raw[:col]
	s.rows = utils.Insert(s.rows, at+1, tail)
	for j := at + 2; j < len(s.rows); j++ {
		s.rows[j].index++
	}

	s.update(at)
	s.update(at + 1)
	s.dirty++
}

// MarkMatch overlays ClassSearchMatch on n render columns of row at starting
// at render column start. The overlay lasts until the row is next scanned.
func (s *Store) MarkMatch(at int, start int, n int) {
	row := s.Row(at)
	if row == nil {
		return
	}
	start = utils.Clamp(start, 0, len(row.highlight))
	end := utils.Clamp(start+n, start, len(row.highlight))

	hl := make([]syntax.Class, len(row.highlight))
	copy(hl, row.highlight)
	for i := start; i < end; i++ {
		hl[i] = syntax.ClassSearchMatch
	}
	row.highlight = hl
}

// Rehighlight rescans row at, dropping any match overlay.
func (s *Store) Rehighlight(at int) {
	if s.Row(at) == nil {
		return
	}
	s.scan(at)
}

// CharToRenderCol maps char column cx of row at to its render column. It
// returns 0 when there is no such row.
func (s *Store) CharToRenderCol(at int, cx int) int {
	row := s.Row(at)
	if row == nil {
		return 0
	}
	return s.tabs.CharToRender(row.raw, cx)
}

// RenderToCharCol maps render column rx of row at back to a char column.
func (s *Store) RenderToCharCol(at int, rx int) int {
	row := s.Row(at)
	if row == nil {
		return 0
	}
	return s.tabs.RenderToChar(row.raw, rx)
}

// ToFlatText joins all rows, terminating each one with '\n'.
func (s *Store) ToFlatText() []byte {
	total := 0
	for _, row := range s.rows {
		total += len(row.raw) + 1
	}
	buf := make([]byte, 0, total)
	for _, row := range s.rows {
		buf = append(buf, row.raw...)
		buf = append(buf, '\n')
	}
	return buf
}

// update re-derives the render form and highlight of row at.
func (s *Store) update(at int) {
	row := s.rows[at]
	row.render = s.tabs.Project(row.raw)
	s.scan(at)
}

// scan highlights row at and then every following row whose start state no
// longer matches what its predecessor hands on.
func (s *Store) scan(at int) {
	row := s.rows[at]
	row.startState = s.stateBefore(at)
	row.highlight, row.endState = syntax.Scan(row.render, s.lexicon, row.startState)
	s.carry(at + 1)
}

func (s *Store) carry(from int) {
	for i := from; i < len(s.rows); i++ {
		row := s.rows[i]
		in := s.stateBefore(i)
		if row.highlight != nil && row.startState == in {
			return
		}
		row.startState = in
		row.highlight, row.endState = syntax.Scan(row.render, s.lexicon, in)
	}
}

func (s *Store) stateBefore(at int) syntax.State {
	if at == 0 {
		return syntax.StateNormal
	}
	return s.rows[at-1].endState
}
