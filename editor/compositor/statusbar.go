package compositor

import (
	"fmt"

	"github.com/hnimtadd/termedit/editor/core"
	"github.com/mattn/go-runewidth"
)

const (
	noName         = "[No Name]"
	noFiletype     = "no ft"
	maxFilenameLen = 20
)

// Status is the information shown in the status bar.
type Status struct {
	Mode     core.Mode
	Filename string
	// Filetype of the active lexicon, empty for none.
	Filetype string
	RowCount int
	Dirty    bool

	// Cursor row, render column and the length of the cursor's row.
	CursorRow int
	RenderCol int
	RowLen    int
}

// Left is the text packed against the left edge.
func (s Status) Left() string {
	name := s.Filename
	if name == "" {
		name = noName
	}
	name = runewidth.Truncate(name, maxFilenameLen, "")

	modified := ""
	if s.Dirty {
		modified = "(modified)"
	}
	return fmt.Sprintf(" %s %s - %d lines %s", s.Mode.Tag, name, s.RowCount, modified)
}

// Right is the text packed against the right edge.
func (s Status) Right() string {
	ft := s.Filetype
	if ft == "" {
		ft = noFiletype
	}
	return fmt.Sprintf("%s | line %d/%d cols %d/%d",
		ft, s.CursorRow+1, s.RowCount, s.RenderCol+1, s.RowLen+1)
}

// packStatus lays left and right out across width columns, truncating left
// first and then right so that the result is exactly width wide.
func packStatus(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	left = runewidth.Truncate(left, width, "")
	remaining := width - runewidth.StringWidth(left)
	right = runewidth.Truncate(right, remaining, "")
	gap := remaining - runewidth.StringWidth(right)
	return left + runewidth.FillLeft(right, runewidth.StringWidth(right)+gap)
}
