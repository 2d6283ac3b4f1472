package termedit

import (
	"strings"

	"github.com/hnimtadd/termedit/editor/viewport"
	"github.com/hnimtadd/termedit/terminal/input"
)

// search is the state of an incremental search.
type search struct {
	// Cursor and viewport to restore when the search is cancelled.
	savedCursor viewport.Cursor
	savedView   viewport.Viewport

	lastMatch int
	forward   bool

	// Row carrying the match overlay, -1 for none.
	markedRow int
}

// startSearch opens the search prompt. Every key moves to the nearest match
// of the query; arrows step to the next or previous one.
func (s *Session) startSearch() {
	s.search = &search{
		savedCursor: s.cursor,
		savedView:   s.view,
		lastMatch:   -1,
		forward:     true,
		markedRow:   -1,
	}
	s.startPrompt("Search: %s (Use ESC/Arrows/Enter)", s.searchKey, func(_ string, ok bool) error {
		if !ok {
			s.cursor = s.search.savedCursor
			s.view = s.search.savedView
		}
		s.search = nil
		return nil
	})
}

func (s *Session) searchKey(query string, key input.Key) {
	st := s.search
	if st.markedRow >= 0 {
		s.store.Rehighlight(st.markedRow)
		st.markedRow = -1
	}

	switch key {
	case input.KeyEnter, input.KeyEscape:
		st.lastMatch, st.forward = -1, true
		return
	case input.KeyArrowRight, input.KeyArrowDown:
		st.forward = true
	case input.KeyArrowLeft, input.KeyArrowUp:
		st.forward = false
	default:
		st.lastMatch, st.forward = -1, true
	}
	if st.lastMatch == -1 {
		st.forward = true
	}
	if query == "" {
		return
	}

	count := s.store.Len()
	current := st.lastMatch
	for range count {
		if st.forward {
			current++
		} else {
			current--
		}
		switch {
		case current == -1:
			current = count - 1
		case current == count:
			current = 0
		}

		row := s.store.Row(current)
		at := strings.Index(row.Render(), query)
		if at < 0 {
			continue
		}

		st.lastMatch = current
		s.cursor.Row = current
		s.cursor.Col = s.store.RenderToCharCol(current, at)
		// Pushing the offset past the end makes the next scroll put the
		// match on the first screen row.
		s.view.RowOffset = count
		st.markedRow = current
		s.store.MarkMatch(current, at, len(query))
		return
	}
}
