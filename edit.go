package termedit

import "github.com/hnimtadd/termedit/terminal/input"

// rowLen is the length of row at, 0 past the last row.
func (s *Session) rowLen(at int) int {
	if row := s.store.Row(at); row != nil {
		return row.Len()
	}
	return 0
}

// insertChar types ch at the cursor. On the line after the last row a new
// row is started first.
func (s *Session) insertChar(ch byte) {
	if s.cursor.Row == s.store.Len() {
		// Appending is always in range.
		_, _ = s.store.InsertRow(s.store.Len(), "")
	}
	s.store.InsertChar(s.cursor.Row, s.cursor.Col, ch)
	s.cursor.Col++
}

// insertNewline breaks the cursor's row at the cursor and moves to the
// start of the new row.
func (s *Session) insertNewline() {
	if s.cursor.Col == 0 || s.cursor.Row == s.store.Len() {
		_, _ = s.store.InsertRow(s.cursor.Row, "")
	} else {
		s.store.SplitRow(s.cursor.Row, s.cursor.Col)
	}
	s.cursor.Row++
	s.cursor.Col = 0
}

// deleteChar removes the character left of the cursor. At the start of a
// row the row is joined onto the one above.
func (s *Session) deleteChar() {
	c := &s.cursor
	if c.Row == s.store.Len() || (c.Col == 0 && c.Row == 0) {
		return
	}

	if c.Col > 0 {
		s.store.DeleteChar(c.Row, c.Col-1)
		c.Col--
		return
	}

	c.Col = s.rowLen(c.Row - 1)
	s.store.AppendString(c.Row-1, s.store.Row(c.Row).Raw())
	s.store.DeleteRow(c.Row)
	c.Row--
}

// deleteUnderCursor removes the character under the cursor, if any.
func (s *Session) deleteUnderCursor() {
	if s.cursor.Col < s.rowLen(s.cursor.Row) {
		s.store.DeleteChar(s.cursor.Row, s.cursor.Col)
	}
}

// moveCursor applies one arrow key. Left and right wrap across row ends;
// the cursor may rest on the line after the last row.
func (s *Session) moveCursor(key input.Key) {
	c := &s.cursor
	switch key {
	case input.KeyArrowLeft:
		if c.Col > 0 {
			c.Col--
		} else if c.Row > 0 {
			c.Row--
			c.Col = s.rowLen(c.Row)
		}
	case input.KeyArrowRight:
		if c.Row < s.store.Len() {
			if c.Col < s.rowLen(c.Row) {
				c.Col++
			} else {
				c.Row++
				c.Col = 0
			}
		}
	case input.KeyArrowUp:
		if c.Row > 0 {
			c.Row--
		}
	case input.KeyArrowDown:
		if c.Row < s.store.Len() {
			c.Row++
		}
	}

	c.Col = min(c.Col, s.rowLen(c.Row))
}

// moveHalfScreen moves half a screen up or down.
func (s *Session) moveHalfScreen(key input.Key) {
	for range s.view.Rows / 2 {
		s.moveCursor(key)
	}
}

func (s *Session) moveLineStart() {
	s.cursor.Col = 0
}

func (s *Session) moveLineEnd() {
	s.cursor.Col = s.rowLen(s.cursor.Row)
}
