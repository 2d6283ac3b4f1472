package viewport

// Viewport is the window of the buffer shown on screen. Offsets are in rows
// and render columns; Rows and Cols are the size of the text area.
type Viewport struct {
	RowOffset int
	ColOffset int
	Rows      int
	Cols      int
}

// Cursor is a cursor position: Row and Col in raw coordinates plus the
// render column of Col in its row.
type Cursor struct {
	Row       int
	Col       int
	RenderCol int
}

// Recompute scrolls v just enough for the cursor to be visible and returns
// the result. The cursor's RenderCol must already be current.
func (v Viewport) Recompute(cursor Cursor) Viewport {
	if cursor.Row < v.RowOffset {
		v.RowOffset = cursor.Row
	}
	if cursor.Row >= v.RowOffset+v.Rows {
		v.RowOffset = cursor.Row - v.Rows + 1
	}

	if cursor.RenderCol < v.ColOffset {
		v.ColOffset = cursor.RenderCol
	}
	if cursor.RenderCol >= v.ColOffset+v.Cols {
		v.ColOffset = cursor.RenderCol - v.Cols + 1
	}

	v.RowOffset = max(v.RowOffset, 0)
	v.ColOffset = max(v.ColOffset, 0)
	return v
}

// Resize changes the text area size, keeping the offsets. The area never
// shrinks below one cell so the cursor always has a screen position.
func (v Viewport) Resize(rows, cols int) Viewport {
	v.Rows = max(rows, 1)
	v.Cols = max(cols, 1)
	return v
}

// ScreenPosition returns the 0-based on-screen row and column of cursor.
func (v Viewport) ScreenPosition(cursor Cursor) (int, int) {
	return cursor.Row - v.RowOffset, cursor.RenderCol - v.ColOffset
}
