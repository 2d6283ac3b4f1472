package ansi

import "strconv"

// Fixed sequences written by the compositor and the backend.
//
// see https://vt100.net/docs/vt100-ug/chapter3.html#ED
const (
	HideCursor    = "\x1b[?25l"
	ShowCursor    = "\x1b[?25h"
	CursorHome    = "\x1b[H"
	ClearScreen   = "\x1b[2J"
	ClearLine     = "\x1b[K"
	Inverse       = "\x1b[7m"
	ResetSGR      = "\x1b[m"
	DefaultFg     = "\x1b[39m"
	LineBreak     = "\r\n"
	csiIntroducer = "\x1b["
)

// AppendCursorPosition appends CUP for the 1-based row and col to dst.
func AppendCursorPosition(dst []byte, row, col int) []byte {
	dst = append(dst, csiIntroducer...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// AppendSGR appends a Select Graphic Rendition sequence carrying params.
// No params yields the reset form ESC [ m.
func AppendSGR(dst []byte, params ...int) []byte {
	dst = append(dst, csiIntroducer...)
	for i, p := range params {
		if i > 0 {
			dst = append(dst, ';')
		}
		dst = strconv.AppendInt(dst, int64(p), 10)
	}
	return append(dst, 'm')
}
