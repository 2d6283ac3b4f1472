package compositor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hnimtadd/termedit/editor/buffer"
	"github.com/hnimtadd/termedit/editor/core"
	"github.com/hnimtadd/termedit/editor/syntax"
	"github.com/hnimtadd/termedit/editor/viewport"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	bytes.Buffer
	writes int
	err    error
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.err != nil {
		return 0, w.err
	}
	return w.Buffer.Write(p)
}

func newRows(t *testing.T, lex *syntax.Lexicon, lines ...string) *buffer.Store {
	t.Helper()
	s := buffer.NewStore(buffer.Options{TabStop: 4, Lexicon: lex})
	for _, l := range lines {
		_, err := s.InsertRow(s.Len(), l)
		require.NoError(t, err)
	}
	return s
}

// rowsOf extracts the drawn text rows, without the trailing clear and line
// break, from a composed frame.
func rowsOf(t *testing.T, out string, n int) []string {
	t.Helper()
	out = strings.TrimPrefix(out, "\x1b[?25l\x1b[H")
	parts := strings.Split(out, "\x1b[K\r\n")
	require.GreaterOrEqual(t, len(parts), n)
	return parts[:n]
}

func TestDrawExactFrame(t *testing.T) {
	rows := newRows(t, nil, "ab")
	status := Status{Mode: core.ModeNormal, Filename: "f", RowCount: 1, RowLen: 2}
	f := Frame{
		Rows:   rows,
		View:   viewport.Viewport{Rows: 2, Cols: 40},
		Status: status,
	}

	w := &countingWriter{}
	require.NoError(t, New(Options{}).Draw(w, f))

	expected := "\x1b[?25l\x1b[H" +
		"ab\x1b[K\r\n" +
		"~\x1b[K\r\n" +
		"\x1b[7m" + packStatus(status.Left(), status.Right(), 40) + "\x1b[m\r\n" +
		"\x1b[K" +
		"\x1b[1;1H" +
		"\x1b[?25h"
	assert.Equal(t, expected, w.String())
	assert.Equal(t, 1, w.writes)
}

func TestDrawSingleWriteAndError(t *testing.T) {
	rows := newRows(t, nil, "one", "two", "three")
	w := &countingWriter{err: errors.New("broken pipe")}
	c := New(Options{})

	err := c.Draw(w, Frame{Rows: rows, View: viewport.Viewport{Rows: 10, Cols: 20}})
	require.Error(t, err)
	assert.Equal(t, 1, w.writes)

	// The buffer is reused and starts empty on the next frame.
	w.err = nil
	require.NoError(t, c.Draw(w, Frame{Rows: rows, View: viewport.Viewport{Rows: 1, Cols: 20}}))
	assert.Equal(t, 2, w.writes)
	assert.True(t, strings.HasPrefix(w.String(), "\x1b[?25l\x1b[Hone\x1b[K\r\n"))
}

func TestDrawColorsOnlyOnChange(t *testing.T) {
	lex, err := syntax.Select("main.c")
	require.NoError(t, err)
	rows := newRows(t, lex, "int x")

	out := string(New(Options{}).Compose(Frame{
		Rows: rows,
		View: viewport.Viewport{Rows: 1, Cols: 20},
	}))
	assert.Equal(t, []string{"\x1b[33mint\x1b[39m x"}, rowsOf(t, out, 1))
}

func TestDrawControlCharacters(t *testing.T) {
	rows := newRows(t, nil, "a\x01b")
	out := string(New(Options{}).Compose(Frame{
		Rows: rows,
		View: viewport.Viewport{Rows: 1, Cols: 20},
	}))
	assert.Equal(t, []string{"a\x1b[7mA\x1b[mb"}, rowsOf(t, out, 1))
}

func TestDrawControlCharacterInsideColoredRun(t *testing.T) {
	lex, err := syntax.Select("main.c")
	require.NoError(t, err)
	rows := newRows(t, lex, "\"a\x01b\"")

	out := string(New(Options{}).Compose(Frame{
		Rows: rows,
		View: viewport.Viewport{Rows: 1, Cols: 20},
	}))
	// The string color is restored after the inverted caret.
	assert.Equal(t, []string{"\x1b[35m\"a\x1b[7mA\x1b[m\x1b[35mb\"\x1b[39m"}, rowsOf(t, out, 1))
}

func TestDrawHorizontalScroll(t *testing.T) {
	rows := newRows(t, nil, "abcdef", "x")
	out := string(New(Options{}).Compose(Frame{
		Rows: rows,
		View: viewport.Viewport{Rows: 3, Cols: 3, ColOffset: 2},
	}))
	assert.Equal(t, []string{"cde", "", "~"}, rowsOf(t, out, 3))
}

func TestDrawVerticalScroll(t *testing.T) {
	rows := newRows(t, nil, "0", "1", "2", "3")
	out := string(New(Options{}).Compose(Frame{
		Rows: rows,
		View: viewport.Viewport{Rows: 3, Cols: 3, RowOffset: 2},
	}))
	assert.Equal(t, []string{"2", "3", "~"}, rowsOf(t, out, 3))
}

func TestDrawWelcome(t *testing.T) {
	rows := newRows(t, nil)
	c := New(Options{Welcome: "hi"})
	out := string(c.Compose(Frame{
		Rows: rows,
		View: viewport.Viewport{Rows: 3, Cols: 10},
	}))
	assert.Equal(t, []string{"~", "~   hi", "~"}, rowsOf(t, out, 3))

	// A buffer with content has no banner.
	rows = newRows(t, nil, "x")
	out = string(c.Compose(Frame{
		Rows: rows,
		View: viewport.Viewport{Rows: 3, Cols: 10},
	}))
	assert.Equal(t, []string{"x", "~", "~"}, rowsOf(t, out, 3))
}

func TestDrawGutter(t *testing.T) {
	rows := newRows(t, nil, "a", "b")
	out := string(New(Options{}).Compose(Frame{
		Rows:   rows,
		View:   viewport.Viewport{Rows: 3, Cols: 10},
		Gutter: 4,
		Cursor: viewport.Cursor{Row: 1, Col: 1, RenderCol: 1},
	}))
	assert.Equal(t, []string{"  1 a", "  2 b", "    ~"}, rowsOf(t, out, 3))
	assert.Contains(t, out, "\x1b[2;6H\x1b[?25h")
}

func TestDrawCursorPosition(t *testing.T) {
	rows := newRows(t, nil, "0", "1", "2", "\tx")
	out := string(New(Options{}).Compose(Frame{
		Rows:   rows,
		View:   viewport.Viewport{Rows: 2, Cols: 10, RowOffset: 2},
		Cursor: viewport.Cursor{Row: 3, Col: 1, RenderCol: 4},
	}))
	assert.True(t, strings.HasSuffix(out, "\x1b[2;5H\x1b[?25h"))
}

func TestDrawMessageTimeout(t *testing.T) {
	rows := newRows(t, nil, "a")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(Options{MessageTimeout: 5 * time.Second})
	frame := Frame{
		Rows:        rows,
		View:        viewport.Viewport{Rows: 1, Cols: 20},
		Message:     "saved",
		MessageTime: now,
	}

	frame.Now = now.Add(time.Second)
	assert.Contains(t, string(c.Compose(frame)), "\x1b[Ksaved\x1b[")

	frame.Now = now.Add(5 * time.Second)
	assert.NotContains(t, string(c.Compose(frame)), "saved")
}

func TestDrawMessageTruncated(t *testing.T) {
	rows := newRows(t, nil)
	now := time.Now()
	out := string(New(Options{}).Compose(Frame{
		Rows:        rows,
		View:        viewport.Viewport{Rows: 1, Cols: 4},
		Message:     "truncated",
		MessageTime: now,
		Now:         now,
	}))
	assert.Contains(t, out, "\x1b[Ktrun\x1b[")
	assert.NotContains(t, out, "trunc")
}

func TestStatusText(t *testing.T) {
	s := Status{
		Mode:      core.ModeInsert,
		Filename:  "a_very_long_file_name_indeed.c",
		Filetype:  "c",
		RowCount:  12,
		Dirty:     true,
		CursorRow: 2,
		RenderCol: 4,
		RowLen:    9,
	}
	assert.Equal(t, " [INSERT] a_very_long_file_nam - 12 lines (modified)", s.Left())
	assert.Equal(t, "c | line 3/12 cols 5/10", s.Right())

	empty := Status{Mode: core.ModeNormal}
	assert.Equal(t, " [NORMAL] [No Name] - 0 lines ", empty.Left())
	assert.Equal(t, "no ft | line 1/0 cols 1/1", empty.Right())
}

func TestPackStatus(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		right    string
		width    int
		expected string
	}{
		{"fits", "ab", "cd", 8, "ab    cd"},
		{"exact", "ab", "cd", 4, "abcd"},
		{"right truncated", "ab", "cdef", 4, "abcd"},
		{"left truncated", "abcdef", "gh", 4, "abcd"},
		{"zero width", "ab", "cd", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packStatus(tt.left, tt.right, tt.width)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, max(tt.width, 0), runewidth.StringWidth(got))
		})
	}
}

func TestAppendBuffer(t *testing.T) {
	var ab AppendBuffer
	ab.AppendString("ab")
	ab.AppendByte('c')
	ab.AppendSpaces(2)
	ab.AppendSpaces(-1)
	ab.Append([]byte("d"))
	ab.Extend(func(dst []byte) []byte { return append(dst, 'e') })
	assert.Equal(t, "abc  de", string(ab.Bytes()))
	assert.Equal(t, 7, ab.Len())

	w := &countingWriter{}
	n, err := ab.Flush(w)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 1, w.writes)
	assert.Equal(t, 0, ab.Len())
}
