package compositor

import (
	"io"
	"strconv"
	"time"

	"github.com/hnimtadd/termedit/editor/buffer"
	"github.com/hnimtadd/termedit/editor/style"
	"github.com/hnimtadd/termedit/editor/viewport"
	"github.com/hnimtadd/termedit/terminal/ansi"
	"github.com/mattn/go-runewidth"
)

// DefaultMessageTimeout is how long a status message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

// Rows is the read side of the row store.
type Rows interface {
	Len() int
	Row(at int) *buffer.Row
}

// Frame is everything one redraw reads.
type Frame struct {
	Rows Rows
	// View covers the text area only; View.Cols excludes the gutter.
	View   viewport.Viewport
	Cursor viewport.Cursor
	// Gutter is the width of the line number column, 0 for none.
	Gutter int
	Status Status

	Message     string
	MessageTime time.Time
	// Now decides whether Message is still recent enough to show.
	Now time.Time
}

type Options struct {
	Theme *style.Theme
	// Welcome is centered on an empty buffer, one third down the screen.
	Welcome        string
	MessageTimeout time.Duration
}

// Compositor turns a Frame into terminal output.
type Compositor struct {
	theme          *style.Theme
	welcome        string
	messageTimeout time.Duration

	plainID style.ID
	ab      AppendBuffer
}

func New(opts Options) *Compositor {
	theme := opts.Theme
	if theme == nil {
		theme = style.DefaultTheme
	}
	timeout := opts.MessageTimeout
	if timeout == 0 {
		timeout = DefaultMessageTimeout
	}
	return &Compositor{
		theme:          theme,
		welcome:        opts.Welcome,
		messageTimeout: timeout,
		plainID:        style.Style{}.Hash(),
	}
}

// Draw composes f and writes it to w in a single Write call. The error of
// that write is returned as is; nothing is retried.
func (c *Compositor) Draw(w io.Writer, f Frame) error {
	_, err := c.compose(f).Flush(w)
	return err
}

// Compose builds the output for f without writing it. The returned slice is
// only valid until the next Compose or Draw.
func (c *Compositor) Compose(f Frame) []byte {
	return c.compose(f).Bytes()
}

func (c *Compositor) compose(f Frame) *AppendBuffer {
	ab := &c.ab
	ab.Reset()

	ab.AppendString(ansi.HideCursor)
	ab.AppendString(ansi.CursorHome)

	c.drawRows(ab, f)
	c.drawStatusBar(ab, f)
	c.drawMessageBar(ab, f)

	row, col := f.View.ScreenPosition(f.Cursor)
	ab.Extend(func(dst []byte) []byte {
		return ansi.AppendCursorPosition(dst, row+1, col+f.Gutter+1)
	})
	ab.AppendString(ansi.ShowCursor)
	return ab
}

func (c *Compositor) drawRows(ab *AppendBuffer, f Frame) {
	count := 0
	if f.Rows != nil {
		count = f.Rows.Len()
	}
	for y := range f.View.Rows {
		filerow := y + f.View.RowOffset
		c.drawGutter(ab, f.Gutter, filerow, count)

		switch {
		case filerow < count:
			c.drawRow(ab, f.Rows.Row(filerow), f.View)
		case count == 0 && y == f.View.Rows/3 && c.welcome != "":
			c.drawWelcome(ab, f.View.Cols)
		default:
			ab.AppendByte('~')
		}

		ab.AppendString(ansi.ClearLine)
		ab.AppendString(ansi.LineBreak)
	}
}

func (c *Compositor) drawGutter(ab *AppendBuffer, width, filerow, count int) {
	if width <= 0 {
		return
	}
	if filerow >= count {
		ab.AppendSpaces(width)
		return
	}
	num := strconv.Itoa(filerow + 1)
	if len(num) > width-1 {
		num = num[len(num)-(width-1):]
	}
	ab.AppendSpaces(width - 1 - len(num))
	ab.AppendString(num)
	ab.AppendByte(' ')
}

func (c *Compositor) drawWelcome(ab *AppendBuffer, width int) {
	welcome := runewidth.Truncate(c.welcome, width, "")
	padding := (width - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		ab.AppendByte('~')
		padding--
	}
	ab.AppendSpaces(padding)
	ab.AppendString(welcome)
}

// drawRow draws the visible slice of row. A color escape is only written
// where the style changes from the previous column.
func (c *Compositor) drawRow(ab *AppendBuffer, row *buffer.Row, view viewport.Viewport) {
	render := row.Render()
	hl := row.Highlight()

	start := min(view.ColOffset, len(render))
	end := min(start+view.Cols, len(render))

	var current style.Style
	currentID := c.plainID
	for j := start; j < end; j++ {
		ch := render[j]
		if ansi.IsControl(ch) {
			ab.AppendString(ansi.Inverse)
			ab.AppendByte(ansi.Caret(ch))
			ab.AppendString(ansi.ResetSGR)
			ab.Extend(func(dst []byte) []byte {
				return current.AppendTransition(dst, style.Style{})
			})
			continue
		}

		next, id := c.theme.Style(hl[j])
		if id != currentID {
			ab.Extend(func(dst []byte) []byte {
				return next.AppendTransition(dst, current)
			})
			current, currentID = next, id
		}
		ab.AppendByte(ch)
	}

	ab.Extend(func(dst []byte) []byte {
		return style.Style{}.AppendTransition(dst, current)
	})
}

func (c *Compositor) drawStatusBar(ab *AppendBuffer, f Frame) {
	width := f.View.Cols + f.Gutter
	ab.AppendString(ansi.Inverse)
	ab.AppendString(packStatus(f.Status.Left(), f.Status.Right(), width))
	ab.AppendString(ansi.ResetSGR)
	ab.AppendString(ansi.LineBreak)
}

func (c *Compositor) drawMessageBar(ab *AppendBuffer, f Frame) {
	ab.AppendString(ansi.ClearLine)
	if f.Message == "" || f.Now.Sub(f.MessageTime) >= c.messageTimeout {
		return
	}
	ab.AppendString(runewidth.Truncate(f.Message, f.View.Cols+f.Gutter, ""))
}
