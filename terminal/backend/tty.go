package backend

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/hnimtadd/termedit/logger"
	"github.com/hnimtadd/termedit/terminal/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when in is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

const readSize = 64

// TTY is a Backend over a pair of terminal files, normally os.Stdin and
// os.Stdout.
type TTY struct {
	in  *os.File
	out *os.File

	state   *term.State
	input   chan []byte
	resized chan struct{}

	stopResize func()
	closeOnce  sync.Once

	logger logger.Logger
}

var _ Backend = (*TTY)(nil)

// Open puts in into raw mode and starts reading from it.
func Open(in, out *os.File, log logger.Logger) (*TTY, error) {
	if log == nil {
		log = logger.Discard
	}
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}

	t := &TTY{
		in:      in,
		out:     out,
		state:   state,
		input:   make(chan []byte, 16),
		resized: make(chan struct{}, 1),
		logger:  log,
	}
	t.stopResize = notifyResize(t.resized)
	go t.readLoop()
	return t, nil
}

// readLoop runs until the read fails. It is left blocked in Read when the
// TTY is closed; the process is about to exit at that point.
func (t *TTY) readLoop() {
	defer close(t.input)
	buf := make([]byte, readSize)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			t.input <- chunk
		}
		if err != nil {
			t.logger.Debug("input closed", "error", err)
			return
		}
	}
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *TTY) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}
	return rows, cols, nil
}

func (t *TTY) Input() <-chan []byte {
	return t.input
}

func (t *TTY) Resized() <-chan struct{} {
	return t.resized
}

// Close clears the screen, homes the cursor and restores the terminal mode.
// Calls after the first are no-ops.
func (t *TTY) Close() error {
	var err error
	t.closeOnce.Do(func() {
		t.stopResize()
		_, _ = t.out.WriteString(ansi.ClearScreen + ansi.CursorHome)
		err = term.Restore(int(t.in.Fd()), t.state)
	})
	return err
}
