package termedit

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hnimtadd/termedit/editor/buffer"
	"github.com/hnimtadd/termedit/editor/compositor"
	"github.com/hnimtadd/termedit/editor/core"
	"github.com/hnimtadd/termedit/editor/style"
	"github.com/hnimtadd/termedit/editor/syntax"
	"github.com/hnimtadd/termedit/editor/viewport"
	"github.com/hnimtadd/termedit/logger"
)

const Version = "0.1.0"

// The status and message bars take the last two screen rows.
const barRows = 2

// Session is one editing session: the buffer, the cursor and viewport over
// it, and the state of the surrounding UI. All of its methods may be called
// from any goroutine; each one runs under the session lock, so a draw never
// observes a half applied edit.
type Session struct {
	mu sync.Mutex

	store      *buffer.Store
	compositor *compositor.Compositor

	// The cursor is in raw coordinates of store; RenderCol is refreshed by
	// scroll before every draw.
	cursor viewport.Cursor
	view   viewport.Viewport

	screenRows int
	screenCols int
	tabStop    int
	gutter     int

	mode     core.Mode
	filename string

	status     string
	statusTime time.Time

	quitTimes int
	quitLeft  int

	prompt *prompt
	search *search

	now    func() time.Time
	logger logger.Logger
}

type Options struct {
	// Rows and Cols are the terminal size, including the two bar rows.
	Rows, Cols int
	// TabStop is the tab width of the buffer, fixed for its lifetime.
	TabStop int
	// SignColumn is the width of the line number gutter, 0 for none.
	SignColumn     int
	MessageTimeout time.Duration
	// QuitTimes is how many extra Ctrl-Q presses quit a modified buffer.
	QuitTimes int
	// StartMode defaults to core.ModeNormal.
	StartMode core.Mode
	Theme     *style.Theme
	Logger    logger.Logger
	// Now is the clock used for status message ageing.
	Now func() time.Time
}

func NewSession(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.Discard
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	mode := opts.StartMode
	if mode == (core.Mode{}) {
		mode = core.ModeNormal
	}

	s := &Session{
		compositor: compositor.New(compositor.Options{
			Theme:          opts.Theme,
			Welcome:        fmt.Sprintf("termedit -- version %s", Version),
			MessageTimeout: opts.MessageTimeout,
		}),
		tabStop:   opts.TabStop,
		gutter:    max(opts.SignColumn, 0),
		mode:      mode,
		quitTimes: opts.QuitTimes,
		quitLeft:  opts.QuitTimes,
		now:       now,
		logger:    logger.With(log, "component", "session"),
	}
	s.store = s.newStore(nil)
	s.resize(opts.Rows, opts.Cols)
	s.setStatus(mode.Hint)
	return s
}

func (s *Session) newStore(lex *syntax.Lexicon) *buffer.Store {
	return buffer.NewStore(buffer.Options{TabStop: s.tabStop, Lexicon: lex})
}

// Resize changes the terminal size. The cursor is kept visible on the next
// draw.
func (s *Session) Resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resize(rows, cols)
	s.logger.Debug("resized", "rows", rows, "cols", cols)
}

func (s *Session) resize(rows, cols int) {
	s.screenRows, s.screenCols = rows, cols
	s.view = s.view.Resize(rows-barRows, cols-s.gutter)
}

// Refresh draws the current state to w in a single write. A failed write is
// logged and returned; the next refresh draws the whole screen again.
func (s *Session) Refresh(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scroll()
	if err := s.compositor.Draw(w, s.frame()); err != nil {
		s.logger.Warn("failed to draw frame", "error", err)
		return err
	}
	return nil
}

// scroll refreshes the cursor's render column and moves the viewport so the
// cursor is on screen.
func (s *Session) scroll() {
	s.cursor, s.view = s.scrolled()
}

// scrolled returns the cursor and viewport a draw would use, leaving the
// session unchanged.
func (s *Session) scrolled() (viewport.Cursor, viewport.Viewport) {
	cursor := s.cursor
	cursor.RenderCol = s.store.CharToRenderCol(cursor.Row, cursor.Col)
	return cursor, s.view.Recompute(cursor)
}

func (s *Session) frame() compositor.Frame {
	return compositor.Frame{
		Rows:        s.store,
		View:        s.view,
		Cursor:      s.cursor,
		Gutter:      s.gutter,
		Status:      s.statusLine(),
		Message:     s.status,
		MessageTime: s.statusTime,
		Now:         s.now(),
	}
}

func (s *Session) statusLine() compositor.Status {
	st := compositor.Status{
		Mode:      s.mode,
		Filename:  s.filename,
		RowCount:  s.store.Len(),
		Dirty:     s.store.Dirty() > 0,
		CursorRow: s.cursor.Row,
		RenderCol: s.cursor.RenderCol,
	}
	if lex := s.store.Lexicon(); lex != nil {
		st.Filetype = lex.Filetype
	}
	if row := s.store.Row(s.cursor.Row); row != nil {
		st.RowLen = len(row.Render())
	}
	return st
}

// SetStatus sets the message shown under the status bar.
func (s *Session) SetStatus(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStatus(format, args...)
}

func (s *Session) setStatus(format string, args ...any) {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	s.status = format
	s.statusTime = s.now()
}

// Snapshot is a read only view of the session for callers and tests.
type Snapshot struct {
	Mode     core.Mode
	Filename string
	Cursor   viewport.Cursor
	View     viewport.Viewport
	Status   string
	Lines    []string
	Dirty    int
	Filetype string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, view := s.scrolled()
	snap := Snapshot{
		Mode:     s.mode,
		Filename: s.filename,
		Cursor:   cursor,
		View:     view,
		Status:   s.status,
		Dirty:    s.store.Dirty(),
	}
	if lex := s.store.Lexicon(); lex != nil {
		snap.Filetype = lex.Filetype
	}
	for i := range s.store.Len() {
		snap.Lines = append(snap.Lines, s.store.Row(i).Raw())
	}
	return snap
}

// selectLexicon picks the lexicon for the current filename. A malformed
// table entry is reported and leaves the buffer unhighlighted.
func (s *Session) selectLexicon() *syntax.Lexicon {
	lex, err := syntax.Select(s.filename)
	if err != nil {
		s.logger.Error("failed to select lexicon", "filename", s.filename, "error", err)
		s.setStatus("Syntax highlighting disabled: %v", err)
		return nil
	}
	return lex
}
