package termedit

import (
	"github.com/hnimtadd/termedit/editor/core"
	"github.com/hnimtadd/termedit/terminal/input"
)

const dirtyQuitWarning = "WARNING! File has unsaved changes! :w to save or :q! to quit without saving"

// HandleKey applies one key to the session. It returns ErrQuit when the key
// asked the editor to exit; no other error is returned for bad input.
func (s *Session) HandleKey(key input.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("key", "key", key.String(), "mode", s.mode.Name)

	if s.prompt != nil {
		return s.promptKey(key)
	}

	if key == input.Ctrl('q') {
		return s.quitKey()
	}
	s.quitLeft = s.quitTimes

	switch s.mode {
	case core.ModeInsert:
		return s.insertKey(key)
	default:
		return s.normalKey(key)
	}
}

// quitKey exits unless the buffer is modified, in which case the key has to
// be pressed quitTimes more times.
func (s *Session) quitKey() error {
	if s.store.Dirty() > 0 && s.quitLeft > 0 {
		s.setStatus("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", s.quitLeft)
		s.quitLeft--
		return nil
	}
	return ErrQuit
}

func (s *Session) setMode(mode core.Mode) {
	s.mode = mode
	s.setStatus(mode.Hint)
}

// keys shared by every mode.
func (s *Session) commonKey(key input.Key) bool {
	switch key {
	case input.Ctrl('s'):
		_ = s.save(nil)
	case input.Ctrl('f'):
		s.startSearch()
	case input.KeyArrowUp, input.KeyArrowDown, input.KeyArrowLeft, input.KeyArrowRight:
		s.moveCursor(key)
	case input.KeyHome:
		s.moveLineStart()
	case input.KeyEnd:
		s.moveLineEnd()
	case input.KeyPageUp:
		s.moveHalfScreen(input.KeyArrowUp)
	case input.KeyPageDown:
		s.moveHalfScreen(input.KeyArrowDown)
	default:
		return false
	}
	return true
}

func (s *Session) normalKey(key input.Key) error {
	if s.commonKey(key) {
		return nil
	}

	switch key {
	case ':':
		s.startCommand()
	case '/':
		s.startSearch()
	case input.KeyEnter, 'j':
		s.moveCursor(input.KeyArrowDown)
	case 'k':
		s.moveCursor(input.KeyArrowUp)
	case 'h':
		s.moveCursor(input.KeyArrowLeft)
	case 'l':
		s.moveCursor(input.KeyArrowRight)
	case '0':
		s.moveLineStart()
	case '$':
		s.moveLineEnd()
	case input.Ctrl('u'):
		s.moveHalfScreen(input.KeyArrowUp)
	case input.Ctrl('d'):
		s.moveHalfScreen(input.KeyArrowDown)
	case 'i':
		s.setMode(core.ModeInsert)
	case 'a':
		s.moveCursor(input.KeyArrowRight)
		s.setMode(core.ModeInsert)
	case 'A':
		s.moveLineEnd()
		s.setMode(core.ModeInsert)
	case 'I':
		s.moveLineStart()
		s.setMode(core.ModeInsert)
	case 'x':
		s.deleteUnderCursor()
	}
	return nil
}

func (s *Session) insertKey(key input.Key) error {
	if s.commonKey(key) {
		return nil
	}

	switch key {
	case input.KeyEscape:
		s.setMode(core.ModeNormal)
	case input.KeyEnter:
		s.insertNewline()
	case input.Ctrl('l'):
	case input.KeyBackspace, input.Ctrl('h'):
		s.deleteChar()
	case input.KeyDelete:
		s.moveCursor(input.KeyArrowRight)
		s.deleteChar()
	default:
		if key >= 0 && key < 256 {
			s.insertChar(byte(key))
		}
	}
	return nil
}

// startCommand reads an ex style command on the message bar.
func (s *Session) startCommand() {
	s.mode = core.ModeCommand
	s.startPrompt(":%s", nil, func(cmd string, ok bool) error {
		s.mode = core.ModeNormal
		if !ok {
			return nil
		}
		return s.runCommand(cmd)
	})
}

func (s *Session) runCommand(cmd string) error {
	switch cmd {
	case "q":
		return s.quitCommand()
	case "q!":
		return ErrQuit
	case "w":
		return s.save(nil)
	case "wq", "x":
		return s.save(s.quitCommand)
	}
	s.setStatus("Not an editor command: %s", cmd)
	return nil
}

func (s *Session) quitCommand() error {
	if s.store.Dirty() > 0 {
		s.setStatus(dirtyQuitWarning)
		return nil
	}
	return ErrQuit
}
