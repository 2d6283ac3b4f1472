package termedit

import "github.com/hnimtadd/termedit/terminal/input"

// prompt reads a line of input on the message bar, one key per HandleKey
// call, so the main loop keeps drawing while the user types.
type prompt struct {
	// format has a single %s for the text typed so far.
	format string
	buf    []byte

	// onKey, when set, sees the text after every key, including the key
	// that ends the prompt.
	onKey func(text string, key input.Key)
	// done is called once with the final text; ok is false on Esc.
	done func(text string, ok bool) error
}

func (s *Session) startPrompt(
	format string,
	onKey func(text string, key input.Key),
	done func(text string, ok bool) error,
) {
	s.prompt = &prompt{format: format, onKey: onKey, done: done}
	s.setStatus(format, "")
}

// promptKey feeds key to the active prompt.
func (s *Session) promptKey(key input.Key) error {
	p := s.prompt

	switch {
	case key == input.KeyDelete || key == input.KeyBackspace || key == input.Ctrl('h'):
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}

	case key == input.KeyEscape:
		return s.endPrompt(p, key, false)

	case key == input.KeyEnter:
		if len(p.buf) > 0 {
			return s.endPrompt(p, key, true)
		}

	case key.IsPrintable():
		p.buf = append(p.buf, byte(key))
	}

	s.setStatus(p.format, string(p.buf))
	if p.onKey != nil {
		p.onKey(string(p.buf), key)
	}
	return nil
}

func (s *Session) endPrompt(p *prompt, key input.Key, ok bool) error {
	s.prompt = nil
	s.setStatus("")
	if p.onKey != nil {
		p.onKey(string(p.buf), key)
	}
	return p.done(string(p.buf), ok)
}
