package syntax

import "strings"

// State is the scan state carried from the end of one row into the start of
// the next. Block comments are not recognized, so every scan currently
// starts and ends in StateNormal; the value is still threaded row to row so
// that a scan is a pure function of its inputs.
type State uint8

const (
	StateNormal State = iota
)

const separators = ",.()+-/*=~%<>[];\""

// IsSeparator reports whether c delimits tokens: whitespace, NUL or one of
// a fixed set of punctuation characters.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Scan classifies every column of render against lex. It returns one class
// per byte of render and the state to hand to the following row. A nil lex
// classifies everything as ClassPlain.
func Scan(render string, lex *Lexicon, in State) ([]Class, State) {
	hl := make([]Class, len(render))
	if lex == nil {
		return hl, in
	}

	prevSep := true
	// The opening quote while inside a string, zero otherwise.
	var quote byte

	i := 0
	for i < len(render) {
		c := render[i]
		prev := ClassPlain
		if i > 0 {
			prev = hl[i-1]
		}

		if lex.CommentMarker != "" && quote == 0 &&
			strings.HasPrefix(render[i:], lex.CommentMarker) {
			fill(hl[i:], ClassComment)
			break
		}

		if lex.Flags&HighlightStrings != 0 {
			if quote != 0 {
				hl[i] = ClassString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = ClassString
					prevSep = IsSeparator(render[i+1])
					i += 2
					continue
				}
				if c == quote {
					quote = 0
				}
				prevSep = IsSeparator(c)
				i++
				continue
			}
			if c == '"' || c == '\'' {
				quote = c
				hl[i] = ClassString
				prevSep = IsSeparator(c)
				i++
				continue
			}
		}

		if lex.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prev == ClassNumber)) ||
				(c == '.' && prev == ClassNumber) {
				hl[i] = ClassNumber
				prevSep = IsSeparator(c)
				i++
				continue
			}
		}

		if prevSep {
			if end, class, ok := matchKeyword(render, i, lex.Keywords); ok {
				fill(hl[i:end], class)
				prevSep = IsSeparator(render[end-1])
				i = end
				continue
			}
		}

		hl[i] = ClassPlain
		prevSep = IsSeparator(c)
		i++
	}

	return hl, StateNormal
}

// matchKeyword finds the first keyword starting at render[at:] that is
// followed by a separator or the end of the row.
func matchKeyword(render string, at int, keywords []Keyword) (int, Class, bool) {
	rest := render[at:]
	for _, kw := range keywords {
		n := len(kw.Word)
		if n == 0 || n > len(rest) || rest[:n] != kw.Word {
			continue
		}
		if n < len(rest) && !IsSeparator(rest[n]) {
			continue
		}
		return at + n, kw.Tier.Class(), true
	}
	return 0, ClassPlain, false
}

func fill(hl []Class, class Class) {
	for i := range hl {
		hl[i] = class
	}
}
