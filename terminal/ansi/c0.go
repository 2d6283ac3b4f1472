package ansi

type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	SUB uint8 // SUB is the substitute character (Caret: ^Z), the last caret letter.
	US  uint8 // US is the unit separator, the last C0 code.
	DEL uint8 // DEL is the delete character, sent by most terminals for backspace.
}

// C0 (7-bit) control characters from ANSI.
//
// Only the codes the editor reacts to, or draws specially, are named here.
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	CR:  0x0D,
	ESC: 0x1B,
	SUB: 0x1A,
	US:  0x1F,
	DEL: 0x7F,
}

// IsControl reports whether c is a C0 control character or DEL.
func IsControl(c uint8) bool {
	return c <= C0.US || c == C0.DEL
}

// Caret returns the glyph used to draw control character c in caret
// notation: ^A is drawn as 'A', NUL as '@'. Codes past ^Z have no letter
// and are drawn as '?'.
func Caret(c uint8) uint8 {
	if c <= C0.SUB {
		return '@' + c
	}
	return '?'
}

// Ctrl returns the code produced by holding Ctrl with key k.
func Ctrl(k uint8) uint8 {
	return k & 0x1f
}
