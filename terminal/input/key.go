package input

import (
	"fmt"

	"github.com/hnimtadd/termedit/terminal/ansi"
)

// Key is one decoded keypress. Values below 256 are the byte read from the
// terminal; named keys that arrive as escape sequences start at 1000.
type Key int

const (
	KeyEnter     Key = 0x0d
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x7f
)

const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = map[Key]string{
	KeyEnter:      "Enter",
	KeyEscape:     "Esc",
	KeyBackspace:  "Backspace",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
}

// Ctrl returns the key produced by holding Ctrl and pressing k.
func Ctrl(k byte) Key {
	return Key(ansi.Ctrl(k))
}

// IsPrintable reports whether k is a printable ASCII character.
func (k Key) IsPrintable() bool {
	return k >= ' ' && k < 127
}

// IsCtrl reports whether k is a control character other than the ones with
// a name of their own.
func (k Key) IsCtrl() bool {
	_, named := keyNames[k]
	return k >= 0 && k < ' ' && !named
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k.IsCtrl() && uint8(k) <= ansi.C0.SUB:
		return "Ctrl-" + string(rune(ansi.Caret(uint8(k))))
	case k.IsCtrl():
		return ansi.String(uint8(k))
	case k.IsPrintable():
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
