package color

import (
	"fmt"
	"strings"
)

// ColorType is one of the 16 named ANSI colors.
type ColorType uint8

const (
	ColorTypeBlack ColorType = iota
	ColorTypeRed
	ColorTypeGreen
	ColorTypeYellow
	ColorTypeBlue
	ColorTypeMagenta
	ColorTypeCyan
	ColorTypeWhite
	ColorTypeBrightBlack
	ColorTypeBrightRed
	ColorTypeBrightGreen
	ColorTypeBrightYellow
	ColorTypeBrightBlue
	ColorTypeBrightMagenta
	ColorTypeBrightCyan
	ColorTypeBrightWhite
)

var names = [...]string{
	ColorTypeBlack:         "black",
	ColorTypeRed:           "red",
	ColorTypeGreen:         "green",
	ColorTypeYellow:        "yellow",
	ColorTypeBlue:          "blue",
	ColorTypeMagenta:       "magenta",
	ColorTypeCyan:          "cyan",
	ColorTypeWhite:         "white",
	ColorTypeBrightBlack:   "bright-black",
	ColorTypeBrightRed:     "bright-red",
	ColorTypeBrightGreen:   "bright-green",
	ColorTypeBrightYellow:  "bright-yellow",
	ColorTypeBrightBlue:    "bright-blue",
	ColorTypeBrightMagenta: "bright-magenta",
	ColorTypeBrightCyan:    "bright-cyan",
	ColorTypeBrightWhite:   "bright-white",
}

func (c ColorType) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("ColorType(%d)", uint8(c))
}

// Foreground returns the SGR parameter that selects c as the foreground:
// 30-37 for the normal colors and 90-97 for the bright ones.
func (c ColorType) Foreground() int {
	if c >= ColorTypeBrightBlack {
		return 90 + int(c-ColorTypeBrightBlack)
	}
	return 30 + int(c)
}

// Background returns the SGR parameter that selects c as the background.
func (c ColorType) Background() int {
	return c.Foreground() + 10
}

// Parse resolves a color name such as "red" or "bright-blue". Matching is
// case insensitive and accepts '_' in place of '-'.
func Parse(name string) (ColorType, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range names {
		if n == key {
			return ColorType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}
