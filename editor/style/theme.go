package style

import (
	"github.com/hnimtadd/termedit/editor/color"
	"github.com/hnimtadd/termedit/editor/syntax"
)

type entry struct {
	style Style
	id    ID
}

// Theme assigns a Style to every highlight class.
type Theme struct {
	entries [syntax.NumClasses]entry
}

// DefaultStyles is the style of each class in DefaultTheme.
var DefaultStyles = map[syntax.Class]Style{
	syntax.ClassPlain:            {},
	syntax.ClassNumber:           Fg(color.ColorTypeRed),
	syntax.ClassString:           Fg(color.ColorTypeMagenta),
	syntax.ClassComment:          Fg(color.ColorTypeCyan),
	syntax.ClassKeywordPrimary:   Fg(color.ColorTypeYellow),
	syntax.ClassKeywordSecondary: Fg(color.ColorTypeGreen),
	syntax.ClassKeywordTertiary:  Fg(color.ColorTypeBrightCyan),
	syntax.ClassSearchMatch:      Fg(color.ColorTypeBlue),
}

var DefaultTheme = NewTheme(nil)

// NewTheme builds a theme from overrides, taking every class missing from
// overrides from DefaultStyles.
func NewTheme(overrides map[syntax.Class]Style) *Theme {
	t := &Theme{}
	for _, c := range syntax.Classes {
		s, ok := overrides[c]
		if !ok {
			s = DefaultStyles[c]
		}
		t.entries[c] = entry{style: s, id: s.Hash()}
	}
	return t
}

// Style returns the style of class c and its ID. Unknown classes draw as
// plain text.
func (t *Theme) Style(c syntax.Class) (Style, ID) {
	if int(c) >= len(t.entries) {
		c = syntax.ClassPlain
	}
	e := t.entries[c]
	return e.style, e.id
}
