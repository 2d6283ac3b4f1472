package style

import (
	"github.com/hnimtadd/termedit/editor/color"
	"github.com/hnimtadd/termedit/editor/utils"
	"github.com/hnimtadd/termedit/terminal/ansi"
	"github.com/mitchellh/hashstructure/v2"
)

// Style is how a run of text is drawn.
type Style struct {
	// Foreground is only applied when HasForeground is set; otherwise the
	// terminal default is used.
	Foreground    color.ColorType
	HasForeground bool

	Bold      bool
	Underline bool
}

// ID is the hash of a Style. Two styles with the same ID draw identically.
type ID uint64

func Fg(c color.ColorType) Style {
	return Style{Foreground: c, HasForeground: true}
}

func (s Style) IsDefault() bool {
	return s == Style{}
}

func (s Style) hasAttributes() bool {
	return s.Bold || s.Underline
}

func (s Style) Hash() ID {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "failed to hash style: %v", err)
	return ID(hashed)
}

// Params returns the SGR parameters that turn the style on from a reset
// state.
func (s Style) Params() []int {
	var params []int
	if s.Bold {
		params = append(params, 1)
	}
	if s.Underline {
		params = append(params, 4)
	}
	if s.HasForeground {
		params = append(params, s.Foreground.Foreground())
	}
	return params
}

// AppendTransition appends the shortest sequence that switches the terminal
// from drawing with from to drawing with s.
func (s Style) AppendTransition(dst []byte, from Style) []byte {
	if s == from {
		return dst
	}
	if from.hasAttributes() {
		// Attributes can only be dropped by a full reset.
		dst = append(dst, ansi.ResetSGR...)
		from = Style{}
	}
	if s.IsDefault() {
		if from.HasForeground {
			dst = append(dst, ansi.DefaultFg...)
		}
		return dst
	}
	return ansi.AppendSGR(dst, s.Params()...)
}
