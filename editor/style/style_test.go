package style

import (
	"testing"

	"github.com/hnimtadd/termedit/editor/color"
	"github.com/hnimtadd/termedit/editor/syntax"
	"github.com/stretchr/testify/assert"
)

func TestStyleHash(t *testing.T) {
	a := Fg(color.ColorTypeRed)
	b := Fg(color.ColorTypeRed)
	c := Fg(color.ColorTypeGreen)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.NotEqual(t, a.Hash(), Style{}.Hash())

	bold := a
	bold.Bold = true
	assert.NotEqual(t, a.Hash(), bold.Hash())
}

func TestStyleParams(t *testing.T) {
	assert.Empty(t, Style{}.Params())
	assert.Equal(t, []int{31}, Fg(color.ColorTypeRed).Params())
	assert.Equal(t, []int{1, 4, 94}, Style{
		Foreground:    color.ColorTypeBrightBlue,
		HasForeground: true,
		Bold:          true,
		Underline:     true,
	}.Params())
}

func TestAppendTransition(t *testing.T) {
	red := Fg(color.ColorTypeRed)
	green := Fg(color.ColorTypeGreen)
	boldRed := red
	boldRed.Bold = true

	tests := []struct {
		name     string
		from, to Style
		expected string
	}{
		{name: "same style", from: red, to: red, expected: ""},
		{name: "default to default", from: Style{}, to: Style{}, expected: ""},
		{name: "default to color", from: Style{}, to: red, expected: "\x1b[31m"},
		{name: "color to color", from: red, to: green, expected: "\x1b[32m"},
		{name: "color to default", from: red, to: Style{}, expected: "\x1b[39m"},
		{name: "bold to default", from: boldRed, to: Style{}, expected: "\x1b[m"},
		{name: "bold to color", from: boldRed, to: green, expected: "\x1b[m\x1b[32m"},
		{name: "color to bold", from: green, to: boldRed, expected: "\x1b[1;31m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.to.AppendTransition(nil, tt.from)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestTheme(t *testing.T) {
	st, id := DefaultTheme.Style(syntax.ClassNumber)
	assert.Equal(t, Fg(color.ColorTypeRed), st)
	assert.Equal(t, st.Hash(), id)

	st, _ = DefaultTheme.Style(syntax.ClassPlain)
	assert.True(t, st.IsDefault())

	theme := NewTheme(map[syntax.Class]Style{
		syntax.ClassNumber: Fg(color.ColorTypeBrightWhite),
	})
	st, _ = theme.Style(syntax.ClassNumber)
	assert.Equal(t, Fg(color.ColorTypeBrightWhite), st)
	st, _ = theme.Style(syntax.ClassComment)
	assert.Equal(t, DefaultStyles[syntax.ClassComment], st)

	st, _ = theme.Style(syntax.Class(200))
	assert.True(t, st.IsDefault())
}

func TestDefaultThemeCoversEveryClass(t *testing.T) {
	for _, c := range syntax.Classes {
		_, ok := DefaultStyles[c]
		assert.True(t, ok, c.String())
	}
	assert.Len(t, syntax.Classes, syntax.NumClasses)
}
