package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForeground(t *testing.T) {
	assert.Equal(t, 30, ColorTypeBlack.Foreground())
	assert.Equal(t, 31, ColorTypeRed.Foreground())
	assert.Equal(t, 37, ColorTypeWhite.Foreground())
	assert.Equal(t, 90, ColorTypeBrightBlack.Foreground())
	assert.Equal(t, 94, ColorTypeBrightBlue.Foreground())
	assert.Equal(t, 41, ColorTypeRed.Background())
}

func TestParse(t *testing.T) {
	c, err := Parse("Bright_Blue")
	require.NoError(t, err)
	assert.Equal(t, ColorTypeBrightBlue, c)

	c, err = Parse("cyan")
	require.NoError(t, err)
	assert.Equal(t, ColorTypeCyan, c)

	_, err = Parse("mauve")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "bright-white", ColorTypeBrightWhite.String())
	assert.Equal(t, "ColorType(99)", ColorType(99).String())
}
