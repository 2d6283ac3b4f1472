package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromName(t *testing.T) {
	mode := ModeFromName("insert")
	assert.NotNil(t, mode)
	assert.True(t, *mode == ModeInsert)

	mode = ModeFromName("normal")
	assert.NotNil(t, mode)
	assert.True(t, *mode == ModeNormal)

	assert.Nil(t, ModeFromName("visual"))
}

func TestModeTags(t *testing.T) {
	assert.Equal(t, "[NORMAL]", ModeNormal.Tag)
	assert.Equal(t, "[INSERT]", ModeInsert.Tag)
	assert.Equal(t, "[COMMAND]", ModeCommand.Tag)
	assert.Equal(t, DefaultHint, ModeNormal.Hint)
}
