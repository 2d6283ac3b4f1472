package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: WarnLevel, Type: TypeText})

	l.Info("dropped")
	l.Warn("kept", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "key=value")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: DebugLevel, Type: TypeJSON})
	l.Debug("hello", "rows", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.EqualValues(t, 3, record["rows"])
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := With(New(Options{Buffer: &buf}), "component", "session")
	l.Info("opened")
	assert.Contains(t, buf.String(), "component=session")
}

func TestNilBufferDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		New(Options{}).Error("nowhere")
		Discard.Error("nowhere")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
	}{
		{"", DefaultLevel},
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.expected, got, tt.name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	got, err := ParseType("json")
	require.NoError(t, err)
	assert.Equal(t, TypeJSON, got)

	got, err = ParseType("")
	require.NoError(t, err)
	assert.Equal(t, TypeText, got)

	_, err = ParseType("xml")
	assert.Error(t, err)
}
