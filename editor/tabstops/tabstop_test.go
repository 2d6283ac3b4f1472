package tabstops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabstopsNext(t *testing.T) {
	tab := NewTabstops(4)
	assert.Equal(t, 4, tab.Next(0))
	assert.Equal(t, 4, tab.Next(3))
	assert.Equal(t, 8, tab.Next(4))
	assert.Equal(t, 4, tab.Interval())
}

func TestTabstopsInvalidIntervalPanics(t *testing.T) {
	assert.Panics(t, func() { NewTabstops(0) })
}

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		raw      string
		expected string
	}{
		{name: "no tabs", interval: 4, raw: "hello", expected: "hello"},
		{name: "empty", interval: 4, raw: "", expected: ""},
		{name: "tab after char", interval: 4, raw: "a\tb", expected: "a   b"},
		{name: "leading tab", interval: 4, raw: "\tx", expected: "    x"},
		{name: "tab on stop", interval: 4, raw: "abcd\te", expected: "abcd    e"},
		{name: "two tabs", interval: 2, raw: "\t\ta", expected: "    a"},
		{name: "default interval", interval: DefaultInterval, raw: "\t", expected: "        "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := NewTabstops(tt.interval)
			assert.Equal(t, tt.expected, tab.Project(tt.raw))
		})
	}
}

func TestCharToRenderScenario(t *testing.T) {
	tab := NewTabstops(4)
	assert.Equal(t, "a   b", tab.Project("a\tb"))
	assert.Equal(t, 4, tab.CharToRender("a\tb", 2))
	assert.Equal(t, 1, tab.CharToRender("a\tb", 1))
	assert.Equal(t, 5, tab.CharToRender("a\tb", 3))
}

func TestCharToRenderClamps(t *testing.T) {
	tab := NewTabstops(4)
	assert.Equal(t, 0, tab.CharToRender("a\tb", -2))
	assert.Equal(t, 5, tab.CharToRender("a\tb", 99))
}

func TestRenderToCharInsideTab(t *testing.T) {
	tab := NewTabstops(4)
	// Columns 1..3 are covered by the tab at char 1.
	assert.Equal(t, 0, tab.RenderToChar("a\tb", 0))
	assert.Equal(t, 1, tab.RenderToChar("a\tb", 1))
	assert.Equal(t, 1, tab.RenderToChar("a\tb", 3))
	assert.Equal(t, 2, tab.RenderToChar("a\tb", 4))
	assert.Equal(t, 3, tab.RenderToChar("a\tb", 40))
}

var roundTripRows = []string{
	"",
	"plain text",
	"\t",
	"a\tb",
	"\t\tdeep",
	"x\ty\tz\t",
	"mixed \t spaces\t\tand tabs",
	"abcdefg\th",
}

func TestRoundTrip(t *testing.T) {
	for _, interval := range []int{1, 2, 4, 8} {
		tab := NewTabstops(interval)
		for _, raw := range roundTripRows {
			for c := 0; c <= len(raw); c++ {
				rx := tab.CharToRender(raw, c)
				assert.Equal(t, c, tab.RenderToChar(raw, rx),
					"interval %d raw %q col %d", interval, raw, c)
			}
		}
	}
}

func TestProjectLength(t *testing.T) {
	for _, interval := range []int{1, 2, 4, 8} {
		tab := NewTabstops(interval)
		for _, raw := range roundTripRows {
			render := tab.Project(raw)
			expansion := 0
			col := 0
			for i := 0; i < len(raw); i++ {
				if raw[i] == '\t' {
					next := tab.Next(col)
					// A single tab never expands past the next stop.
					assert.LessOrEqual(t, next-col, interval)
					assert.Zero(t, next%interval)
					expansion += next - col - 1
					col = next
					continue
				}
				col++
			}
			assert.Equal(t, len(raw)+expansion, len(render), "raw %q", raw)
			assert.Equal(t, tab.CharToRender(raw, len(raw)), len(render))
			assert.NotContains(t, render, "\t")
			assert.Equal(t, strings.Count(raw, "\t") == 0, render == raw)
		}
	}
}
