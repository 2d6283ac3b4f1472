package tabstops

import (
	"strings"

	"github.com/hnimtadd/termedit/editor/utils"
)

// DefaultInterval is the tab stop width used when none is configured.
const DefaultInterval = 8

const tab = '\t'

// Tabstops projects raw row bytes onto render columns. Stops sit at every
// multiple of the interval; the interval is fixed for the lifetime of the
// value.
type Tabstops struct {
	interval int
}

// NewTabstops creates Tabstops with the given stop interval.
func NewTabstops(interval int) *Tabstops {
	utils.Assert(interval > 0, "tab stop interval must be positive")
	return &Tabstops{interval: interval}
}

// Interval returns the stop width.
func (t *Tabstops) Interval() int {
	return t.interval
}

// Next returns the first stop strictly after render column col.
func (t *Tabstops) Next(col int) int {
	return col + t.interval - col%t.interval
}

// Project expands every tab in raw to spaces up to the next stop. All other
// bytes pass through unchanged.
func (t *Tabstops) Project(raw string) string {
	tabs := strings.Count(raw, "\t")
	if tabs == 0 {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + tabs*(t.interval-1))
	col := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] != tab {
			b.WriteByte(raw[i])
			col++
			continue
		}
		for next := t.Next(col); col < next; col++ {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// CharToRender converts char column cx of raw into a render column. cx is
// clamped to [0, len(raw)].
func (t *Tabstops) CharToRender(raw string, cx int) int {
	cx = utils.Clamp(cx, 0, len(raw))
	rx := 0
	for j := range cx {
		if raw[j] == tab {
			rx = t.Next(rx)
			continue
		}
		rx++
	}
	return rx
}

// RenderToChar returns the first char column of raw whose cumulative render
// width exceeds rx, or len(raw) when none does.
func (t *Tabstops) RenderToChar(raw string, rx int) int {
	cur := 0
	for cx := range len(raw) {
		if raw[cx] == tab {
			cur = t.Next(cur)
		} else {
			cur++
		}
		if cur > rx {
			return cx
		}
	}
	return len(raw)
}
