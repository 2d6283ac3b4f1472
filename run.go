package termedit

import (
	"context"
	"errors"
	"time"

	"github.com/hnimtadd/termedit/terminal/backend"
	"github.com/hnimtadd/termedit/terminal/input"
)

// EscapeTimeout is how long a lone ESC waits for the rest of a sequence
// before it is taken as the Escape key.
const EscapeTimeout = 100 * time.Millisecond

// Run draws a frame, waits for input, applies it and repeats until a key
// quits, the input ends or ctx is cancelled. Quitting and the end of input
// return nil.
func (s *Session) Run(ctx context.Context, b backend.Backend) error {
	decoder := input.NewDecoder()
	keys := make([]input.Key, 0, 16)
	var escape <-chan time.Time

	for {
		// Draw errors are logged by Refresh and the next frame redraws
		// everything.
		_ = s.Refresh(b)

		keys = keys[:0]
		select {
		case <-ctx.Done():
			return ctx.Err()

		case chunk, ok := <-b.Input():
			if !ok {
				return nil
			}
			keys = decoder.NextSlice(chunk, keys)

		case <-escape:
			keys = decoder.Flush(keys)

		case <-b.Resized():
			rows, cols, err := b.Size()
			if err != nil {
				s.logger.Warn("failed to read window size", "error", err)
				continue
			}
			s.Resize(rows, cols)
		}

		for _, key := range keys {
			if err := s.HandleKey(key); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}

		escape = nil
		if decoder.Pending() {
			escape = time.After(EscapeTimeout)
		}
	}
}
