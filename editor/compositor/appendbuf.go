package compositor

import "io"

// AppendBuffer accumulates one frame of terminal output so that it reaches
// the terminal in a single write. The backing array is kept between frames.
type AppendBuffer struct {
	b []byte
}

func (ab *AppendBuffer) Append(p []byte) {
	ab.b = append(ab.b, p...)
}

func (ab *AppendBuffer) AppendString(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *AppendBuffer) AppendByte(c byte) {
	ab.b = append(ab.b, c)
}

// AppendSpaces appends n spaces; n <= 0 appends nothing.
func (ab *AppendBuffer) AppendSpaces(n int) {
	for ; n > 0; n-- {
		ab.b = append(ab.b, ' ')
	}
}

// Extend hands the backing slice to fn, which returns it with bytes
// appended. It lets the ansi and style encoders write in place.
func (ab *AppendBuffer) Extend(fn func(dst []byte) []byte) {
	ab.b = fn(ab.b)
}

func (ab *AppendBuffer) Len() int {
	return len(ab.b)
}

func (ab *AppendBuffer) Bytes() []byte {
	return ab.b
}

func (ab *AppendBuffer) Reset() {
	ab.b = ab.b[:0]
}

// Flush writes the whole buffer to w with one Write call and empties it. A
// short write is not retried.
func (ab *AppendBuffer) Flush(w io.Writer) (int, error) {
	n, err := w.Write(ab.b)
	ab.Reset()
	return n, err
}
