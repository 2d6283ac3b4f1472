package input

import "github.com/hnimtadd/termedit/terminal/ansi"

// maxParam caps the numeric parameter of ESC [ n ~ so that garbage input
// cannot overflow it.
const maxParam = 1 << 16

// Decoder turns the bytes read from a raw mode terminal into keys. Input
// may arrive in chunks of any size; a sequence split across two reads is
// completed by the next one.
//
// A lone ESC cannot be told apart from the start of a sequence until more
// input arrives, so the caller calls Flush once a short wait for further
// input has expired.
type Decoder struct {
	State State

	param int
}

func NewDecoder() *Decoder {
	return &Decoder{State: StateGround}
}

// Pending reports whether a partial sequence is waiting for more input.
func (d *Decoder) Pending() bool {
	return d.State != StateGround
}

// NextSlice decodes input, appending the complete keys to dst.
func (d *Decoder) NextSlice(input []byte, dst []Key) []Key {
	for _, c := range input {
		dst = d.Next(c, dst)
	}
	return dst
}

// Next consumes one byte and appends the keys it completes to dst.
func (d *Decoder) Next(c uint8, dst []Key) []Key {
	switch d.State {
	case StateGround:
		if c == ansi.C0.ESC {
			d.State = StateEscape
			return dst
		}
		return append(dst, Key(c))

	case StateEscape:
		switch c {
		case '[':
			d.State = StateCSIEntry
		case 'O':
			d.State = StateSS3
		case ansi.C0.ESC:
			dst = append(dst, KeyEscape)
		default:
			// Not a sequence: the ESC was a key of its own.
			d.State = StateGround
			dst = append(dst, KeyEscape)
			return d.Next(c, dst)
		}
		return dst

	case StateCSIEntry:
		if isDigit(c) {
			d.param = int(c - '0')
			d.State = StateCSIParam
			return dst
		}
		if key, ok := csiFinal(c); ok {
			d.State = StateGround
			return append(dst, key)
		}
		return d.ignore(c, dst)

	case StateCSIParam:
		switch {
		case isDigit(c):
			d.param = min(d.param*10+int(c-'0'), maxParam)
			return dst
		case c == '~':
			d.State = StateGround
			if key, ok := tildeKey(d.param); ok {
				dst = append(dst, key)
			}
			return dst
		}
		return d.ignore(c, dst)

	case StateCSIIgnore:
		return d.ignore(c, dst)

	case StateSS3:
		d.State = StateGround
		switch c {
		case 'H':
			return append(dst, KeyHome)
		case 'F':
			return append(dst, KeyEnd)
		}
		return dst
	}
	return dst
}

// Flush ends a partial sequence after the wait for more input has expired.
// A sequence that got no further than its introducer is the Escape key;
// anything longer is dropped.
func (d *Decoder) Flush(dst []Key) []Key {
	switch d.State {
	case StateEscape, StateCSIEntry, StateSS3:
		dst = append(dst, KeyEscape)
	}
	d.State = StateGround
	d.param = 0
	return dst
}

// ignore skips the rest of an unbound CSI sequence: parameter and
// intermediate bytes keep it open, a final byte ends it.
func (d *Decoder) ignore(c uint8, dst []Key) []Key {
	switch {
	case c >= 0x20 && c <= 0x3f:
		d.State = StateCSIIgnore
	case c >= 0x40 && c <= 0x7e:
		d.State = StateGround
	default:
		// A control byte aborts the sequence and is decoded on its own.
		d.State = StateGround
		return d.Next(c, dst)
	}
	return dst
}

func csiFinal(c uint8) (Key, bool) {
	switch c {
	case 'A':
		return KeyArrowUp, true
	case 'B':
		return KeyArrowDown, true
	case 'C':
		return KeyArrowRight, true
	case 'D':
		return KeyArrowLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return 0, false
}

func tildeKey(param int) (Key, bool) {
	switch param {
	case 1, 7:
		return KeyHome, true
	case 3:
		return KeyDelete, true
	case 4, 8:
		return KeyEnd, true
	case 5:
		return KeyPageUp, true
	case 6:
		return KeyPageDown, true
	}
	return 0, false
}

func isDigit(c uint8) bool {
	return c >= '0' && c <= '9'
}
