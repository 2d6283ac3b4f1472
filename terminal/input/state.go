package input

// State for the key decoder state machine
type State int

const (
	StateGround State = iota
	// ESC seen, waiting for '[' or 'O'.
	StateEscape
	// ESC [ seen.
	StateCSIEntry
	// ESC [ followed by at least one digit.
	StateCSIParam
	// Inside a CSI sequence no key is bound to; skipped to its final byte.
	StateCSIIgnore
	// ESC O seen.
	StateSS3
)
