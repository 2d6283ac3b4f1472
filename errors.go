package termedit

import "errors"

var (
	// ErrQuit is returned by HandleKey when the key asked the editor to exit.
	ErrQuit = errors.New("quit")
	// ErrNoFilename is returned by Save when the buffer was never named.
	ErrNoFilename = errors.New("no file name")
)
