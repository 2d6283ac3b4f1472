// Package backend connects the editor to a real terminal: raw mode, window
// size, input bytes and resize notifications.
package backend

import "io"

// Backend is the terminal the editor reads keys from and draws on.
type Backend interface {
	io.Writer

	// Size returns the window size in cells.
	Size() (rows, cols int, err error)

	// Input delivers the bytes read from the terminal, one slice per read.
	// It is closed once reading fails or reaches EOF.
	Input() <-chan []byte

	// Resized receives a value whenever the window size changed. A nil
	// channel means the platform never reports resizes.
	Resized() <-chan struct{}

	// Close restores the terminal to the mode it had before Open.
	Close() error
}
