package terminal

import "errors"

// ErrFinalized is returned by output calls made after Fini
var ErrFinalized = errors.New("terminal: finalized")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	// Returns (nil, nil) on poll timeout or stop
	Read(stopCh <-chan struct{}) ([]byte, error)
}
