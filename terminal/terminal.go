package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides low-level terminal access
// Drawing is command based: MoveTo positions the cursor, Put writes one cell and advances it,
// Flush pushes everything queued since the previous flush
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns detected color capability
	ColorMode() ColorMode

	// MoveTo queues a cursor move (0-indexed)
	MoveTo(x, y int) error

	// Put queues one styled cell at the cursor and advances it by one column
	Put(c Cell) error

	// Flush writes all queued commands to the terminal
	Flush() error

	// Clear fills screen with specified background color
	Clear(bg RGB) error

	// PollEvent blocks until next input event
	PollEvent() Event
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend

	output *outputBuffer
	input  *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a new Terminal instance on stdin/stdout
func New(colorMode ...ColorMode) Terminal {
	var c ColorMode
	if len(colorMode) == 0 {
		c = DetectColorMode()
	} else {
		c = colorMode[0]
	}
	return newTerm(newBackend(), c)
}

func newTerm(b Backend, c ColorMode) *termImpl {
	return &termImpl{
		backend: b,
		output:  newOutputBuffer(b, c),
		input:   newInputReader(b),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}

	w := t.output.writer
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	// Prevents terminal scroll on bottom-right corner write
	w.Write(csiAutoWrapOff)
	if err := w.Flush(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal setup: %w", err)
	}

	if err := t.output.clear(RGBBlack); err != nil {
		t.backend.Fini()
		return fmt.Errorf("clear: %w", err)
	}

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	// Restoration is best effort, the screen may already be gone
	w := t.output.writer
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	w.Write(csiAutoWrapOn)
	w.Flush()

	t.backend.Fini()

	t.finalized = true
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// ColorMode returns detected color capability
func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// MoveTo queues a cursor move
func (t *termImpl) MoveTo(x, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	return t.output.moveTo(x, y)
}

// Put queues one cell at the cursor
func (t *termImpl) Put(c Cell) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	return t.output.put(c)
}

// Flush writes queued output
func (t *termImpl) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	return t.output.flush()
}

// Clear fills screen with background color
func (t *termImpl) Clear(bg RGB) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	return t.output.clear(bg)
}

// PollEvent blocks until next input event
// Returns EventClosed once the terminal is finalized
func (t *termImpl) PollEvent() Event {
	ev, ok := <-t.input.events()
	if !ok {
		return Event{Type: EventClosed}
	}
	return ev
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
