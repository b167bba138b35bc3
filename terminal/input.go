package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// inputReader handles raw stdin parsing
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Persistent buffer for stream assembly, keeps partial UTF-8 and escape sequences across reads
	buf []byte
}

// stopTimeout bounds how long stop waits for a reader stuck in a blocking read
const stopTimeout = 100 * time.Millisecond

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	select {
	case <-r.doneCh:
	case <-time.After(stopTimeout):
		// Reader stuck on blocking read, proceed anyway
	}
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

// readLoop closes eventCh on exit, so consumers observe the end even when the final event was dropped
func (r *inputReader) readLoop() {
	defer close(r.doneCh)
	defer close(r.eventCh)

	defer func() {
		if p := recover(); p != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", p)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.sendEvent(Event{Type: EventClosed})
			} else {
				r.sendEvent(Event{Type: EventError, Err: err})
			}
			return
		}

		if len(data) == 0 {
			// Timeout or stop; a lone ESC that waited a full poll is the Escape key
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := r.parseInput(r.buf)

		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return i // Wait for more data
			}

			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}

			// Unknown sequences are swallowed
			if ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			r.sendEvent(parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			i++
			continue
		}
		if i+seqLen > n {
			return i
		}
		rn, size := decodeRune(data[i:])
		r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rn})
		i += size
	}
	return i
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	}

	if data[1] == '[' {
		return parseCSI(data)
	}
	if data[1] == 'O' {
		return parseSS3(data)
	}

	// Alt+Control character
	if data[1] < 0x20 {
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	}

	// Alt+printable
	if data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// ESC followed by a non-ASCII byte: emit Escape and leave the byte for the next pass
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI parses CSI sequence without allocation
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	const maxScan = 16
	end := 2
	for end < len(data) && end < maxScan {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if key, mod, ok := lookupCSI(data[2:end]); ok {
				return end, Event{Type: EventKey, Key: key, Modifiers: mod}
			}
			// Unknown but valid CSI syntax - consume and return KeyNone
			return end, Event{Type: EventKey, Key: KeyNone}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer only
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}

	if end >= maxScan {
		return end, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{} // Incomplete
}

// parseSS3 parses SS3 sequence, returns length even for unknown sequences
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// controlKeys maps C0 bytes to keys; zero entries are KeyNone
var controlKeys = [0x20]Key{
	0x01: KeyCtrlA, 0x02: KeyCtrlB, 0x03: KeyCtrlC, 0x04: KeyCtrlD,
	0x05: KeyCtrlE, 0x06: KeyCtrlF, 0x07: KeyCtrlG, 0x08: KeyBackspace,
	0x09: KeyTab, 0x0a: KeyEnter, 0x0b: KeyCtrlK, 0x0c: KeyCtrlL,
	0x0d: KeyEnter, 0x0e: KeyCtrlN, 0x0f: KeyCtrlO, 0x10: KeyCtrlP,
	0x11: KeyCtrlQ, 0x12: KeyCtrlR, 0x13: KeyCtrlS, 0x14: KeyCtrlT,
	0x15: KeyCtrlU, 0x16: KeyCtrlV, 0x17: KeyCtrlW, 0x18: KeyCtrlX,
	0x19: KeyCtrlY, 0x1a: KeyCtrlZ, 0x1b: KeyEscape,
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	if int(b) < len(controlKeys) {
		return Event{Type: EventKey, Key: controlKeys[b]}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// sendEvent sends an event to the channel, non-blocking
func (r *inputReader) sendEvent(ev Event) {
	if ev.Type == EventKey && ev.Key == KeyNone {
		return
	}
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop event
	}
}

// decodeRune decodes the first UTF-8 rune from data
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size = 2
		min = 0x80
		r = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		size = 3
		min = 0x800
		r = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		size = 4
		min = 0x10000
		r = rune(b & 0x07)
	default:
		return 0xFFFD, 1
	}

	if len(data) < size {
		return 0xFFFD, 1
	}

	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}

	if r < min {
		return 0xFFFD, 1 // Overlong encoding
	}

	return r, size
}
