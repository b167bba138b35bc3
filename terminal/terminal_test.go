package terminal

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeBackend records output and serves scripted input chunks
type fakeBackend struct {
	mu     sync.Mutex
	out    bytes.Buffer
	inits  int
	finis  int
	w, h   int
	chunks chan []byte
	werr   error
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{w: w, h: h, chunks: make(chan []byte, 16)}
}

func (b *fakeBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inits++
	return nil
}

func (b *fakeBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finis++
}

func (b *fakeBackend) Size() (int, int) { return b.w, b.h }

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.werr != nil {
		return 0, b.werr
	}
	return b.out.Write(p)
}

func (b *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case c := <-b.chunks:
		return c, nil
	case <-stopCh:
		return nil, nil
	case <-time.After(10 * time.Millisecond):
		return nil, nil
	}
}

func (b *fakeBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

func TestTerminalLifecycle(t *testing.T) {
	fb := newFakeBackend(80, 24)
	term := newTerm(fb, ColorMode256)

	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := term.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if fb.inits != 1 {
		t.Errorf("backend initialized %d times, want 1", fb.inits)
	}

	out := fb.output()
	if !strings.Contains(out, string(csiAltScreenEnter)) {
		t.Errorf("Init output missing alt screen enter: %q", out)
	}
	if !strings.Contains(out, string(csiCursorHide)) {
		t.Errorf("Init output missing cursor hide: %q", out)
	}

	w, h := term.Size()
	if w != 80 || h != 24 {
		t.Errorf("Size() = %d,%d, want 80,24", w, h)
	}

	term.Fini()
	term.Fini()
	if fb.finis != 1 {
		t.Errorf("backend finalized %d times, want 1", fb.finis)
	}
	if !strings.HasSuffix(fb.output(), string(csiAutoWrapOn)) {
		t.Errorf("Fini should end with auto-wrap restore, got %q", fb.output())
	}

	if err := term.MoveTo(0, 0); !errors.Is(err, ErrFinalized) {
		t.Errorf("MoveTo after Fini = %v, want ErrFinalized", err)
	}
	if err := term.Put(Cell{Rune: 'x'}); !errors.Is(err, ErrFinalized) {
		t.Errorf("Put after Fini = %v, want ErrFinalized", err)
	}
	if err := term.Flush(); !errors.Is(err, ErrFinalized) {
		t.Errorf("Flush after Fini = %v, want ErrFinalized", err)
	}
}

func TestTerminalPollEvent(t *testing.T) {
	fb := newFakeBackend(80, 24)
	term := newTerm(fb, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	fb.chunks <- []byte("\x1b[Aq")

	ev := term.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyUp {
		t.Errorf("first event = %+v, want KeyUp", ev)
	}
	ev = term.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("second event = %+v, want rune q", ev)
	}

	term.Fini()

	done := make(chan Event, 1)
	go func() { done <- term.PollEvent() }()
	select {
	case ev := <-done:
		if ev.Type != EventClosed {
			t.Errorf("event after Fini = %+v, want EventClosed", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not return after Fini")
	}
}

func TestTerminalFlushError(t *testing.T) {
	fb := newFakeBackend(80, 24)
	term := newTerm(fb, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	wantErr := errors.New("broken pipe")
	fb.mu.Lock()
	fb.werr = wantErr
	fb.mu.Unlock()

	term.MoveTo(1, 1)
	term.Put(Cell{Rune: '#'})
	if err := term.Flush(); !errors.Is(err, wantErr) {
		t.Errorf("Flush() = %v, want %v", err, wantErr)
	}
}

func TestTerminalPollEventClosedWhenQueueFull(t *testing.T) {
	fb := newFakeBackend(80, 24)
	term := newTerm(fb, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	fb.chunks <- bytes.Repeat([]byte("a"), cap(term.input.eventCh)+44)
	deadline := time.Now().Add(time.Second)
	for len(term.input.eventCh) < cap(term.input.eventCh) {
		if time.Now().After(deadline) {
			t.Fatal("event channel never filled")
		}
		time.Sleep(time.Millisecond)
	}

	// The closing event cannot fit; the reader must still signal the end
	term.Fini()

	done := make(chan int, 1)
	go func() {
		n := 0
		for term.PollEvent().Type == EventKey {
			n++
		}
		done <- n
	}()
	select {
	case n := <-done:
		if n != cap(term.input.eventCh) {
			t.Errorf("drained %d keys, want %d", n, cap(term.input.eventCh))
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent never reported the end of input")
	}
}
