package input

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/status"
	"github.com/lixenwraith/term-snake/terminal"
	"github.com/lixenwraith/term-snake/vmath"
)

// scriptedSource replays events, then reports EventClosed
type scriptedSource struct {
	events []terminal.Event
	pos    int
}

func (s *scriptedSource) PollEvent() terminal.Event {
	if s.pos >= len(s.events) {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := s.events[s.pos]
	s.pos++
	return ev
}

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func runeKey(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func TestMonitorTranslatesAllowedKeys(t *testing.T) {
	src := &scriptedSource{events: []terminal.Event{
		key(terminal.KeyUp),
		runeKey('x'),
		key(terminal.KeyLeft),
		{Type: terminal.EventResize, Width: 100, Height: 40},
		key(terminal.KeyEnter),
		runeKey('q'),
		key(terminal.KeyCtrlC),
	}}
	q := event.NewQueue[Intent]()
	reg := status.NewRegistry()
	m := NewMonitor(src, nil, q, reg)

	if err := m.Run(); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	want := []Intent{Steer(vmath.DirUp), Steer(vmath.DirLeft), Quit(), Quit()}
	got := q.Drain()
	if len(got) != len(want) {
		t.Fatalf("queued %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("intent %d = %v, want %v", i, got[i], want[i])
		}
	}

	if n := reg.Ints.Get(status.IntentsIgnored).Load(); n != 3 {
		t.Errorf("ignored = %d, want 3", n)
	}
	if n := reg.Ints.Get(status.IntentsQueued).Load(); n != 4 {
		t.Errorf("queued = %d, want 4", n)
	}
}

func TestMonitorAltRuneIgnored(t *testing.T) {
	src := &scriptedSource{events: []terminal.Event{
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q', Modifiers: terminal.ModAlt},
	}}
	q := event.NewQueue[Intent]()
	NewMonitor(src, nil, q, nil).Run()
	if q.Len() != 0 {
		t.Errorf("Alt+q should not quit, queued %v", q.Drain())
	}
}

func TestMonitorErrorStops(t *testing.T) {
	wantErr := errors.New("read failed")
	src := &scriptedSource{events: []terminal.Event{
		{Type: terminal.EventError, Err: wantErr},
		key(terminal.KeyUp),
	}}
	q := event.NewQueue[Intent]()
	err := NewMonitor(src, nil, q, nil).Run()
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() = %v, want %v", err, wantErr)
	}
	if q.Len() != 0 {
		t.Error("events after an error must not be processed")
	}
}

// chanSource blocks on a channel, the way a real terminal does
type chanSource chan terminal.Event

func (c chanSource) PollEvent() terminal.Event { return <-c }

func TestMonitorStartConcurrent(t *testing.T) {
	src := make(chanSource)
	q := event.NewQueue[Intent]()
	done := NewMonitor(src, nil, q, nil).Start()

	src <- key(terminal.KeyDown)
	src <- key(terminal.KeyRight)
	src <- terminal.Event{Type: terminal.EventClosed}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("monitor returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop on EventClosed")
	}

	got := q.Drain()
	if len(got) != 2 || got[0].Dir != vmath.DirDown || got[1].Dir != vmath.DirRight {
		t.Errorf("queued %v", got)
	}
}

type panicSource struct{}

func (panicSource) PollEvent() terminal.Event { panic("device gone") }

func TestMonitorPanicRoutedToHandler(t *testing.T) {
	m := NewMonitor(panicSource{}, nil, event.NewQueue[Intent](), nil)
	caught := make(chan any, 1)
	m.OnPanic = func(p any, stack []byte) {
		if len(stack) == 0 {
			t.Error("empty stack trace")
		}
		caught <- p
	}

	done := m.Start()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor goroutine did not finish")
	}
	select {
	case p := <-caught:
		if p != "device gone" {
			t.Errorf("panic value = %v", p)
		}
	default:
		t.Error("panic handler not called")
	}
}
