package input

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/status"
	"github.com/lixenwraith/term-snake/terminal"
)

// Source delivers terminal events; PollEvent blocks until one is available
type Source interface {
	PollEvent() terminal.Event
}

// Monitor translates terminal events into intents and pushes them onto the shared queue
// It never reads the queue; the game loop is the only consumer
type Monitor struct {
	src   Source
	table *KeyTable
	queue *event.Queue[Intent]

	queued  *atomic.Int64
	ignored *atomic.Int64

	// OnPanic handles a panic raised while reading input; the default restores the terminal and exits
	OnPanic func(p any, stack []byte)
}

// NewMonitor creates a monitor; a nil table selects DefaultKeyTable
func NewMonitor(src Source, table *KeyTable, queue *event.Queue[Intent], reg *status.Registry) *Monitor {
	if table == nil {
		table = DefaultKeyTable()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Monitor{
		src:     src,
		table:   table,
		queue:   queue,
		queued:  reg.Ints.Get(status.IntentsQueued),
		ignored: reg.Ints.Get(status.IntentsIgnored),
		OnPanic: crash,
	}
}

// Run reads events until the source closes
// Returns nil on EventClosed and the reported error on EventError
func (m *Monitor) Run() error {
	for {
		ev := m.src.PollEvent()
		switch ev.Type {
		case terminal.EventClosed:
			return nil
		case terminal.EventError:
			return fmt.Errorf("input: %w", ev.Err)
		}

		in, ok := m.table.Lookup(ev)
		if !ok || in.Type == IntentNone {
			m.ignored.Add(1)
			continue
		}
		m.queue.Push(in)
		m.queued.Add(1)
	}
}

// Start runs the monitor on its own goroutine
// The returned channel receives Run's result and is then closed
func (m *Monitor) Start() <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		defer func() {
			if p := recover(); p != nil {
				m.OnPanic(p, debug.Stack())
			}
		}()
		err := m.Run()
		if err != nil {
			log.Printf("input monitor stopped: %v", err)
		}
		done <- err
	}()
	return done
}

// crash restores the terminal, reports the panic and exits
func crash(p any, stack []byte) {
	terminal.EmergencyReset(os.Stdout)
	log.Printf("input monitor panic: %v\n%s", p, stack)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT MONITOR CRASHED: %v\x1b[0m\r\n", p)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Exit(1)
}
