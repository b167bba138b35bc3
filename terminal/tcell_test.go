package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerm(t *testing.T, mode ColorMode) (*tcellTerm, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	term := newTcellTerm(s, mode)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(20, 5)
	t.Cleanup(term.Fini)
	return term, s
}

func TestTcellPutAdvances(t *testing.T) {
	term, s := newSimTerm(t, ColorModeTrueColor)

	if w, h := term.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = %d,%d, want 20,5", w, h)
	}

	term.MoveTo(2, 1)
	term.Put(Cell{Rune: 'a', Fg: RGBRed, Bg: RGBBlack})
	term.Put(Cell{Rune: 'b', Fg: RGBRed, Bg: RGBBlack})
	term.Put(Cell{})
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	for x, want := range map[int]rune{2: 'a', 3: 'b', 4: ' '} {
		if r, _, _, _ := s.GetContent(x, 1); r != want {
			t.Errorf("content at (%d,1) = %q, want %q", x, r, want)
		}
	}
	_, _, st, _ := s.GetContent(2, 1)
	fg, _, _ := st.Decompose()
	if fg != tcell.NewRGBColor(int32(RGBRed.R), int32(RGBRed.G), int32(RGBRed.B)) {
		t.Errorf("fg = %v, want truecolor red", fg)
	}
}

func TestTcellPaletteColor(t *testing.T) {
	term, s := newSimTerm(t, ColorMode256)

	term.MoveTo(0, 0)
	term.Put(Cell{Rune: 'x', Fg: RGBRed, Bg: RGBBlack, Attrs: AttrBold})
	term.Flush()

	_, _, st, _ := s.GetContent(0, 0)
	fg, _, attrs := st.Decompose()
	if want := tcell.PaletteColor(int(RGBTo256(RGBRed))); fg != want {
		t.Errorf("fg = %v, want %v", fg, want)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}
}

func TestTcellFinalized(t *testing.T) {
	term, _ := newSimTerm(t, ColorMode256)
	term.Fini()
	term.Fini()

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

func TestTcellPollEventKeys(t *testing.T) {
	term, s := newSimTerm(t, ColorMode256)

	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	next := func() Event {
		for i := 0; i < 8; i++ {
			if ev := term.PollEvent(); ev.Type == EventKey {
				return ev
			}
		}
		t.Fatal("no key event")
		return Event{}
	}

	if ev := next(); ev.Key != KeyUp {
		t.Errorf("first key = %+v, want KeyUp", ev)
	}
	if ev := next(); ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("second key = %+v, want rune q", ev)
	}
}

func TestTranslateTcellKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		ok   bool
		key  Key
		rn   rune
		mod  Modifier
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), true, KeyLeft, 0, ModNone},
		{"shift arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), true, KeyRight, 0, ModShift},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true, KeyRune, 'x', ModNone},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), true, KeyRune, 'x', ModAlt},
		{"ctrl c drops ctrl", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true, KeyCtrlC, 0, ModNone},
		{"unmapped", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), false, KeyNone, 0, ModNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translateTcellKey(tt.ev)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Key != tt.key || ev.Rune != tt.rn || ev.Modifiers != tt.mod {
				t.Errorf("event = %+v, want key=%v rune=%q mod=%v", ev, tt.key, tt.rn, tt.mod)
			}
		})
	}
}
