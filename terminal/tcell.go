package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerm implements Terminal on a tcell.Screen
// tcell keeps its own back buffer, so Put only stages content and Flush calls Show
type tcellTerm struct {
	screen    tcell.Screen
	colorMode ColorMode

	mu          sync.Mutex
	x, y        int
	initialized bool
	finalized   bool
}

// NewTcell creates a Terminal backed by tcell
func NewTcell(colorMode ColorMode) (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newTcellTerm(s, colorMode), nil
}

func newTcellTerm(s tcell.Screen, colorMode ColorMode) *tcellTerm {
	return &tcellTerm{screen: s, colorMode: colorMode}
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) ColorMode() ColorMode {
	return t.colorMode
}

func (t *tcellTerm) MoveTo(x, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	t.x, t.y = x, y
	return nil
}

func (t *tcellTerm) Put(c Cell) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	r := c.Rune
	if r == 0 {
		r = ' '
	}
	t.screen.SetContent(t.x, t.y, r, nil, t.style(c))
	t.x++
	return nil
}

func (t *tcellTerm) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	t.screen.Show()
	return nil
}

func (t *tcellTerm) Clear(bg RGB) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.color(bg)))
	t.screen.Show()
	return nil
}

// PollEvent translates tcell events; a nil event means the screen was finalized
func (t *tcellTerm) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return Event{Type: EventClosed}
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventKey:
			if e, ok := translateTcellKey(ev); ok {
				return e
			}
		case *tcell.EventError:
			return Event{Type: EventError, Err: ev}
		}
	}
}

func (t *tcellTerm) style(c Cell) tcell.Style {
	st := tcell.StyleDefault.Foreground(t.color(c.Fg)).Background(t.color(c.Bg))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (t *tcellTerm) color(c RGB) tcell.Color {
	if t.colorMode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}

// tcellKeys maps the tcell keys the game can see to local keys
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPageUp,
	tcell.KeyPgDn:      KeyPageDown,
	tcell.KeyInsert:    KeyInsert,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyEscape:    KeyEscape,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyCtrlC:     KeyCtrlC,
	tcell.KeyCtrlD:     KeyCtrlD,
	tcell.KeyCtrlQ:     KeyCtrlQ,
	tcell.KeyCtrlZ:     KeyCtrlZ,
}

func translateTcellKey(ev *tcell.EventKey) (Event, bool) {
	var mod Modifier
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}

	if ev.Key() == tcell.KeyRune {
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Modifiers: mod}, true
	}
	k, ok := tcellKeys[ev.Key()]
	if !ok {
		return Event{}, false
	}
	// tcell reports Ctrl on control keys; the local key already encodes it
	if k >= KeyCtrlA {
		mod &^= ModCtrl
	}
	return Event{Type: EventKey, Key: k, Modifiers: mod}, true
}
