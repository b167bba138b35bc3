package input

import (
	"maps"

	"github.com/lixenwraith/term-snake/terminal"
	"github.com/lixenwraith/term-snake/vmath"
)

// KeyTable is the allow-list of keys the game reacts to
// Anything not present is dropped by the monitor
type KeyTable struct {
	// Non-rune keys (arrows, Ctrl+*), matched regardless of modifiers
	Keys map[terminal.Key]Intent

	// Printable runes, matched only without modifiers
	Runes map[rune]Intent
}

// DefaultKeyTable returns arrows for steering, q and Ctrl+C for quitting
// Ctrl+C is bound because raw mode turns it into a key instead of SIGINT
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[terminal.Key]Intent{
			terminal.KeyUp:    Steer(vmath.DirUp),
			terminal.KeyDown:  Steer(vmath.DirDown),
			terminal.KeyLeft:  Steer(vmath.DirLeft),
			terminal.KeyRight: Steer(vmath.DirRight),
			terminal.KeyCtrlC: Quit(),
		},
		Runes: map[rune]Intent{
			'q': Quit(),
		},
	}
}

// Clone returns a deep copy with non-nil maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
	if c.Keys == nil {
		c.Keys = make(map[terminal.Key]Intent)
	}
	if c.Runes == nil {
		c.Runes = make(map[rune]Intent)
	}
	return c
}

// Lookup maps a terminal event to an intent
func (kt *KeyTable) Lookup(ev terminal.Event) (Intent, bool) {
	if ev.Type != terminal.EventKey {
		return Intent{}, false
	}
	if ev.Key == terminal.KeyRune {
		if ev.Modifiers != terminal.ModNone {
			return Intent{}, false
		}
		in, ok := kt.Runes[ev.Rune]
		return in, ok
	}
	in, ok := kt.Keys[ev.Key]
	return in, ok
}
