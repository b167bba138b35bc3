package input

import (
	"fmt"

	"github.com/lixenwraith/term-snake/vmath"
)

// IntentType discriminates player actions
type IntentType uint8

const (
	IntentNone  IntentType = iota // Unbound; only used in key tables
	IntentSteer                   // Change heading to Dir
	IntentQuit                    // End the game voluntarily
)

// Intent is a player action queued for the game loop
type Intent struct {
	Type IntentType
	Dir  vmath.Direction // For IntentSteer
}

// Steer returns a steering intent toward d
func Steer(d vmath.Direction) Intent {
	return Intent{Type: IntentSteer, Dir: d}
}

// Quit returns a quit intent
func Quit() Intent {
	return Intent{Type: IntentQuit}
}

func (i Intent) String() string {
	switch i.Type {
	case IntentSteer:
		return fmt.Sprintf("steer(%s)", i.Dir)
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}
