package game

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/vmath"
)

// SteerPolicy selects which of several queued steering intents wins a tick
type SteerPolicy uint8

const (
	// SteerFirst applies the earliest non-reversing intent
	SteerFirst SteerPolicy = iota
	// SteerLast applies the latest non-reversing intent
	SteerLast
)

func (p SteerPolicy) String() string {
	if p == SteerLast {
		return "last"
	}
	return "first"
}

// ParseSteerPolicy accepts "first" or "last"; empty selects first
func ParseSteerPolicy(s string) (SteerPolicy, error) {
	switch strings.ToLower(s) {
	case "", "first":
		return SteerFirst, nil
	case "last":
		return SteerLast, nil
	default:
		return SteerFirst, fmt.Errorf("unknown steer policy %q", s)
	}
}

// Params are the rule knobs of a game
type Params struct {
	InitialSpeed  int
	SpeedStep     int
	Elongation    int
	InitialLength int
	Policy        SteerPolicy
}

// DefaultParams returns the standard rules
func DefaultParams() Params {
	return Params{
		InitialSpeed:  parameter.InitialSpeed,
		SpeedStep:     parameter.SpeedStep,
		Elongation:    parameter.Elongation,
		InitialLength: parameter.InitialLength,
		Policy:        SteerFirst,
	}
}

// HandleIntents consumes one tick's worth of queued intents
// A quit anywhere in the batch ends the game; otherwise at most one direction change is applied
// and reversals of the current heading are dropped. Returns true when a steer was applied
func (g *Game) HandleIntents(batch []input.Intent) bool {
	if g.state != StateRunning {
		return false
	}

	for _, in := range batch {
		if in.Type == input.IntentQuit {
			g.Quit()
			return false
		}
	}

	var (
		dir   vmath.Direction
		found bool
	)
	reverse := g.dir.Inverse()
	for _, in := range batch {
		if in.Type != input.IntentSteer || in.Dir == reverse {
			continue
		}
		dir, found = in.Dir, true
		if g.params.Policy == SteerFirst {
			break
		}
	}
	if found {
		g.dir = dir
	}
	return found
}
