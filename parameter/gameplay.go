package parameter

import "time"

// Pacing: a tick lasts BaseInterval / speed
const (
	BaseInterval = 400 * time.Millisecond
	InitialSpeed = 5
	SpeedStep    = 1

	// DeathDelay keeps the final frame on screen before the terminal is restored
	DeathDelay = 1000 * time.Millisecond
)

// Snake growth
const (
	// InitialLength is the segment count of a new snake, head first, extending down
	InitialLength = 6

	// Elongation is the number of ticks the tail stays put after eating; 1 grows the snake by one segment
	Elongation = 1
)

// AppleSampleAttempts bounds random apple placement before falling back to a scan of free cells
const AppleSampleAttempts = 64
