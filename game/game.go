package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/vmath"
)

// State is the game lifecycle phase
type State uint8

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game-over"
	}
	return "running"
}

// Outcome describes how a finished game ended
type Outcome struct {
	Quit  bool // true when the player quit, false on death
	Score int
}

// TickResult reports what happened during one step
type TickResult struct {
	Ate  bool
	Died bool
}

var (
	ErrBadGeometry = errors.New("game: bad geometry")
	ErrBadBody     = errors.New("game: bad snake body")
	ErrBadApple    = errors.New("game: bad apple position")
)

// Game is the snake state machine
// Owned by one goroutine; not safe for concurrent use
type Game struct {
	width, height int
	params        Params
	rng           *rand.Rand

	snake      *Snake
	dir        vmath.Direction
	speed      int
	apple      vmath.Point
	score      int
	elongation int

	state   State
	outcome Outcome
}

// New creates a game with a fresh snake at a random position, heading Up and extending Down
func New(width, height int, p Params, rng *rand.Rand) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGeometry, width, height)
	}
	if p.InitialLength <= 0 || p.InitialLength > height || p.InitialLength >= width*height {
		return nil, fmt.Errorf("%w: length %d does not fit %dx%d", ErrBadGeometry, p.InitialLength, width, height)
	}

	start := vmath.Point{X: rng.IntN(width), Y: rng.IntN(height)}
	body := make([]vmath.Point, 0, p.InitialLength)
	for pt, i := start, 0; i < p.InitialLength; i++ {
		body = append(body, pt)
		pt = vmath.Add(pt, vmath.DirDown.Delta(), width, height)
	}

	g := newGame(width, height, p, rng, body, vmath.DirUp)
	if !g.relocateApple() {
		return nil, fmt.Errorf("%w: no free cell for apple", ErrBadGeometry)
	}
	return g, nil
}

// Restore builds a game from an explicit body (head first), heading and apple
func Restore(width, height int, body []vmath.Point, dir vmath.Direction, apple vmath.Point, p Params, rng *rand.Rand) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGeometry, width, height)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadBody)
	}
	seen := make(map[vmath.Point]bool, len(body))
	for _, pt := range body {
		if !inBounds(pt, width, height) {
			return nil, fmt.Errorf("%w: %v outside %dx%d", ErrBadBody, pt, width, height)
		}
		if seen[pt] {
			return nil, fmt.Errorf("%w: duplicate %v", ErrBadBody, pt)
		}
		seen[pt] = true
	}
	if !inBounds(apple, width, height) || seen[apple] {
		return nil, fmt.Errorf("%w: %v", ErrBadApple, apple)
	}

	g := newGame(width, height, p, rng, body, dir)
	g.apple = apple
	return g, nil
}

func newGame(width, height int, p Params, rng *rand.Rand, body []vmath.Point, dir vmath.Direction) *Game {
	s := newSnake(len(body) * 2)
	for i := len(body) - 1; i >= 0; i-- {
		s.PushFront(body[i])
	}
	return &Game{
		width:  width,
		height: height,
		params: p,
		rng:    rng,
		snake:  s,
		dir:    dir,
		speed:  p.InitialSpeed,
	}
}

func inBounds(p vmath.Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

func (g *Game) Width() int                 { return g.width }
func (g *Game) Height() int                { return g.height }
func (g *Game) State() State               { return g.state }
func (g *Game) Score() int                 { return g.score }
func (g *Game) Speed() int                 { return g.speed }
func (g *Game) Direction() vmath.Direction { return g.dir }
func (g *Game) Apple() vmath.Point         { return g.apple }
func (g *Game) Snake() *Snake              { return g.snake }

// Outcome returns the result; only meaningful in StateGameOver
func (g *Game) Outcome() Outcome { return g.outcome }

// Tick advances the snake one cell; no-op once the game is over
func (g *Game) Tick() TickResult {
	if g.state != StateRunning {
		return TickResult{}
	}

	next := vmath.Add(g.snake.Head(), g.dir.Delta(), g.width, g.height)
	// The tail has not moved yet, so entering its cell is a collision
	if g.snake.Contains(next) {
		g.end(false)
		return TickResult{Died: true}
	}
	g.snake.PushFront(next)

	var res TickResult
	if next == g.apple {
		res.Ate = true
		g.score++
		g.elongation += g.params.Elongation
		g.speed += g.params.SpeedStep
		if !g.relocateApple() {
			// Board filled
			g.end(false)
			res.Died = true
			return res
		}
	}

	if g.elongation == 0 {
		g.snake.PopBack()
	} else {
		g.elongation--
	}
	return res
}

// Quit ends the game voluntarily
func (g *Game) Quit() {
	if g.state == StateRunning {
		g.end(true)
	}
}

func (g *Game) end(quit bool) {
	g.state = StateGameOver
	g.outcome = Outcome{Quit: quit, Score: g.score}
}

// relocateApple moves the apple to a free cell, reporting false when none exists
func (g *Game) relocateApple() bool {
	if g.snake.Len() >= g.width*g.height {
		return false
	}
	for i := 0; i < parameter.AppleSampleAttempts; i++ {
		p := vmath.Point{X: g.rng.IntN(g.width), Y: g.rng.IntN(g.height)}
		if !g.snake.Contains(p) {
			g.apple = p
			return true
		}
	}
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			p := vmath.Point{X: x, Y: y}
			if !g.snake.Contains(p) {
				g.apple = p
				return true
			}
		}
	}
	return false
}
