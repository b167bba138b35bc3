package game

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/render"
)

// Draw paints the current state into the field and header canvases
// Both are cleared first; the field must match the game size
func (g *Game) Draw(field, header *render.Canvas) {
	field.Clear()
	for _, p := range g.snake.Points() {
		field.Set(p.X, p.Y, render.Of(render.SnakeBody))
	}
	field.Set(g.apple.X, g.apple.Y, render.Of(render.Apple))
	tail := g.snake.Tail()
	field.Set(tail.X, tail.Y, render.Of(render.SnakeTail))
	head := g.snake.Head()
	field.Set(head.X, head.Y, render.Of(render.SnakeHead))

	header.Clear()
	for x := 0; x < header.Width(); x++ {
		for y := 0; y < header.Height(); y++ {
			header.Set(x, y, render.Of(render.HeaderFill))
		}
	}
	x := 0
	for _, r := range HeaderText(g.score, header.Width()) {
		header.Set(x, 0, render.Text(r))
		x += max(runewidth.RuneWidth(r), 1)
	}
}

// HeaderText returns the score line cut to fit width display columns
func HeaderText(score, width int) string {
	return runewidth.Truncate(fmt.Sprintf(parameter.HeaderFormat, score), width, "")
}
