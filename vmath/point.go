package vmath

import "fmt"

// Point is a grid cell coordinate, origin top-left
type Point struct {
	X, Y int
}

// Vector is a signed single-step displacement
type Vector struct {
	DX, DY int
}

// Add applies v to p on a toroidal grid of maxX×maxY cells
// Each axis is wrapped with a single correction, so |delta| must not exceed the bound
func Add(p Point, v Vector, maxX, maxY int) Point {
	return Point{
		X: wrap(p.X, v.DX, maxX),
		Y: wrap(p.Y, v.DY, maxY),
	}
}

// wrap returns x+delta folded into [0, max)
func wrap(x, delta, max int) int {
	if max <= 0 {
		panic(fmt.Sprintf("vmath: wrap bound must be positive, got %d", max))
	}
	// Widened before the sum so int32 platforms cannot overflow
	n := int64(x) + int64(delta)
	m := int64(max)
	if n < 0 {
		n += m
	} else if n >= m {
		n -= m
	}
	if n < 0 || n >= m {
		panic(fmt.Sprintf("vmath: wrap out of range: x=%d delta=%d max=%d", x, delta, max))
	}
	return int(n)
}
