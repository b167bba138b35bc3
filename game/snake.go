package game

import "github.com/lixenwraith/term-snake/vmath"

// Snake is a ring-buffer deque of segments, head at the front, with an occupancy set
// Segments are unique; Contains is O(1)
type Snake struct {
	buf  []vmath.Point
	head int // index of the front segment
	n    int
	occ  map[vmath.Point]struct{}
}

func newSnake(capacity int) *Snake {
	return &Snake{
		buf: make([]vmath.Point, max(capacity, 1)),
		occ: make(map[vmath.Point]struct{}, capacity),
	}
}

// Len returns the number of segments
func (s *Snake) Len() int { return s.n }

// Head returns the front segment
func (s *Snake) Head() vmath.Point { return s.buf[s.head] }

// Tail returns the back segment
func (s *Snake) Tail() vmath.Point { return s.at(s.n - 1) }

// Contains reports whether p is occupied by any segment
func (s *Snake) Contains(p vmath.Point) bool {
	_, ok := s.occ[p]
	return ok
}

func (s *Snake) at(i int) vmath.Point {
	return s.buf[(s.head+i)%len(s.buf)]
}

// PushFront adds a new head; p must not already be occupied
func (s *Snake) PushFront(p vmath.Point) {
	if s.Contains(p) {
		panic("game: duplicate snake segment")
	}
	if s.n == len(s.buf) {
		s.grow()
	}
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = p
	s.n++
	s.occ[p] = struct{}{}
}

// PopBack removes and returns the tail
func (s *Snake) PopBack() vmath.Point {
	if s.n == 0 {
		panic("game: pop from empty snake")
	}
	p := s.Tail()
	s.n--
	delete(s.occ, p)
	return p
}

func (s *Snake) grow() {
	next := make([]vmath.Point, len(s.buf)*2)
	for i := 0; i < s.n; i++ {
		next[i] = s.at(i)
	}
	s.buf = next
	s.head = 0
}

// Points returns the segments head first
func (s *Snake) Points() []vmath.Point {
	pts := make([]vmath.Point, s.n)
	for i := range pts {
		pts[i] = s.at(i)
	}
	return pts
}
