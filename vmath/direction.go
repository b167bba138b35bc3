package vmath

// Direction is one of the four grid headings
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directionDeltas = [...]Vector{
	DirUp:    {0, -1},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

var directionInverses = [...]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

var directionNames = [...]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// Delta returns the unit step for the heading
func (d Direction) Delta() Vector {
	return directionDeltas[d]
}

// Inverse returns the opposite heading
func (d Direction) Inverse() Direction {
	return directionInverses[d]
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}
