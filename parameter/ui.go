package parameter

// Screen layout
const (
	// HeaderHeight is the number of terminal rows above the play field
	HeaderHeight = 1

	// FieldHorizontalMult is the terminal columns per play-field cell, keeps cells roughly square
	FieldHorizontalMult = 2

	// Smallest play field the game starts on, in logical cells
	MinFieldWidth  = 8
	MinFieldHeight = 6
)

// HeaderFormat is the header text; %d is the score
const HeaderFormat = "Score: %d     press q to quit"

// Glyphs
const (
	GlyphBlock = '█'
	GlyphEmpty = ' '
)
