package render

// Kind tags what occupies a grid cell
type Kind uint8

const (
	Empty Kind = iota
	SnakeHead
	SnakeBody
	SnakeTail
	Apple
	HeaderFill
	HeaderText

	// Invalid only appears in a fresh previous buffer; it differs from every drawable element
	Invalid
)

var kindNames = [...]string{
	Empty:      "empty",
	SnakeHead:  "head",
	SnakeBody:  "body",
	SnakeTail:  "tail",
	Apple:      "apple",
	HeaderFill: "header-fill",
	HeaderText: "header-text",
	Invalid:    "invalid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Element is the logical content of one cell
// Char is only meaningful for HeaderText; the zero value is Empty
type Element struct {
	Kind Kind
	Char rune
}

// Text returns a header text element for r
func Text(r rune) Element {
	return Element{Kind: HeaderText, Char: r}
}

// Of returns a character-less element of kind k
func Of(k Kind) Element {
	return Element{Kind: k}
}
