package terminal

import (
	"bufio"
	"io"
)

// outputBufferSize holds a full-screen repaint of a large terminal without intermediate writes
const outputBufferSize = 128 * 1024

// outputBuffer turns MoveTo/Put commands into ANSI output
// Cursor moves are elided when the cursor is already in place, SGR is only emitted on style change
// Write errors are sticky in bufio.Writer and surface on the next flush
type outputBuffer struct {
	colorMode ColorMode
	writer    *bufio.Writer

	// Requested position (set by moveTo) and known terminal position
	wantX, wantY int
	cursorX      int
	cursorY      int
	cursorValid  bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, outputBufferSize),
		colorMode: colorMode,
	}
}

// moveTo records the target position; the sequence is written lazily by put
func (o *outputBuffer) moveTo(x, y int) error {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	o.wantX, o.wantY = x, y
	return nil
}

// put writes one cell at the requested position and advances it
func (o *outputBuffer) put(c Cell) error {
	w := o.writer

	if !o.cursorValid || o.wantX != o.cursorX || o.wantY != o.cursorY {
		writeCursorPos(w, o.wantX, o.wantY)
		o.cursorX, o.cursorY = o.wantX, o.wantY
		o.cursorValid = true
	}

	o.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs)

	r := c.Rune
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		w.WriteByte(byte(r))
	} else {
		w.WriteRune(r)
	}

	o.cursorX++
	o.wantX++
	return nil
}

// flush writes queued bytes and resets style so the next frame starts from a known SGR state
func (o *outputBuffer) flush() error {
	w := o.writer
	w.Write(csiSGR0)
	o.lastValid = false
	return w.Flush()
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyleCoalesced(w *bufio.Writer, fg, bg RGB, attr Attr) {
	if o.lastValid && fg == o.lastFg && bg == o.lastBg && attr == o.lastAttr {
		return
	}

	w.Write(csi)
	w.WriteByte('0')
	if attr&AttrBold != 0 {
		w.Write([]byte(";1"))
	}
	if attr&AttrDim != 0 {
		w.Write([]byte(";2"))
	}
	if attr&AttrUnderline != 0 {
		w.Write([]byte(";4"))
	}
	if attr&AttrReverse != 0 {
		w.Write([]byte(";7"))
	}
	w.WriteByte(';')
	o.writeColor(w, csiFgRGB, csiFg256, fg)
	w.WriteByte(';')
	o.writeColor(w, csiBgRGB, csiBg256, bg)
	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeColor writes color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeColor(w *bufio.Writer, rgbPrefix, palettePrefix []byte, c RGB) {
	if o.colorMode == ColorModeTrueColor {
		w.Write(rgbPrefix)
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
		return
	}
	w.Write(palettePrefix)
	writeInt(w, int(RGBTo256(c)))
}

// clear writes a clear screen with specified background
func (o *outputBuffer) clear(bg RGB) error {
	w := o.writer
	w.Write(csiSGR0)
	w.Write(csi)
	o.writeColor(w, csiBgRGB, csiBg256, bg)
	w.WriteByte('m')
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false
	return w.Flush()
}
