package editor

// dimensions returns the usable drawing area for the text body: the screen
// minus the four reserved rows (title, message, status, help).
func (e *editorImpl) dimensions() (height, width int) {
	rows, cols := e.screen.Size()
	return rows - 4, cols
}

// moveCursor moves by (dy, dx) with saturating bounds checking. The row is
// clamped into the buffer first, then the column into the new row's line, so
// moving onto a shorter line truncates the column even when dx is 0.
func (e *editorImpl) moveCursor(dy, dx int) {
	e.cursorY = clamp(e.cursorY+dy, 0, e.buf.LineCount()-1)
	e.cursorX = clamp(e.cursorX+dx, 0, len(e.buf.Line(e.cursorY)))
	e.adjustScroll()
}

// moveLeft steps one position left, wrapping to the end of the previous line
// at column 0.
func (e *editorImpl) moveLeft() {
	if e.cursorX == 0 && e.cursorY > 0 {
		e.cursorY--
		e.cursorX = len(e.buf.Line(e.cursorY))
		e.adjustScroll()
		return
	}
	e.moveCursor(0, -1)
}

// moveRight steps one position right, wrapping to the start of the next line
// past the last character.
func (e *editorImpl) moveRight() {
	if e.cursorX == len(e.buf.Line(e.cursorY)) && e.cursorY < e.buf.LineCount()-1 {
		e.cursorY++
		e.cursorX = 0
		e.adjustScroll()
		return
	}
	e.moveCursor(0, 1)
}

func (e *editorImpl) moveToLineStart() {
	e.cursorX = 0
	e.adjustScroll()
}

func (e *editorImpl) moveToLineEnd() {
	e.cursorX = len(e.buf.Line(e.cursorY))
	e.adjustScroll()
}

// adjustScroll resyncs the scroll offsets so the cursor stays inside the
// usable area, jumping straight to the boundary needed rather than scrolling
// smoothly. Called after every motion or text mutation.
func (e *editorImpl) adjustScroll() {
	height, width := e.dimensions()

	if e.cursorY < e.offsetY {
		e.offsetY = e.cursorY
	} else if e.cursorY >= e.offsetY+height {
		e.offsetY = e.cursorY - height + 1
	}

	if e.cursorX < e.offsetX {
		e.offsetX = e.cursorX
	} else if e.cursorX >= e.offsetX+width {
		e.offsetX = e.cursorX - width + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
