package editor

// Style classifies a region write so the terminal backend can pick the
// matching color pair and attributes.
type Style int

const (
	StyleDefault Style = iota
	StyleTitle
	StyleBar
	StyleError
	StyleSuccess
	StyleDim
)

// Surface is the drawing side of the terminal, as seen by the editor core.
// Implementations clip out-of-bounds writes silently rather than erroring,
// so the renderer never has to bounds-check individual writes.
type Surface interface {
	// Size reports the total screen size in character cells.
	Size() (rows, cols int)

	// WriteRegion paints text at (row, col), clipped to the remaining width.
	WriteRegion(row, col int, text string, style Style)

	// MoveCursor places the terminal cursor. Only called with on-screen
	// positions.
	MoveCursor(row, col int)

	Clear()
	Refresh()
}
