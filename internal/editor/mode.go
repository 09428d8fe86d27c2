package editor

import "atomo"

// editorMode is one state of the input state machine. Each mode decides what
// a key event means, how the screen looks while the mode is active, and
// where the terminal cursor sits.
type editorMode interface {
	handleKey(ev atomo.KeyEvent) error
	draw()

	// cursorYX returns the screen position for the terminal cursor. An
	// off-screen position hides the cursor placement for this frame.
	cursorYX() (int, int)
}
