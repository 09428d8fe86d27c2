package editor

import (
	"io"
	"strings"

	"atomo"
)

const confirmExitQuestion = "Save modified buffer? (Y/N/C for cancel) "

// confirmMode asks for an explicit answer before discarding a modified
// buffer: Y saves first (via the filename prompt), N exits unsaved, C or Esc
// returns to editing. Every other key is ignored.
type confirmMode struct {
	*editorImpl
}

func (m *confirmMode) handleKey(ev atomo.KeyEvent) error {
	if ev.Key == atomo.KeyEscape {
		m.enterEditing()
		return nil
	}
	if ev.Key != atomo.KeyRune {
		return nil
	}
	switch ev.Rune {
	case 'y', 'Y':
		m.enterPrompt(savePromptLabel, m.filename, promptSaveThenExit)
	case 'n', 'N':
		return io.EOF
	case 'c', 'C':
		m.enterEditing()
	}
	return nil
}

func (m *confirmMode) draw() {
	m.drawBase()
	rows, cols := m.screen.Size()
	m.screen.WriteRegion(rows-3, 0, strings.Repeat(" ", max(cols-1, 0)), StyleBar)
	m.screen.WriteRegion(rows-3, 0, confirmExitQuestion, StyleBar)
}

func (m *confirmMode) cursorYX() (int, int) {
	rows, cols := m.screen.Size()
	x := len(confirmExitQuestion)
	if x > cols-2 {
		x = cols - 2
	}
	return rows - 3, x
}
