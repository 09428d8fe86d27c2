package editor

import (
	"io"
	"strings"

	"atomo"
)

// promptAction says what to do with the confirmed line of input.
type promptAction int

const (
	promptSave promptAction = iota
	promptSearch
	promptSaveThenExit
)

// promptMode captures a single modal line of input on the message row:
// printables append, Backspace edits, Enter confirms, Esc cancels. The
// editor keeps running its normal event loop, so no nested blocking reads.
type promptMode struct {
	*editorImpl
	label   string
	pending string
	action  promptAction
}

func (m *promptMode) handleKey(ev atomo.KeyEvent) error {
	switch ev.Key {
	case atomo.KeyEscape:
		m.clearMessage()
		m.enterEditing()

	case atomo.KeyBackspace:
		if m.pending != "" {
			m.pending = m.pending[:len(m.pending)-1]
		}

	case atomo.KeyEnter:
		return m.confirm(strings.TrimSpace(m.pending))

	case atomo.KeyRune:
		m.pending += string(ev.Rune)
	}
	return nil
}

func (m *promptMode) confirm(text string) error {
	m.enterEditing()
	switch m.action {
	case promptSave:
		if text == "" {
			return nil
		}
		m.saveTo(text)
	case promptSearch:
		if text == "" {
			return nil
		}
		m.runSearch(text)
	case promptSaveThenExit:
		if text != "" && m.saveTo(text) {
			return io.EOF
		}
		// A failed or abandoned save keeps the editor alive; the error
		// message, if any, is already set.
	}
	return nil
}

func (m *promptMode) draw() {
	m.drawBase()
	rows, cols := m.screen.Size()
	m.screen.WriteRegion(rows-3, 0, strings.Repeat(" ", max(cols-1, 0)), StyleBar)
	m.screen.WriteRegion(rows-3, 0, m.label+m.pending, StyleBar)
}

func (m *promptMode) cursorYX() (int, int) {
	rows, cols := m.screen.Size()
	x := len(m.label) + len(m.pending)
	if x > cols-2 {
		x = cols - 2
	}
	return rows - 3, x
}
