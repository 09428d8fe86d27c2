package editor

import (
	"io"

	"atomo"
)

const (
	savePromptLabel   = "File Name to Write: "
	searchPromptLabel = "Search: "
)

// editingMode is the default state: keys edit the buffer or move the cursor,
// and the command keys branch into the modal states.
type editingMode struct {
	*editorImpl
}

func (m *editingMode) handleKey(ev atomo.KeyEvent) error {
	switch ev.Key {
	case atomo.KeyExit:
		// Exit immediately when there is nothing to lose; otherwise ask.
		if !m.buf.Modified() {
			return io.EOF
		}
		m.enterConfirmExit()

	case atomo.KeySave:
		m.enterPrompt(savePromptLabel, m.filename, promptSave)

	case atomo.KeyFind:
		m.enterPrompt(searchPromptLabel, "", promptSearch)

	case atomo.KeyCutLine:
		m.clearMessage()
		m.clipboard = m.buf.RemoveLine(m.cursorY)
		if m.cursorY >= m.buf.LineCount() {
			m.cursorY = m.buf.LineCount() - 1
		}
		m.cursorX = 0
		m.adjustScroll()
		m.setMessage("Cut line", MessageInfo)

	case atomo.KeyPasteLine:
		if m.clipboard == "" {
			break
		}
		m.clearMessage()
		m.buf.InsertLine(m.cursorY, m.clipboard)
		m.adjustScroll()
		m.setMessage("Pasted line", MessageInfo)

	case atomo.KeyHelp:
		m.enterHelp()

	case atomo.KeyUp:
		m.clearMessage()
		m.moveCursor(-1, 0)

	case atomo.KeyDown:
		m.clearMessage()
		m.moveCursor(1, 0)

	case atomo.KeyLeft:
		m.clearMessage()
		m.moveLeft()

	case atomo.KeyRight:
		m.clearMessage()
		m.moveRight()

	case atomo.KeyPageUp:
		m.clearMessage()
		height, _ := m.dimensions()
		m.moveCursor(-height, 0)

	case atomo.KeyPageDown:
		m.clearMessage()
		height, _ := m.dimensions()
		m.moveCursor(height, 0)

	case atomo.KeyHome, atomo.KeyLineStart:
		m.clearMessage()
		m.moveToLineStart()

	case atomo.KeyEnd, atomo.KeyLineEnd:
		m.clearMessage()
		m.moveToLineEnd()

	case atomo.KeyEnter:
		m.clearMessage()
		m.cursorY, m.cursorX = m.buf.SplitLine(m.cursorY, m.cursorX)
		m.adjustScroll()

	case atomo.KeyBackspace:
		m.clearMessage()
		m.cursorY, m.cursorX = m.buf.DeleteBackward(m.cursorY, m.cursorX)
		m.adjustScroll()

	case atomo.KeyDelete:
		m.clearMessage()
		m.buf.DeleteForward(m.cursorY, m.cursorX)
		m.adjustScroll()

	case atomo.KeyTab:
		m.clearMessage()
		m.insertText("    ")

	case atomo.KeyRune:
		m.clearMessage()
		m.insertText(string(ev.Rune))
	}
	return nil
}

func (m *editingMode) insertText(text string) {
	m.buf.Insert(m.cursorY, m.cursorX, text)
	m.cursorX += len(text)
	m.adjustScroll()
}

func (m *editingMode) draw() {
	m.drawBase()
}

func (m *editingMode) cursorYX() (int, int) {
	return m.cursorY - m.offsetY + 1, m.cursorX - m.offsetX
}
