package editor

import "atomo"

var helpText = []string{
	"Atomo Help - A nano clone",
	"",
	"Main commands:",
	"  Ctrl+X  Exit (prompts to save if modified)",
	"  Ctrl+O  Save file (Write Out)",
	"  Ctrl+W  Search (Where Is)",
	"  Ctrl+K  Cut line",
	"  Ctrl+U  Paste line",
	"  Ctrl+G  Show this help",
	"",
	"Navigation:",
	"  Arrow Keys  Move cursor",
	"  Home/Ctrl+A Beginning of line",
	"  End/Ctrl+E  End of line",
	"  Page Up/Down Scroll page",
	"",
	"Editing:",
	"  Enter      Insert new line",
	"  Backspace  Delete character before cursor",
	"  Delete     Delete character at cursor",
	"",
	"Press any key to continue...",
}

// helpMode paints the full-screen shortcut legend; the next key, whatever it
// is, returns to editing.
type helpMode struct {
	*editorImpl
}

func (m *helpMode) handleKey(atomo.KeyEvent) error {
	m.enterEditing()
	return nil
}

func (m *helpMode) draw() {
	rows, _ := m.screen.Size()
	for i, line := range helpText {
		if i < rows-1 {
			m.screen.WriteRegion(i, 2, line, StyleDefault)
		}
	}
}

func (m *helpMode) cursorYX() (int, int) {
	// Off-screen: no meaningful cursor position while help is up.
	return -1, -1
}
