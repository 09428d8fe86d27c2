package editor

import (
	"fmt"

	"atomo"
	"atomo/internal/buffer"
	"atomo/internal/file"
	"atomo/internal/search"
)

// MessageKind classifies the status message shown under the text body.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
	MessageSuccess
)

// New builds an editor over the given surface. An empty path starts an
// unnamed blank buffer; a path naming a missing file starts a named blank
// buffer. Read failures are not fatal - the editor starts blank with an
// error message, like the program it clones.
func New(screen Surface, path string) atomo.Editor {
	e := &editorImpl{screen: screen, filename: path}

	switch {
	case path == "":
		e.buf = buffer.New()
	default:
		lines, existed, err := file.Load(path)
		switch {
		case err != nil:
			e.buf = buffer.New()
			e.setMessage(fmt.Sprintf("Error reading %s: %v", path, err), MessageError)
		case !existed:
			e.buf = buffer.New()
			e.setMessage(fmt.Sprintf("New File: %s", path), MessageInfo)
		default:
			e.buf = buffer.FromLines(lines)
			e.setMessage(fmt.Sprintf("Read %d lines from %s", e.buf.LineCount(), path), MessageSuccess)
		}
	}

	e.enterEditing()
	e.sync()
	return e
}

type editorImpl struct {
	screen Surface

	buf      *buffer.Buffer
	filename string

	// The cursor is in buffer coordinates; the offsets mark the first
	// visible buffer row and column.
	cursorY, cursorX int
	offsetY, offsetX int

	// Single-line cut buffer. Overwritten by cut, read (not cleared) by
	// paste.
	clipboard string

	msg     string
	msgKind MessageKind

	activeMode editorMode
}

var _ atomo.Editor = (*editorImpl)(nil)

func (e *editorImpl) Handle(ev atomo.KeyEvent) error {
	if err := e.activeMode.handleKey(ev); err != nil {
		return err
	}
	e.sync()
	return nil
}

func (e *editorImpl) enterEditing() {
	e.activeMode = &editingMode{editorImpl: e}
}

func (e *editorImpl) enterPrompt(label, seed string, action promptAction) {
	e.activeMode = &promptMode{editorImpl: e, label: label, pending: seed, action: action}
}

func (e *editorImpl) enterConfirmExit() {
	e.activeMode = &confirmMode{editorImpl: e}
}

func (e *editorImpl) enterHelp() {
	e.activeMode = &helpMode{editorImpl: e}
}

func (e *editorImpl) setMessage(text string, kind MessageKind) {
	e.msg = text
	e.msgKind = kind
}

func (e *editorImpl) clearMessage() {
	e.msg = ""
	e.msgKind = MessageInfo
}

// sync repaints the whole screen for the active mode and places the terminal
// cursor, once per handled key event.
func (e *editorImpl) sync() {
	e.screen.Clear()
	e.activeMode.draw()
	if y, x := e.activeMode.cursorYX(); e.onScreen(y, x) {
		e.screen.MoveCursor(y, x)
	}
	e.screen.Refresh()
}

func (e *editorImpl) onScreen(y, x int) bool {
	rows, cols := e.screen.Size()
	return y >= 0 && y < rows && x >= 0 && x < cols
}

// saveTo writes the buffer to path. On success the buffer adopts path as its
// filename and drops the modified flag; on failure the editor state is left
// untouched beyond the error message.
func (e *editorImpl) saveTo(path string) bool {
	if err := file.Save(path, e.buf.Lines()); err != nil {
		e.setMessage(fmt.Sprintf("Error writing %s: %v", path, err), MessageError)
		return false
	}
	e.filename = path
	e.buf.MarkSaved()
	e.setMessage(fmt.Sprintf("Wrote %d lines to %s", e.buf.LineCount(), path), MessageSuccess)
	return true
}

// runSearch moves the cursor to the next occurrence of query, wrapping past
// the end of the buffer if needed.
func (e *editorImpl) runSearch(query string) {
	res, found := search.Find(e.buf, query, e.cursorY, e.cursorX)
	if !found {
		e.setMessage(fmt.Sprintf("'%s' not found", query), MessageError)
		return
	}
	e.cursorY, e.cursorX = res.Row, res.Col
	if res.Wrapped {
		e.setMessage(fmt.Sprintf("Found '%s' (wrapped)", query), MessageSuccess)
	} else {
		e.setMessage(fmt.Sprintf("Found '%s'", query), MessageSuccess)
	}
	e.adjustScroll()
}
