package editor

import (
	"fmt"
	"strings"
)

const titleText = "  GNU nano clone - Atomo"

var helpBarShortcuts = [...][2]string{
	{"^X", "Exit"}, {"^O", "Save"}, {"^W", "Where Is"},
	{"^K", "Cut"}, {"^U", "Paste"}, {"^G", "Help"},
}

// drawBase paints the regions every non-help mode shares: title bar, text
// body, status message, position indicator, and the shortcut legend.
func (e *editorImpl) drawBase() {
	e.drawTitleBar()
	e.drawBuffer()
	e.drawMessage()
	e.drawStatusBar()
	e.drawHelpBar()
}

func (e *editorImpl) drawTitleBar() {
	_, cols := e.screen.Size()
	e.screen.WriteRegion(0, 0, strings.Repeat(" ", max(cols-1, 0)), StyleTitle)
	e.screen.WriteRegion(0, 0, titleText, StyleTitle)

	name := e.filename
	if name == "" {
		name = "[New Buffer]"
	}
	mod := ""
	if e.buf.Modified() {
		mod = " *"
	}
	fileStr := fmt.Sprintf(" File: %s%s ", name, mod)
	if len(fileStr) < cols-len(titleText) {
		e.screen.WriteRegion(0, (cols-len(fileStr))/2, fileStr, StyleTitle)
	}
}

func (e *editorImpl) drawBuffer() {
	height, width := e.dimensions()
	for screenY := 0; screenY < height; screenY++ {
		bufferY := screenY + e.offsetY
		if bufferY >= e.buf.LineCount() {
			// Past the end of the file.
			e.screen.WriteRegion(screenY+1, 0, "~", StyleDim)
			continue
		}
		line := e.buf.Line(bufferY)
		if e.offsetX >= len(line) {
			continue
		}
		end := min(e.offsetX+width, len(line))
		e.screen.WriteRegion(screenY+1, 0, line[e.offsetX:end], StyleDefault)
	}
}

func (e *editorImpl) drawMessage() {
	if e.msg == "" {
		return
	}
	rows, _ := e.screen.Size()
	style := StyleDefault
	switch e.msgKind {
	case MessageError:
		style = StyleError
	case MessageSuccess:
		style = StyleSuccess
	}
	e.screen.WriteRegion(rows-3, 0, " "+e.msg, style)
}

func (e *editorImpl) drawStatusBar() {
	rows, cols := e.screen.Size()
	left := fmt.Sprintf(" Line %d/%d  Col %d ", e.cursorY+1, e.buf.LineCount(), e.cursorX+1)
	e.screen.WriteRegion(rows-2, 0, strings.Repeat(" ", max(cols-1, 0)), StyleBar)
	e.screen.WriteRegion(rows-2, 0, left, StyleBar)
}

func (e *editorImpl) drawHelpBar() {
	rows, cols := e.screen.Size()
	var legend strings.Builder
	legend.WriteString("  ")
	for _, s := range helpBarShortcuts {
		fmt.Fprintf(&legend, "%s %s   ", s[0], s[1])
	}
	e.screen.WriteRegion(rows-1, 0, strings.Repeat(" ", max(cols-1, 0)), StyleBar)
	e.screen.WriteRegion(rows-1, 0, legend.String(), StyleBar)
}
