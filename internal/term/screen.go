// Package term implements the editor's terminal surface on goncurses: region
// painting with color pairs, cursor placement, and decoding raw curses keys
// into editor key events.
package term

import (
	gc "github.com/gbin/goncurses"

	"atomo"
	"atomo/internal/editor"
)

// Color pairs.
const (
	colorPairBar     = 1 // status/help/prompt bars: black on white
	colorPairTitle   = 2 // title bar: white on blue
	colorPairError   = 3 // red on terminal default
	colorPairSuccess = 4 // green on terminal default
)

// Control codes recognized in the editing command set.
const (
	ctrlA = 1
	ctrlE = 5
	ctrlG = 7
	ctrlK = 11
	ctrlO = 15
	ctrlU = 21
	ctrlW = 23
	ctrlX = 24
)

// Screen adapts a goncurses window to the editor's Surface, and reads key
// events from it. The caller owns curses setup and teardown.
type Screen struct {
	window *gc.Window
}

var _ editor.Surface = (*Screen)(nil)

// NewScreen wires the window and installs the color pairs. Requires
// gc.StartColor to have been called.
func NewScreen(window *gc.Window) (*Screen, error) {
	if err := gc.UseDefaultColors(); err != nil {
		return nil, err
	}
	pairs := []struct {
		id     int16
		fg, bg int16
	}{
		{colorPairBar, gc.C_BLACK, gc.C_WHITE},
		{colorPairTitle, gc.C_WHITE, gc.C_BLUE},
		{colorPairError, gc.C_RED, -1},
		{colorPairSuccess, gc.C_GREEN, -1},
	}
	for _, p := range pairs {
		if err := gc.InitPair(p.id, p.fg, p.bg); err != nil {
			return nil, err
		}
	}
	return &Screen{window: window}, nil
}

func (s *Screen) Size() (int, int) {
	return s.window.MaxYX()
}

// WriteRegion clips text to the remaining width and silently drops writes
// that start off-screen, so drawing at the screen edge never errors.
func (s *Screen) WriteRegion(row, col int, text string, style editor.Style) {
	maxY, maxX := s.window.MaxYX()
	if row < 0 || row >= maxY || col < 0 || col >= maxX {
		return
	}
	if maxLen := maxX - col - 1; len(text) > maxLen {
		if maxLen <= 0 {
			return
		}
		text = text[:maxLen]
	}
	if attr := styleAttr(style); attr != 0 {
		s.window.AttrOn(attr)
		defer s.window.AttrOff(attr)
	}
	s.window.MovePrint(row, col, text)
}

func (s *Screen) MoveCursor(row, col int) {
	s.window.Move(row, col)
}

func (s *Screen) Clear() {
	s.window.Erase()
}

func (s *Screen) Refresh() {
	s.window.Refresh()
}

func styleAttr(style editor.Style) gc.Char {
	switch style {
	case editor.StyleTitle:
		return gc.ColorPair(colorPairTitle) | gc.A_BOLD
	case editor.StyleBar:
		return gc.ColorPair(colorPairBar)
	case editor.StyleError:
		return gc.ColorPair(colorPairError) | gc.A_BOLD
	case editor.StyleSuccess:
		return gc.ColorPair(colorPairSuccess) | gc.A_BOLD
	case editor.StyleDim:
		return gc.A_DIM
	default:
		return 0
	}
}

// ReadKey blocks for the next key and decodes it. Unrecognized keys come
// back as KeyUnknown, which every editor mode ignores.
func (s *Screen) ReadKey() atomo.KeyEvent {
	key := s.window.GetChar()
	switch key {
	case ctrlX:
		return atomo.KeyEvent{Key: atomo.KeyExit}
	case ctrlO:
		return atomo.KeyEvent{Key: atomo.KeySave}
	case ctrlW:
		return atomo.KeyEvent{Key: atomo.KeyFind}
	case ctrlK:
		return atomo.KeyEvent{Key: atomo.KeyCutLine}
	case ctrlU:
		return atomo.KeyEvent{Key: atomo.KeyPasteLine}
	case ctrlG:
		return atomo.KeyEvent{Key: atomo.KeyHelp}
	case ctrlA:
		return atomo.KeyEvent{Key: atomo.KeyLineStart}
	case ctrlE:
		return atomo.KeyEvent{Key: atomo.KeyLineEnd}
	case 27: // escape; goncurses has no named constant for it
		return atomo.KeyEvent{Key: atomo.KeyEscape}
	case gc.KEY_UP:
		return atomo.KeyEvent{Key: atomo.KeyUp}
	case gc.KEY_DOWN:
		return atomo.KeyEvent{Key: atomo.KeyDown}
	case gc.KEY_LEFT:
		return atomo.KeyEvent{Key: atomo.KeyLeft}
	case gc.KEY_RIGHT:
		return atomo.KeyEvent{Key: atomo.KeyRight}
	case gc.KEY_HOME:
		return atomo.KeyEvent{Key: atomo.KeyHome}
	case gc.KEY_END:
		return atomo.KeyEvent{Key: atomo.KeyEnd}
	case gc.KEY_PAGEUP:
		return atomo.KeyEvent{Key: atomo.KeyPageUp}
	case gc.KEY_PAGEDOWN:
		return atomo.KeyEvent{Key: atomo.KeyPageDown}
	case gc.KEY_ENTER, gc.KEY_RETURN, 13:
		return atomo.KeyEvent{Key: atomo.KeyEnter}
	case gc.KEY_BACKSPACE, 127, 8:
		return atomo.KeyEvent{Key: atomo.KeyBackspace}
	case gc.KEY_DC:
		return atomo.KeyEvent{Key: atomo.KeyDelete}
	case gc.KEY_TAB:
		return atomo.KeyEvent{Key: atomo.KeyTab}
	}
	if key >= 32 && key <= 126 {
		return atomo.KeyEvent{Key: atomo.KeyRune, Rune: rune(key)}
	}
	return atomo.KeyEvent{Key: atomo.KeyUnknown}
}
