package editor

import (
	"bytes"
	"strings"
	"testing"

	"atomo"
	"atomo/internal/buffer"
)

// fakeSurface is an in-memory Surface with the same clipping rules as the
// curses backend, so renderer output can be asserted without a terminal.
type fakeSurface struct {
	rows, cols       int
	grid             [][]byte
	cursorY, cursorX int
	refreshes        int
}

func newFakeSurface(rows, cols int) *fakeSurface {
	s := &fakeSurface{rows: rows, cols: cols}
	s.Clear()
	return s
}

func (s *fakeSurface) Size() (int, int) { return s.rows, s.cols }

func (s *fakeSurface) WriteRegion(row, col int, text string, _ Style) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	if maxLen := s.cols - col - 1; len(text) > maxLen {
		if maxLen <= 0 {
			return
		}
		text = text[:maxLen]
	}
	copy(s.grid[row][col:], text)
}

func (s *fakeSurface) MoveCursor(row, col int) { s.cursorY, s.cursorX = row, col }

func (s *fakeSurface) Clear() {
	s.grid = make([][]byte, s.rows)
	for i := range s.grid {
		s.grid[i] = bytes.Repeat([]byte(" "), s.cols)
	}
}

func (s *fakeSurface) Refresh() { s.refreshes++ }

func (s *fakeSurface) row(i int) string { return strings.TrimRight(string(s.grid[i]), " ") }

// newTestEditor builds an editor over a 24x80 fake screen (20 usable body
// rows) with the given starting lines.
func newTestEditor(lines ...string) (*editorImpl, *fakeSurface) {
	s := newFakeSurface(24, 80)
	e := &editorImpl{screen: s, buf: buffer.FromLines(lines)}
	e.enterEditing()
	e.sync()
	return e, s
}

func press(t *testing.T, e *editorImpl, ev atomo.KeyEvent) {
	t.Helper()
	if err := e.Handle(ev); err != nil {
		t.Fatalf("unexpected error handling %v: %v", ev, err)
	}
}

func key(k atomo.Key) atomo.KeyEvent { return atomo.KeyEvent{Key: k} }

func ch(r rune) atomo.KeyEvent { return atomo.KeyEvent{Key: atomo.KeyRune, Rune: r} }

func typeString(t *testing.T, e *editorImpl, text string) {
	t.Helper()
	for _, r := range text {
		press(t, e, ch(r))
	}
}

func TestCursorClampsAtBufferEdges(t *testing.T) {
	e, _ := newTestEditor("ab")

	press(t, e, key(atomo.KeyUp))
	if e.cursorY != 0 {
		t.Errorf("expected row pinned at 0, got %d", e.cursorY)
	}

	press(t, e, key(atomo.KeyDown))
	if e.cursorY != 0 {
		t.Errorf("expected row pinned at last line 0, got %d", e.cursorY)
	}

	press(t, e, key(atomo.KeyLeft))
	if e.cursorX != 0 {
		t.Errorf("expected column pinned at 0, got %d", e.cursorX)
	}
}

func TestRowMotionShrinksColumn(t *testing.T) {
	e, _ := newTestEditor("hello", "hi")
	e.cursorX = 5

	press(t, e, key(atomo.KeyDown))

	if e.cursorY != 1 || e.cursorX != 2 {
		t.Errorf("expected cursor (1,2) on the shorter line, got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestLeftWrapsToPreviousLineEnd(t *testing.T) {
	e, _ := newTestEditor("hello", "world")
	e.cursorY = 1

	press(t, e, key(atomo.KeyLeft))

	if e.cursorY != 0 || e.cursorX != 5 {
		t.Errorf("expected cursor (0,5), got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestRightWrapsToNextLineStart(t *testing.T) {
	e, _ := newTestEditor("ab", "cd")
	e.cursorX = 2

	press(t, e, key(atomo.KeyRight))

	if e.cursorY != 1 || e.cursorX != 0 {
		t.Errorf("expected cursor (1,0), got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestRightAtBufferEndStaysPut(t *testing.T) {
	e, _ := newTestEditor("ab")
	e.cursorX = 2

	press(t, e, key(atomo.KeyRight))

	if e.cursorY != 0 || e.cursorX != 2 {
		t.Errorf("expected cursor (0,2), got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestHomeAndEndKeys(t *testing.T) {
	e, _ := newTestEditor("hello")
	e.cursorX = 2

	press(t, e, key(atomo.KeyEnd))
	if e.cursorX != 5 {
		t.Errorf("expected column 5 after End, got %d", e.cursorX)
	}

	press(t, e, key(atomo.KeyHome))
	if e.cursorX != 0 {
		t.Errorf("expected column 0 after Home, got %d", e.cursorX)
	}
}

func TestPageMotionUsesVisibleRowCount(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	e, _ := newTestEditor(lines...)

	press(t, e, key(atomo.KeyPageDown))
	if e.cursorY != 20 {
		t.Errorf("expected row 20 after page down on a 20-row body, got %d", e.cursorY)
	}
	if e.offsetY != 1 {
		t.Errorf("expected scroll offset 1, got %d", e.offsetY)
	}

	press(t, e, key(atomo.KeyPageUp))
	if e.cursorY != 0 || e.offsetY != 0 {
		t.Errorf("expected cursor and offset back at 0, got row %d offset %d", e.cursorY, e.offsetY)
	}
}

func TestScrollFollowsCursorDownAndBack(t *testing.T) {
	lines := make([]string, 25)
	for i := range lines {
		lines[i] = "line"
	}
	e, _ := newTestEditor(lines...)

	for i := 0; i < 24; i++ {
		press(t, e, key(atomo.KeyDown))
	}
	if e.cursorY != 24 {
		t.Fatalf("expected row 24, got %d", e.cursorY)
	}
	if e.offsetY != 5 {
		t.Errorf("expected offset 5 to keep row 24 on a 20-row body, got %d", e.offsetY)
	}

	e.moveCursor(-24, 0)
	if e.offsetY != 0 {
		t.Errorf("expected offset back at 0, got %d", e.offsetY)
	}
}

func TestHorizontalScrollFollowsCursor(t *testing.T) {
	e, _ := newTestEditor(strings.Repeat("x", 100))

	press(t, e, key(atomo.KeyEnd))

	if e.cursorX != 100 {
		t.Fatalf("expected column 100, got %d", e.cursorX)
	}
	if e.offsetX != 100-80+1 {
		t.Errorf("expected horizontal offset 21, got %d", e.offsetX)
	}

	press(t, e, key(atomo.KeyHome))
	if e.offsetX != 0 {
		t.Errorf("expected horizontal offset back at 0, got %d", e.offsetX)
	}
}

func TestResyncIsIdempotentWhenCursorVisible(t *testing.T) {
	e, _ := newTestEditor("hello")
	e.moveCursor(0, 3)
	offY, offX := e.offsetY, e.offsetX

	e.moveCursor(0, 0)
	e.adjustScroll()

	if e.offsetY != offY || e.offsetX != offX {
		t.Errorf("offsets changed with cursor already visible: (%d,%d) -> (%d,%d)",
			offY, offX, e.offsetY, e.offsetX)
	}
}

func TestEnterSplitsLineAtCursor(t *testing.T) {
	e, _ := newTestEditor("hello", "world")
	e.cursorX = 5

	press(t, e, key(atomo.KeyEnter))

	want := []string{"hello", "", "world"}
	got := e.buf.Lines()
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("expected %v, got %v", want, got)
	}
	if e.cursorY != 1 || e.cursorX != 0 {
		t.Errorf("expected cursor (1,0), got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestBackspaceTwiceOnTwoCharLine(t *testing.T) {
	e, _ := newTestEditor("ab")
	e.cursorX = 2

	press(t, e, key(atomo.KeyBackspace))
	press(t, e, key(atomo.KeyBackspace))

	if e.buf.LineCount() != 1 || e.buf.Line(0) != "" {
		t.Errorf("expected a single empty line, got %v", e.buf.Lines())
	}
	if e.cursorY != 0 || e.cursorX != 0 {
		t.Errorf("expected cursor (0,0), got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestDeleteAtBufferEndIsNoop(t *testing.T) {
	e, _ := newTestEditor("ab")
	e.cursorX = 2

	press(t, e, key(atomo.KeyDelete))

	if e.buf.Line(0) != "ab" {
		t.Errorf("expected untouched line, got %q", e.buf.Line(0))
	}
	if e.buf.Modified() {
		t.Error("no-op delete should leave the modified flag unset")
	}
}

func TestPrintableInsertAdvancesCursor(t *testing.T) {
	e, _ := newTestEditor()

	typeString(t, e, "hi")

	if e.buf.Line(0) != "hi" {
		t.Errorf("expected %q, got %q", "hi", e.buf.Line(0))
	}
	if e.cursorX != 2 {
		t.Errorf("expected column 2, got %d", e.cursorX)
	}
	if !e.buf.Modified() {
		t.Error("typing should set the modified flag")
	}
}

func TestTabInsertsFourSpaces(t *testing.T) {
	e, _ := newTestEditor("x")

	press(t, e, key(atomo.KeyTab))

	if e.buf.Line(0) != "    x" {
		t.Errorf("expected four leading spaces, got %q", e.buf.Line(0))
	}
	if e.cursorX != 4 {
		t.Errorf("expected column 4, got %d", e.cursorX)
	}
}

func TestBufferNeverEmptyAndCursorInBounds(t *testing.T) {
	e, _ := newTestEditor("a", "b")

	events := []atomo.KeyEvent{
		key(atomo.KeyCutLine), key(atomo.KeyCutLine), key(atomo.KeyCutLine),
		key(atomo.KeyBackspace), key(atomo.KeyDelete), key(atomo.KeyEnter),
		key(atomo.KeyUp), key(atomo.KeyDown), key(atomo.KeyLeft), key(atomo.KeyRight),
		ch('z'), key(atomo.KeyBackspace), key(atomo.KeyPageDown), key(atomo.KeyPageUp),
	}
	for _, ev := range events {
		press(t, e, ev)
		if e.buf.LineCount() < 1 {
			t.Fatalf("buffer emptied after %v", ev)
		}
		if e.cursorY < 0 || e.cursorY >= e.buf.LineCount() {
			t.Fatalf("cursor row %d out of range after %v", e.cursorY, ev)
		}
		if e.cursorX < 0 || e.cursorX > len(e.buf.Line(e.cursorY)) {
			t.Fatalf("cursor column %d out of range after %v", e.cursorX, ev)
		}
	}
}

func TestDrawShowsTitleBodyStatusAndLegend(t *testing.T) {
	e, s := newTestEditor("hello")
	e.sync()

	if !strings.Contains(s.row(0), "GNU nano clone - Atomo") {
		t.Errorf("title row missing editor name: %q", s.row(0))
	}
	if !strings.Contains(s.row(0), "[New Buffer]") {
		t.Errorf("title row missing buffer name: %q", s.row(0))
	}
	if s.row(1) != "hello" {
		t.Errorf("body row 1 = %q, want %q", s.row(1), "hello")
	}
	if s.row(2) != "~" {
		t.Errorf("expected past-end marker on row 2, got %q", s.row(2))
	}
	if !strings.Contains(s.row(22), "Line 1/1  Col 1") {
		t.Errorf("status row wrong: %q", s.row(22))
	}
	if !strings.Contains(s.row(23), "^X Exit") || !strings.Contains(s.row(23), "^W Where Is") {
		t.Errorf("help row missing shortcuts: %q", s.row(23))
	}
	if s.cursorY != 1 || s.cursorX != 0 {
		t.Errorf("terminal cursor at (%d,%d), want (1,0)", s.cursorY, s.cursorX)
	}
}

func TestDrawAppliesHorizontalOffset(t *testing.T) {
	e, s := newTestEditor("abcdefgh")
	e.offsetX = 3
	e.cursorX = 3
	e.sync()

	if s.row(1) != "defgh" {
		t.Errorf("expected offset body %q, got %q", "defgh", s.row(1))
	}
}

func TestModifiedMarkerInTitle(t *testing.T) {
	e, s := newTestEditor("x")
	e.filename = "f.txt"
	typeString(t, e, "y")

	if !strings.Contains(s.row(0), "File: f.txt *") {
		t.Errorf("expected modified marker in title, got %q", s.row(0))
	}
}
