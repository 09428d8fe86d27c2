// Package buffer provides the ordered in-memory line sequence being edited.
//
// The buffer is pure data plus mutation operations; it knows nothing about
// the screen or input. It upholds a single invariant: the line sequence is
// never empty. Row and column arguments are expected pre-clamped by the
// caller, which keeps one source of truth for cursor clamping.
package buffer

// Buffer holds the lines of the file being edited, without line terminators,
// and a flag recording whether the contents have changed since the last load
// or save.
type Buffer struct {
	lines    []string
	modified bool
}

// New returns a buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromLines returns a buffer holding a copy of the given lines. An empty
// slice yields a single empty line.
func FromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	return &Buffer{lines: append([]string(nil), lines...)}
}

func (b *Buffer) Line(row int) string { return b.lines[row] }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Lines returns a copy of the line sequence, for saving or rendering.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *Buffer) Modified() bool { return b.modified }

// MarkSaved clears the modified flag after a successful load or save.
func (b *Buffer) MarkSaved() { b.modified = false }

// Insert splices text into the line at row, starting at col.
func (b *Buffer) Insert(row, col int, text string) {
	line := b.lines[row]
	b.lines[row] = line[:col] + text + line[col:]
	b.modified = true
}

// DeleteForward removes the character at col, or merges the next line onto
// the current one when the cursor sits past the last character. At the true
// end of the buffer it is a no-op and the modified flag is untouched.
func (b *Buffer) DeleteForward(row, col int) {
	line := b.lines[row]
	switch {
	case col < len(line):
		b.lines[row] = line[:col] + line[col+1:]
		b.modified = true
	case row < len(b.lines)-1:
		b.lines[row] = line + b.lines[row+1]
		b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
		b.modified = true
	}
}

// DeleteBackward removes the character before col, or merges the current line
// onto the previous one when col is 0. It returns the position the cursor
// should move to. At (0, 0) it is a no-op.
func (b *Buffer) DeleteBackward(row, col int) (int, int) {
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = line[:col-1] + line[col:]
		b.modified = true
		return row, col - 1
	}
	if row > 0 {
		prevLen := len(b.lines[row-1])
		b.lines[row-1] += b.lines[row]
		b.lines = append(b.lines[:row], b.lines[row+1:]...)
		b.modified = true
		return row - 1, prevLen
	}
	return row, col
}

// SplitLine truncates the line at row to [0, col) and inserts the remainder
// as a new line immediately after. It returns the new cursor position, the
// start of the inserted line.
func (b *Buffer) SplitLine(row, col int) (int, int) {
	line := b.lines[row]
	b.lines[row] = line[:col]
	b.lines = append(
		b.lines[:row+1],
		append([]string{line[col:]}, b.lines[row+1:]...)...,
	)
	b.modified = true
	return row + 1, 0
}

// RemoveLine deletes the line at row and returns its text. Removing the last
// line reinstates a single empty line.
func (b *Buffer) RemoveLine(row int) string {
	removed := b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.modified = true
	return removed
}

// InsertLine inserts text as a new line at row.
func (b *Buffer) InsertLine(row int, text string) {
	b.lines = append(
		b.lines[:row],
		append([]string{text}, b.lines[row:]...)...,
	)
	b.modified = true
}
