// Package search implements the wrap-around substring search over the line
// buffer. The search is case-sensitive and seeded from the cursor position:
// the origin line is scanned strictly after the cursor, then the remaining
// lines in order, then the lines before the origin.
//
// Note that the wrap pass does not revisit the origin line, so a match
// sitting earlier on that line than the cursor, with no occurrence anywhere
// else, reports not-found. That mirrors the behavior this editor clones and
// is kept as-is; a fix would rescan line fromRow up to fromCol after the
// wrap pass.
package search

import (
	"strings"

	"atomo/internal/buffer"
)

// Result is a successful match position. Wrapped records whether the match
// was reached by wrapping past the end of the buffer, for status messaging.
type Result struct {
	Row, Col int
	Wrapped  bool
}

// Find locates the first occurrence of query after (fromRow, fromCol). The
// second return value is false when the query is empty or absent.
func Find(buf *buffer.Buffer, query string, fromRow, fromCol int) (Result, bool) {
	if query == "" {
		return Result{}, false
	}

	// Origin line, strictly after the cursor.
	start := fromCol + 1
	if line := buf.Line(fromRow); start <= len(line) {
		if pos := strings.Index(line[start:], query); pos >= 0 {
			return Result{Row: fromRow, Col: start + pos}, true
		}
	}

	// Remaining lines, leftmost match per line.
	for row := fromRow + 1; row < buf.LineCount(); row++ {
		if pos := strings.Index(buf.Line(row), query); pos >= 0 {
			return Result{Row: row, Col: pos}, true
		}
	}

	// Wrap to the top, stopping before the origin line.
	for row := 0; row < fromRow; row++ {
		if pos := strings.Index(buf.Line(row), query); pos >= 0 {
			return Result{Row: row, Col: pos, Wrapped: true}, true
		}
	}

	return Result{}, false
}
