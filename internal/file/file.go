// Package file reads and writes the edited file as an ordered line sequence.
package file

import (
	"bytes"
	"os"
	"strings"
)

// rw-rw-rw-, before umask.
const readWriteFileMode = 0666

// Load reads path and splits its contents on line boundaries. A missing file
// is not an error: it yields (nil, false, nil) and the caller starts a fresh
// buffer. An existing empty file yields a single empty line.
func Load(path string) ([]string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return splitLines(string(data)), true, nil
}

// Save joins lines with '\n' and writes them to path in a single write. A
// trailing terminator is written only when the final line is non-empty, so a
// buffer whose last line is empty round-trips without that line - the same
// quirk as the editor this one clones.
func Save(path string, lines []string) error {
	var contents bytes.Buffer
	contents.WriteString(strings.Join(lines, "\n"))
	if len(lines) > 0 && lines[len(lines)-1] != "" {
		contents.WriteString("\n")
	}
	return os.WriteFile(path, contents.Bytes(), readWriteFileMode)
}

// splitLines splits on '\n', dropping the empty element a trailing
// terminator would otherwise produce.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
