// Package diffview classifies the lines of diff text for colouring.
package diffview

import (
	"bufio"
	"strings"
)

// Kind is the semantic type of a diff line.
type Kind int

const (
	KindContext Kind = iota
	KindAdd
	KindDel
	KindHunk
	KindMeta
)

// Line is one display line of a diff.
type Line struct {
	Text string
	Kind Kind
}

// Classify returns the kind of a single diff line. File headers are meta;
// "+++"/"---" are checked before single-character prefixes.
func Classify(line string) Kind {
	switch {
	case strings.HasPrefix(line, "+++ "), strings.HasPrefix(line, "--- "),
		strings.HasPrefix(line, "diff --git "), strings.HasPrefix(line, "index "),
		strings.HasPrefix(line, "new file mode"), strings.HasPrefix(line, "deleted file mode"),
		strings.HasPrefix(line, "New file: "), strings.HasPrefix(line, "Binary files "):
		return KindMeta
	case strings.HasPrefix(line, "@@"):
		return KindHunk
	case strings.HasPrefix(line, "+"):
		return KindAdd
	case strings.HasPrefix(line, "-"):
		return KindDel
	}
	return KindContext
}

// maxLineSize bounds a single diff line.
var maxLineSize = 10 * 1024 * 1024

// Parse splits diff text into classified lines. Tabs are expanded so the
// renderer can measure widths. If a line is too long to scan, the lines read
// so far are kept and a meta line reports where the diff was cut.
func Parse(text string) []Line {
	s := bufio.NewScanner(strings.NewReader(text))
	s.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)

	lines := make([]Line, 0, 256)
	for s.Scan() {
		l := strings.ReplaceAll(s.Text(), "\t", "    ")
		lines = append(lines, Line{Text: l, Kind: Classify(l)})
	}
	if err := s.Err(); err != nil {
		lines = append(lines, Line{Text: "diff truncated: " + err.Error(), Kind: KindMeta})
	}
	return lines
}
