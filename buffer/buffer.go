package buffer

import "strings"

// Document is the in-memory text being edited.
type Document struct {
	lines   [][]rune
	version uint64
	policy  OffsetPolicy
}

// New builds a document from text using the same line splitting as Load.
func New(text string) *Document {
	return &Document{lines: splitLines(text)}
}

// Text joins all lines with '\n'. No trailing newline is added.
func (d *Document) Text() string {
	if len(d.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increases on every text mutation and successful load.
func (d *Document) Version() uint64 { return d.version }

func (d *Document) IsEmpty() bool { return len(d.lines) == 0 }

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the text of line i, or false when i is out of range.
func (d *Document) Line(i int) (string, bool) {
	if i < 0 || i >= len(d.lines) {
		return "", false
	}
	return string(d.lines[i]), true
}

// LineLen returns the rune length of line i, or 0 when i is out of range.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.lines) {
		return 0
	}
	return len(d.lines[i])
}

func (d *Document) SetOffsetPolicy(p OffsetPolicy) { d.policy = p }

// splitLines breaks text on '\n' and drops one trailing '\r' per line. A
// final newline terminates the last line rather than opening an empty one,
// so "" has no lines and "a\n" has one.
func splitLines(text string) [][]rune {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(strings.TrimSuffix(s, "\r")))
	}
	return lines
}
