package buffer

import "fmt"

// InsertChar inserts ch before column col of line.
//
// An out-of-range line is a no-op. A column outside [0, len(line)] is clamped
// or rejected according to the document's OffsetPolicy.
func (d *Document) InsertChar(line, col int, ch rune) error {
	if line < 0 || line >= len(d.lines) {
		return nil
	}
	cur := d.lines[line]
	col, err := d.normalizeCol(line, col, len(cur))
	if err != nil {
		return err
	}

	next := make([]rune, 0, len(cur)+1)
	next = append(next, cur[:col]...)
	next = append(next, ch)
	next = append(next, cur[col:]...)
	d.lines[line] = next
	d.version++
	return nil
}

// DeleteChar removes the rune at column col of line.
//
// Out-of-range lines and col == len(line) are no-ops; Backspace at the start
// of a line never joins it with the previous one.
func (d *Document) DeleteChar(line, col int) error {
	if line < 0 || line >= len(d.lines) {
		return nil
	}
	cur := d.lines[line]
	if col >= 0 && col < len(cur) {
		d.lines[line] = append(cur[:col:col], cur[col+1:]...)
		d.version++
		return nil
	}
	if col == len(cur) || d.policy == OffsetClamp {
		return nil
	}
	return fmt.Errorf("delete at %d:%d (line length %d): %w", line, col, len(cur), ErrInvalidOffset)
}

func (d *Document) normalizeCol(line, col, n int) (int, error) {
	if col >= 0 && col <= n {
		return col, nil
	}
	if d.policy == OffsetError {
		return 0, fmt.Errorf("insert at %d:%d (line length %d): %w", line, col, n, ErrInvalidOffset)
	}
	return clampInt(col, 0, n), nil
}
