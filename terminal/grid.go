package terminal

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/hecto/internal/grapheme"
)

// ErrNotInitialized is returned by Grid drawing calls made outside an
// Init/Fini pair.
var ErrNotInitialized = errors.New("terminal not initialized")

// Grid is an in-memory Terminal. Each row keeps the text most recently
// printed to it, clipped to the grid width.
//
// Grid counts lifecycle and drawing calls so callers can check how often a
// frame was actually painted.
type Grid struct {
	size    Size
	rows    []string
	cursor  Position
	visible bool
	active  bool

	inits   int
	finis   int
	flushes int
	prints  int
}

func NewGrid(size Size) *Grid {
	g := &Grid{}
	g.Resize(size)
	return g
}

// Resize changes the grid size, keeping whatever row text still fits.
func (g *Grid) Resize(size Size) {
	size.Width = max(size.Width, 0)
	size.Height = max(size.Height, 0)

	rows := make([]string, size.Height)
	for i := range rows {
		if i < len(g.rows) {
			rows[i] = runewidth.Truncate(g.rows[i], size.Width, "")
		}
	}
	g.size = size
	g.rows = rows
}

func (g *Grid) Init() error {
	g.inits++
	g.active = true
	return nil
}

func (g *Grid) Fini() error {
	g.finis++
	g.active = false
	return nil
}

// Activate marks the grid as drawable without counting an Init. The Bubble
// Tea front-end uses it because Bubble Tea owns the real terminal.
func (g *Grid) Activate() { g.active = true }

func (g *Grid) Size() (Size, error) { return g.size, nil }

func (g *Grid) MoveCursor(pos Position) error {
	if !g.active {
		return ErrNotInitialized
	}
	g.cursor = pos
	return nil
}

func (g *Grid) HideCursor() error {
	if !g.active {
		return ErrNotInitialized
	}
	g.visible = false
	return nil
}

func (g *Grid) ShowCursor() error {
	if !g.active {
		return ErrNotInitialized
	}
	g.visible = true
	return nil
}

func (g *Grid) PrintRow(row int, text string) error {
	if !g.active {
		return ErrNotInitialized
	}
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	g.rows[row] = runewidth.Truncate(text, g.size.Width, "")
	g.prints++
	return nil
}

func (g *Grid) Flush() error {
	if !g.active {
		return ErrNotInitialized
	}
	g.flushes++
	return nil
}

// Rows returns a copy of the row contents.
func (g *Grid) Rows() []string {
	out := make([]string, len(g.rows))
	copy(out, g.rows)
	return out
}

// Row returns the text of row i, or "" when out of range.
func (g *Grid) Row(i int) string {
	if i < 0 || i >= len(g.rows) {
		return ""
	}
	return g.rows[i]
}

// Cursor returns the cursor position and whether it is visible.
func (g *Grid) Cursor() (Position, bool) { return g.cursor, g.visible }

func (g *Grid) Inits() int   { return g.inits }
func (g *Grid) Finis() int   { return g.finis }
func (g *Grid) Flushes() int { return g.flushes }
func (g *Grid) Prints() int  { return g.prints }

// SplitAtCell splits row around the cluster that covers cell col, padding the
// row with spaces to the grid width first. When col falls past the row
// content the middle part is a single space. A col outside the grid width
// returns the whole row as before and an empty at.
func (g *Grid) SplitAtCell(row, col int) (before, at, after string) {
	text := g.Row(row)
	if col < 0 || col >= g.size.Width {
		return text, "", ""
	}
	if pad := g.size.Width - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	cell := 0
	clusters := grapheme.Split(text)
	for i, c := range clusters {
		w := grapheme.Width(c)
		if col < cell+w {
			return strings.Join(clusters[:i], ""), c, strings.Join(clusters[i+1:], "")
		}
		cell += w
	}
	return text, "", ""
}
