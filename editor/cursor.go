package editor

import "github.com/iw2rmb/hecto/terminal"

// Location is the cursor cell relative to the top-left of the viewport.
// It is not clamped to the length of the line under it.
type Location struct {
	X int
	Y int
}

// Nav is a cursor movement.
type Nav uint8

const (
	NavNone Nav = iota
	NavUp
	NavDown
	NavLeft
	NavRight
	NavPageUp
	NavPageDown
	NavHome
	NavEnd
)

// Navigate applies nav to loc and returns the new location and scroll offset.
//
// Moving down from the last row scrolls the document by one line; moving up
// from the first row scrolls back until offsetY reaches 0. Every other move
// stays within the viewport. The result is always inside a size.Width by
// size.Height grid, and coordinates never go negative on an empty grid.
func Navigate(loc Location, offsetY int, nav Nav, size terminal.Size) (Location, int) {
	lastX := satSub(size.Width, 1)
	lastY := satSub(size.Height, 1)

	switch nav {
	case NavUp:
		if loc.Y > 0 {
			loc.Y--
		} else if offsetY > 0 {
			offsetY--
		}
	case NavDown:
		if loc.Y < lastY {
			loc.Y++
		} else {
			offsetY++
		}
	case NavLeft:
		loc.X = satSub(loc.X, 1)
	case NavRight:
		loc.X = min(lastX, loc.X+1)
	case NavPageUp:
		loc.Y = 0
	case NavPageDown:
		loc.Y = lastY
	case NavHome:
		loc.X = 0
	case NavEnd:
		loc.X = lastX
	}
	return clampLocation(loc, size), max(offsetY, 0)
}

func clampLocation(loc Location, size terminal.Size) Location {
	loc.X = max(0, min(loc.X, satSub(size.Width, 1)))
	loc.Y = max(0, min(loc.Y, satSub(size.Height, 1)))
	return loc
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
