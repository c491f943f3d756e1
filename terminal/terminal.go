package terminal

// Size is the terminal grid in cells.
type Size struct {
	Width  int
	Height int
}

// Position is a zero-based cell coordinate.
type Position struct {
	Row int
	Col int
}

// Terminal is the output side of a display.
//
// Init acquires the display (raw mode, alternate screen) and Fini releases it.
// Drawing calls are buffered until Flush.
type Terminal interface {
	Init() error
	Fini() error
	Size() (Size, error)

	MoveCursor(pos Position) error
	HideCursor() error
	ShowCursor() error

	// PrintRow replaces row with text, clipped to the terminal width. Cells
	// past the end of text are cleared.
	PrintRow(row int, text string) error
	Flush() error
}

// EventSource is the input side of a display. PollEvent blocks until an
// event is available and returns io.EOF once the source is exhausted.
type EventSource interface {
	PollEvent() (Event, error)
}
