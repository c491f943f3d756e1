// Package editor runs the hecto editing loop: it owns the cursor location and
// the vertical scroll offset, dispatches input events through a KeyMap, and
// asks the view to redraw.
//
// The same state machine backs two front-ends. Editor.Run drives a
// terminal.Terminal directly (tcell in production), while Program adapts an
// Editor to a Bubble Tea model rendering into an in-memory grid.
package editor
