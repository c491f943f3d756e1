// Package terminal defines the capabilities the editor needs from a
// character-cell display and the input events it consumes.
//
// Three providers are included: Screen drives a real terminal through tcell,
// Grid is an in-memory cell grid used by the Bubble Tea front-end and tests,
// and EventQueue replays a scripted sequence of events.
package terminal
