// Package view maps document lines onto terminal rows.
//
// The view never owns the vertical scroll offset: every call that depends on
// it takes offsetY from the caller. It remembers the offset and document
// version of the last painted frame only to skip frames that would not change.
package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/iw2rmb/hecto"
	"github.com/iw2rmb/hecto/buffer"
	"github.com/iw2rmb/hecto/internal/log"
	"github.com/iw2rmb/hecto/terminal"
)

// Placeholder marks terminal rows below the end of the document.
const Placeholder = "~"

type View struct {
	doc  *buffer.Document
	size terminal.Size

	needsRedraw bool
	lastOffset  int
	lastVersion uint64
}

// New returns a view over doc. A nil doc is replaced by an empty document.
func New(doc *buffer.Document, size terminal.Size) *View {
	if doc == nil {
		doc = buffer.New("")
	}
	return &View{
		doc:         doc,
		size:        size,
		needsRedraw: true,
		lastVersion: doc.Version(),
	}
}

func (v *View) Document() *buffer.Document { return v.doc }

func (v *View) Size() terminal.Size { return v.size }

// Resize records a new terminal size and forces the next frame.
func (v *View) Resize(size terminal.Size) {
	v.size = size
	v.needsRedraw = true
}

// Invalidate forces the next Render to paint.
func (v *View) Invalidate() { v.needsRedraw = true }

// NeedsRedraw reports whether Render would paint at offsetY.
func (v *View) NeedsRedraw(offsetY int) bool {
	return v.needsRedraw || offsetY != v.lastOffset || v.doc.Version() != v.lastVersion
}

// Render paints one frame when anything changed since the last one and
// reports whether it did. Nothing is painted into a zero-sized terminal; the
// frame stays pending until the size becomes usable.
func (v *View) Render(t terminal.Terminal, offsetY int) (bool, error) {
	if !v.NeedsRedraw(offsetY) {
		return false, nil
	}
	if v.size.Width <= 0 || v.size.Height <= 0 {
		v.needsRedraw = true
		return false, nil
	}

	for row := 0; row < v.size.Height; row++ {
		if err := t.PrintRow(row, v.rowText(row, offsetY)); err != nil {
			return false, fmt.Errorf("render row %d: %w", row, err)
		}
	}

	v.needsRedraw = false
	v.lastOffset = offsetY
	v.lastVersion = v.doc.Version()
	log.Debug(log.CatView, "frame", "offset", offsetY, "version", v.lastVersion, "size", fmt.Sprintf("%dx%d", v.size.Width, v.size.Height))
	return true, nil
}

func (v *View) rowText(row, offsetY int) string {
	if line, ok := v.doc.Line(row + offsetY); ok {
		return Truncate(line, v.size.Width)
	}
	if row == v.size.Height/3 && v.doc.IsEmpty() {
		return WelcomeMessage(v.size.Width)
	}
	return Placeholder
}

// WelcomeMessage returns the banner row for a terminal width cells wide: the
// placeholder followed by the banner centered in the remaining space. When the
// banner does not fit only the placeholder is shown.
func WelcomeMessage(width int) string {
	if width <= 0 {
		return " "
	}
	msg := hecto.Banner()
	n := utf8.RuneCountInString(msg)
	if width <= n {
		return Placeholder
	}
	pad := (width - n - 1) / 2
	return Truncate(Placeholder+strings.Repeat(" ", pad)+msg, width)
}

// Truncate returns at most the first width scalars of s.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == width {
			return s[:pos]
		}
		i++
	}
	return s
}

// InsertChar inserts ch at viewport cell (row, col); the document line is
// row+offsetY.
func (v *View) InsertChar(row, col int, ch rune, offsetY int) error {
	v.needsRedraw = true
	return v.doc.InsertChar(row+offsetY, col, ch)
}

// DeleteChar removes the character at viewport cell (row, col); the document
// line is row+offsetY.
func (v *View) DeleteChar(row, col, offsetY int) error {
	v.needsRedraw = true
	return v.doc.DeleteChar(row+offsetY, col)
}

// Load replaces the document content with path.
func (v *View) Load(fs afero.Fs, path string) error {
	if err := v.doc.Load(fs, path); err != nil {
		return err
	}
	v.needsRedraw = true
	log.Info(log.CatBuffer, "loaded", "path", path, "lines", v.doc.LineCount())
	return nil
}

// Save writes the document to path and returns the number of bytes written.
func (v *View) Save(fs afero.Fs, path string) (int, error) {
	n, err := v.doc.Save(fs, path)
	if err != nil {
		return 0, err
	}
	log.Info(log.CatBuffer, "saved", "path", path, "bytes", n)
	return n, nil
}
