package editor

import (
	"io"

	"github.com/spf13/afero"

	"github.com/iw2rmb/hecto/buffer"
	"github.com/iw2rmb/hecto/terminal"
)

// Config configures an Editor.
type Config struct {
	// File loaded at startup and written by the save binding. Empty means an
	// unnamed document.
	Path string

	// Terminal is required. Events is required by Run only; the Bubble Tea
	// front-end feeds events through Handle instead.
	Terminal terminal.Terminal
	Events   terminal.EventSource

	// Filesystem for load and save. Defaults to the OS filesystem.
	Fs afero.Fs

	// Key bindings. Nil means DefaultKeyMap.
	KeyMap *KeyMap

	// Out receives the farewell line after the terminal is released on quit.
	// Defaults to os.Stdout.
	Out io.Writer

	// FatalInputErrors makes Run return on the first input read error instead
	// of logging it and polling again.
	FatalInputErrors bool

	// OffsetPolicy is forwarded to the document.
	OffsetPolicy buffer.OffsetPolicy

	// OnChange, when set, is called after each handled event that changed the
	// document, the cursor, or the scroll offset.
	OnChange func(ChangeEvent)
}
