package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/afero"

	"github.com/iw2rmb/hecto/buffer"
	"github.com/iw2rmb/hecto/internal/log"
	"github.com/iw2rmb/hecto/terminal"
	"github.com/iw2rmb/hecto/view"
)

// Farewell is written to Config.Out after the terminal is released on quit.
const Farewell = "Goodbye.\r\n"

var (
	ErrNoTerminal = errors.New("editor: no terminal")
	ErrNoEvents   = errors.New("editor: no event source")
)

// Editor is the editing state machine. It is not safe for concurrent use.
type Editor struct {
	cfg    Config
	term   terminal.Terminal
	events terminal.EventSource
	fs     afero.Fs
	keys   KeyMap
	out    io.Writer

	view     *view.View
	loc      Location
	offsetY  int
	quitting bool
	status   string

	releaseOnce sync.Once
	releaseErr  error
}

// New builds an editor and loads Config.Path when set. A file that cannot be
// loaded is logged and leaves the document empty.
func New(cfg Config) (*Editor, error) {
	if cfg.Terminal == nil {
		return nil, ErrNoTerminal
	}

	e := &Editor{
		cfg:    cfg,
		term:   cfg.Terminal,
		events: cfg.Events,
		fs:     cfg.Fs,
		keys:   DefaultKeyMap(),
		out:    cfg.Out,
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if cfg.KeyMap != nil {
		e.keys = *cfg.KeyMap
	}
	if e.out == nil {
		e.out = os.Stdout
	}

	doc := buffer.New("")
	doc.SetOffsetPolicy(cfg.OffsetPolicy)
	e.view = view.New(doc, terminal.Size{})

	if cfg.Path != "" {
		if err := e.view.Load(e.fs, cfg.Path); err != nil {
			log.ErrorErr(log.CatBuffer, "load failed", err, "path", cfg.Path)
		}
	}
	return e, nil
}

// Run acquires the terminal, processes events until quit or until the event
// source is exhausted, and releases the terminal exactly once on every exit
// path. A panic is re-raised after the terminal is released.
func (e *Editor) Run() (err error) {
	if e.events == nil {
		return ErrNoEvents
	}
	if err := e.term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error(log.CatEditor, "panic", "value", r)
			_ = e.release()
			panic(r)
		}
		if rerr := e.release(); rerr != nil && err == nil {
			err = fmt.Errorf("release terminal: %w", rerr)
		}
		if err == nil && e.quitting {
			_, _ = io.WriteString(e.out, Farewell)
		}
	}()

	size, err := e.term.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	e.Resize(size)
	log.Info(log.CatEditor, "started", "path", e.cfg.Path, "size", fmt.Sprintf("%dx%d", size.Width, size.Height))

	for {
		if err := e.Refresh(); err != nil {
			log.ErrorErr(log.CatTerm, "refresh failed", err)
		}
		if e.quitting {
			log.Info(log.CatEditor, "quit")
			return nil
		}

		ev, err := e.events.PollEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info(log.CatTerm, "input closed")
				return nil
			}
			if e.cfg.FatalInputErrors {
				return fmt.Errorf("read event: %w", err)
			}
			log.Warn(log.CatTerm, "skipping unreadable event", "error", err)
			continue
		}
		e.Handle(ev)
	}
}

func (e *Editor) release() error {
	e.releaseOnce.Do(func() {
		e.releaseErr = e.term.Fini()
	})
	return e.releaseErr
}

// Refresh draws one frame: the view (when it needs repainting), the status
// message on the last row, and the cursor. All steps run even when one fails;
// the errors are joined.
func (e *Editor) Refresh() error {
	errs := []error{e.term.HideCursor()}

	painted, err := e.view.Render(e.term, e.offsetY)
	errs = append(errs, err)
	if painted && e.status != "" {
		errs = append(errs, e.term.PrintRow(e.view.Size().Height-1, e.status))
	}

	errs = append(errs,
		e.term.MoveCursor(terminal.Position{Row: e.loc.Y, Col: e.loc.X}),
		e.term.ShowCursor(),
		e.term.Flush(),
	)
	return errors.Join(errs...)
}

// Handle applies one event.
func (e *Editor) Handle(ev terminal.Event) {
	before := e.changeKey()
	defer e.notifyChange(before)

	switch ev := ev.(type) {
	case terminal.KeyEvent:
		e.handleKey(ev)
	case terminal.ResizeEvent:
		e.Resize(ev.Size)
	default:
		log.Debug(log.CatEditor, "ignored event", "type", fmt.Sprintf("%T", ev))
	}
}

func (e *Editor) handleKey(ev terminal.KeyEvent) {
	e.setStatus("")

	switch km := e.keys; {
	case key.Matches(ev, km.Quit):
		e.quitting = true
	case key.Matches(ev, km.Save):
		e.save()
	case key.Matches(ev, km.Backspace):
		e.backspace()
	case ev.Printable():
		e.insert(ev.Rune)
	default:
		if nav := km.nav(ev); nav != NavNone {
			e.loc, e.offsetY = Navigate(e.loc, e.offsetY, nav, e.view.Size())
			return
		}
		log.Debug(log.CatEditor, "unbound key", "key", ev.String())
	}
}

func (e *Editor) insert(r rune) {
	if err := e.view.InsertChar(e.loc.Y, e.loc.X, r, e.offsetY); err != nil {
		log.ErrorErr(log.CatBuffer, "insert", err, "row", e.loc.Y+e.offsetY, "col", e.loc.X)
		return
	}
	e.loc.X++
}

// backspace deletes left of the cursor. At column 0 it does nothing; lines
// are never joined.
func (e *Editor) backspace() {
	if e.loc.X == 0 {
		return
	}
	e.loc.X--
	if err := e.view.DeleteChar(e.loc.Y, e.loc.X, e.offsetY); err != nil {
		log.ErrorErr(log.CatBuffer, "delete", err, "row", e.loc.Y+e.offsetY, "col", e.loc.X)
	}
}

func (e *Editor) save() {
	if e.cfg.Path == "" {
		log.Warn(log.CatBuffer, "save without a path")
		e.setStatus("No file name")
		return
	}
	n, err := e.view.Save(e.fs, e.cfg.Path)
	if err != nil {
		log.ErrorErr(log.CatBuffer, "save failed", err, "path", e.cfg.Path)
		e.setStatus("Can't save! " + err.Error())
		return
	}
	e.setStatus(fmt.Sprintf("%d bytes written to %s", n, e.cfg.Path))
}

func (e *Editor) setStatus(msg string) {
	if msg == e.status {
		return
	}
	e.status = msg
	e.view.Invalidate()
}

// Resize records a new terminal size and pulls the cursor back inside it.
func (e *Editor) Resize(size terminal.Size) {
	e.view.Resize(size)
	e.loc = clampLocation(e.loc, size)
}

func (e *Editor) Location() Location { return e.loc }

func (e *Editor) OffsetY() int { return e.offsetY }

func (e *Editor) Quitting() bool { return e.quitting }

// Status returns the message shown on the last row, or "" when none is.
func (e *Editor) Status() string { return e.status }

func (e *Editor) View() *view.View { return e.view }
