package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hecto/internal/log"
	"github.com/iw2rmb/hecto/terminal"
)

// Program is a Bubble Tea model around an Editor. The editor draws into an
// in-memory grid and View renders that grid as a string; Bubble Tea owns the
// real terminal.
type Program struct {
	ed    *Editor
	grid  *terminal.Grid
	style Style
}

// NewProgram builds the editor with a grid terminal. Config.Terminal and
// Config.Events are ignored.
func NewProgram(cfg Config, style Style) (Program, error) {
	grid := terminal.NewGrid(terminal.Size{})
	grid.Activate()

	cfg.Terminal = grid
	cfg.Events = nil
	ed, err := New(cfg)
	if err != nil {
		return Program{}, err
	}
	return Program{ed: ed, grid: grid, style: style}, nil
}

func (p Program) Editor() *Editor { return p.ed }

func (p Program) Grid() *terminal.Grid { return p.grid }

// Init does nothing; Bubble Tea delivers the initial window size as a message.
func (p Program) Init() tea.Cmd { return nil }

func (p Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		size := terminal.Size{Width: msg.Width, Height: msg.Height}
		p.grid.Resize(size)
		p.ed.Handle(terminal.ResizeEvent{Size: size})
	case tea.KeyMsg:
		for _, ev := range keyEvents(msg) {
			p.ed.Handle(ev)
			if p.ed.Quitting() {
				break
			}
		}
	}

	if p.ed.Quitting() {
		return p, tea.Quit
	}
	return p, nil
}

func (p Program) View() string {
	if err := p.ed.Refresh(); err != nil {
		log.ErrorErr(log.CatTerm, "refresh failed", err)
	}

	rows := p.grid.Rows()
	pos, visible := p.grid.Cursor()
	last := len(rows) - 1
	for i := range rows {
		// The cursor may sit past the right edge after typing; it is not drawn there.
		if visible && i == pos.Row {
			if before, at, after := p.grid.SplitAtCell(i, pos.Col); at != "" {
				rows[i] = before + p.style.Cursor.Render(at) + after
				continue
			}
		}
		if i == last && p.ed.Status() != "" {
			rows[i] = p.style.Status.Render(rows[i])
		}
	}
	return strings.Join(rows, "\n")
}

var teaKeys = map[tea.KeyType]terminal.Key{
	tea.KeyUp:        terminal.KeyUp,
	tea.KeyDown:      terminal.KeyDown,
	tea.KeyLeft:      terminal.KeyLeft,
	tea.KeyRight:     terminal.KeyRight,
	tea.KeyHome:      terminal.KeyHome,
	tea.KeyEnd:       terminal.KeyEnd,
	tea.KeyPgUp:      terminal.KeyPgUp,
	tea.KeyPgDown:    terminal.KeyPgDn,
	tea.KeyDelete:    terminal.KeyDelete,
	tea.KeyBackspace: terminal.KeyBackspace,
	tea.KeyEnter:     terminal.KeyEnter,
	tea.KeyTab:       terminal.KeyTab,
	tea.KeyEsc:       terminal.KeyEsc,
}

// keyEvents converts a Bubble Tea key message into editor events. A runes
// message (typing or paste) becomes one event per rune.
func keyEvents(msg tea.KeyMsg) []terminal.Event {
	var mod terminal.Mod
	if msg.Alt {
		mod |= terminal.ModAlt
	}

	switch t := msg.Type; {
	case t == tea.KeyRunes:
		out := make([]terminal.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, terminal.KeyEvent{Key: terminal.KeyRune, Rune: r, Mod: mod})
		}
		return out
	case t == tea.KeySpace:
		return []terminal.Event{terminal.KeyEvent{Key: terminal.KeyRune, Rune: ' ', Mod: mod}}
	case teaKeys[t] != terminal.KeyRune:
		return []terminal.Event{terminal.KeyEvent{Key: teaKeys[t], Mod: mod}}
	case t >= tea.KeyCtrlA && t <= tea.KeyCtrlZ:
		r := 'a' + rune(t-tea.KeyCtrlA)
		return []terminal.Event{terminal.KeyEvent{Key: terminal.KeyRune, Rune: r, Mod: mod | terminal.ModCtrl}}
	default:
		return []terminal.Event{terminal.OtherEvent{}}
	}
}
