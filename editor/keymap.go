package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/hecto/terminal"
)

// KeyMap defines the editor key bindings.
//
// Key names follow Bubble Tea ("ctrl+q", "pgdown") so the same map serves the
// tcell and Bubble Tea front-ends.
type KeyMap struct {
	Quit, Save key.Binding

	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "top of screen")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "bottom of screen")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
	}
}

// ShortHelp lists the bindings named in the command help.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Quit}
}

func (km KeyMap) nav(ev terminal.KeyEvent) Nav {
	switch {
	case key.Matches(ev, km.Up):
		return NavUp
	case key.Matches(ev, km.Down):
		return NavDown
	case key.Matches(ev, km.Left):
		return NavLeft
	case key.Matches(ev, km.Right):
		return NavRight
	case key.Matches(ev, km.PageUp):
		return NavPageUp
	case key.Matches(ev, km.PageDown):
		return NavPageDown
	case key.Matches(ev, km.Home):
		return NavHome
	case key.Matches(ev, km.End):
		return NavEnd
	default:
		return NavNone
	}
}
