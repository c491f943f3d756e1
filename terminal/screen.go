package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/hecto/internal/grapheme"
)

// Screen is a Terminal and EventSource backed by a tcell screen.
type Screen struct {
	screen  tcell.Screen
	style   tcell.Style
	cursor  Position
	visible bool
}

// NewScreen opens the process's controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	return &Screen{screen: s, style: tcell.StyleDefault}
}

func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.SetStyle(s.style)
	s.screen.Clear()
	return nil
}

func (s *Screen) Fini() error {
	s.screen.Fini()
	return nil
}

func (s *Screen) Size() (Size, error) {
	w, h := s.screen.Size()
	return Size{Width: w, Height: h}, nil
}

func (s *Screen) MoveCursor(pos Position) error {
	s.cursor = pos
	if s.visible {
		s.screen.ShowCursor(pos.Col, pos.Row)
	}
	return nil
}

func (s *Screen) HideCursor() error {
	s.visible = false
	s.screen.HideCursor()
	return nil
}

func (s *Screen) ShowCursor() error {
	s.visible = true
	s.screen.ShowCursor(s.cursor.Col, s.cursor.Row)
	return nil
}

// PrintRow draws text one grapheme cluster per cell group, so combining
// marks stay attached to their base character.
func (s *Screen) PrintRow(row int, text string) error {
	w, h := s.screen.Size()
	if row < 0 || row >= h {
		return nil
	}

	x := 0
	clusters, _ := grapheme.Fit(text, w)
	for _, c := range clusters {
		runes := []rune(c)
		s.screen.SetContent(x, row, runes[0], runes[1:], s.style)
		x += grapheme.Width(c)
	}
	for ; x < w; x++ {
		s.screen.SetContent(x, row, ' ', nil, s.style)
	}
	return nil
}

func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *Screen) PollEvent() (Event, error) {
	ev := s.screen.PollEvent()
	if ev == nil {
		return nil, io.EOF
	}
	return s.convert(ev)
}

func (s *Screen) convert(ev tcell.Event) (Event, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return convertKey(ev), nil
	case *tcell.EventResize:
		s.screen.Sync()
		w, h := ev.Size()
		return ResizeEvent{Size: Size{Width: w, Height: h}}, nil
	case *tcell.EventError:
		return nil, fmt.Errorf("read input: %w", ev)
	default:
		return OtherEvent{}, nil
	}
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPgUp,
	tcell.KeyPgDn:       KeyPgDn,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyEscape:     KeyEsc,
}

func convertMod(m tcell.ModMask) Mod {
	var out Mod
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= ModAlt
	}
	return out
}

func convertKey(ev *tcell.EventKey) Event {
	mod := convertMod(ev.Modifiers())
	k := ev.Key()

	// Named keys first: Backspace, Tab, Enter and Esc share codes with
	// Ctrl+H, Ctrl+I, Ctrl+M and Ctrl+[.
	if named, ok := tcellKeys[k]; ok {
		switch named {
		case KeyBackspace, KeyTab, KeyEnter, KeyEsc:
			mod &^= ModCtrl
		}
		return KeyEvent{Key: named, Mod: mod}
	}
	switch {
	case k == tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return KeyEvent{Key: KeyRune, Rune: 'a' + rune(k-tcell.KeyCtrlA), Mod: mod | ModCtrl}
	default:
		return OtherEvent{}
	}
}
