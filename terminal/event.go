package terminal

import (
	"strings"
	"unicode"
)

// Event is one input notification.
type Event interface {
	isEvent()
}

type Key uint8

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEsc
)

var keyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEsc:       "esc",
}

// Mod is a bit set of modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is a key press. Rune is set only for KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

// String renders the key the way Bubble Tea names keys ("ctrl+q", "up",
// "shift+left"), so key bindings can match either front-end.
func (k KeyEvent) String() string {
	var sb strings.Builder
	if k.Mod&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if k.Mod&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if k.Key == KeyRune {
		r := k.Rune
		if k.Mod&ModCtrl != 0 {
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
		return sb.String()
	}
	if k.Mod&ModShift != 0 {
		sb.WriteString("shift+")
	}
	if name, ok := keyNames[k.Key]; ok {
		sb.WriteString(name)
	} else {
		sb.WriteString("unknown")
	}
	return sb.String()
}

// Printable reports whether the event should be inserted as text: a
// printable rune with no Ctrl or Alt held.
func (k KeyEvent) Printable() bool {
	return k.Key == KeyRune && k.Mod&(ModCtrl|ModAlt) == 0 && unicode.IsPrint(k.Rune)
}

// ResizeEvent reports the new terminal size.
type ResizeEvent struct {
	Size Size
}

// OtherEvent stands for input the editor does not act on (mouse, focus,
// paste markers).
type OtherEvent struct{}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (OtherEvent) isEvent()  {}
