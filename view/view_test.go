package view

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/iw2rmb/hecto"
	"github.com/iw2rmb/hecto/buffer"
	"github.com/iw2rmb/hecto/terminal"
)

func newGrid(t *testing.T, w, h int) *terminal.Grid {
	t.Helper()
	g := terminal.NewGrid(terminal.Size{Width: w, Height: h})
	if err := g.Init(); err != nil {
		t.Fatalf("grid init: %v", err)
	}
	return g
}

func assertRows(t *testing.T, g *terminal.Grid, want []string) {
	t.Helper()
	got := g.Rows()
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected rows:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_EmptyDocumentShowsBanner(t *testing.T) {
	g := newGrid(t, 40, 6)
	v := New(buffer.New(""), terminal.Size{Width: 40, Height: 6})

	painted, err := v.Render(g, 0)
	if err != nil || !painted {
		t.Fatalf("render: painted=%v err=%v", painted, err)
	}

	banner := "~" + strings.Repeat(" ", 5) + hecto.Banner()
	assertRows(t, g, []string{"~", "~", banner, "~", "~", "~"})
}

func TestRender_NilDocumentIsEmpty(t *testing.T) {
	v := New(nil, terminal.Size{Width: 3, Height: 3})
	if !v.Document().IsEmpty() {
		t.Fatalf("expected empty document")
	}
}

func TestRender_LinesWithOffsetAndTruncation(t *testing.T) {
	g := newGrid(t, 2, 3)
	v := New(buffer.New("abc\ndef"), terminal.Size{Width: 2, Height: 3})

	if _, err := v.Render(g, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	assertRows(t, g, []string{"ab", "de", "~"})

	if _, err := v.Render(g, 1); err != nil {
		t.Fatalf("render: %v", err)
	}
	// A non-empty document never shows the banner, even scrolled past its end.
	assertRows(t, g, []string{"de", "~", "~"})
}

func TestRender_SkipsUnchangedFrames(t *testing.T) {
	g := newGrid(t, 5, 2)
	v := New(buffer.New("x"), terminal.Size{Width: 5, Height: 2})

	if painted, _ := v.Render(g, 0); !painted {
		t.Fatalf("first render should paint")
	}
	prints := g.Prints()

	if painted, _ := v.Render(g, 0); painted {
		t.Fatalf("second render with no change should not paint")
	}
	if g.Prints() != prints {
		t.Fatalf("prints: got %d, want %d", g.Prints(), prints)
	}

	if painted, _ := v.Render(g, 1); !painted {
		t.Fatalf("offset change should paint")
	}

	if err := v.InsertChar(0, 0, 'y', 0); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if painted, _ := v.Render(g, 1); !painted {
		t.Fatalf("edit should paint")
	}

	v.Invalidate()
	if !v.NeedsRedraw(1) {
		t.Fatalf("invalidate should request a frame")
	}
	if painted, _ := v.Render(g, 1); !painted {
		t.Fatalf("invalidate should paint")
	}
}

func TestRender_ZeroSizeDefersFrame(t *testing.T) {
	g := newGrid(t, 0, 0)
	v := New(buffer.New("abc"), terminal.Size{})

	painted, err := v.Render(g, 0)
	if err != nil || painted {
		t.Fatalf("render into zero size: painted=%v err=%v", painted, err)
	}
	if g.Prints() != 0 {
		t.Fatalf("prints: got %d, want 0", g.Prints())
	}
	if !v.NeedsRedraw(0) {
		t.Fatalf("frame should stay pending")
	}

	g.Resize(terminal.Size{Width: 3, Height: 1})
	v.Resize(terminal.Size{Width: 3, Height: 1})
	if painted, _ := v.Render(g, 0); !painted {
		t.Fatalf("render after resize should paint")
	}
	assertRows(t, g, []string{"abc"})
	if got := v.Size(); got != (terminal.Size{Width: 3, Height: 1}) {
		t.Fatalf("size: got %v", got)
	}
}

func TestRender_PropagatesTerminalErrors(t *testing.T) {
	g := terminal.NewGrid(terminal.Size{Width: 3, Height: 1})
	v := New(buffer.New("abc"), terminal.Size{Width: 3, Height: 1})

	_, err := v.Render(g, 0)
	if !errors.Is(err, terminal.ErrNotInitialized) {
		t.Fatalf("err: got %v, want ErrNotInitialized", err)
	}
	if !v.NeedsRedraw(0) {
		t.Fatalf("failed frame should stay pending")
	}
}

func TestWelcomeMessage(t *testing.T) {
	n := len(hecto.Banner())
	cases := []struct {
		width int
		want  string
	}{
		{width: 0, want: " "},
		{width: 1, want: "~"},
		{width: n, want: "~"},
		{width: n + 1, want: "~" + hecto.Banner()},
		{width: n + 3, want: "~ " + hecto.Banner()},
		{width: n + 4, want: "~ " + hecto.Banner()},
	}
	for _, tc := range cases {
		if got := WelcomeMessage(tc.width); got != tc.want {
			t.Fatalf("WelcomeMessage(%d): got %q, want %q", tc.width, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		s     string
		width int
		want  string
	}{
		{s: "hello", width: 3, want: "hel"},
		{s: "hello", width: 5, want: "hello"},
		{s: "hello", width: 9, want: "hello"},
		{s: "hello", width: 0, want: ""},
		{s: "πテx", width: 2, want: "πテ"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.s, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q, %d): got %q, want %q", tc.s, tc.width, got, tc.want)
		}
	}
}

func TestEdits_TranslateViewportRows(t *testing.T) {
	v := New(buffer.New("ab\ncd\nef"), terminal.Size{Width: 5, Height: 2})

	if err := v.InsertChar(0, 1, 'X', 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := v.DeleteChar(1, 0, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, want := v.Document().Text(), "ab\ncXd\nf"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	// Rows past the document end are ignored.
	if err := v.InsertChar(1, 0, 'Z', 5); err != nil {
		t.Fatalf("insert past end: %v", err)
	}
	if got, want := v.Document().Text(), "ab\ncXd\nf"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestLoadSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/in.txt", []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	g := newGrid(t, 5, 3)
	v := New(nil, terminal.Size{Width: 5, Height: 3})
	if _, err := v.Render(g, 0); err != nil {
		t.Fatalf("render: %v", err)
	}

	if err := v.Load(fs, "/missing.txt"); err == nil {
		t.Fatalf("expected load error")
	}
	if err := v.Load(fs, "/in.txt"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if painted, _ := v.Render(g, 0); !painted {
		t.Fatalf("load should paint")
	}
	assertRows(t, g, []string{"one", "two", "~"})

	n, err := v.Save(fs, "/out.txt")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	data, _ := afero.ReadFile(fs, "/out.txt")
	if string(data) != "one\ntwo" || n != len(data) {
		t.Fatalf("saved %q (%d bytes)", data, n)
	}

	if _, err := v.Save(afero.NewReadOnlyFs(fs), "/ro.txt"); err == nil {
		t.Fatalf("expected save error")
	}
}
