package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/iw2rmb/hecto/terminal"
)

func TestNavigate(t *testing.T) {
	size := terminal.Size{Width: 5, Height: 3}
	cases := []struct {
		name       string
		loc        Location
		offset     int
		nav        Nav
		wantLoc    Location
		wantOffset int
	}{
		{name: "down", loc: Location{X: 1, Y: 0}, nav: NavDown, wantLoc: Location{X: 1, Y: 1}},
		{name: "down scrolls at bottom", loc: Location{X: 1, Y: 2}, offset: 4, nav: NavDown, wantLoc: Location{X: 1, Y: 2}, wantOffset: 5},
		{name: "up", loc: Location{Y: 2}, offset: 1, nav: NavUp, wantLoc: Location{Y: 1}, wantOffset: 1},
		{name: "up scrolls at top", loc: Location{Y: 0}, offset: 1, nav: NavUp, wantLoc: Location{Y: 0}},
		{name: "up stops at origin", loc: Location{Y: 0}, nav: NavUp, wantLoc: Location{Y: 0}},
		{name: "left", loc: Location{X: 3}, nav: NavLeft, wantLoc: Location{X: 2}},
		{name: "left saturates", loc: Location{X: 0}, nav: NavLeft, wantLoc: Location{X: 0}},
		{name: "right", loc: Location{X: 3}, nav: NavRight, wantLoc: Location{X: 4}},
		{name: "right stops at edge", loc: Location{X: 4}, nav: NavRight, wantLoc: Location{X: 4}},
		{name: "page up", loc: Location{X: 2, Y: 2}, offset: 3, nav: NavPageUp, wantLoc: Location{X: 2, Y: 0}, wantOffset: 3},
		{name: "page down", loc: Location{X: 2, Y: 0}, nav: NavPageDown, wantLoc: Location{X: 2, Y: 2}},
		{name: "home", loc: Location{X: 3, Y: 1}, nav: NavHome, wantLoc: Location{X: 0, Y: 1}},
		{name: "end", loc: Location{X: 0, Y: 1}, nav: NavEnd, wantLoc: Location{X: 4, Y: 1}},
		{name: "none", loc: Location{X: 2, Y: 1}, offset: 7, nav: NavNone, wantLoc: Location{X: 2, Y: 1}, wantOffset: 7},
		{name: "clamps stale location", loc: Location{X: 9, Y: 9}, nav: NavNone, wantLoc: Location{X: 4, Y: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc, offset := Navigate(tc.loc, tc.offset, tc.nav, size)
			require.Equal(t, tc.wantLoc, loc)
			require.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestNavigate_ZeroSizeNeverNegative(t *testing.T) {
	for nav := NavNone; nav <= NavEnd; nav++ {
		loc, offset := Navigate(Location{}, 0, nav, terminal.Size{})
		require.Equal(t, Location{}, loc, "nav %d", nav)
		require.GreaterOrEqual(t, offset, 0, "nav %d", nav)
	}
}

func TestProperty_NavigateStaysInGrid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := terminal.Size{
			Width:  rapid.IntRange(1, 30).Draw(rt, "w"),
			Height: rapid.IntRange(1, 30).Draw(rt, "h"),
		}
		loc := Location{
			X: rapid.IntRange(0, size.Width-1).Draw(rt, "x"),
			Y: rapid.IntRange(0, size.Height-1).Draw(rt, "y"),
		}
		offset := rapid.IntRange(0, 10).Draw(rt, "offset")
		navs := rapid.SliceOfN(rapid.SampledFrom([]Nav{
			NavUp, NavDown, NavLeft, NavRight, NavPageUp, NavPageDown, NavHome, NavEnd,
		}), 1, 50).Draw(rt, "navs")

		for _, nav := range navs {
			nextLoc, nextOffset := Navigate(loc, offset, nav, size)

			if nextLoc.X < 0 || nextLoc.X >= size.Width || nextLoc.Y < 0 || nextLoc.Y >= size.Height {
				rt.Fatalf("nav %d from %v: %v outside %v", nav, loc, nextLoc, size)
			}
			if nextOffset < 0 {
				rt.Fatalf("negative offset %d", nextOffset)
			}

			switch delta := nextOffset - offset; {
			case delta == 0:
			case delta == 1 && nav == NavDown && loc.Y == size.Height-1:
			case delta == -1 && nav == NavUp && loc.Y == 0:
			default:
				rt.Fatalf("nav %d at %v changed offset %d -> %d", nav, loc, offset, nextOffset)
			}

			loc, offset = nextLoc, nextOffset
		}
	})
}
