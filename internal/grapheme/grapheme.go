// Package grapheme splits text into grapheme clusters and measures them in
// terminal cells.
package grapheme

import "github.com/rivo/uniseg"

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the number of terminal cells cluster occupies.
//
// Zero-width clusters (lone combining marks, control characters) report 1 so
// that every cluster a caller draws advances the column.
func Width(cluster string) int {
	w := uniseg.StringWidth(cluster)
	if w < 1 {
		return 1
	}
	return w
}

// Fit returns the leading clusters of text that fit into width cells, along
// with the number of cells they use. A wide cluster that would straddle the
// right edge is dropped.
func Fit(text string, width int) ([]string, int) {
	if width <= 0 {
		return nil, 0
	}
	var out []string
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > width {
			break
		}
		out = append(out, c)
		used += w
	}
	return out, used
}
