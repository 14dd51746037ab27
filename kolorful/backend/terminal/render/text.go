package render

import "github.com/gdamore/tcell/v2"

// Text draws s at (x, y), clipped to width cells. It returns the number of
// cells written.
func Text(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	n := 0
	for _, ch := range s {
		if n >= width {
			break
		}
		screen.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:max(width, 0)])
	}
	return string(r[:width-3]) + "..."
}

// HLine draws a horizontal rule from x0 to x1 (exclusive).
func HLine(screen tcell.Screen, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		screen.SetContent(x, y, '─', nil, style)
	}
}

// VLine draws a vertical rule from y0 to y1 (exclusive).
func VLine(screen tcell.Screen, x, y0, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		screen.SetContent(x, y, '│', nil, style)
	}
}
