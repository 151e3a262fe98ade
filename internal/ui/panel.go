package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Meter renders a fill gauge, e.g. undo depth against the history limit.
func Meter(n, limit, width int) string {
	t := Current()
	if limit <= 0 {
		limit = 1
	}
	if width < 5 {
		width = 5
	}
	if n > limit {
		n = limit
	}
	filled := int(float64(n) / float64(limit) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.MeterFull, filled) + strings.Repeat(t.MeterEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, n, limit)
}

// Truncate shortens s to at most w visible cells, ANSI-aware.
func Truncate(s string, w int) string {
	return ansi.Truncate(s, w, "…")
}

// PanelString frames lines with the current theme's borders.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		b.WriteString(t.V + " " + pad(ln) + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprint(stdout, PanelString(lines))
}
