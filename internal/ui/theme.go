package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	Selected                               string
	SymSelected, SymUnselected             string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	MeterFull, MeterEmpty                  string
}

var current Theme

func init() { SetTheme("classic") }

// Themes lists the names SetTheme understands.
func Themes() []string { return []string{"classic", "neon", "mono"} }

func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		disableColor = false
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Selected: "\033[93m",
			SymSelected: "◼", SymUnselected: "◻",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			MeterFull: "█", MeterEmpty: "░",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:        "mono",
			SymSelected: "[x]", SymUnselected: "[ ]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			MeterFull: "#", MeterEmpty: ".",
		}
	default: // classic
		disableColor = false
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Selected: fgYellow,
			SymSelected: "●", SymUnselected: "○",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			MeterFull: "█", MeterEmpty: "░",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// Dim is the faint attribute, used for row indexes.
func Dim() string { return dim }
