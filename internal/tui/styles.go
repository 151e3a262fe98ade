package tui

import "github.com/charmbracelet/lipgloss"

// ------- minimal styling helpers (Lip Gloss) -------

type styles struct {
	title    lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	cursor   lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	help     lipgloss.Style
	panel    lipgloss.Style
	dialog   lipgloss.Style

	symSelected   string
	symUnselected string
}

func newStyles(theme string) styles {
	border := lipgloss.RoundedBorder()
	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("63")),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		button:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		disabled: lipgloss.NewStyle().Faint(true),
		help:     lipgloss.NewStyle().Faint(true),
		panel:    lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		dialog:   lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("63")).Padding(0, 1),

		symSelected:   "●",
		symUnselected: "○",
	}
	switch theme {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("201"))
		s.selected = s.selected.Background(lipgloss.Color("201"))
		s.cursor = s.cursor.Foreground(lipgloss.Color("51"))
		s.button = s.button.Foreground(lipgloss.Color("51"))
		s.symSelected, s.symUnselected = "◼", "◻"
	case "mono":
		plain := lipgloss.NewStyle()
		s.accent, s.cursor, s.button = plain, plain, plain
		s.selected = plain.Reverse(true)
		s.panel = plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
		s.dialog = s.panel
		s.symSelected, s.symUnselected = "[x]", "[ ]"
	}
	return s
}
