package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/listkeeper/internal/liststore"
	"github.com/idilsaglam/listkeeper/internal/log"
)

// Run starts the Bubble Tea program over st and blocks until the user quits.
// The store persists on every mutation, so there is nothing to save here.
func Run(st *liststore.Store, opt Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(st, opt), progOpts...)

	// Listeners run inside Update when the TUI itself mutates the store, so
	// the send must not block the event loop.
	unsubscribe := st.Subscribe(func(liststore.Snapshot) {
		go p.Send(storeChangedMsg{})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		return err
	}
	snap := st.Snapshot()
	log.Info().
		Int("items", len(snap.Items)).
		Int("history", snap.HistoryLen).
		Msg("tui closed")
	return nil
}
