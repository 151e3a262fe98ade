package liststore

import (
	"slices"
	"strings"

	"github.com/idilsaglam/listkeeper/internal/model"
)

// Snapshot is what readers see. It shares nothing with the store.
type Snapshot struct {
	Items         []model.Item
	SelectedIDs   []string
	HistoryLen    int
	AddDialogOpen bool
	DraftText     string
}

func (s Snapshot) CanDelete() bool { return len(s.SelectedIDs) > 0 }
func (s Snapshot) CanUndo() bool   { return s.HistoryLen > 0 }
func (s Snapshot) CanSubmit() bool { return strings.TrimSpace(s.DraftText) != "" }

func (s Snapshot) IsSelected(id string) bool {
	return slices.Contains(s.SelectedIDs, id)
}

// Lookup resolves a user reference: an exact id, or a 1-based position.
func (s Snapshot) Lookup(ref string) (model.Item, bool) {
	ref = strings.TrimSpace(ref)
	if i := model.IndexOf(s.Items, ref); i >= 0 {
		return s.Items[i], true
	}
	n := 0
	for _, r := range ref {
		if r < '0' || r > '9' {
			return model.Item{}, false
		}
		n = n*10 + int(r-'0')
		if n > len(s.Items) {
			return model.Item{}, false
		}
	}
	if ref == "" || n < 1 {
		return model.Item{}, false
	}
	return s.Items[n-1], true
}
