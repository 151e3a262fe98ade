package liststore

import "github.com/idilsaglam/listkeeper/internal/model"

// HistoryLimit caps the number of undo snapshots kept.
const HistoryLimit = 25

// pushHistory appends a deep copy of items and drops the oldest entries
// beyond HistoryLimit. The returned slice never shares snapshot storage
// with items.
func pushHistory(history [][]model.Item, items []model.Item) [][]model.Item {
	next := append(history, model.CloneItems(items))
	if len(next) <= HistoryLimit {
		return next
	}
	return trimHistory(next)
}

// trimHistory keeps the newest HistoryLimit entries in a fresh backing array.
func trimHistory(history [][]model.Item) [][]model.Item {
	if len(history) <= HistoryLimit {
		return history
	}
	out := make([][]model.Item, HistoryLimit)
	copy(out, history[len(history)-HistoryLimit:])
	return out
}

func cloneHistory(history [][]model.Item) [][]model.Item {
	out := make([][]model.Item, len(history))
	for i, snap := range history {
		out[i] = model.CloneItems(snap)
	}
	return out
}
