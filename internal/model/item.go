package model

// Item is the domain model for a list entry.
// IDs are opaque and never reused; items are immutable once created.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CloneItems returns an independent copy of items.
// A nil or empty input yields a non-nil empty slice so it encodes as [].
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// IndexOf returns the position of the item with the given id, or -1.
func IndexOf(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
