package liststore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/listkeeper/internal/model"
)

// DefaultStorageKey is the key the persisted state lives under.
const DefaultStorageKey = "vanilla-list-app-state-v1"

// Backend is the storage the store persists into. store.Backend satisfies it.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// State is the persisted triple.
type State struct {
	Items       []model.Item   `json:"items"`
	SelectedIDs []string       `json:"selectedIds"`
	History     [][]model.Item `json:"history"`
}

// DefaultState is the seed used when nothing valid is stored.
func DefaultState() State {
	items := make([]model.Item, 0, 4)
	for i := 1; i <= 4; i++ {
		items = append(items, model.Item{
			ID:   fmt.Sprintf("seed-%d", i),
			Text: fmt.Sprintf("Item %d", i),
		})
	}
	return State{
		Items:       items,
		SelectedIDs: []string{},
		History:     [][]model.Item{},
	}
}

var errShape = errors.New("state has wrong shape")

// EncodeState serialises st. Empty sequences encode as [] rather than null.
func EncodeState(st State) (string, error) {
	out := State{
		Items:       model.CloneItems(st.Items),
		SelectedIDs: append([]string{}, st.SelectedIDs...),
		History:     cloneHistory(st.History),
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// DecodeState parses a stored value. It fails when the value is not JSON or
// any of items, selectedIds, history is missing or not an array. Individual
// malformed entries are dropped rather than failing the whole record.
func DecodeState(raw string) (State, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return State{}, fmt.Errorf("json unmarshal: %w", err)
	}
	rawItems, err := arrayField(top, "items")
	if err != nil {
		return State{}, err
	}
	rawSelected, err := arrayField(top, "selectedIds")
	if err != nil {
		return State{}, err
	}
	rawHistory, err := arrayField(top, "history")
	if err != nil {
		return State{}, err
	}

	st := State{
		Items:       filterItems(rawItems),
		SelectedIDs: []string{},
		History:     [][]model.Item{},
	}

	seen := map[string]bool{}
	for _, r := range rawSelected {
		var id *string
		if json.Unmarshal(r, &id) != nil || id == nil {
			continue
		}
		if seen[*id] || model.IndexOf(st.Items, *id) < 0 {
			continue
		}
		seen[*id] = true
		st.SelectedIDs = append(st.SelectedIDs, *id)
	}

	for _, r := range rawHistory {
		if !isArray(r) {
			continue
		}
		var entry []json.RawMessage
		if json.Unmarshal(r, &entry) != nil {
			continue
		}
		st.History = append(st.History, filterItems(entry))
	}
	st.History = trimHistory(st.History)
	return st, nil
}

func arrayField(top map[string]json.RawMessage, name string) ([]json.RawMessage, error) {
	v, ok := top[name]
	if !ok || !isArray(v) {
		return nil, fmt.Errorf("%w: %s is not an array", errShape, name)
	}
	var out []json.RawMessage
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func isArray(r json.RawMessage) bool {
	t := bytes.TrimSpace(r)
	return len(t) > 0 && t[0] == '['
}

// filterItems keeps entries that carry a string id and a string text.
func filterItems(raw []json.RawMessage) []model.Item {
	out := make([]model.Item, 0, len(raw))
	for _, r := range raw {
		var w struct {
			ID   *string `json:"id"`
			Text *string `json:"text"`
		}
		if json.Unmarshal(r, &w) != nil || w.ID == nil || w.Text == nil {
			continue
		}
		out = append(out, model.Item{ID: *w.ID, Text: *w.Text})
	}
	return out
}

// LoadState reads and decodes the value under key, falling back to
// DefaultState on any failure. It never returns an error.
func LoadState(b Backend, key string, log zerolog.Logger) State {
	if b == nil {
		return DefaultState()
	}
	raw, ok, err := b.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("read state; using defaults")
		return DefaultState()
	}
	if !ok || strings.TrimSpace(raw) == "" {
		log.Debug().Str("key", key).Msg("no stored state; using defaults")
		return DefaultState()
	}
	st, err := DecodeState(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored state invalid; using defaults")
		return DefaultState()
	}
	return st
}
