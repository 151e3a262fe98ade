// Package liststore is the single source of truth for the list: items,
// selection, undo history and the add-dialog draft.
//
// Every mutation goes through a Store method. Methods are synchronous and
// serialised; each returns whether it changed anything. Ineffective calls
// (unknown id, empty selection, empty history, blank draft) are no-ops,
// never errors.
package liststore

import (
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/listkeeper/internal/model"
)

// Listener receives a fresh snapshot after an operation changed the store.
type Listener func(Snapshot)

type Store struct {
	mu sync.Mutex

	items      []model.Item
	selected   []string
	history    [][]model.Item
	dialogOpen bool
	draft      string

	backend Backend
	key     string
	log     zerolog.Logger
	newID   func() string

	initial *State

	listeners  map[int]Listener
	nextListen int
}

type Option func(*Store)

// WithBackend persists state under key after every effective mutation and
// loads the initial state from it.
func WithBackend(b Backend, key string) Option {
	return func(s *Store) {
		s.backend = b
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDGenerator overrides item id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithState starts the store from st instead of the backend or the seed.
func WithState(st State) Option {
	return func(s *Store) { s.initial = &st }
}

func New(opts ...Option) *Store {
	s := &Store{
		key:       DefaultStorageKey,
		log:       zerolog.Nop(),
		newID:     newItemID,
		listeners: map[int]Listener{},
	}
	for _, o := range opts {
		o(s)
	}

	var st State
	switch {
	case s.initial != nil:
		st = *s.initial
		s.initial = nil
	case s.backend != nil:
		st = LoadState(s.backend, s.key, s.log)
	default:
		st = DefaultState()
	}
	s.setStateLocked(st)
	return s
}

func (s *Store) setStateLocked(st State) {
	s.items = model.CloneItems(st.Items)
	s.selected = []string{}
	for _, id := range st.SelectedIDs {
		if model.IndexOf(s.items, id) >= 0 && !slices.Contains(s.selected, id) {
			s.selected = append(s.selected, id)
		}
	}
	s.history = trimHistory(cloneHistory(st.History))
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a read-only copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Items:         model.CloneItems(s.items),
		SelectedIDs:   append([]string{}, s.selected...),
		HistoryLen:    len(s.history),
		AddDialogOpen: s.dialogOpen,
		DraftText:     s.draft,
	}
}

// State returns a deep copy of the persisted triple.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	return State{
		Items:       model.CloneItems(s.items),
		SelectedIDs: append([]string{}, s.selected...),
		History:     cloneHistory(s.history),
	}
}

// History returns deep copies of the undo snapshots, oldest first.
func (s *Store) History() [][]model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneHistory(s.history)
}

// apply runs fn under the lock. When fn reports a change, listeners are
// notified after unlocking; persist additionally writes the triple.
func (s *Store) apply(op string, fn func() (changed, persist bool)) bool {
	s.mu.Lock()
	changed, persist := fn()
	if !changed {
		s.mu.Unlock()
		s.log.Debug().Str("op", op).Msg("no-op")
		return false
	}
	if persist {
		s.persistLocked(op)
	}
	snap := s.snapshotLocked()
	ls := make([]Listener, 0, len(s.listeners))
	for _, id := range sortedKeys(s.listeners) {
		ls = append(ls, s.listeners[id])
	}
	s.mu.Unlock()

	s.log.Debug().
		Str("op", op).
		Int("items", len(snap.Items)).
		Int("selected", len(snap.SelectedIDs)).
		Int("history", snap.HistoryLen).
		Msg("applied")
	for _, l := range ls {
		l(snap)
	}
	return true
}

func sortedKeys(m map[int]Listener) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// persistLocked writes the triple. Failures are logged and swallowed; the
// in-memory state is already updated.
func (s *Store) persistLocked(op string) {
	if s.backend == nil {
		return
	}
	raw, err := EncodeState(s.stateLocked())
	if err != nil {
		s.log.Warn().Err(err).Str("op", op).Msg("encode state")
		return
	}
	if err := s.backend.Set(s.key, raw); err != nil {
		s.log.Warn().Err(err).Str("op", op).Str("key", s.key).Msg("persist state")
	}
}

// Select selects id. Without multi it replaces the selection with {id}, or
// clears it when the selection is already exactly {id}. With multi it
// toggles id alone. Unknown ids are ignored.
func (s *Store) Select(id string, multi bool) bool {
	return s.apply("select", func() (bool, bool) {
		if model.IndexOf(s.items, id) < 0 {
			return false, false
		}
		if multi {
			if i := slices.Index(s.selected, id); i >= 0 {
				s.selected = slices.Delete(slices.Clone(s.selected), i, i+1)
			} else {
				s.selected = append(slices.Clone(s.selected), id)
			}
			return true, true
		}
		if len(s.selected) == 1 && s.selected[0] == id {
			s.selected = []string{}
		} else {
			s.selected = []string{id}
		}
		return true, true
	})
}

func (s *Store) ClearSelection() bool {
	return s.apply("clear_selection", func() (bool, bool) {
		if len(s.selected) == 0 {
			return false, false
		}
		s.selected = []string{}
		return true, true
	})
}

// Add commits the current draft text.
func (s *Store) Add() bool {
	return s.apply("add", func() (bool, bool) {
		return s.addLocked(s.draft)
	})
}

// AddText appends an item with the trimmed text. Blank text is a no-op and
// leaves the dialog and draft untouched.
func (s *Store) AddText(text string) bool {
	return s.apply("add", func() (bool, bool) {
		return s.addLocked(text)
	})
}

func (s *Store) addLocked(text string) (changed, persist bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, false
	}
	s.history = pushHistory(s.history, s.items)
	items := model.CloneItems(s.items)
	s.items = append(items, model.Item{ID: s.newID(), Text: text})
	s.selected = []string{}
	s.draft = ""
	s.dialogOpen = false
	return true, true
}

func (s *Store) DeleteSelected() bool {
	return s.apply("delete_selected", func() (bool, bool) {
		if len(s.selected) == 0 {
			return false, false
		}
		s.history = pushHistory(s.history, s.items)
		s.items = slices.DeleteFunc(model.CloneItems(s.items), func(it model.Item) bool {
			return slices.Contains(s.selected, it.ID)
		})
		s.selected = []string{}
		return true, true
	})
}

func (s *Store) DeleteByID(id string) bool {
	return s.apply("delete_by_id", func() (bool, bool) {
		i := model.IndexOf(s.items, id)
		if i < 0 {
			return false, false
		}
		s.history = pushHistory(s.history, s.items)
		s.items = slices.Delete(model.CloneItems(s.items), i, i+1)
		if j := slices.Index(s.selected, id); j >= 0 {
			s.selected = slices.Delete(slices.Clone(s.selected), j, j+1)
		}
		return true, true
	})
}

// Undo restores the most recent snapshot and clears the selection. There
// is no redo.
func (s *Store) Undo() bool {
	return s.apply("undo", func() (bool, bool) {
		n := len(s.history)
		if n == 0 {
			return false, false
		}
		prev := s.history[n-1]
		s.history = s.history[:n-1:n-1]
		s.items = model.CloneItems(prev)
		s.selected = []string{}
		return true, true
	})
}

// SetAddDialogOpen opens or closes the add dialog. Closing discards the
// draft; opening keeps whatever was typed before.
func (s *Store) SetAddDialogOpen(open bool) bool {
	return s.apply("set_dialog", func() (bool, bool) {
		draft := s.draft
		if !open {
			draft = ""
		}
		if s.dialogOpen == open && s.draft == draft {
			return false, false
		}
		s.dialogOpen = open
		s.draft = draft
		return true, false
	})
}

// SetDraftText stores value verbatim.
func (s *Store) SetDraftText(value string) bool {
	return s.apply("set_draft", func() (bool, bool) {
		if s.draft == value {
			return false, false
		}
		s.draft = value
		return true, false
	})
}

// Reset restores the default seed and drops history.
func (s *Store) Reset() bool {
	return s.apply("reset", func() (bool, bool) {
		s.setStateLocked(DefaultState())
		s.dialogOpen = false
		s.draft = ""
		return true, true
	})
}
