package tui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/listkeeper/internal/liststore"
	"github.com/idilsaglam/listkeeper/internal/model"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func fixture() liststore.State {
	return liststore.State{Items: []model.Item{
		{ID: "1", Text: "A"},
		{ID: "2", Text: "B"},
		{ID: "3", Text: "C"},
		{ID: "4", Text: "D"},
	}}
}

func newTestModel(t *testing.T) (Model, *liststore.Store, *fakeClock) {
	t.Helper()
	st := liststore.New(liststore.WithState(fixture()))
	clk := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := New(st, Options{Theme: "mono", Mouse: true, Now: clk.Now})
	m = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, st, clk
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m = apply(t, m, k)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = apply(t, m, runes(string(r)))
	}
	return m
}

func click(y int, ctrl bool) tea.MouseMsg {
	return tea.MouseMsg{X: 6, Y: y, Ctrl: ctrl, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func texts(st *liststore.Store) []string {
	var out []string
	for _, it := range st.Snapshot().Items {
		out = append(out, it.Text)
	}
	return out
}

func TestKeys_SelectToggleOff(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := st.Snapshot().SelectedIDs; !slices.Equal(got, []string{"2"}) {
		t.Fatalf("selection = %v", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := st.Snapshot().SelectedIDs; len(got) != 0 {
		t.Fatalf("second select should toggle off, got %v", got)
	}
	_ = m
}

func TestKeys_MultiSelectAndDelete(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m,
		runes("x"),
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
		runes("x"),
	)
	if got := st.Snapshot().SelectedIDs; !slices.Equal(got, []string{"1", "3"}) {
		t.Fatalf("selection = %v", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	if got := texts(st); !slices.Equal(got, []string{"B", "D"}) {
		t.Fatalf("items = %v", got)
	}
	if !strings.Contains(m.View(), "B") {
		t.Fatal("view should show remaining items")
	}
}

func TestKeys_BackspaceWithoutSelectionIsNoop(t *testing.T) {
	m, st, _ := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if st.Snapshot().HistoryLen != 0 || len(st.Snapshot().Items) != 4 {
		t.Fatal("backspace with empty selection changed state")
	}
}

func TestKeys_DeleteCursorItemAndUndo(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("D"))
	if got := texts(st); !slices.Equal(got, []string{"A", "C", "D"}) {
		t.Fatalf("items = %v", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := texts(st); !slices.Equal(got, []string{"A", "B", "C", "D"}) {
		t.Fatalf("undo restored %v", got)
	}
	_ = m
}

func TestKeys_EscClearsSelection(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyEsc})
	if len(st.Snapshot().SelectedIDs) != 0 {
		t.Fatal("esc should clear selection")
	}
	_ = m
}

func TestDialog_AddItem(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, runes("a"))
	if !st.Snapshot().AddDialogOpen {
		t.Fatal("dialog should be open")
	}
	if !strings.Contains(m.View(), "Add item to list") {
		t.Fatal("view should render the dialog")
	}

	// Keys that mean something in the list go to the input while the dialog is open.
	m = typeText(t, m, "dux")
	if got := st.Snapshot().DraftText; got != "dux" {
		t.Fatalf("draft = %q", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := st.Snapshot().DraftText; got != "du" {
		t.Fatalf("backspace should edit the draft, got %q", got)
	}
	if len(st.Snapshot().Items) != 4 {
		t.Fatal("typing in the dialog must not touch items")
	}

	m = typeText(t, m, "ck")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	snap := st.Snapshot()
	if snap.AddDialogOpen || snap.DraftText != "" {
		t.Fatalf("submit should close dialog: %+v", snap)
	}
	if got := snap.Items[len(snap.Items)-1].Text; got != "duck" {
		t.Fatalf("added %q", got)
	}
	if m.input.Focused() || m.input.Value() != "" {
		t.Fatal("input should be reset after submit")
	}
}

func TestDialog_BlankSubmitKeepsDialogOpen(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, runes("a"))
	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	snap := st.Snapshot()
	if !snap.AddDialogOpen || len(snap.Items) != 4 {
		t.Fatalf("blank submit should be ignored: %+v", snap)
	}
	_ = m
}

func TestDialog_EscCancelsAndClearsDraft(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, runes("a"))
	m = typeText(t, m, "half")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	snap := st.Snapshot()
	if snap.AddDialogOpen || snap.DraftText != "" {
		t.Fatalf("cancel should close and clear: %+v", snap)
	}
	m = press(t, m, runes("a"))
	if m.input.Value() != "" {
		t.Fatalf("reopened input = %q", m.input.Value())
	}
}

func TestDialog_CtrlZUndoesWhileTyping(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, runes("D"))
	m = press(t, m, runes("a"))
	m = typeText(t, m, "x")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	snap := st.Snapshot()
	if len(snap.Items) != 4 {
		t.Fatalf("ctrl+z should undo inside the dialog, items=%d", len(snap.Items))
	}
	if !snap.AddDialogOpen || snap.DraftText != "x" {
		t.Fatalf("undo must not touch the dialog: %+v", snap)
	}
	_ = m
}

func TestMouse_ClickSelectsAndCtrlClickToggles(t *testing.T) {
	m, st, clk := newTestModel(t)
	m = apply(t, m, click(listTop+1, false))
	if got := st.Snapshot().SelectedIDs; !slices.Equal(got, []string{"2"}) {
		t.Fatalf("click selection = %v", got)
	}
	clk.Advance(time.Second)
	m = apply(t, m, click(listTop+3, true))
	if got := st.Snapshot().SelectedIDs; !slices.Equal(got, []string{"2", "4"}) {
		t.Fatalf("ctrl+click selection = %v", got)
	}
	clk.Advance(time.Second)
	m = apply(t, m, click(listTop+1, true))
	if got := st.Snapshot().SelectedIDs; !slices.Equal(got, []string{"4"}) {
		t.Fatalf("ctrl+click toggle off = %v", got)
	}
	_ = m
}

func TestMouse_DoubleClickDeletes(t *testing.T) {
	m, st, clk := newTestModel(t)
	m = apply(t, m, click(listTop+3, false))
	clk.Advance(100 * time.Millisecond)
	m = apply(t, m, click(listTop+3, false))

	if got := texts(st); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("items = %v", got)
	}
	if len(st.Snapshot().SelectedIDs) != 0 {
		t.Fatal("deleted id must leave the selection")
	}
	_ = m
}

func TestMouse_SlowSecondClickTogglesOff(t *testing.T) {
	m, st, clk := newTestModel(t)
	m = apply(t, m, click(listTop, false))
	clk.Advance(time.Second)
	m = apply(t, m, click(listTop, false))
	if len(st.Snapshot().Items) != 4 {
		t.Fatal("slow clicks must not delete")
	}
	if len(st.Snapshot().SelectedIDs) != 0 {
		t.Fatal("second click should toggle off")
	}
	_ = m
}

func TestMouse_OutsideListIgnored(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = apply(t, m, click(1, false))
	m = apply(t, m, click(listTop+10, false))
	if len(st.Snapshot().SelectedIDs) != 0 {
		t.Fatal("clicks outside rows must not select")
	}
	_ = m
}

func TestRowAt(t *testing.T) {
	m, _, _ := newTestModel(t)
	for row := 0; row < 4; row++ {
		idx, ok := m.rowAt(listTop + row)
		if !ok || idx != row {
			t.Fatalf("rowAt(%d) = %d,%v", listTop+row, idx, ok)
		}
	}
	if _, ok := m.rowAt(listTop - 1); ok {
		t.Fatal("header row should not map to an item")
	}
}

func TestView_EmptyList(t *testing.T) {
	st := liststore.New(liststore.WithState(liststore.State{}))
	m := New(st, Options{Theme: "mono"})
	if !strings.Contains(m.View(), "No items yet. Add one to start.") {
		t.Fatal("empty state message missing")
	}
}

func TestStoreChangedMsgResyncs(t *testing.T) {
	m, st, _ := newTestModel(t)
	st.DeleteByID("1")
	m = apply(t, m, storeChangedMsg{})
	if len(m.list.Items()) != 3 {
		t.Fatalf("list has %d items after resync", len(m.list.Items()))
	}
}
