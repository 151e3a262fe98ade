package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/listkeeper/internal/liststore"
	"github.com/idilsaglam/listkeeper/internal/model"
	"github.com/idilsaglam/listkeeper/internal/ui"
)

const (
	// Draft length cap; the store itself does not enforce one.
	maxDraftLen = 120

	doubleClickWindow = 400 * time.Millisecond

	// Screen rows above the first list row: panel border + title + hint + blank.
	listTop = 4
	// Rows outside the list when the dialog is closed: border(2) + header(3)
	// + blank + buttons + status + help.
	chromeRows = 9
	// Extra rows taken by the add dialog.
	dialogRows = 5
)

// storeChangedMsg is delivered by the store subscription in Run.
type storeChangedMsg struct{}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
	selected bool
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{ st *styles }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	marker := d.st.muted.Render(d.st.symUnselected)
	text := it.Text
	if limit := m.Width() - 6; limit > 0 {
		text = ui.Truncate(text, limit)
	}
	if it.selected {
		marker = d.st.accent.Render(d.st.symSelected)
		text = d.st.selected.Render(" " + text + " ")
	} else {
		text = " " + text
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.st.cursor.Render("> ")
	}
	fmt.Fprint(w, prefix+marker+text)
}

// Options tune the interactive view.
type Options struct {
	Theme string
	Mouse bool
	Now   func() time.Time
}

// Model is the Bubble Tea model. All list state lives in the store; the
// model only keeps cursor, terminal size and click tracking.
type Model struct {
	store *liststore.Store
	snap  liststore.Snapshot

	list  list.Model
	input textinput.Model
	help  help.Model
	keys  keyMap
	st    *styles

	mouse  bool
	now    func() time.Time
	width  int
	height int

	lastClickID string
	lastClickAt time.Time
}

// New builds the model around st.
func New(st *liststore.Store, opt Options) Model {
	sty := newStyles(opt.Theme)

	l := list.New(nil, itemDelegate{st: &sty}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = sty.help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type the text here..."
	ti.CharLimit = maxDraftLen

	now := opt.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		store:  st,
		list:   l,
		input:  ti,
		help:   help.New(),
		keys:   defaultKeyMap(),
		st:     &sty,
		mouse:  opt.Mouse,
		now:    now,
		width:  80,
		height: 24,
	}
	m.help.Styles.ShortKey = sty.button
	m.help.Styles.ShortDesc = sty.help
	m.sync()
	m.resize()
	return m
}

// Init and Update and View implement Bubble Tea's Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case storeChangedMsg:
		m.sync()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	if m.snap.AddDialogOpen {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Undo works regardless of focus.
	if key.Matches(msg, m.keys.UndoAnywhere) {
		m.store.Undo()
		m.sync()
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.snap.AddDialogOpen {
		switch {
		case key.Matches(msg, m.keys.Submit):
			if m.snap.CanSubmit() {
				m.store.Add()
				m.sync()
			}
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			m.store.SetAddDialogOpen(false)
			m.sync()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.SetDraftText(m.input.Value())
		m.snap = m.store.Snapshot()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.store.SetAddDialogOpen(true)
		m.sync()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Select):
		if id, ok := m.cursorID(); ok {
			m.store.Select(id, false)
			m.sync()
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.cursorID(); ok {
			m.store.Select(id, true)
			m.sync()
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if m.snap.CanDelete() {
			m.store.DeleteSelected()
			m.sync()
		}
		return m, nil
	case key.Matches(msg, m.keys.DeleteNow):
		if id, ok := m.cursorID(); ok {
			m.store.DeleteByID(id)
			m.sync()
		}
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.store.ClearSelection()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Undo):
		m.store.Undo()
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleMouse maps clicks on list rows to the interaction contract: click
// selects, ctrl/alt+click toggles, a second click on the same row within
// doubleClickWindow deletes it. Clicks are ignored while the dialog is open.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if !m.mouse || m.snap.AddDialogOpen {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.CursorUp()
		return m
	case tea.MouseButtonWheelDown:
		m.list.CursorDown()
		return m
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}

	idx, ok := m.rowAt(msg.Y)
	if !ok {
		return m
	}
	id := m.snap.Items[idx].ID
	m.list.Select(idx)

	now := m.now()
	if id == m.lastClickID && now.Sub(m.lastClickAt) <= doubleClickWindow {
		m.lastClickID = ""
		m.store.DeleteByID(id)
		m.sync()
		return m
	}
	m.lastClickID, m.lastClickAt = id, now
	m.store.Select(id, msg.Ctrl || msg.Alt)
	m.sync()
	return m
}

// rowAt converts a screen row to an item index on the current page.
func (m Model) rowAt(y int) (int, bool) {
	row := y - listTop
	if row < 0 || len(m.snap.Items) == 0 {
		return 0, false
	}
	p := m.list.Paginator
	if row >= p.ItemsOnPage(len(m.snap.Items)) {
		return 0, false
	}
	idx := p.Page*p.PerPage + row
	if idx >= len(m.snap.Items) {
		return 0, false
	}
	return idx, true
}

func (m Model) cursorID() (string, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return "", false
	}
	return it.ID, true
}

// sync pulls a fresh snapshot from the store into the list and input.
func (m *Model) sync() {
	m.snap = m.store.Snapshot()

	cur := m.list.Index()
	items := make([]list.Item, 0, len(m.snap.Items))
	for _, it := range m.snap.Items {
		items = append(items, listItem{Item: it, selected: m.snap.IsSelected(it.ID)})
	}
	m.list.SetItems(items)
	if cur >= len(items) {
		cur = len(items) - 1
	}
	if cur >= 0 {
		m.list.Select(cur)
	}

	if m.snap.AddDialogOpen {
		if !m.input.Focused() {
			m.input.SetValue(m.snap.DraftText)
			m.input.CursorEnd()
			m.input.Focus()
		}
	} else if m.input.Focused() || m.input.Value() != "" {
		m.input.Blur()
		m.input.SetValue("")
	}
	m.resize()
}

func (m *Model) resize() {
	h := m.height - chromeRows
	if m.snap.AddDialogOpen {
		h -= dialogRows
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
	m.input.Width = w - 8
}

func (m Model) View() string {
	s := m.st
	var b strings.Builder

	header := fmt.Sprintf("%s   %s",
		s.title.Render("List"),
		s.muted.Render(fmt.Sprintf("%d items · %d selected", len(m.snap.Items), len(m.snap.SelectedIDs))),
	)
	b.WriteString(header + "\n")
	hint := "click select · ctrl/alt+click multi-select · double-click delete · ctrl+z undo"
	if !m.mouse {
		hint = "space select · x multi-select · D delete item · ctrl+z undo"
	}
	b.WriteString(s.muted.Render(ui.Truncate(hint, m.width-4)) + "\n\n")

	if len(m.snap.Items) == 0 {
		empty := s.muted.Render("No items yet. Add one to start.")
		b.WriteString(lipgloss.NewStyle().Height(m.list.Height()).Render(empty))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n\n")

	b.WriteString(strings.Join([]string{
		m.button("u", "Undo", m.snap.CanUndo()),
		m.button("del", "Delete", m.snap.CanDelete()),
		m.button("a", "Add", true),
	}, "   ") + "\n")
	b.WriteString(s.muted.Render("undo "+ui.Meter(m.snap.HistoryLen, liststore.HistoryLimit, 10)) + "\n")

	if m.snap.AddDialogOpen {
		title := s.title.Render("Add item to list")
		footer := strings.Join([]string{
			m.button("enter", "Add", m.snap.CanSubmit()),
			m.button("esc", "Cancel", true),
		}, "   ")
		b.WriteString(s.dialog.Render(title+"\n"+m.input.View()+"\n"+footer) + "\n")
		b.WriteString(m.help.View(dialogHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(listHelp{m.keys}))
	}
	return s.panel.Render(b.String())
}

func (m Model) button(k, label string, enabled bool) string {
	text := fmt.Sprintf("[%s] %s", k, strings.ToUpper(label))
	if !enabled {
		return m.st.disabled.Render(text)
	}
	return m.st.button.Render(text)
}
