package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/listkeeper/internal/config"
	"github.com/idilsaglam/listkeeper/internal/liststore"
	"github.com/idilsaglam/listkeeper/internal/log"
	"github.com/idilsaglam/listkeeper/internal/model"
	"github.com/idilsaglam/listkeeper/internal/store"
	"github.com/idilsaglam/listkeeper/internal/tui"
	"github.com/idilsaglam/listkeeper/internal/ui"
)

// Options tune behavior from root flags. Empty fields fall back to config.
type Options struct {
	Group      bool // print grouped by selected/unselected
	ConfigPath string
	Backend    string
	Dir        string
	Theme      string
	NoColor    bool
}

// runTUI is swapped out in tests.
var runTUI = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "config":
		return doConfig(a, opt)
	case "ls", "print", "add", "select", "toggle", "clear", "rm", "del", "undo", "reset":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}
	if code := checkArity(cmd, a); code != 0 {
		return code
	}

	e, err := open(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer e.Close()
	st := e.store

	switch cmd {
	case "ls":
		return doList(e)
	case "print":
		return doPrint(st, opt)
	case "add":
		return doAdd(st, strings.Join(a, " "))
	case "select":
		return doSelect(st, a[0], false)
	case "toggle":
		return doSelect(st, a[0], true)
	case "clear":
		if !st.ClearSelection() {
			ui.Notice("nothing selected")
			return 0
		}
		ui.OK("selection cleared")
		return 0
	case "rm":
		return doRemoveSelected(st)
	case "del":
		return doDelete(st, a[0])
	case "undo":
		if !st.Undo() {
			ui.Notice("nothing to undo")
			return 0
		}
		ui.OK("undone")
		return 0
	case "reset":
		st.Reset()
		ui.OK("reset to defaults")
		return 0
	}
	return 2
}

func checkArity(cmd string, a []string) int {
	usage := map[string]string{
		"add":    "usage: listkeeper add <text...>",
		"select": "usage: listkeeper select <id|index>",
		"toggle": "usage: listkeeper toggle <id|index>",
		"del":    "usage: listkeeper del <id|index>",
	}
	switch cmd {
	case "add":
		if len(a) == 0 {
			ui.Fail(usage[cmd])
			return 2
		}
	case "select", "toggle", "del":
		if len(a) != 1 {
			ui.Fail(usage[cmd])
			return 2
		}
	default:
		if len(a) != 0 {
			ui.Fail("usage: listkeeper " + cmd)
			return 2
		}
	}
	return 0
}

func PrintHelp() {
	fmt.Printf(`listkeeper - a tiny list with multi-select and undo

Usage:
  listkeeper [flags] <subcommand> [args]

Subcommands:
  ls                  Interactive list (TUI)
  print               Print the list (--group splits selected/unselected)
  add <text...>       Add a new item (text can be multiple words)
  select <ref>        Select one item; selecting it again clears the selection
  toggle <ref>        Toggle an item in or out of a multi-selection
  clear               Clear the selection
  rm                  Delete all selected items
  del <ref>           Delete one item immediately
  undo                Undo the last add/delete
  reset               Restore the default items and drop history
  config init         Write the effective config (flags applied) to the config file

<ref> is an item id or its 1-based position.

Flags:
  --config <path>     Config file (default ~/.config/listkeeper/config.toml)
  --backend <name>    Storage backend: %s
  --dir <path>        Storage directory
  --theme <name>      Theme: %s
  --group             Group print output
  --no-color          Disable colour

Examples:
  listkeeper add "Buy milk"
  listkeeper toggle 1
  listkeeper toggle 3
  listkeeper rm
  listkeeper undo
`, strings.Join(store.Kinds(), ", "), strings.Join(ui.Themes(), ", "))
}

// -------------- environment ----------------

type env struct {
	cfg     config.Config
	backend store.Backend
	store   *liststore.Store
	logFile io.Closer
}

func (e *env) Close() {
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			log.Error().Err(err).Msg("close backend")
		}
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

// loadConfig reads the config file and env, then applies root flag overrides.
func loadConfig(opt Options) (config.Config, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opt.Backend != "" {
		cfg.Storage.Backend = opt.Backend
	}
	if opt.Dir != "" {
		// The default log file follows the storage dir.
		if cfg.Log.File == filepath.Join(cfg.Storage.Dir, "listkeeper.log") {
			cfg.Log.File = filepath.Join(opt.Dir, "listkeeper.log")
		}
		cfg.Storage.Dir = opt.Dir
	}
	if opt.Theme != "" {
		cfg.UI.Theme = opt.Theme
	}
	return cfg, nil
}

// open loads config, wires logging and storage, and builds the store from
// persisted state.
func open(opt Options) (*env, error) {
	cfg, err := loadConfig(opt)
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.UI.Theme)
	if opt.NoColor {
		ui.SetColorForcing(false, true)
	}

	e := &env{cfg: cfg}
	if e.logFile, err = log.Setup(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, err
	}
	if e.backend, err = store.Open(context.Background(), cfg.Storage.Backend, cfg.Storage.Dir); err != nil {
		e.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}
	e.store = liststore.New(
		liststore.WithBackend(e.backend, cfg.Storage.Key),
		liststore.WithLogger(log.Logger()),
	)
	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("dir", cfg.Storage.Dir).
		Msg("store opened")
	return e, nil
}

// -------------- subcommand impls ----------------

func doList(e *env) int {
	if err := runTUI(e.store, tui.Options{Theme: e.cfg.UI.Theme, Mouse: e.cfg.UI.Mouse}); err != nil {
		log.Error().Err(err).Msg("tui")
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// doConfig handles `config init`. It refuses to overwrite an existing file.
func doConfig(a []string, opt Options) int {
	if len(a) != 1 || a[0] != "init" {
		ui.Fail("usage: listkeeper config init")
		return 2
	}
	path := opt.ConfigPath
	if path == "" {
		path = config.Path()
	}
	if _, err := os.Stat(path); err == nil {
		ui.Fail("config already exists: " + path)
		return 1
	}
	cfg, err := loadConfig(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if err := config.Save(path, cfg); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK("wrote " + path)
	return 0
}

func doPrint(st *liststore.Store, opt Options) int {
	snap := st.Snapshot()
	t := ui.Current()

	header := fmt.Sprintf("%s  %s %d  %s %d",
		ui.C(t.Title, "List"),
		ui.C(t.Accent, "items"), len(snap.Items),
		ui.C(t.Selected, t.SymSelected), len(snap.SelectedIDs),
	)
	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, "undo "+ui.Meter(snap.HistoryLen, liststore.HistoryLimit, 20)))
	lines = append(lines, "")
	if opt.Group {
		lines = append(lines, groupLines(snap)...)
	} else {
		lines = append(lines, flatLines(snap, snap.Items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `listkeeper add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(st *liststore.Store, text string) int {
	if strings.TrimSpace(text) == "" {
		ui.Fail("add: empty text")
		return 2
	}
	st.AddText(text)
	snap := st.Snapshot()
	ui.OK("added " + snap.Items[len(snap.Items)-1].ID)
	return 0
}

func doSelect(st *liststore.Store, ref string, multi bool) int {
	it, ok := resolve(st, ref)
	if !ok {
		return 2
	}
	st.Select(it.ID, multi)
	if st.Snapshot().IsSelected(it.ID) {
		ui.OK("selected " + it.Text)
	} else {
		ui.OK("deselected " + it.Text)
	}
	return 0
}

func doRemoveSelected(st *liststore.Store) int {
	n := len(st.Snapshot().SelectedIDs)
	if !st.DeleteSelected() {
		ui.Notice("nothing selected")
		return 0
	}
	ui.OK(fmt.Sprintf("removed %d", n))
	return 0
}

func doDelete(st *liststore.Store, ref string) int {
	it, ok := resolve(st, ref)
	if !ok {
		return 2
	}
	st.DeleteByID(it.ID)
	ui.OK("removed " + it.Text)
	return 0
}

func resolve(st *liststore.Store, ref string) (model.Item, bool) {
	snap := st.Snapshot()
	it, ok := snap.Lookup(ref)
	if !ok {
		ui.Fail(fmt.Sprintf("no item %q: have %d items", ref, len(snap.Items)))
		ui.Hint("Hint: run `listkeeper print` to see ids and positions")
		return model.Item{}, false
	}
	return it, true
}

// -------------- rendering helpers --------------

func flatLines(snap liststore.Snapshot, items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "No items yet. Add one to start.")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		pos := model.IndexOf(snap.Items, it.ID) + 1
		idx := fmt.Sprintf("%2d.", pos)
		mark, color := t.SymUnselected, t.Muted
		if snap.IsSelected(it.ID) {
			mark, color = t.SymSelected, t.Selected
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			ui.C(ui.Dim(), idx), ui.C(color, mark), ui.Truncate(it.Text, 80), ui.C(t.Muted, it.ID)))
	}
	return out
}

func groupLines(snap liststore.Snapshot) []string {
	t := ui.Current()
	var sel, rest []model.Item
	for _, it := range snap.Items {
		if snap.IsSelected(it.ID) {
			sel = append(sel, it)
		} else {
			rest = append(rest, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(t.Accent, "Selected"))
	if len(sel) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(snap, sel)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Unselected"))
	if len(rest) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(snap, rest)...)
	}
	return lines
}
