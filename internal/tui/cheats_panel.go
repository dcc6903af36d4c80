package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"

	"github.com/rivergale/cheatdeck/internal/cheat"
	"github.com/rivergale/cheatdeck/internal/engine"
	"github.com/rivergale/cheatdeck/internal/library"
)

// rowItem is one rendered cheat row. It carries the entry's ID, not its
// position; position is resolved against the list when a key fires, so a
// removal can never leave a row pointing at the wrong entry.
type rowItem struct {
	entry cheat.Entry
}

func (r rowItem) Title() string {
	box := "[ ]"
	if r.entry.Enabled {
		box = "[x]"
	}
	return box + " " + r.entry.Description
}

func (r rowItem) Description() string {
	if r.entry.Permanent {
		return r.entry.Code + "  (permanent)"
	}
	return r.entry.Code
}

func (r rowItem) FilterValue() string {
	return r.entry.Description
}

// cheatPanel keeps the rendered rows, the in-memory cheat list, the engine
// and the persisted state mutually consistent. It owns the list while the
// panel is visible; the engine and store only ever see values.
type cheatPanel struct {
	rom     library.ROM
	cheats  *cheat.List
	engine  engine.Notifier
	persist func(*cheat.List) error
	rows    list.Model
	log     *zap.Logger
	status  string
}

func newCheatPanel(rom library.ROM, cheats *cheat.List, eng engine.Notifier, persist func(*cheat.List) error, log *zap.Logger) *cheatPanel {
	rows := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	rows.SetShowTitle(false)
	rows.SetShowStatusBar(false)
	rows.SetShowHelp(false)
	rows.SetFilteringEnabled(false)

	p := &cheatPanel{
		rom:     rom,
		cheats:  cheats,
		engine:  eng,
		persist: persist,
		rows:    rows,
		log:     log,
	}
	p.rebuildRows()
	return p
}

// rebuildRows discards every rendered row and emits one per entry in list
// order, re-asserting each entry's state with the engine as it goes. The
// re-assert covers unchanged entries too: after any rebuild the engine is
// known to match what the rows show, including on first open.
func (p *cheatPanel) rebuildRows() {
	entries := p.cheats.Entries()
	items := make([]list.Item, 0, len(entries))
	for i, e := range entries {
		if err := p.engine.Notify(e.Enabled, e.Code, i); err != nil {
			p.status = err.Error()
		}
		items = append(items, rowItem{entry: e})
	}
	p.rows.SetItems(items)
	if p.rows.Index() >= len(items) && len(items) > 0 {
		p.rows.Select(len(items) - 1)
	}
}

// toggle flips one entry, notifies the engine and persists. Indices are
// unaffected, so the single row is updated in place without a rebuild.
func (p *cheatPanel) toggle(id string) {
	e, err := p.cheats.Toggle(id)
	if err != nil {
		// Rows only carry IDs handed out by the list, so hitting this is a bug.
		p.log.Error("toggle for unknown cheat", zap.String("id", id))
		p.status = err.Error()
		return
	}
	i := p.cheats.IndexOf(id)
	if err := p.engine.Notify(e.Enabled, e.Code, i); err != nil {
		p.status = err.Error()
	} else {
		p.status = ""
	}
	p.rows.SetItem(i, rowItem{entry: e})
	p.persistList()
}

// remove deactivates the entry with the engine, deletes it, rebuilds every
// row (later entries shift down one position) and persists. Permanent
// entries are refused without mutating anything.
func (p *cheatPanel) remove(id string) {
	e, ok := p.cheats.Get(id)
	if !ok {
		p.log.Error("remove for unknown cheat", zap.String("id", id))
		p.status = "unknown cheat"
		return
	}
	if e.Permanent {
		p.status = fmt.Sprintf("%q is permanent and cannot be removed", e.Description)
		return
	}
	i := p.cheats.IndexOf(id)
	if err := p.engine.Notify(false, e.Code, i); err != nil {
		p.status = err.Error()
	} else {
		p.status = ""
	}
	if _, err := p.cheats.Remove(id); err != nil {
		p.status = err.Error()
		return
	}
	p.rebuildRows()
	p.persistList()
}

// add appends a new disabled entry, rebuilds and persists.
func (p *cheatPanel) add(description, code string) {
	p.cheats.Add(description, code)
	p.status = ""
	p.rebuildRows()
	p.persistList()
}

func (p *cheatPanel) persistList() {
	if err := p.persist(p.cheats); err != nil {
		p.log.Error("persist cheats", zap.String("rom", p.rom.Path), zap.Error(err))
		p.status = err.Error()
	}
}

func (p *cheatPanel) selected() (rowItem, bool) {
	item, ok := p.rows.SelectedItem().(rowItem)
	return item, ok
}
