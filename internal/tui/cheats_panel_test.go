package tui

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/rivergale/cheatdeck/internal/cheat"
	"github.com/rivergale/cheatdeck/internal/engine"
	"github.com/rivergale/cheatdeck/internal/library"
)

// seqCollaborators shares one event log between the engine and the persist
// callback so tests can assert cross-collaborator ordering.
type seqCollaborators struct {
	events []string
}

func (s *seqCollaborators) Notify(active bool, code string, index int) error {
	s.events = append(s.events, fmt.Sprintf("notify %v %s %d", active, code, index))
	return nil
}

func (s *seqCollaborators) persist(*cheat.List) error {
	s.events = append(s.events, "persist")
	return nil
}

func testPanel(t *testing.T, entries ...cheat.Entry) (*cheatPanel, *engine.Recorder, *int) {
	t.Helper()
	rec := &engine.Recorder{}
	persists := 0
	persist := func(*cheat.List) error {
		persists++
		return nil
	}
	p := newCheatPanel(
		library.ROM{Path: "roms/pocket-quest.gb", Title: "POCKET QUEST"},
		cheat.NewList(entries...),
		rec,
		persist,
		zap.NewNop(),
	)
	return p, rec, &persists
}

func scenarioEntries() []cheat.Entry {
	return []cheat.Entry{
		{Description: "Infinite Lives", Code: "A1"},
		{Description: "God Mode", Code: "B2", Enabled: true, Permanent: true},
	}
}

func TestRebuildRowsMatchesListLength(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		entries := make([]cheat.Entry, n)
		for i := range entries {
			entries[i] = cheat.Entry{Description: fmt.Sprintf("cheat %d", i), Code: fmt.Sprintf("0100C%dC0", i)}
		}
		p, rec, _ := testPanel(t, entries...)

		if got := len(p.rows.Items()); got != n {
			t.Errorf("n=%d: %d rows rendered", n, got)
		}
		if got := len(rec.Calls); got != n {
			t.Errorf("n=%d: %d engine notifications on first render", n, got)
		}
		for i, item := range p.rows.Items() {
			row := item.(rowItem)
			if row.entry.Description != entries[i].Description {
				t.Errorf("row %d bound to %q", i, row.entry.Description)
			}
		}
	}
}

func TestInitialRenderAssertsEachEntry(t *testing.T) {
	p, rec, _ := testPanel(t, scenarioEntries()...)

	want := []engine.Notification{
		{Active: false, Code: "A1", Index: 0},
		{Active: true, Code: "B2", Index: 1},
	}
	if len(rec.Calls) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(rec.Calls), len(want))
	}
	for i, w := range want {
		if rec.Calls[i] != w {
			t.Errorf("call %d = %+v, want %+v", i, rec.Calls[i], w)
		}
	}
	if len(p.rows.Items()) != 2 {
		t.Fatalf("%d rows, want 2", len(p.rows.Items()))
	}
}

func TestToggleFlipsOneEntryAndNotifiesOnce(t *testing.T) {
	p, rec, persists := testPanel(t, scenarioEntries()...)
	id := p.cheats.Entries()[0].ID
	before := len(rec.Calls)

	p.toggle(id)

	entries := p.cheats.Entries()
	if !entries[0].Enabled {
		t.Error("entry 0 not enabled")
	}
	if !entries[1].Enabled {
		t.Error("entry 1 changed")
	}
	if got := len(rec.Calls) - before; got != 1 {
		t.Fatalf("%d notifications for one toggle", got)
	}
	want := engine.Notification{Active: true, Code: "A1", Index: 0}
	if rec.Calls[len(rec.Calls)-1] != want {
		t.Errorf("notified %+v, want %+v", rec.Calls[len(rec.Calls)-1], want)
	}
	if *persists != 1 {
		t.Errorf("persisted %d times, want 1", *persists)
	}
	// No rebuild: still two rows, and the toggled row shows its new state.
	if len(p.rows.Items()) != 2 {
		t.Errorf("row count changed on toggle")
	}
	if !p.rows.Items()[0].(rowItem).entry.Enabled {
		t.Errorf("row 0 not updated in place")
	}
}

func TestRemoveShiftsAndRebinds(t *testing.T) {
	p, rec, persists := testPanel(t, scenarioEntries()...)
	id := p.cheats.Entries()[0].ID
	before := len(rec.Calls)

	p.remove(id)

	// Disable-first, then the rebuild re-asserts the survivor at its new
	// position.
	got := rec.Calls[before:]
	want := []engine.Notification{
		{Active: false, Code: "A1", Index: 0},
		{Active: true, Code: "B2", Index: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("notifications after remove: %+v", got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("call %d = %+v, want %+v", i, got[i], w)
		}
	}

	if p.cheats.Len() != 1 {
		t.Fatalf("list length %d, want 1", p.cheats.Len())
	}
	if p.cheats.Entries()[0].Description != "God Mode" {
		t.Error("wrong entry removed")
	}
	if len(p.rows.Items()) != 1 {
		t.Fatalf("%d rows after remove, want 1", len(p.rows.Items()))
	}
	if *persists != 1 {
		t.Errorf("persisted %d times, want 1", *persists)
	}

	// A toggle on the shifted survivor hits the right entry.
	survivor := p.cheats.Entries()[0].ID
	p.toggle(survivor)
	if p.cheats.Entries()[0].Enabled {
		t.Error("survivor toggle missed")
	}
	last := rec.Calls[len(rec.Calls)-1]
	if last.Code != "B2" || last.Index != 0 {
		t.Errorf("survivor notified as %+v", last)
	}
}

func TestRemovePermanentRefused(t *testing.T) {
	p, rec, persists := testPanel(t, scenarioEntries()...)
	id := p.cheats.Entries()[1].ID
	before := len(rec.Calls)

	p.remove(id)

	if p.cheats.Len() != 2 {
		t.Error("permanent removal mutated the list")
	}
	if len(rec.Calls) != before {
		t.Error("permanent removal reached the engine")
	}
	if *persists != 0 {
		t.Error("permanent removal persisted")
	}
	if p.status == "" {
		t.Error("refusal not surfaced in status")
	}
}

func TestAddRebuildsAndPersists(t *testing.T) {
	p, _, persists := testPanel(t, scenarioEntries()...)

	p.add("Moon Jump", "010AC8C5")

	if p.cheats.Len() != 3 {
		t.Fatalf("list length %d, want 3", p.cheats.Len())
	}
	if len(p.rows.Items()) != 3 {
		t.Fatalf("%d rows after add, want 3", len(p.rows.Items()))
	}
	added := p.rows.Items()[2].(rowItem).entry
	if added.Description != "Moon Jump" || added.Enabled {
		t.Errorf("new row = %+v", added)
	}
	if *persists != 1 {
		t.Errorf("persisted %d times, want 1", *persists)
	}
}

func TestEngineNotifiedBeforePersist(t *testing.T) {
	seq := &seqCollaborators{}
	p := newCheatPanel(
		library.ROM{Path: "roms/x.gb", Title: "X"},
		cheat.NewList(scenarioEntries()...),
		seq,
		seq.persist,
		zap.NewNop(),
	)

	seq.events = nil
	p.toggle(p.cheats.Entries()[0].ID)
	if len(seq.events) != 2 || seq.events[0] != "notify true A1 0" || seq.events[1] != "persist" {
		t.Errorf("toggle ordering: %v", seq.events)
	}

	seq.events = nil
	p.remove(p.cheats.Entries()[0].ID)
	want := []string{"notify false A1 0", "notify true B2 0", "persist"}
	if len(seq.events) != len(want) {
		t.Fatalf("remove ordering: %v", seq.events)
	}
	for i, w := range want {
		if seq.events[i] != w {
			t.Errorf("remove event %d = %q, want %q", i, seq.events[i], w)
		}
	}
}

func TestUnknownIDDoesNotMutate(t *testing.T) {
	p, rec, persists := testPanel(t, scenarioEntries()...)
	before := len(rec.Calls)

	p.toggle("no-such-id")
	p.remove("no-such-id")

	if p.cheats.Len() != 2 {
		t.Error("unknown ID mutated the list")
	}
	if len(rec.Calls) != before {
		t.Error("unknown ID reached the engine")
	}
	if *persists != 0 {
		t.Error("unknown ID persisted")
	}
	if p.status == "" {
		t.Error("unknown ID not surfaced in status")
	}
}

func TestEngineErrorSurfacedNotRetried(t *testing.T) {
	rec := &engine.Recorder{Err: fmt.Errorf("bad code")}
	persists := 0
	p := newCheatPanel(
		library.ROM{Path: "roms/x.gb", Title: "X"},
		cheat.NewList(scenarioEntries()...),
		rec,
		func(*cheat.List) error { persists++; return nil },
		zap.NewNop(),
	)

	calls := len(rec.Calls)
	if calls != 2 {
		t.Fatalf("initial render made %d calls", calls)
	}
	if p.status == "" {
		t.Error("engine error not surfaced")
	}

	// Toggle still flips state and persists; the engine error is reported,
	// not retried.
	p.toggle(p.cheats.Entries()[0].ID)
	if len(rec.Calls) != calls+1 {
		t.Errorf("engine called %d times for one toggle", len(rec.Calls)-calls)
	}
	if !p.cheats.Entries()[0].Enabled {
		t.Error("engine error blocked the toggle")
	}
	if persists != 1 {
		t.Error("engine error blocked persistence")
	}
}
