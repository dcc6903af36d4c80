package cheat

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry is one togglable cheat code.
type Entry struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
	Enabled     bool   `yaml:"enabled"`
	Permanent   bool   `yaml:"permanent,omitempty"`
}

// List is an ordered collection of cheat entries. Position in the list is
// display order; entries are addressed by ID so that a removal, which shifts
// every later entry down by one, can never redirect a handler that was bound
// before the shift.
type List struct {
	entries []Entry
}

// NewList wraps the given entries. Entries without an ID get one assigned,
// so hand-edited cheat files stay addressable.
func NewList(entries ...Entry) *List {
	l := &List{entries: make([]Entry, len(entries))}
	copy(l.entries, entries)
	for i := range l.entries {
		if l.entries[i].ID == "" {
			l.entries[i].ID = uuid.NewString()
		}
	}
	return l
}

func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the list in display order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Add appends a new, disabled, removable entry and returns it.
func (l *List) Add(description, code string) Entry {
	e := Entry{
		ID:          uuid.NewString(),
		Description: description,
		Code:        code,
	}
	l.entries = append(l.entries, e)
	return e
}

// IndexOf returns the current position of the entry, or -1 if unknown.
func (l *List) IndexOf(id string) int {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *List) Get(id string) (Entry, bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Toggle flips the entry's enabled state and returns the updated entry.
func (l *List) Toggle(id string) (Entry, error) {
	i := l.IndexOf(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("unknown cheat %s", id)
	}
	l.entries[i].Enabled = !l.entries[i].Enabled
	return l.entries[i], nil
}

// Remove deletes the entry and returns it. Permanent entries are refused and
// the list is left untouched.
func (l *List) Remove(id string) (Entry, error) {
	i := l.IndexOf(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("unknown cheat %s", id)
	}
	e := l.entries[i]
	if e.Permanent {
		return Entry{}, fmt.Errorf("cheat %q is permanent and cannot be removed", e.Description)
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return e, nil
}

// FindByPrefix resolves a case-insensitive ID prefix to a single entry.
// Used by the CLI so users do not have to type full UUIDs.
func (l *List) FindByPrefix(prefix string) (Entry, error) {
	if prefix == "" {
		return Entry{}, fmt.Errorf("empty cheat id")
	}
	var found []Entry
	for _, e := range l.entries {
		if hasFold(e.ID, prefix) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return Entry{}, fmt.Errorf("no cheat matches id %q", prefix)
	case 1:
		return found[0], nil
	default:
		return Entry{}, fmt.Errorf("id %q is ambiguous (%d matches)", prefix, len(found))
	}
}

func hasFold(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
