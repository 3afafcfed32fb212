// Package catalog is the in-memory form of a Wwise ID table, shared by the
// header codec, the manifest loader, the Go generator and the snapshot store.
package catalog

import (
	"errors"
	"fmt"

	"github.com/morrilet/GMTK-2022/internal/shortid"
	"github.com/morrilet/GMTK-2022/wwise"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrDuplicateID     = errors.New("duplicate id")
)

// Table holds entries per category in insertion order. The zero value is
// not usable, call New.
type Table struct {
	entries map[wwise.Category][]wwise.Entry
	names   map[wwise.Category]map[string]wwise.UniqueID
	ids     map[wwise.Category]map[wwise.UniqueID]string
}

func New() *Table {
	t := &Table{
		entries: make(map[wwise.Category][]wwise.Entry),
		names:   make(map[wwise.Category]map[string]wwise.UniqueID),
		ids:     make(map[wwise.Category]map[wwise.UniqueID]string),
	}
	for _, c := range wwise.Categories() {
		t.names[c] = make(map[string]wwise.UniqueID)
		t.ids[c] = make(map[wwise.UniqueID]string)
	}
	return t
}

// Add appends an entry, keeping names and values unique within c.
func (t *Table) Add(c wwise.Category, name string, id wwise.UniqueID) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	if _, ok := t.names[c][name]; ok {
		return fmt.Errorf("%w: %s %s", ErrDuplicateName, c, name)
	}
	if other, ok := t.ids[c][id]; ok {
		return fmt.Errorf("%w: %s %s and %s share %d", ErrDuplicateID, c, other, name, id)
	}
	t.entries[c] = append(t.entries[c], wwise.Entry{Category: c, Name: name, ID: id})
	t.names[c][name] = id
	t.ids[c][id] = name
	return nil
}

// Entries returns a copy of the entries of c.
func (t *Table) Entries(c wwise.Category) []wwise.Entry {
	return append([]wwise.Entry(nil), t.entries[c]...)
}

// All returns every entry, categories in header order.
func (t *Table) All() []wwise.Entry {
	var out []wwise.Entry
	for _, c := range wwise.Categories() {
		out = append(out, t.entries[c]...)
	}
	return out
}

func (t *Table) Lookup(c wwise.Category, name string) (wwise.UniqueID, bool) {
	id, ok := t.names[c][name]
	return id, ok
}

func (t *Table) Len() int {
	n := 0
	for _, e := range t.entries {
		n += len(e)
	}
	return n
}

// Validate re-checks every entry against the table invariants and returns
// all violations joined.
func (t *Table) Validate() error {
	return errors.Join(t.Violations()...)
}

// Violations lists every broken table invariant, categories in header order.
func (t *Table) Violations() []error {
	var errs []error
	for _, c := range wwise.Categories() {
		entries := t.entries[c]
		names := make(map[string]struct{}, len(entries))
		ids := make(map[wwise.UniqueID]string, len(entries))
		for _, e := range entries {
			if e.Name == "" {
				errs = append(errs, fmt.Errorf("%s: empty name for id %d", c, e.ID))
			}
			if _, ok := names[e.Name]; ok {
				errs = append(errs, fmt.Errorf("%w: %s %s", ErrDuplicateName, c, e.Name))
			}
			names[e.Name] = struct{}{}
			if other, ok := ids[e.ID]; ok {
				errs = append(errs, fmt.Errorf("%w: %s %s and %s share %d", ErrDuplicateID, c, other, e.Name, e.ID))
			}
			ids[e.ID] = e.Name
		}
	}
	return errs
}

// Mismatch is an entry whose value is not the short ID of its name.
type Mismatch struct {
	Entry wwise.Entry
	Want  []uint32 // short IDs of the underscore and fully spaced spellings
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s %s = %d, hashes to %v", m.Entry.Category, m.Entry.Name, m.Entry.ID, m.Want)
}

// Verify recomputes the short ID of every entry. Entries whose original
// object name cannot be recovered from the identifier are reported.
func (t *Table) Verify() []Mismatch {
	var out []Mismatch
	for _, e := range t.All() {
		if _, ok := shortid.Resolve(e.Name, uint32(e.ID)); ok {
			continue
		}
		m := Mismatch{Entry: e}
		names := shortid.Candidates(e.Name)
		for _, name := range names[:min(2, len(names))] {
			m.Want = append(m.Want, shortid.Hash(name))
		}
		out = append(out, m)
	}
	return out
}
