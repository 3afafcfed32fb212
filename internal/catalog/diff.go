package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/morrilet/GMTK-2022/wwise"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// Change describes one entry that differs between two tables. Old is zero
// for Added, New is zero for Removed.
type Change struct {
	Kind     ChangeKind
	Category wwise.Category
	Name     string
	Old, New wwise.UniqueID
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s %s = %d", c.Category, c.Name, c.New)
	case Removed:
		return fmt.Sprintf("- %s %s = %d", c.Category, c.Name, c.Old)
	default:
		return fmt.Sprintf("~ %s %s %d -> %d", c.Category, c.Name, c.Old, c.New)
	}
}

// Diff lists the entries added, removed or re-valued between from and to,
// sorted by category then name.
func Diff(from, to *Table) []Change {
	var out []Change
	for _, c := range wwise.Categories() {
		for _, e := range from.entries[c] {
			id, ok := to.names[c][e.Name]
			switch {
			case !ok:
				out = append(out, Change{Kind: Removed, Category: c, Name: e.Name, Old: e.ID})
			case id != e.ID:
				out = append(out, Change{Kind: Changed, Category: c, Name: e.Name, Old: e.ID, New: id})
			}
		}
		for _, e := range to.entries[c] {
			if _, ok := from.names[c][e.Name]; !ok {
				out = append(out, Change{Kind: Added, Category: c, Name: e.Name, New: e.ID})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Change) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
	})
	return out
}

// HasChanged reports whether any change re-valued an existing entry.
func HasChanged(changes []Change) bool {
	return slices.ContainsFunc(changes, func(c Change) bool { return c.Kind == Changed })
}
