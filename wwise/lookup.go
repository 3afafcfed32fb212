package wwise

import "github.com/morrilet/GMTK-2022/internal/shortid"

type index struct {
	byName map[string]UniqueID
	byID   map[UniqueID]string
}

var indexes = buildIndexes()

func buildIndexes() map[Category]index {
	idx := make(map[Category]index, len(categories))
	for _, c := range categories {
		idx[c] = index{
			byName: make(map[string]UniqueID),
			byID:   make(map[UniqueID]string),
		}
	}
	for _, e := range entries {
		idx[e.Category].byName[e.Name] = e.ID
		idx[e.Category].byID[e.ID] = e.Name
	}
	return idx
}

// Entries returns a copy of the entries of c in header order.
func Entries(c Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds the ID of the header identifier name in category c. The name
// is matched case-insensitively and spaces are read as underscores, so the
// original Wwise object name ("Master Audio Bus") works as well.
func Lookup(c Category, name string) (UniqueID, bool) {
	i, ok := indexes[c]
	if !ok {
		return 0, false
	}
	id, ok := i.byName[shortid.Identifier(name)]
	return id, ok
}

// NameOf returns the header identifier for id in category c.
func NameOf(c Category, id UniqueID) (string, bool) {
	i, ok := indexes[c]
	if !ok {
		return "", false
	}
	name, ok := i.byID[id]
	return name, ok
}

// Event looks up an event by identifier or object name.
func Event(name string) (EventID, bool) {
	id, ok := Lookup(Events, name)
	return EventID(id), ok
}

// Bank looks up a SoundBank.
func Bank(name string) (BankID, bool) {
	id, ok := Lookup(Banks, name)
	return BankID(id), ok
}

// Bus looks up a bus.
func Bus(name string) (BusID, bool) {
	id, ok := Lookup(Busses, name)
	return BusID(id), ok
}

// AudioDevice looks up an audio device profile.
func AudioDevice(name string) (AudioDeviceID, bool) {
	id, ok := Lookup(AudioDevices, name)
	return AudioDeviceID(id), ok
}
