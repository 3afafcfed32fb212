// Package wwise holds the Wwise identifiers of the game's audio project.
//
// The values are produced by the Wwise SoundBank build and mirrored here from
// Wwise_IDs.h by "akid generate". They are opaque short IDs: never compute or
// edit them by hand, regenerate ids.go instead.
package wwise

//go:generate go run .. generate --header ../Assets/StreamingAssets/Audio/GeneratedSoundBanks/Wwise_IDs.h --out ids.go --package wwise
//go:generate stringer -linecomment -type Category

import "strings"

// UniqueID is the Wwise AkUniqueID.
type UniqueID uint32

// Per-category IDs, so an event cannot be posted with a bank's ID.
type (
	// EventID identifies an event, the unit the game posts to play audio.
	EventID       uint32
	// BankID identifies a SoundBank to load.
	BankID        uint32
	// BusID identifies a mixing bus.
	BusID         uint32
	// AudioDeviceID identifies an audio device shareset to open output with.
	AudioDeviceID uint32
)

// Category is one of the namespaces of Wwise_IDs.h.
type Category uint8

const (
	Events       Category = iota // EVENTS
	Banks                        // BANKS
	Busses                       // BUSSES
	AudioDevices                 // AUDIO_DEVICES
)

// Entry is a single named identifier.
type Entry struct {
	Category Category
	Name     string
	ID       UniqueID
}

var categories = []Category{Events, Banks, Busses, AudioDevices}

// Categories returns every category in header order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c <= AudioDevices
}

// ParseCategory accepts a namespace name such as "AUDIO_DEVICES" or a
// singular alias such as "device", ignoring case.
func ParseCategory(s string) (Category, bool) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	switch key {
	case "EVENTS", "EVENT":
		return Events, true
	case "BANKS", "BANK":
		return Banks, true
	case "BUSSES", "BUSES", "BUS":
		return Busses, true
	case "AUDIO_DEVICES", "AUDIO_DEVICE", "DEVICES", "DEVICE":
		return AudioDevices, true
	}
	return 0, false
}
