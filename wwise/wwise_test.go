package wwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morrilet/GMTK-2022/internal/shortid"
)

// Values as shipped in Wwise_IDs.h. A change here means an object was
// renamed or recreated in the Wwise project.
func TestKnownValues(t *testing.T) {
	assert.EqualValues(t, 1389500738, EventPlayBump)
	assert.EqualValues(t, 1147451143, EventPlayButtonreject)
	assert.EqualValues(t, 3523295953, EventPlayChunk)
	assert.EqualValues(t, 44748538, EventPlayClack)
	assert.EqualValues(t, 3498455162, EventPlayClosedoor)
	assert.EqualValues(t, 3775235650, EventPlayDesync)
	assert.EqualValues(t, 2431542269, EventPlayDiceToMeetYou)
	assert.EqualValues(t, 2721379730, EventPlayDoorclose)
	assert.EqualValues(t, 3197300806, EventPlayDooropen)
	assert.EqualValues(t, 4258122755, EventPlayLevelend)
	assert.EqualValues(t, 2576276897, EventPlayMenuclick)
	assert.EqualValues(t, 4143125550, EventPlayOpendoor)
	assert.EqualValues(t, 426136485, EventPlaySadchunk)
	assert.EqualValues(t, 249366039, EventPlaySync)

	assert.EqualValues(t, 1355168291, BankInit)
	assert.EqualValues(t, 4091799443, BankGmtk2022)

	assert.EqualValues(t, 3803692087, BusMasterAudioBus)

	assert.EqualValues(t, 2317455096, AudioDeviceNoOutput)
	assert.EqualValues(t, 3859886410, AudioDeviceSystem)
}

func TestCategoriesAreClosed(t *testing.T) {
	assert.Equal(t, []Category{Events, Banks, Busses, AudioDevices}, Categories())

	names := make([]string, 0, 4)
	for _, c := range Categories() {
		names = append(names, c.String())
		assert.True(t, c.Valid())
	}
	assert.Equal(t, []string{"EVENTS", "BANKS", "BUSSES", "AUDIO_DEVICES"}, names)
	assert.False(t, Category(4).Valid())
	assert.Equal(t, "Category(4)", Category(4).String())

	for _, e := range entries {
		assert.True(t, e.Category.Valid(), e.Name)
	}
}

func TestUniqueWithinCategory(t *testing.T) {
	for _, c := range Categories() {
		t.Run(c.String(), func(t *testing.T) {
			names := make(map[string]bool)
			ids := make(map[UniqueID]string)
			for _, e := range Entries(c) {
				assert.False(t, names[e.Name], "duplicate name %s", e.Name)
				names[e.Name] = true
				if other, ok := ids[e.ID]; ok {
					t.Errorf("%s and %s share id %d", other, e.Name, e.ID)
				}
				ids[e.ID] = e.Name
			}
		})
	}
}

// Every value is the FNV-1 hash of the lowercased object name, with the
// underscores of the identifier possibly standing in for spaces.
func TestValuesAreShortIDs(t *testing.T) {
	for _, e := range entries {
		_, ok := shortid.Resolve(e.Name, uint32(e.ID))
		assert.True(t, ok, "%s %s = %d", e.Category, e.Name, e.ID)
	}
}

func TestEntries(t *testing.T) {
	assert.Len(t, Entries(Events), 14)
	assert.Len(t, Entries(Banks), 2)
	assert.Len(t, Entries(Busses), 1)
	assert.Len(t, Entries(AudioDevices), 2)
	assert.Empty(t, Entries(Category(9)))

	banks := Entries(Banks)
	banks[0].ID = 0
	assert.Equal(t, UniqueID(BankInit), Entries(Banks)[0].ID)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		c    Category
		in   string
		want UniqueID
		ok   bool
	}{
		{name: "identifier", c: Events, in: "PLAY_BUMP", want: UniqueID(EventPlayBump), ok: true},
		{name: "object name", c: Events, in: "Play_Bump", want: UniqueID(EventPlayBump), ok: true},
		{name: "spaced name", c: Busses, in: "Master Audio Bus", want: UniqueID(BusMasterAudioBus), ok: true},
		{name: "wrong category", c: Banks, in: "PLAY_BUMP"},
		{name: "unknown", c: Events, in: "PLAY_NOTHING"},
		{name: "bad category", c: Category(7), in: "SYSTEM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.c, tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf(AudioDevices, UniqueID(AudioDeviceSystem))
	require.True(t, ok)
	assert.Equal(t, "SYSTEM", name)

	_, ok = NameOf(Events, UniqueID(AudioDeviceSystem))
	assert.False(t, ok)
}

func TestTypedHelpers(t *testing.T) {
	ev, ok := Event("play_sync")
	assert.True(t, ok)
	assert.Equal(t, EventPlaySync, ev)

	bank, ok := Bank("GMTK_2022")
	assert.True(t, ok)
	assert.Equal(t, BankGmtk2022, bank)

	bus, ok := Bus("MASTER_AUDIO_BUS")
	assert.True(t, ok)
	assert.Equal(t, BusMasterAudioBus, bus)

	dev, ok := AudioDevice("No_Output")
	assert.True(t, ok)
	assert.Equal(t, AudioDeviceNoOutput, dev)

	_, ok = AudioDevice("SPEAKERS")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"EVENTS":        Events,
		"event":         Events,
		"Banks":         Banks,
		"bus":           Busses,
		"busses":        Busses,
		"audio_devices": AudioDevices,
		"audio-device":  AudioDevices,
		"device":        AudioDevices,
	}
	for in, want := range tests {
		got, ok := ParseCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseCategory("states")
	assert.False(t, ok)
}
