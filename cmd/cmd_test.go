package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morrilet/GMTK-2022/internal/devices"
)

const (
	gameHeader   = "../internal/header/testdata/Wwise_IDs.h"
	gameManifest = "../internal/manifest/testdata/gmtk.toml"
	checkedInIDs = "../wwise/ids.go"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes akid with a throwaway config file and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "akid.toml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashCommand(t *testing.T) {
	out, err := run(t, "hash", "Master Audio Bus", "Play_Bump")
	require.NoError(t, err)
	assert.Contains(t, out, "MASTER_AUDIO_BUS")
	assert.Contains(t, out, "3803692087")
	assert.Contains(t, out, "1389500738")
}

func TestLookupCommand(t *testing.T) {
	out, err := run(t, "lookup", "events", "PLAY_BUMP")
	require.NoError(t, err)
	assert.Equal(t, "1389500738\n", out)

	out, err = run(t, "lookup", "bus", "3803692087")
	require.NoError(t, err)
	assert.Equal(t, "MASTER_AUDIO_BUS\n", out)

	_, err = run(t, "lookup", "states", "ALIVE")
	assert.ErrorContains(t, err, "unknown category")

	_, err = run(t, "lookup", "banks", "MUSIC")
	assert.ErrorContains(t, err, "no BANKS entry named MUSIC")
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "audio_devices")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "NO_OUTPUT")
	assert.Contains(t, lines[1], "3859886410")

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 19)
}

func TestGenerateCommand(t *testing.T) {
	want, err := os.ReadFile(checkedInIDs)
	require.NoError(t, err)

	outFile := filepath.Join(t.TempDir(), "wwise", "ids.go")
	_, err = run(t, "generate", "--header", gameHeader, "--out", outFile, "--package", "wwise")
	require.NoError(t, err)

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestGenerateFromManifest(t *testing.T) {
	out, err := run(t, "generate", "--manifest", gameManifest, "--out", "-", "--package", "wwise")
	require.NoError(t, err)
	assert.Contains(t, out, "// Code generated by akid from gmtk.toml. DO NOT EDIT.")
	assert.Contains(t, out, "BusMasterAudioBus BusID = 3803692087")
}

func TestHeaderCommand(t *testing.T) {
	want, err := os.ReadFile(gameHeader)
	require.NoError(t, err)

	out, err := run(t, "header", "--manifest", gameManifest)
	require.NoError(t, err)
	assert.Equal(t, string(want), out)

	_, err = run(t, "header")
	assert.ErrorContains(t, err, "--manifest")
}

func TestVerifyCommand(t *testing.T) {
	_, err := run(t, "verify", "--header", gameHeader)
	assert.NoError(t, err)

	_, err = run(t, "verify", "--header", gameHeader, "--manifest", gameManifest)
	assert.NoError(t, err)

	forged := filepath.Join(t.TempDir(), "Wwise_IDs.h")
	src := "namespace AK { namespace EVENTS { static const AkUniqueID PLAY_BUMP = 7U; } }\n"
	require.NoError(t, os.WriteFile(forged, []byte(src), 0o600))

	out, err := run(t, "verify", "--header", forged)
	assert.ErrorContains(t, err, "1 problem(s)")
	assert.Contains(t, out, "PLAY_BUMP = 7")

	out, err = run(t, "verify", "--header", forged, "--manifest", gameManifest)
	assert.Error(t, err)
	assert.Contains(t, out, "~ EVENTS PLAY_BUMP 1389500738 -> 7")
	assert.Contains(t, out, "- BANKS INIT")
}

func TestVerifyMixedSpacing(t *testing.T) {
	dir := t.TempDir()
	manifestFile := filepath.Join(dir, "names.toml")
	headerFile := filepath.Join(dir, "Wwise_IDs.h")
	names := `events = ["Play_Dice To Meet You", "Stop_All Music_Now"]
busses = ["A_b c_d e_f g_h i_j k_l"]
`
	require.NoError(t, os.WriteFile(manifestFile, []byte(names), 0o600))

	src, err := run(t, "header", "--manifest", manifestFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(headerFile, []byte(src), 0o600))

	// too many separators to guess the spelling from the header alone
	out, err := run(t, "verify", "--header", headerFile)
	assert.ErrorContains(t, err, "1 problem(s)")
	assert.Contains(t, out, "BUSSES A_B_C_D_E_F_G_H_I_J_K_L")
	assert.NotContains(t, out, "EVENTS")

	out, err = run(t, "verify", "--header", headerFile, "--manifest", manifestFile)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestSnapshotListWithBrokenHeader(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "akid.sqlite")
	headerFile := filepath.Join(dir, "Wwise_IDs.h")
	src, err := os.ReadFile(gameHeader)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(headerFile, src, 0o600))

	id, err := run(t, "snapshot", "--header", headerFile, "--database", db)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(headerFile, []byte("namespace AK {"), 0o600))
	out, err := run(t, "snapshot", "--list", "--header", headerFile, "--database", db)
	require.NoError(t, err)
	assert.Contains(t, out, strings.TrimSpace(id))
}

func TestSnapshotAndDiff(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "akid.sqlite")
	headerFile := filepath.Join(dir, "Wwise_IDs.h")
	src, err := os.ReadFile(gameHeader)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(headerFile, src, 0o600))

	_, err = run(t, "diff", "--header", headerFile, "--database", db)
	require.NoError(t, err)

	id, err := run(t, "snapshot", "--header", headerFile, "--database", db)
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(id))

	out, err := run(t, "diff", "--header", headerFile, "--database", db)
	require.NoError(t, err)
	assert.Empty(t, out)

	// a new event is fine, a re-valued one is not
	added := strings.Replace(string(src),
		"static const AkUniqueID PLAY_SYNC = 249366039U;",
		"static const AkUniqueID PLAY_SYNC = 249366039U;\n        static const AkUniqueID PLAY_WIN = 1U;", 1)
	require.NoError(t, os.WriteFile(headerFile, []byte(added), 0o600))
	out, err = run(t, "diff", "--header", headerFile, "--database", db)
	require.NoError(t, err)
	assert.Contains(t, out, "+ EVENTS PLAY_WIN = 1")

	changed := strings.Replace(string(src), "= 249366039U;", "= 2U;", 1)
	require.NoError(t, os.WriteFile(headerFile, []byte(changed), 0o600))
	out, err = run(t, "diff", "--header", headerFile, "--database", db)
	assert.ErrorContains(t, err, "existing ids changed")
	assert.Contains(t, out, "~ EVENTS PLAY_SYNC 249366039 -> 2")

	out, err = run(t, "snapshot", "--list", "--header", headerFile, "--database", db)
	require.NoError(t, err)
	assert.Contains(t, out, strings.TrimSpace(id))
}

func TestPrintDevices(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printDevices(&out, []devices.Device{
		{ID: "hdmi", Name: "HDMI"},
		{ID: "spk", Name: "Speakers"},
	}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "*"), lines[0])
	assert.False(t, strings.HasPrefix(lines[1], "*"), lines[1])

	out.Reset()
	require.NoError(t, printDevices(&out, []devices.Device{
		{ID: "hdmi", Name: "HDMI"},
		{ID: "spk", Name: "Speakers", IsDefault: true},
	}))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.False(t, strings.HasPrefix(lines[0], "*"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "*"), lines[1])
}
