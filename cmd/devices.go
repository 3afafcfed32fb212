package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/morrilet/GMTK-2022/internal/devices"
	"github.com/morrilet/GMTK-2022/wwise"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List playback devices and the Wwise audio device profile they map to",
	Args:  cobra.NoArgs,
	RunE:  listDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func listDevices(cmd *cobra.Command, _ []string) error {
	devs, err := devices.Enumerate()
	if err != nil {
		return err
	}

	if err := printDevices(cmd.OutOrStdout(), devs); err != nil {
		return err
	}

	id := devices.Resolve(devs)
	name, _ := wwise.NameOf(wwise.AudioDevices, wwise.UniqueID(id))
	log.Info().Int("devices", len(devs)).Msg("Enumerated playback devices")
	fmt.Fprintf(cmd.OutOrStdout(), "wwise audio device: %s (%d)\n", name, id)
	return nil
}

// printDevices writes one row per device, marking the one Wwise's System
// device will open with "*".
func printDevices(out io.Writer, devs []devices.Device) error {
	def, hasDefault := devices.Default(devs)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, d := range devs {
		marker := ""
		if hasDefault && d == def {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", marker, d.Name, d.ID)
	}
	return w.Flush()
}
