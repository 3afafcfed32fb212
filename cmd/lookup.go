package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/morrilet/GMTK-2022/wwise"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [category] [name|id]",
	Short: "Resolve a name or ID in the compiled-in table",
	Long: `Arguments:
      category    events, banks, busses or audio_devices (singular forms work too)
      name|id     header identifier or object name, or a numeric ID
	`,
	Args: cobra.ExactArgs(2),
	RunE: lookup,
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "Print the compiled-in table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  list,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(listCmd)
}

func parseCategory(s string) (wwise.Category, error) {
	c, ok := wwise.ParseCategory(s)
	if !ok {
		return 0, fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

func lookup(cmd *cobra.Command, args []string) error {
	c, err := parseCategory(args[0])
	if err != nil {
		return err
	}

	if v, err := strconv.ParseUint(args[1], 10, 32); err == nil {
		name, ok := wwise.NameOf(c, wwise.UniqueID(v))
		if !ok {
			return fmt.Errorf("no %s entry with id %d", c, v)
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}

	id, ok := wwise.Lookup(c, args[1])
	if !ok {
		return fmt.Errorf("no %s entry named %s", c, args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func list(cmd *cobra.Command, args []string) error {
	cats := wwise.Categories()
	if len(args) == 1 {
		c, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		cats = []wwise.Category{c}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, c := range cats {
		for _, e := range wwise.Entries(c) {
			fmt.Fprintf(w, "%s\t%s\t%d\n", c, e.Name, e.ID)
		}
	}
	return w.Flush()
}
