package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/morrilet/GMTK-2022/internal/shortid"
)

var hashCmd = &cobra.Command{
	Use:   "hash [name...]",
	Short: "Print the Wwise short ID of object names",
	Long: `Arguments:
      name    Wwise object name as spelled in the authoring tool, e.g. "Master Audio Bus"
	`,
	Args: cobra.MinimumNArgs(1),
	Run:  hashNames,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func hashNames(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range args {
		fmt.Fprintf(w, "%s\t%s\t%d\n", name, shortid.Identifier(name), shortid.Hash(name))
	}
	w.Flush()
}
