package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/morrilet/GMTK-2022/internal/catalog"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the header for duplicate IDs and values that are not short IDs of their names",
	Long: `Parses the configured Wwise_IDs.h, checks that names and values are unique
within each category and recomputes every short ID. When a manifest is
configured as well, the header must contain exactly the manifest's entries.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	headerPath := viper.GetString("header")
	if headerPath == "" {
		return fmt.Errorf("must specify a header with --header")
	}

	t, err := loadHeader(headerPath)
	if err != nil {
		return err
	}
	var want *catalog.Table
	if manifestPath := viper.GetString("manifest"); manifestPath != "" {
		if want, err = loadManifest(manifestPath); err != nil {
			return err
		}
	}

	problems := 0
	for _, err := range t.Violations() {
		fmt.Fprintln(cmd.OutOrStdout(), err)
		problems++
	}
	for _, m := range t.Verify() {
		// the manifest knows the exact object name, Diff checks the value
		if want != nil {
			if _, ok := want.Lookup(m.Entry.Category, m.Entry.Name); ok {
				continue
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), m)
		problems++
	}
	if want != nil {
		for _, c := range catalog.Diff(want, t) {
			fmt.Fprintln(cmd.OutOrStdout(), c)
			problems++
		}
	}

	if problems > 0 {
		return fmt.Errorf("%s: %d problem(s) found", headerPath, problems)
	}
	log.Info().Str("header", headerPath).Int("entries", t.Len()).Msg("Header verified")
	return nil
}
