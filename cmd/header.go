package cmd

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/morrilet/GMTK-2022/internal/header"
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Write a Wwise_IDs.h from a names manifest",
	Long: `Hashes the object names of a manifest into Wwise short IDs and writes them
in the layout of the header the Wwise SoundBank build generates.`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if viper.GetString("manifest") == "" {
			return errors.New("must specify a manifest with --manifest")
		}
		return nil
	},
	RunE: writeHeader,
}

func init() {
	rootCmd.AddCommand(headerCmd)
	headerCmd.Flags().String("out", "-", `header file to write ("-" for stdout)`)
}

func writeHeader(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")

	t, source, err := loadTable()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := header.Write(&buf, t); err != nil {
		return err
	}
	err = writeOutput(out, buf.Bytes(), func(b []byte) error {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Str("source", source).Str("output", out).Int("entries", t.Len()).Msg("Wrote header")
	return nil
}
