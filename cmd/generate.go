package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/morrilet/GMTK-2022/internal/gen"
	"github.com/morrilet/GMTK-2022/internal/watch"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Go ID table from Wwise_IDs.h or a manifest",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("out", "", `generated Go file ("-" for stdout)`)
	generateCmd.Flags().String("package", "", "package of the generated file")
	generateCmd.Flags().Bool("watch", false, "regenerate whenever the input changes")
	_ = viper.BindPFlag("output", generateCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("package", generateCmd.Flags().Lookup("package"))
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	run := func() error { return generate(cmd) }
	if err := run(); err != nil {
		return err
	}

	if watchFlag, _ := cmd.Flags().GetBool("watch"); !watchFlag {
		return nil
	}
	input, err := inputPath()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch.Watch(ctx, log.Logger, input, run)
}

func generate(cmd *cobra.Command) error {
	out, pkg := viper.GetString("output"), viper.GetString("package")
	if out == "" {
		return errors.New("no output configured, pass --out")
	}

	t, source, err := loadTable()
	if err != nil {
		return err
	}
	for _, m := range t.Verify() {
		log.Warn().Str("entry", m.Entry.Name).Msg(m.String())
	}

	var buf bytes.Buffer
	if err := gen.Go(&buf, t, gen.Options{Package: pkg, Source: filepath.Base(source)}); err != nil {
		return err
	}
	err = writeOutput(out, buf.Bytes(), func(b []byte) error {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("source", source).
		Str("output", out).
		Int("entries", t.Len()).
		Msg("Generated ID table")
	return nil
}
