// Package cmd contains the CLI setup and commands exposed to the user
package cmd

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/morrilet/GMTK-2022/configs"
	"github.com/morrilet/GMTK-2022/internal/logging"
)

var ConfigFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "akid",
	Short: "Generate, check and track the Wwise ID table of the game",
	Long: `akid reads the Wwise_IDs.h header written by the Wwise SoundBank build
(or a manifest of Wwise object names) and keeps the Go constants in
package wwise in sync with it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func init() {
	// deferring this allows user to override config path with cli option
	cobra.OnInitialize(func() {
		logging.Setup(viper.GetBool("debug"))
		configs.InitConfig(ConfigFile)
		logging.Setup(viper.GetBool("debug"))
		log.Debug().Str("path", ConfigFile).Msg("Using config file")
	})

	defaultConfigFilePath := filepath.Join(configs.GetConfigDir(), "akid.toml")
	rootCmd.PersistentFlags().StringVar(&ConfigFile, "config", defaultConfigFilePath, "config file")

	rootCmd.PersistentFlags().String("header", "", "Wwise_IDs.h to read")
	rootCmd.PersistentFlags().String("manifest", "", "names manifest (.toml/.yaml) to read instead of the header")
	rootCmd.PersistentFlags().String("database", "", "snapshot database path")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debugging information")

	// expose to application via viper
	for _, flagName := range []string{"header", "manifest", "database", "debug"} {
		_ = viper.BindPFlag(flagName, rootCmd.PersistentFlags().Lookup(flagName))
	}
}
