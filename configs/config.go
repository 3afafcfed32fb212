// Package configs contains the logic to obtain app configuration from a file or the environment
package configs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "embed" // used to embed the default application config file.

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

//go:embed akid.toml
var defaultConfigFile []byte

// InitConfig initializes the app config with Viper from the environment, a specified file, or a default file.
func InitConfig(file string) {
	if file == "" {
		panic("dev error, InitConfig should always be passed a valid config filepath")
	}
	if err := Load(viper.GetViper(), file); err != nil {
		log.Fatal().Err(err).Str("path", file).Msg("Unable to load config")
	}
}

// Load reads file into v, writing the embedded default config there first
// when it does not exist yet.
func Load(v *viper.Viper, file string) error {
	v.SetConfigType("toml")

	// allow env vars to override config file
	v.SetEnvPrefix("akid")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(file)

	// if config file does not exist, create it with the embedded default config
	if _, err := os.Stat(file); err != nil {
		log.Debug().Str("path", file).Msg("Config file not found, writing default")
		if err := v.ReadConfig(bytes.NewBuffer(defaultConfigFile)); err != nil {
			return fmt.Errorf("error reading default embedded config file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
		if err := os.WriteFile(file, defaultConfigFile, 0o600); err != nil {
			return fmt.Errorf("error writing default config: %w", err)
		}
		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetConfigDir obtains the configuration directory in a cross-platform manner,
// always respecting the XDG_CONFIG_HOME env var, using standard defaults on all OS's,
// but overriding to ~/.config on macOS
func GetConfigDir() string {
	var xdgConfigHome string
	if envVar := os.Getenv("XDG_CONFIG_HOME"); envVar != "" {
		xdgConfigHome = envVar
	} else if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		xdgConfigHome = filepath.Join(home, ".config") // override for mac
	} else {
		xdgConfigHome = xdg.ConfigHome
	}
	return filepath.Join(xdgConfigHome, "akid")
}
