package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/morrilet/GMTK-2022/internal/catalog"
	"github.com/morrilet/GMTK-2022/internal/header"
	"github.com/morrilet/GMTK-2022/internal/manifest"
)

// inputPath is the manifest when one is configured, else the header.
func inputPath() (string, error) {
	if m := viper.GetString("manifest"); m != "" {
		return m, nil
	}
	if h := viper.GetString("header"); h != "" {
		return h, nil
	}
	return "", errors.New("no header or manifest configured, pass --header or --manifest")
}

// loadTable reads the configured input and validates it.
func loadTable() (*catalog.Table, string, error) {
	path, err := inputPath()
	if err != nil {
		return nil, "", err
	}

	var t *catalog.Table
	if path == viper.GetString("manifest") {
		t, err = loadManifest(path)
	} else {
		t, err = loadHeader(path)
	}
	if err != nil {
		return nil, "", err
	}
	if err := t.Validate(); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return t, sourceKey(path), nil
}

// sourceKey is the name snapshots of the input at path are recorded under.
func sourceKey(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func loadHeader(path string) (*catalog.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening header: %w", err)
	}
	defer f.Close()

	t, err := header.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func loadManifest(path string) (*catalog.Table, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	t, err := m.Table()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte, stdout func([]byte) error) error {
	if path == "-" {
		return stdout(data)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
