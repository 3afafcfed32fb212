// Package manifest loads the list of Wwise object names a table is built
// from. Unlike Wwise_IDs.h it keeps the original spelling of each name, so
// names containing spaces hash correctly.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/morrilet/GMTK-2022/internal/catalog"
	"github.com/morrilet/GMTK-2022/internal/shortid"
	"github.com/morrilet/GMTK-2022/wwise"
)

var ErrFormat = errors.New("unsupported manifest format")

type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

type Manifest struct {
	Events       []string `toml:"events" yaml:"events"`
	Banks        []string `toml:"banks" yaml:"banks"`
	Busses       []string `toml:"busses" yaml:"busses"`
	AudioDevices []string `toml:"audio_devices" yaml:"audio_devices"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrFormat, path)
}

func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening manifest: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode reads a manifest, rejecting keys it does not know.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	var m Manifest
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("toml decode error: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml decode error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return &m, nil
}

func (m *Manifest) names(c wwise.Category) []string {
	switch c {
	case wwise.Events:
		return m.Events
	case wwise.Banks:
		return m.Banks
	case wwise.Busses:
		return m.Busses
	case wwise.AudioDevices:
		return m.AudioDevices
	}
	return nil
}

// Table hashes every name into a table keyed by header identifiers, in
// manifest order. Two names hashing to the same short ID fail with
// catalog.ErrDuplicateID.
func (m *Manifest) Table() (*catalog.Table, error) {
	t := catalog.New()
	for _, c := range wwise.Categories() {
		for _, name := range m.names(c) {
			if strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("%s: empty object name", c)
			}
			ident := shortid.Identifier(name)
			if err := t.Add(c, ident, wwise.UniqueID(shortid.Hash(name))); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
