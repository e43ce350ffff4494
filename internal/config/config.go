// Package config loads and validates the HyprGrid configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	apperrors "github.com/hyprgrid/hyprgrid/pkg/errors"
)

// RelPath is the config file location relative to the XDG config home.
const RelPath = "hypr/hg_config.conf"

// Bounds for both grid dimensions.
const (
	MinDimension = 2
	MaxDimension = 50
)

// Defaults written by WriteDefault.
const (
	DefaultRows = 10
	DefaultCols = 20
)

// Config holds the grid dimensions for a landscape monitor.
type Config struct {
	GridRows int `toml:"grid_rows"`
	GridCols int `toml:"grid_cols"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{GridRows: DefaultRows, GridCols: DefaultCols}
}

// Validate checks both dimensions against [MinDimension, MaxDimension].
func (c *Config) Validate() error {
	if err := apperrors.ValidateRange("grid_rows", c.GridRows, MinDimension, MaxDimension,
		"A reasonable value would be between 5 and 20."); err != nil {
		return err
	}
	return apperrors.ValidateRange("grid_cols", c.GridCols, MinDimension, MaxDimension,
		"A reasonable value would be between 10 and 30.")
}

// Overrides are command-line values that replace config file values.
// A nil field means the flag was not set.
type Overrides struct {
	Rows *int
	Cols *int
}

// Apply returns a copy of c with the overrides applied and validated.
func (c *Config) Apply(o Overrides) (*Config, error) {
	out := *c
	if o.Rows != nil {
		out.GridRows = *o.Rows
	}
	if o.Cols != nil {
		out.GridCols = *o.Cols
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Result is a loaded configuration together with where it came from and
// any non-fatal findings.
type Result struct {
	Config   *Config
	Path     string
	Warnings []string
}

// Path returns the config file path: the first existing file in the XDG
// config directories, or the location where it would be created. It never
// creates directories.
func Path() string {
	if path, err := xdg.SearchConfigFile(RelPath); err == nil {
		return path
	}
	return defaultPath()
}

func defaultPath() string {
	return filepath.Join(xdg.ConfigHome, RelPath)
}

// Load reads the config file at path, or at Path() when path is empty.
func Load(path string) (*Result, error) {
	if path == "" {
		p, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeConfigNotFound,
				"configuration file not found.\nExpected location: %s\nRun 'hyprgrid config init' to create one.", defaultPath())
		}
		path = p
	}

	// #nosec G304 - reading the user's own config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.ErrCodeConfigNotFound,
				"configuration file not found at: %s\nRun 'hyprgrid config init' to create one.", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeConfigRead, err,
			"failed to read configuration file at: %s\nPlease ensure the file exists and is readable.", path)
	}

	res, err := Parse(data)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeConfigParse) {
			return nil, apperrors.Wrap(apperrors.ErrCodeConfigParse, errors.Unwrap(err),
				"failed to parse configuration file at: %s\nPlease check that the TOML syntax is valid.\nExample format:\ngrid_rows = 10\ngrid_cols = 20", path)
		}
		return nil, err
	}
	res.Path = path
	return res, nil
}

// Parse decodes and validates TOML config data. Both keys are required;
// unknown keys are reported as warnings.
func Parse(data []byte) (*Result, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfigParse, err, "invalid TOML")
	}

	for _, key := range []string{"grid_rows", "grid_cols"} {
		if !md.IsDefined(key) {
			return nil, apperrors.New(apperrors.ErrCodeConfigInvalid, "missing required key %q", key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Config: &cfg}
	for _, key := range md.Undecoded() {
		res.Warnings = append(res.Warnings, fmt.Sprintf("unknown key %q ignored", key.String()))
	}
	return res, nil
}

// WriteDefault writes a commented default config to path. It refuses to
// replace an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return apperrors.New(apperrors.ErrCodeConfigInvalid,
				"configuration file already exists at: %s\nUse --force to overwrite it.", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to create config directory for %s", path)
	}

	var body bytes.Buffer
	if err := toml.NewEncoder(&body).Encode(Default()); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to encode default config")
	}

	var sb strings.Builder
	sb.WriteString("# HyprGrid Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# grid_rows: Number of grid rows on a landscape monitor\n")
	fmt.Fprintf(&sb, "#   Range: %d to %d\n", MinDimension, MaxDimension)
	sb.WriteString("#\n")
	sb.WriteString("# grid_cols: Number of grid columns on a landscape monitor\n")
	fmt.Fprintf(&sb, "#   Range: %d to %d\n", MinDimension, MaxDimension)
	sb.WriteString("#\n")
	sb.WriteString("# Rows and columns are swapped automatically on portrait monitors.\n")
	sb.WriteString("# rows × cols must not exceed 676 cells.\n\n")
	sb.Write(body.Bytes())

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to write config file %s", path)
	}
	return nil
}
