// Package config loads the segview TOML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config is the full segview configuration.
type Config struct {
	// ServerURL is the base URL of the annotation backend. Overridden by the
	// positional command line argument when one is given.
	ServerURL string `toml:"server_url"`

	// CustomPlots are the titles of the independently zoomable plots shown
	// after the three primary waveform plots. The backend decides what each
	// one contains; the count here only sizes the zoom array.
	CustomPlots []string `toml:"custom_plots"`

	// RequestTimeoutSeconds bounds each backend call. Zero means no timeout,
	// matching the original tool's behavior.
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`

	// SessionPath is where local review marks and notes are stored.
	SessionPath string `toml:"session_path"`
}

// PrimaryPlotCount is fixed: the three waveform plots that zoom together.
const PrimaryPlotCount = 3

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ServerURL:   "http://localhost:9876",
		CustomPlots: []string{"Spectrum"},
		SessionPath: defaultSessionPath(),
	}
}

// Load reads the config at path. A missing file yields Default() without
// error; a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that would otherwise fail far from their cause.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return errors.New("config: server_url must not be empty")
	}
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("config: server_url %q must start with http:// or https://", c.ServerURL)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config: request_timeout_seconds must not be negative (got %d)", c.RequestTimeoutSeconds)
	}
	return nil
}

// PlotCount is the total number of plots the viewer manages.
func (c Config) PlotCount() int {
	return PrimaryPlotCount + len(c.CustomPlots)
}

// WriteSample writes the embedded sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// DefaultPath is where Load looks when --config is not given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "segview.toml"
	}
	return filepath.Join(home, ".config", "segview", "config.toml")
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "segview-session.db"
	}
	return filepath.Join(home, ".local", "share", "segview", "session.db")
}
