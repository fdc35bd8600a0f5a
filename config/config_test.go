package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load missing config: %v", err)
	}
	if cfg.ServerURL != Default().ServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.ServerURL, Default().ServerURL)
	}
	if cfg.PlotCount() != PrimaryPlotCount+1 {
		t.Errorf("PlotCount = %d, want %d", cfg.PlotCount(), PrimaryPlotCount+1)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
server_url = "http://seismo.example:8080"
custom_plots = ["Spectrum", "Envelope", "SNR"]
request_timeout_seconds = 30
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServerURL != "http://seismo.example:8080" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if got := cfg.PlotCount(); got != 6 {
		t.Errorf("PlotCount = %d, want 6", got)
	}
	if cfg.RequestTimeoutSeconds != 30 {
		t.Errorf("RequestTimeoutSeconds = %d, want 30", cfg.RequestTimeoutSeconds)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"empty url", func(c *Config) { c.ServerURL = " " }},
		{"bad scheme", func(c *Config) { c.ServerURL = "ftp://x" }},
		{"negative timeout", func(c *Config) { c.RequestTimeoutSeconds = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Error("expected error writing over existing config")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config does not validate: %v", err)
	}
}
