package config

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/cards/Commander", "/cards/Commander"},
		{"single trailing slash", "/cards/Commander/", "/cards/Commander"},
		{"multiple trailing slashes", "/cards/Commander///", "/cards/Commander"},
		{"root path", "/", "/"},
		{"relative path", "Test", "Test"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDerivedDirs(t *testing.T) {
	c := Default()
	c.ProjectDir = filepath.Join("cards", "Test")

	if got, want := c.PrintDir(), filepath.Join("cards", "Test", "Print"); got != want {
		t.Errorf("PrintDir = %q, want %q", got, want)
	}
	if got, want := c.ShareDir(), filepath.Join("cards", "Test", "Share"); got != want {
		t.Errorf("ShareDir = %q, want %q", got, want)
	}
	if got, want := c.ForgeDir(), filepath.Join("cards", "Test", "Forge"); got != want {
		t.Errorf("ForgeDir = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero rows", func(c *Config) { c.GridRows = 0 }, true},
		{"zero cols", func(c *Config) { c.GridCols = 0 }, true},
		{"negative spacing", func(c *Config) { c.Spacing = -1 }, true},
		{"zero downscale", func(c *Config) { c.DownscaleFactor = 0 }, true},
		{"white background", func(c *Config) { c.Background = "white" }, false},
		{"grey alias", func(c *Config) { c.Background = "grey" }, false},
		{"unknown background", func(c *Config) { c.Background = "mauve" }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = "sometimes" }, true},
		{"missing project dir", func(c *Config) { c.ProjectDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.ProjectDir = "Test"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	cfg := Default()
	cfg.Background = "white"
	if got := cfg.BackgroundColor(); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("white = %v", got)
	}

	// Unknown names fall back to black rather than panicking mid-stage.
	cfg.Background = "mauve"
	if got := cfg.BackgroundColor(); got != (color.NRGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Errorf("fallback = %v, want black", got)
	}
}
