// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The six pipeline parameters (project dir, rows, cols, background,
// spacing, downscale) fully determine processing behavior; the remaining fields
// only affect display and logging.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Stage directory names inside the project folder. Print holds the raw
// scans, Share the cropped/downscaled intermediates, Forge the renamed
// export copies. Grid sheets go directly into the project folder itself.
const (
	PrintDirName = "Print"
	ShareDirName = "Share"
	ForgeDirName = "Forge"
)

// Config holds all runtime settings. It is populated by [Default] and then
// mutated by [ParseFlags] before being passed (by pointer) to packages that
// need it.
type Config struct {
	// Project folder (set from the positional arg).
	ProjectDir string

	// Grid layout.
	GridRows int // Default: 4.
	GridCols int // Default: 4.
	Spacing  int // Pixels between grid cells and around the border. Default: 0.

	// Background color name for grid canvases. Default: "black".
	Background string

	// Downscale divisor applied after the bleed crop. Default: 3.
	DownscaleFactor int

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// Default returns a Config with the standard pipeline parameters: a 4x4 grid
// on a black background with no spacing, and a downscale divisor of 3.
func Default() Config {
	return Config{
		GridRows:        4,
		GridCols:        4,
		Spacing:         0,
		Background:      "black",
		DownscaleFactor: 3,
		ColorMode:       ColorAuto,
	}
}

// PrintDir returns the raw-scan input directory for the project.
func (c *Config) PrintDir() string { return filepath.Join(c.ProjectDir, PrintDirName) }

// ShareDir returns the intermediate directory (crop output, grid and forge input).
func (c *Config) ShareDir() string { return filepath.Join(c.ProjectDir, ShareDirName) }

// ForgeDir returns the renamed-export output directory.
func (c *Config) ForgeDir() string { return filepath.Join(c.ProjectDir, ForgeDirName) }

// palette maps accepted background color names to their RGBA values.
var palette = map[string]color.NRGBA{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"gray":  {0x80, 0x80, 0x80, 0xff},
	"grey":  {0x80, 0x80, 0x80, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0x80, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
}

// BackgroundColor resolves the configured background name against the
// palette. Call Validate first; an unknown name falls back to black here so
// the grid stage never has to handle a missing color.
func (c *Config) BackgroundColor() color.NRGBA {
	if col, ok := palette[c.Background]; ok {
		return col
	}
	return palette["black"]
}

// Validate checks the flag-level settings: grid dimensions and downscale must
// be at least 1, spacing non-negative, and the background name known. A
// downscale divisor that truncates a particular image to zero pixels is not
// detectable here and stays the caller's responsibility.
func (c *Config) Validate() error {
	if c.GridRows < 1 || c.GridCols < 1 {
		return errors.New("grid rows and cols must be at least 1")
	}
	if c.Spacing < 0 {
		return errors.New("spacing must not be negative")
	}
	if c.DownscaleFactor < 1 {
		return errors.New("downscale factor must be at least 1")
	}
	if _, ok := palette[c.Background]; !ok {
		return fmt.Errorf("unknown background color %q (use black, white, gray, red, green or blue)", c.Background)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ProjectDir == "" {
		return errors.New("need a project directory argument")
	}
	return nil
}
