// Command cardforge prepares a project folder of print-resolution card
// scans for sharing: it crops the print bleed and downscales Print into
// Share, tiles Share into contact-sheet grids in the project folder, and
// exports renamed copies to Forge.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/cardforge/internal/check"
	"github.com/backmassage/cardforge/internal/config"
	"github.com/backmassage/cardforge/internal/display"
	"github.com/backmassage/cardforge/internal/logging"
	"github.com/backmassage/cardforge/internal/pipeline"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains its default.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt. Once NewLogger succeeds, all output goes through the
	// logger for consistent formatting and log-file capture.
	cfg := config.Default()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "cardforge: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "cardforge: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cardforge: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== cardforge v%s ===", version)
	log.Info("Project: %s", cfg.ProjectDir)
	log.Info("Grid: %dx%d, background %s, spacing %dpx, downscale 1/%d",
		cfg.GridRows, cfg.GridCols, cfg.Background, cfg.Spacing, cfg.DownscaleFactor)
	log.Info("")

	pipeline.Run(&cfg, log)
	return 0
}
