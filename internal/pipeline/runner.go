// Package pipeline sequences the three processing stages over a project
// folder and reports aggregate stats.
//
// The stages run unconditionally in order; each one independently no-ops
// when its input folder is missing, so an early failure never aborts the
// run as a whole.
package pipeline

import (
	"time"

	"github.com/backmassage/cardforge/internal/config"
	"github.com/backmassage/cardforge/internal/crop"
	"github.com/backmassage/cardforge/internal/display"
	"github.com/backmassage/cardforge/internal/forge"
	"github.com/backmassage/cardforge/internal/grid"
	"github.com/backmassage/cardforge/internal/logging"
)

// Run executes crop -> grid -> forge for the configured project and returns
// aggregate stats. All signaling is via log output.
func Run(cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats
	start := time.Now()

	log.Info("=== STARTING IMAGE PIPELINE ===")
	log.Info("")

	printDir := cfg.PrintDir()
	shareDir := cfg.ShareDir()
	forgeDir := cfg.ForgeDir()

	log.Info("--- Step 1: Cropping and downsizing to '%s' ---", config.ShareDirName)
	cs := crop.Run(printDir, shareDir, cfg.DownscaleFactor, log)
	stats.Cropped = cs.Processed
	stats.CropSkipped = cs.Skipped
	stats.CropFailed = cs.Failed
	stats.ShareBytes = cs.OutputBytes
	log.Info("--- Step 1 finished ---")
	log.Info("")

	log.Info("--- Step 2: Creating image grids ---")
	gs := grid.Run(shareDir, cfg.ProjectDir, grid.Options{
		Rows:       cfg.GridRows,
		Cols:       cfg.GridCols,
		Spacing:    cfg.Spacing,
		Background: cfg.BackgroundColor(),
	}, log)
	stats.GridPages = gs.Pages
	stats.GridSaved = gs.Saved
	stats.GridFailed = gs.Failed
	log.Info("--- Step 2 finished ---")
	log.Info("")

	log.Info("--- Step 3: Renaming files for '%s' ---", config.ForgeDirName)
	fs, err := forge.Run(shareDir, forgeDir, log)
	stats.Exported = fs.Copied
	stats.ForgeBytes = fs.Bytes
	if err != nil {
		log.Error("Forge export halted: %v", err)
	}
	log.Info("--- Step 3 finished ---")
	log.Info("")

	stats.Elapsed = time.Since(start)
	logSummary(log, &stats)
	return stats
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("=== PIPELINE FINISHED ===")
	log.Info("Cropped: %d processed, %d skipped, %d failed (%s written)",
		stats.Cropped, stats.CropSkipped, stats.CropFailed, display.FormatBytes(stats.ShareBytes))
	log.Info("Grids: %d of %d sheet(s) saved", stats.GridSaved, stats.GridPages)
	log.Info("Forge: %d file(s) exported (%s)", stats.Exported, display.FormatBytes(stats.ForgeBytes))
	log.Success("Total execution time: %.2f seconds.", stats.Elapsed.Seconds())
}
