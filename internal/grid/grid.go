// Package grid implements the second pipeline stage: tile the Share images
// into fixed-size contact sheets saved as numbered JPEGs in the project
// folder.
//
// Packing is deliberately the simplest possible policy: fixed-capacity
// sheets filled in sorted file-name order, no repacking. Correctness depends
// on the crop stage having normalized every image to the same size; later
// images are pasted at their native size regardless.
package grid

import (
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/backmassage/cardforge/internal/fsutil"
	"github.com/backmassage/cardforge/internal/logging"
	"github.com/backmassage/cardforge/internal/naming"
	"github.com/backmassage/cardforge/internal/probe"
)

// jpegQuality is the encoder quality for saved sheets.
const jpegQuality = 95

// inputExtensions are the formats picked up from the Share folder. Wider
// than the crop stage's set: GIFs are accepted here.
var inputExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
}

// Options are the sheet parameters passed down from the pipeline config.
type Options struct {
	Rows       int
	Cols       int
	Spacing    int
	Background color.Color
}

// Stats tracks per-stage counters for the grid stage.
type Stats struct {
	Images int // Images found in the source folder.
	Pages  int // Sheets attempted.
	Saved  int // Sheets written.
	Failed int // Sheet save failures.
}

// Run tiles the images in srcDir into sheets written to destDir. A missing
// or empty source folder is a no-op. Per-image paste failures and per-sheet
// save failures are logged and do not stop the remaining sheets.
func Run(srcDir, destDir string, opts Options, log *logging.Logger) Stats {
	var stats Stats

	if !fsutil.IsDir(srcDir) {
		log.Error("Source folder for grid maker not found at '%s'. Skipping step.", srcDir)
		return stats
	}

	names, err := fsutil.ListImages(srcDir, inputExtensions)
	if err != nil {
		log.Error("Could not read source folder '%s': %v. Skipping step.", srcDir, err)
		return stats
	}
	if len(names) == 0 {
		log.Info("No images found in '%s' to create a grid.", srcDir)
		return stats
	}
	stats.Images = len(names)

	// The first sorted image defines the cell size for every sheet.
	cellW, cellH, err := probe.Dimensions(filepath.Join(srcDir, names[0]))
	if err != nil {
		log.Error("Could not read dimensions of '%s': %v. Skipping step.", names[0], err)
		return stats
	}
	layout := Layout{
		CellWidth:  cellW,
		CellHeight: cellH,
		Rows:       opts.Rows,
		Cols:       opts.Cols,
		Spacing:    opts.Spacing,
	}
	log.Info("Using source image dimensions for grid: %dx%d", cellW, cellH)

	pages := PageCount(len(names), layout.PerPage())
	log.Info("Found %d images. Creating %d sheet(s)...", len(names), pages)

	for page := 0; page < pages; page++ {
		stats.Pages++
		start := page * layout.PerPage()
		end := start + layout.PerPage()
		if end > len(names) {
			end = len(names)
		}
		composePage(srcDir, destDir, names[start:end], page+1, layout, opts.Background, log, &stats)
	}
	return stats
}

// composePage fills one sheet canvas and saves it. A paste failure for one
// image is logged and skipped; the rest of the sheet continues.
func composePage(srcDir, destDir string, names []string, page int, layout Layout, bg color.Color, log *logging.Logger, stats *Stats) {
	log.Info("Processing sheet #%d...", page)
	canvas := imaging.New(layout.CanvasWidth(), layout.CanvasHeight(), bg)

	for i, name := range names {
		img, err := imaging.Open(filepath.Join(srcDir, name))
		if err != nil {
			log.Warn("Could not place '%s': %v. Skipping.", name, err)
			continue
		}
		canvas = imaging.Paste(canvas, img, layout.CellOrigin(i))
	}

	outPath := filepath.Join(destDir, naming.GridFileName(destDir, page))
	if err := imaging.Save(canvas, outPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		log.Error("Could not save sheet: %v", err)
		stats.Failed++
		return
	}
	log.Success("Sheet saved to: %s", outPath)
	stats.Saved++
}
