// Package crop implements the first pipeline stage: validate each raw scan's
// aspect ratio, crop away the print bleed, downscale, and write the result
// to the Share folder under the same name.
package crop

import (
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/backmassage/cardforge/internal/fsutil"
	"github.com/backmassage/cardforge/internal/logging"
)

// Reference scan geometry. A full scan is 2187x2975 including bleed; the
// card face inside it is 2010x2814. Scans at other resolutions are accepted
// as long as they keep the 2187:2975 aspect ratio, and the crop box scales
// proportionally.
const (
	refWidth  = 2187
	refHeight = 2975

	faceWidth  = 2010
	faceHeight = 2814

	// Relative tolerance for the aspect-ratio gate.
	aspectTolerance = 1e-3
)

// inputExtensions are the formats accepted from the Print folder.
var inputExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
}

// Stats tracks per-stage counters for the crop stage.
type Stats struct {
	Processed   int
	Skipped     int // Failed the aspect gate.
	Failed      int // Decode or save errors.
	OutputBytes int64
}

// ListInput returns the sorted names of accepted images in dir. Exposed for
// check mode, which previews the stage without processing.
func ListInput(dir string) ([]string, error) {
	return fsutil.ListImages(dir, inputExtensions)
}

// AspectOK reports whether a width/height pair is within the relative
// tolerance of the reference aspect ratio. The tolerance is relative to the
// reference value, not absolute, so it scales with the ratio itself.
func AspectOK(width, height int) bool {
	ref := float64(refWidth) / float64(refHeight)
	cur := float64(width) / float64(height)
	return math.Abs(cur-ref)/ref <= aspectTolerance
}

// Box returns the centered bleed-crop rectangle for an image of the given
// size. Dimensions and offsets use truncating integer division, matching the
// reference geometry exactly at 2187x2975.
func Box(width, height int) image.Rectangle {
	targetW := width * faceWidth / refWidth
	targetH := height * faceHeight / refHeight
	left := (width - targetW) / 2
	top := (height - targetH) / 2
	return image.Rect(left, top, left+targetW, top+targetH)
}

// Run processes every accepted image in inputDir into outputDir. Per-file
// failures are logged and skipped; a missing input directory skips the whole
// stage. The output directory is created if absent.
func Run(inputDir, outputDir string, factor int, log *logging.Logger) Stats {
	var stats Stats

	if !fsutil.IsDir(inputDir) {
		log.Error("Input folder for cropping not found at '%s'. Skipping step.", inputDir)
		return stats
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Error("Cannot create output folder '%s': %v. Skipping step.", outputDir, err)
		return stats
	}

	names, err := fsutil.ListImages(inputDir, inputExtensions)
	if err != nil {
		log.Error("Could not read input folder '%s': %v. Skipping step.", inputDir, err)
		return stats
	}

	log.Info("Scanning for images in: %s", inputDir)
	for _, name := range names {
		processOne(inputDir, outputDir, name, factor, log, &stats)
	}
	return stats
}

// processOne crops and downscales a single scan. Every failure is contained
// here so the batch loop always continues.
func processOne(inputDir, outputDir, name string, factor int, log *logging.Logger, stats *Stats) {
	inPath := filepath.Join(inputDir, name)
	outPath := filepath.Join(outputDir, name)

	img, err := imaging.Open(inPath)
	if err != nil {
		log.Error("Could not process '%s': %v", name, err)
		stats.Failed++
		return
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if !AspectOK(width, height) {
		log.Warn("Skipping '%s': incorrect aspect ratio %.4f (expected ~%.4f)",
			name, float64(width)/float64(height), float64(refWidth)/float64(refHeight))
		stats.Skipped++
		return
	}

	cropped := imaging.Crop(img, Box(width, height))
	newW := cropped.Bounds().Dx() / factor
	newH := cropped.Bounds().Dy() / factor
	resized := imaging.Resize(cropped, newW, newH, imaging.Lanczos)

	if err := imaging.Save(resized, outPath); err != nil {
		log.Error("Could not save '%s': %v", name, err)
		stats.Failed++
		return
	}

	if fi, err := os.Stat(outPath); err == nil {
		stats.OutputBytes += fi.Size()
	}
	log.Info("Processed '%s' (%dx%d) -> %dx%d", name, width, height, newW, newH)
	stats.Processed++
}
