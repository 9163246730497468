// Package forge implements the third pipeline stage: copy the Share images
// to the Forge folder under their normalized export names.
//
// Unlike the crop and grid stages there is no per-file isolation: the first
// failed copy halts the remaining copies, matching the stage's historical
// behavior.
package forge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/cardforge/internal/fsutil"
	"github.com/backmassage/cardforge/internal/logging"
	"github.com/backmassage/cardforge/internal/naming"
)

// inputExtensions are the formats exported to Forge. Narrower than the crop
// stage's set: bmp and tiff intermediates are left behind.
var inputExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Stats tracks counters for the forge stage.
type Stats struct {
	Copied int
	Bytes  int64
}

// Run copies every accepted image in srcDir to destDir under its
// [naming.ForgeName]. A missing source folder is a no-op. Sources that
// normalize to the same export name silently overwrite each other; the
// last one in sort order wins.
func Run(srcDir, destDir string, log *logging.Logger) (Stats, error) {
	var stats Stats

	if !fsutil.IsDir(srcDir) {
		log.Error("Source folder for Forge prep not found at '%s'. Skipping step.", srcDir)
		return stats, nil
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return stats, fmt.Errorf("create forge folder: %w", err)
	}

	names, err := fsutil.ListImages(srcDir, inputExtensions)
	if err != nil {
		return stats, fmt.Errorf("read source folder: %w", err)
	}

	log.Info("Copying and renaming files for Forge...")
	for _, name := range names {
		newName := naming.ForgeName(name)
		n, err := fsutil.CopyFile(filepath.Join(srcDir, name), filepath.Join(destDir, newName))
		if err != nil {
			return stats, fmt.Errorf("copy '%s': %w", name, err)
		}
		log.Info("Copied '%s' to '%s' in %s", name, newName, destDir)
		stats.Copied++
		stats.Bytes += n
	}
	return stats, nil
}
