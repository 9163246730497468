// Package check provides --check diagnostics: a read-only scan of the
// project's Print folder reporting which scans would pass the aspect gate.
package check

import (
	"path/filepath"

	"github.com/backmassage/cardforge/internal/config"
	"github.com/backmassage/cardforge/internal/crop"
	"github.com/backmassage/cardforge/internal/fsutil"
	"github.com/backmassage/cardforge/internal/probe"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck scans the project's Print folder and reports, per image, its
// dimensions and whether it would pass the crop stage's aspect gate.
// Nothing is written. Returns false when the Print folder is missing or
// unreadable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Project Check ===")
	log.Info("Project: %s", cfg.ProjectDir)

	printDir := cfg.PrintDir()
	if !fsutil.IsDir(printDir) {
		log.Error("Print folder not found at '%s'", printDir)
		return false
	}

	names, err := crop.ListInput(printDir)
	if err != nil {
		log.Error("Could not read '%s': %v", printDir, err)
		return false
	}
	if len(names) == 0 {
		log.Warn("No images found in '%s'", printDir)
		return true
	}

	pass, fail, unreadable := 0, 0, 0
	for _, name := range names {
		w, h, err := probe.Dimensions(filepath.Join(printDir, name))
		if err != nil {
			log.Warn("  %s: unreadable (%v)", name, err)
			unreadable++
			continue
		}
		if crop.AspectOK(w, h) {
			log.Info("  %s: %dx%d ok", name, w, h)
			pass++
		} else {
			log.Warn("  %s: %dx%d would be skipped (wrong aspect ratio)", name, w, h)
			fail++
		}
	}

	log.Info("")
	if fail == 0 && unreadable == 0 {
		log.Success("%d image(s), all pass the aspect gate", pass)
	} else {
		log.Warn("%d pass, %d wrong ratio, %d unreadable", pass, fail, unreadable)
	}
	return true
}
