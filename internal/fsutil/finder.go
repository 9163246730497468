// Package fsutil provides file system helpers shared by the pipeline stages:
// extension-filtered directory listing and metadata-preserving copy.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListImages returns the names (not paths) of regular files in dir whose
// extension is in exts (lowercase, with leading dot). The listing is
// non-recursive and sorted lexicographically by file name; grid placement
// depends on this order being stable across runs.
func ListImages(dir string, exts map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if exts[ext] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
