// Package naming holds the pure filename transforms used by the grid and
// forge stages. No file system access happens here.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// forgeSuffix replaces the original extension on every exported file,
// regardless of the source format.
const forgeSuffix = ".fullborder.jpg"

// leadingJunk is the character class trimmed from the front of a base name:
// sort prefixes like "003_" or "12 " that collate scans but should not
// appear in the export name.
const leadingJunk = "0123456789_ "

// ForgeName derives the export file name for a source file name: the
// extension is dropped, leading digits/underscores/spaces are trimmed, the
// right single quotation mark (U+2019) is normalized to an ASCII apostrophe,
// and the fixed .fullborder.jpg suffix is appended.
//
// Two source names differing only in their trimmed prefix map to the same
// export name; the later copy wins.
func ForgeName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	base = strings.TrimLeft(base, leadingJunk)
	base = strings.ReplaceAll(base, "’", "'")
	return base + forgeSuffix
}

// GridFileName returns the file name for grid sheet number page (1-based)
// written into destDir: the directory's own base name followed by the page
// number, e.g. "Commander Test 3.jpg". The absolute path is resolved first
// so that "." yields the real folder name.
func GridFileName(destDir string, page int) string {
	label := destDir
	if abs, err := filepath.Abs(destDir); err == nil {
		label = abs
	}
	return fmt.Sprintf("%s %d.jpg", filepath.Base(label), page)
}
