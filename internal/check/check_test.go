package check

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/cardforge/internal/config"
)

// memLogger captures log lines for assertions.
type memLogger struct {
	lines []string
}

func (m *memLogger) log(format string, args ...interface{}) {
	m.lines = append(m.lines, fmt.Sprintf(format, args...))
}
func (m *memLogger) Info(f string, a ...interface{})    { m.log(f, a...) }
func (m *memLogger) Success(f string, a ...interface{}) { m.log(f, a...) }
func (m *memLogger) Warn(f string, a ...interface{})    { m.log(f, a...) }
func (m *memLogger) Error(f string, a ...interface{})   { m.log(f, a...) }

func (m *memLogger) contains(substr string) bool {
	for _, l := range m.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{128, 128, 128, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()
}

func TestRunCheck_ReportsAspectGate(t *testing.T) {
	project := t.TempDir()
	printDir := filepath.Join(project, "Print")
	if err := os.MkdirAll(printDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(printDir, "good.png"), 219, 298)
	writePNG(t, filepath.Join(printDir, "square.png"), 100, 100)

	cfg := config.Default()
	cfg.ProjectDir = project

	log := &memLogger{}
	if !RunCheck(&cfg, log) {
		t.Fatal("RunCheck = false, want true")
	}
	if !log.contains("good.png") || !log.contains("ok") {
		t.Errorf("missing pass line: %v", log.lines)
	}
	if !log.contains("square.png") || !log.contains("would be skipped") {
		t.Errorf("missing fail line: %v", log.lines)
	}
	if !log.contains("1 pass, 1 wrong ratio, 0 unreadable") {
		t.Errorf("missing summary: %v", log.lines)
	}
}

func TestRunCheck_MissingPrint(t *testing.T) {
	cfg := config.Default()
	cfg.ProjectDir = t.TempDir()

	log := &memLogger{}
	if RunCheck(&cfg, log) {
		t.Error("RunCheck = true, want false for missing Print folder")
	}
	if !log.contains("Print folder not found") {
		t.Errorf("missing error line: %v", log.lines)
	}
}

func TestRunCheck_EmptyPrint(t *testing.T) {
	project := t.TempDir()
	if err := os.MkdirAll(filepath.Join(project, "Print"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.ProjectDir = project

	log := &memLogger{}
	if !RunCheck(&cfg, log) {
		t.Error("RunCheck = false, want true for empty Print folder")
	}
	if !log.contains("No images found") {
		t.Errorf("missing empty-folder line: %v", log.lines)
	}
}
