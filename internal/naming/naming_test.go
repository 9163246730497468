package naming

import (
	"path/filepath"
	"testing"
)

func TestForgeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sort prefix and curly quote", "003_Sliver’s Mark.jpg", "Sliver's Mark.fullborder.jpg"},
		{"plain name", "Island.jpg", "Island.fullborder.jpg"},
		{"png keeps jpg suffix", "Forest.png", "Forest.fullborder.jpg"},
		{"leading spaces", "  Swamp.jpeg", "Swamp.fullborder.jpg"},
		{"digits and underscores", "12_04 Mountain.jpg", "Mountain.fullborder.jpg"},
		{"digit inside name survives", "001_Borrowing 100000 Arrows.jpg", "Borrowing 100000 Arrows.fullborder.jpg"},
		{"curly quote mid-name only", "Urza’s Saga.png", "Urza's Saga.fullborder.jpg"},
		{"trim is a character class", "1_2 3Plains.jpg", "Plains.fullborder.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForgeName(tt.in)
			if got != tt.want {
				t.Errorf("ForgeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForgeName_CollisionsMapToSameName(t *testing.T) {
	a := ForgeName("001_Plains.jpg")
	b := ForgeName("002_Plains.jpg")
	if a != b {
		t.Errorf("expected identical export names, got %q and %q", a, b)
	}
}

func TestGridFileName(t *testing.T) {
	got := GridFileName(filepath.Join("cards", "Commander Test"), 2)
	if got != "Commander Test 2.jpg" {
		t.Errorf("GridFileName = %q, want %q", got, "Commander Test 2.jpg")
	}
}

func TestGridFileName_ResolvesDot(t *testing.T) {
	// "." must resolve to the real directory name, not literally ".".
	got := GridFileName(".", 1)
	if got == ". 1.jpg" || got == "" {
		t.Errorf("GridFileName(\".\") = %q, want resolved folder name", got)
	}
}
