// Package probe reads image headers without decoding pixel data. The grid
// stage uses it to take the cell size from the first sheet image, and check
// mode uses it to report dimensions for a whole folder cheaply.
package probe

import (
	"image"
	"os"

	// Register the formats accepted by the pipeline stages so
	// image.DecodeConfig can sniff them.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Dimensions returns the pixel width and height of the image at path by
// decoding only its header.
func Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
