package export

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
)

// DirSink writes objects into a local directory, creating it on first use.
// Existing files with the same name are overwritten.
type DirSink struct {
	Dir string
}

// Put encodes img as PNG at Dir/name and returns the file path.
func (d DirSink) Put(ctx context.Context, name string, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
