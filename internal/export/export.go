package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/ironsheep/object-extract-mcp/internal/imaging"
)

// ErrNothingToExport is returned by Export when there are no objects.
var ErrNothingToExport = errors.New("no objects to export")

// Sink stores one encoded object under name and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, name string, img image.Image) (string, error)
}

// FileName returns the export file name of the object at 1-based index.
func FileName(base string, index int) string {
	return fmt.Sprintf("%s_objekt_%d.png", base, index)
}

// BaseName returns the file name of path without directory and extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Export writes every object to sink and returns their locations in order.
//
// Export stops at the first failure; the locations written so far are
// returned alongside the error.
func Export(ctx context.Context, sink Sink, base string, objects []*imaging.Object) ([]string, error) {
	if len(objects) == 0 {
		return nil, ErrNothingToExport
	}

	locations := make([]string, 0, len(objects))
	for _, obj := range objects {
		name := FileName(base, obj.Index)
		loc, err := sink.Put(ctx, name, obj.Image)
		if err != nil {
			return locations, fmt.Errorf("failed to export %s: %w", name, err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}
