package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder (alpha supported)

	"github.com/ironsheep/object-extract-mcp/internal/detection"
)

// Source is a decoded image together with where it came from.
//
// The Image is shared read-only between every pipeline run that uses it;
// nothing in this module writes to it after decoding.
type Source struct {
	// Path is the file path the image was loaded from.
	Path string

	// Format is the decoder name reported by image.Decode ("png", "webp", ...).
	Format string

	// Image is the decoded raster.
	Image image.Image
}

// SourceCache provides thread-safe caching of decoded source images.
//
// The cache stores decoded images keyed by their file path. Once an image is
// loaded, subsequent Load() calls for the same path return the cached copy
// without disk I/O.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
type SourceCache struct {
	mu      sync.RWMutex
	sources map[string]*Source
}

// NewSourceCache creates and initializes a new empty source cache.
func NewSourceCache() *SourceCache {
	return &SourceCache{
		sources: make(map[string]*Source),
	}
}

// Load retrieves a source from the cache or decodes it from disk if not cached.
//
// Supported formats are PNG, GIF, JPEG, BMP, TIFF and WebP. Only formats that
// can carry alpha are useful for object extraction; the others load fine and
// are rejected later by the pipeline.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func (c *SourceCache) Load(path string) (*Source, error) {
	c.mu.RLock()
	if src, ok := c.sources[path]; ok {
		c.mu.RUnlock()
		return src, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	src := &Source{Path: path, Format: format, Image: img}

	c.mu.Lock()
	c.sources[path] = src
	c.mu.Unlock()

	return src, nil
}

// Clear removes all sources from the cache.
func (c *SourceCache) Clear() {
	c.mu.Lock()
	c.sources = make(map[string]*Source)
	c.mu.Unlock()
}

// Evict removes a specific source from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *SourceCache) Evict(path string) {
	c.mu.Lock()
	delete(c.sources, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded source image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that read the file: "png", "webp", "gif", ...
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image carries an alpha channel usable
	// for object extraction.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// # Alpha Detection
//
// Alpha presence follows detection.HasAlpha, which inspects the decoded
// type rather than the file extension: a truecolor PNG without alpha
// decodes to an opaque *image.RGBA and is reported without alpha.
func LoadImageInfo(cache *SourceCache, path string) (*ImageInfo, error) {
	src, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	colorDepth := "8-bit"
	switch src.Image.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := src.Image.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        src.Format,
		ColorDepth:    colorDepth,
		HasAlpha:      detection.HasAlpha(src.Image),
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *SourceCache, path string) (*DimensionsResult, error) {
	src, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := src.Image.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
