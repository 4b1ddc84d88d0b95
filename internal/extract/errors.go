package extract

import (
	"errors"

	"github.com/ironsheep/object-extract-mcp/internal/detection"
)

var (
	// ErrNoAlphaChannel is returned when the source image has no alpha
	// channel. Extraction is never attempted on such images.
	ErrNoAlphaChannel = detection.ErrNoAlphaChannel

	// ErrUnreadableImage is returned for images that could not be read or
	// decoded, and for images with zero width or height.
	ErrUnreadableImage = errors.New("empty or unreadable image")

	// ErrInvalidParams is returned when Params fail validation.
	ErrInvalidParams = errors.New("invalid extraction parameters")

	// ErrNoImageLoaded is returned by Session operations that need an image
	// before one has been loaded.
	ErrNoImageLoaded = errors.New("no image loaded")

	// ErrSuperseded is returned by Session.Run when a newer submission was
	// made while the run was in progress. The run's result is not stored.
	ErrSuperseded = errors.New("extraction superseded by a newer run")
)
