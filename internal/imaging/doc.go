// Package imaging provides the raster operations around object extraction:
// loading source images, cutting out objects, and rendering previews.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// Rectangles follow image.Rectangle: Min is inclusive, Max is exclusive.
// Object bounds are expressed in source image coordinates, while the object
// rasters themselves always start at (0,0).
//
// # Thread Safety
//
// The SourceCache type is safe for concurrent use. Other operations are
// stateless and never write to their inputs, so they can run concurrently on
// the same source image.
//
// # Alpha
//
// Extracted objects are *image.NRGBA (straight alpha). Their alpha bytes are
// copied from the source alpha plane, not from the mask used to find them,
// so antialiased edges survive extraction unchanged.
//
// # Performance Considerations
//
// Decoded sources stay in memory until Evict() or Clear() is called. Large
// sprite sheets may consume significant memory in long-running processes.
package imaging
