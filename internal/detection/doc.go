// Package detection finds discrete objects in an image by segmenting its
// alpha channel.
//
// The package implements the detection half of object extraction: building a
// binary mask from the alpha channel, cleaning it up, and locating the
// connected opaque regions in it. Cropping the regions out of the source is
// done by the extract package.
//
// # Pipeline
//
//  1. Alpha plane: copy the 8-bit alpha values of the source (ExtractAlpha)
//  2. Noise suppression: 3x3 Gaussian blur of the alpha plane (Blur3x3)
//  3. Thresholding: blurred alpha > threshold is opaque (Binarize)
//  4. Closing: 3x3 dilate then erode to bridge small gaps (Close)
//  5. Regions: external outlines of 8-connected opaque areas (DetectRegions)
//  6. Ordering: banded reading order, stable on ties (OrderRegions)
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Bounding boxes use inclusive top-left and exclusive bottom-right
//
// Masks and alpha planes share the bounds of their source image, so region
// bounds can be used directly to crop the source.
//
// # Thread Safety
//
// Every function is a pure transform that allocates its output. Masks and
// planes are never modified after they are returned, and a source image may
// be read by several detections at once.
package detection
