package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Preview layout defaults, matching the thumbnail grid of the desktop tool.
const (
	DefaultThumbnailSize = 128
	DefaultSheetColumns  = 4
)

// Thumbnail scales img to fit within size x size pixels, keeping its aspect
// ratio. Images already smaller than the box are returned as a copy at
// their original size.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultThumbnailSize
	}
	return imaging.Fit(img, size, size, imaging.Lanczos)
}

// ContactSheet lays out thumbnails of images in a grid.
//
// Parameters:
//   - images: Images in display order (row-major).
//   - tile: Cell size in pixels; each thumbnail is centered in its cell.
//   - columns: Cells per row.
//   - background: Fill colour of the sheet; use color.Transparent to keep
//     the objects' transparency visible.
//
// Returns a 1x1 image filled with background when images is empty.
func ContactSheet(images []image.Image, tile, columns int, background color.Color) *image.NRGBA {
	if tile <= 0 {
		tile = DefaultThumbnailSize
	}
	if columns <= 0 {
		columns = DefaultSheetColumns
	}

	if len(images) == 0 {
		sheet := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		draw.Draw(sheet, sheet.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
		return sheet
	}

	if len(images) < columns {
		columns = len(images)
	}
	rows := (len(images) + columns - 1) / columns

	sheet := image.NewNRGBA(image.Rect(0, 0, columns*tile, rows*tile))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, img := range images {
		thumb := Thumbnail(img, tile)
		tb := thumb.Bounds()

		cellX := (i % columns) * tile
		cellY := (i / columns) * tile
		offset := image.Pt(cellX+(tile-tb.Dx())/2, cellY+(tile-tb.Dy())/2)

		draw.Draw(sheet, tb.Add(offset), thumb, tb.Min, draw.Over)
	}

	return sheet
}
