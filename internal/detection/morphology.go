package detection

// Dilate grows the opaque area of m by one pixel in every direction (3x3
// square structuring element). Pixels outside the mask count as transparent,
// so the image border never produces opaque cells on its own.
func Dilate(m *Mask) *Mask {
	return morph(m, Opaque, false)
}

// Erode shrinks the opaque area of m by one pixel in every direction (3x3
// square structuring element). Pixels outside the mask count as opaque, so an
// object touching the image border is not eaten away from that side.
func Erode(m *Mask) *Mask {
	return morph(m, Transparent, true)
}

// Close performs a morphological closing (dilate, then erode). It bridges
// one-pixel gaps inside an object without growing the object's extent.
func Close(m *Mask) *Mask {
	return Erode(Dilate(m))
}

// morph sets a cell to hit whenever any cell of its 3x3 neighbourhood equals
// hit, and to the opposite value otherwise. outsideIsOpaque selects the value
// assumed for neighbours beyond the mask border.
func morph(m *Mask, hit uint8, outsideIsOpaque bool) *Mask {
	width := m.Rect.Dx()
	height := m.Rect.Dy()
	miss := Opaque
	if hit == Opaque {
		miss = Transparent
	}
	outside := Transparent
	if outsideIsOpaque {
		outside = Opaque
	}

	dst := NewMask(m.Rect)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := miss
			for ky := -1; ky <= 1 && v == miss; ky++ {
				for kx := -1; kx <= 1; kx++ {
					px, py := x+kx, y+ky
					n := outside
					if px >= 0 && px < width && py >= 0 && py < height {
						n = m.Pix[py*width+px]
					}
					if n == hit {
						v = hit
						break
					}
				}
			}
			dst.Pix[y*width+x] = v
		}
	}
	return dst
}
