package imaging

import (
	"image"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// ConditionConfig holds configuration for pre-recognition line conditioning.
type ConditionConfig struct {
	// MinHeight is the minimum line height in pixels; smaller crops are
	// upscaled preserving aspect ratio (default: 32).
	MinHeight int

	// TileSize is the side length of the tiles used for localized
	// histogram equalization (default: 64).
	TileSize int

	// ClipLimit caps each histogram bin at ClipLimit times the uniform
	// bin height before equalization, limiting noise amplification in
	// flat regions (default: 3.0).
	ClipLimit float64
}

// DefaultConditionConfig returns sensible default configuration.
func DefaultConditionConfig() ConditionConfig {
	return ConditionConfig{
		MinHeight: 32,
		TileSize:  64,
		ClipLimit: 3.0,
	}
}

// ConditionLine prepares a cropped text-line image for recognition:
// upscale to the minimum height with Catmull-Rom interpolation, 3x3 median
// denoise, tiled histogram equalization, a fixed sharpening convolution,
// and min-max brightness normalization. The recognition engine is language
// agnostic about this step; it purely improves image quality.
func ConditionLine(line *image.Gray) *image.Gray {
	return ConditionLineWithConfig(line, DefaultConditionConfig())
}

// ConditionLineWithConfig is ConditionLine with custom configuration.
func ConditionLineWithConfig(line *image.Gray, config ConditionConfig) *image.Gray {
	bounds := line.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	}

	out := scaleToMinHeight(line, config.MinHeight)
	out = median3(out)
	out = equalizeTiled(out, config.TileSize, config.ClipLimit)
	out = sharpen(out)
	return normalizeContrast(out)
}

// scaleToMinHeight upscales the image so its height is at least minHeight,
// preserving aspect ratio. Images already tall enough are copied unchanged.
func scaleToMinHeight(gray *image.Gray, minHeight int) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if h >= minHeight {
		return ToGray(gray)
	}

	scale := float64(minHeight) / float64(h)
	newW := int(float64(w)*scale + 0.5)
	if newW < 1 {
		newW = 1
	}

	dst := image.NewGray(image.Rect(0, 0, newW, minHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), gray, bounds, xdraw.Src, nil)
	return dst
}

// median3 applies a 3x3 median filter, removing salt-and-pepper noise
// while preserving stroke edges.
func median3(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	var window [9]uint8
	for y := 0; y < h; y++ {
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := 0; x < w; x++ {
			i := 0
			for dy := -1; dy <= 1; dy++ {
				sy := clampToEdge(y+dy, h)
				for dx := -1; dx <= 1; dx++ {
					sx := clampToEdge(x+dx, w)
					window[i] = gray.Pix[sy*gray.Stride+sx]
					i++
				}
			}
			sorted := window
			sort.Slice(sorted[:], func(a, b int) bool { return sorted[a] < sorted[b] })
			dstRow[x] = sorted[4]
		}
	}

	return dst
}

// equalizeTiled applies localized contrast equalization: the image is split
// into a grid of tiles, each tile gets a clipped-histogram equalization
// lookup table, and every pixel is mapped through a bilinear blend of the
// four surrounding tile tables to avoid visible tile seams.
func equalizeTiled(gray *image.Gray, tileSize int, clipLimit float64) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if tileSize < 8 {
		tileSize = 8
	}

	tilesX := (w + tileSize - 1) / tileSize
	tilesY := (h + tileSize - 1) / tileSize

	luts := make([][256]uint8, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*tileSize, ty*tileSize
			x1, y1 := minInt(x0+tileSize, w), minInt(y0+tileSize, h)
			luts[ty*tilesX+tx] = equalizationLUT(gray, x0, y0, x1, y1, clipLimit)
		}
	}

	for y := 0; y < h; y++ {
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		srcRow := gray.Pix[y*gray.Stride : y*gray.Stride+w]

		// Fractional tile coordinate relative to tile centers.
		fy := (float64(y) - float64(tileSize)/2) / float64(tileSize)
		ty0 := int(fy)
		if fy < 0 {
			ty0 = 0
			fy = 0
		}
		ty1 := minInt(ty0+1, tilesY-1)
		wy := fy - float64(ty0)
		if ty0 >= tilesY {
			ty0, ty1, wy = tilesY-1, tilesY-1, 0
		}

		for x := 0; x < w; x++ {
			fx := (float64(x) - float64(tileSize)/2) / float64(tileSize)
			tx0 := int(fx)
			if fx < 0 {
				tx0 = 0
				fx = 0
			}
			tx1 := minInt(tx0+1, tilesX-1)
			wx := fx - float64(tx0)
			if tx0 >= tilesX {
				tx0, tx1, wx = tilesX-1, tilesX-1, 0
			}

			v := srcRow[x]
			v00 := float64(luts[ty0*tilesX+tx0][v])
			v01 := float64(luts[ty0*tilesX+tx1][v])
			v10 := float64(luts[ty1*tilesX+tx0][v])
			v11 := float64(luts[ty1*tilesX+tx1][v])

			top := v00*(1-wx) + v01*wx
			bottom := v10*(1-wx) + v11*wx
			dstRow[x] = clampByte(top*(1-wy) + bottom*wy)
		}
	}

	return dst
}

// equalizationLUT builds a histogram-equalization lookup table for one tile,
// clipping histogram peaks and redistributing the excess uniformly.
func equalizationLUT(gray *image.Gray, x0, y0, x1, y1 int, clipLimit float64) [256]uint8 {
	var lut [256]uint8
	total := (x1 - x0) * (y1 - y0)
	if total == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	var hist [256]float64
	for y := y0; y < y1; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+x1]
		for x := x0; x < x1; x++ {
			hist[row[x]]++
		}
	}

	limit := clipLimit * float64(total) / 256
	var excess float64
	for i := range hist {
		if hist[i] > limit {
			excess += hist[i] - limit
			hist[i] = limit
		}
	}
	redistribute := excess / 256
	for i := range hist {
		hist[i] += redistribute
	}

	var cdf float64
	for i := range hist {
		cdf += hist[i]
		lut[i] = clampByte(cdf / float64(total) * 255)
	}

	return lut
}

// sharpen applies a fixed 3x3 sharpening convolution.
func sharpen(gray *image.Gray) *image.Gray {
	kernel := [3][3]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}

	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := 0; x < w; x++ {
			var sum float64
			for dy := -1; dy <= 1; dy++ {
				sy := clampToEdge(y+dy, h)
				for dx := -1; dx <= 1; dx++ {
					sx := clampToEdge(x+dx, w)
					sum += kernel[dy+1][dx+1] * float64(gray.Pix[sy*gray.Stride+sx])
				}
			}
			dstRow[x] = clampByte(sum)
		}
	}

	return dst
}

// normalizeContrast stretches pixel intensities to the full output range.
// A uniform image is returned unchanged.
func normalizeContrast(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	lo, hi := uint8(255), uint8(0)
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if hi <= lo {
		return ToGray(gray)
	}

	scale := 255.0 / float64(hi-lo)
	for y := 0; y < h; y++ {
		srcRow := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range srcRow {
			dstRow[x] = clampByte(float64(v-lo) * scale)
		}
	}

	return dst
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
