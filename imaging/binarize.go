package imaging

import "image"

// Ink and paper values for binarized images. Foreground (ink) is dark.
const (
	ink   = 0
	paper = 255
)

// OtsuThreshold computes a global binarization threshold by maximizing the
// between-class variance of the intensity histogram. Pixels strictly below
// the returned threshold belong to the dark (ink) class; the darkest bin
// of a bimodal image is therefore always classified as ink, even when it
// sits at intensity 0.
func OtsuThreshold(gray *image.Gray) uint8 {
	var hist [256]int
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 128
	}

	for y := 0; y < bounds.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+bounds.Dx()]
		for _, v := range row {
			hist[v]++
		}
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumB, wB float64
	var maxVariance float64
	threshold := 0

	for i := 0; i < 256; i++ {
		wB += float64(hist[i])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(i) * float64(hist[i])

		meanB := sumB / wB
		meanF := (sum - sumB) / wF
		variance := wB * wF * (meanB - meanF) * (meanB - meanF)

		if variance > maxVariance {
			maxVariance = variance
			// The split is "dark class <= i"; report the first bin
			// above it so a strict less-than comparison keeps bin i
			// on the ink side.
			threshold = i + 1
		}
	}

	if threshold > 255 {
		threshold = 255
	}
	return uint8(threshold)
}

// Binarize applies a global threshold: pixels darker than the threshold
// become ink (0), everything else paper (255).
func Binarize(gray *image.Gray, threshold uint8) *image.Gray {
	bounds := gray.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		srcRow := gray.Pix[y*gray.Stride : y*gray.Stride+bounds.Dx()]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+bounds.Dx()]
		for x, v := range srcRow {
			if v < threshold {
				dstRow[x] = ink
			} else {
				dstRow[x] = paper
			}
		}
	}

	return dst
}

// AdaptiveThreshold binarizes using a localized threshold: each pixel is
// compared against the mean of its surrounding window minus a fixed offset.
// This tolerates uneven illumination that defeats a single global threshold.
// The window must be odd; even values are rounded up.
func AdaptiveThreshold(gray *image.Gray, window int, offset int) *image.Gray {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}

	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}

	// Summed-area table, one row/column of zero padding.
	integral := make([]int64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(row[x])
			integral[(y+1)*(w+1)+(x+1)] = integral[y*(w+1)+(x+1)] + rowSum
		}
	}

	half := window / 2
	for y := 0; y < h; y++ {
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		srcRow := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		y0 := clampToEdge(y-half, h)
		y1 := clampToEdge(y+half, h)
		for x := 0; x < w; x++ {
			x0 := clampToEdge(x-half, w)
			x1 := clampToEdge(x+half, w)

			area := int64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*(w+1)+(x1+1)] -
				integral[y0*(w+1)+(x1+1)] -
				integral[(y1+1)*(w+1)+x0] +
				integral[y0*(w+1)+x0]
			mean := sum / area

			if int64(srcRow[x]) < mean-int64(offset) {
				dstRow[x] = ink
			} else {
				dstRow[x] = paper
			}
		}
	}

	return dst
}

// Open applies a 3x3 morphological opening (erosion then dilation) to a
// binarized image. Isolated ink speckles smaller than the structuring
// element are removed while larger strokes keep their shape.
func Open(binary *image.Gray) *image.Gray {
	return dilate3(erode3(binary))
}

// erode3 shrinks ink regions: a pixel stays ink only when its full 3x3
// neighborhood is ink.
func erode3(binary *image.Gray) *image.Gray {
	return morph3(binary, func(allInk, anyInk bool) bool { return allInk })
}

// dilate3 grows ink regions: a pixel becomes ink when any pixel in its 3x3
// neighborhood is ink.
func dilate3(binary *image.Gray) *image.Gray {
	return morph3(binary, func(allInk, anyInk bool) bool { return anyInk })
}

func morph3(binary *image.Gray, keep func(allInk, anyInk bool) bool) *image.Gray {
	bounds := binary.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := 0; x < w; x++ {
			allInk := true
			anyInk := false
			for dy := -1; dy <= 1; dy++ {
				sy := clampToEdge(y+dy, h)
				for dx := -1; dx <= 1; dx++ {
					sx := clampToEdge(x+dx, w)
					if binary.Pix[sy*binary.Stride+sx] == ink {
						anyInk = true
					} else {
						allInk = false
					}
				}
			}
			if keep(allInk, anyInk) {
				dstRow[x] = ink
			} else {
				dstRow[x] = paper
			}
		}
	}

	return dst
}
