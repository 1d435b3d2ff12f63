package imaging

import (
	"image"
	"math"
)

// Rotate rotates a grayscale image by the given angle in degrees around its
// center, keeping the original dimensions. Sampling uses the Catmull-Rom
// cubic kernel with clamp-to-edge coordinates, so border content is
// replicated outward instead of being filled with a constant.
//
// The x/image scalers do not replicate edges under an affine transform,
// which is why the sampler here is written out; rescaling elsewhere in this
// package goes through x/image/draw.
func Rotate(gray *image.Gray, degrees float64) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}

	radians := degrees * math.Pi / 180
	sin, cos := math.Sincos(radians)
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2

	for y := 0; y < h; y++ {
		dy := float64(y) - cy
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			// Inverse mapping: rotate the destination coordinate back
			// into the source frame.
			sx := cos*dx + sin*dy + cx
			sy := -sin*dx + cos*dy + cy
			dstRow[x] = sampleCatmullRom(gray, sx, sy)
		}
	}

	return dst
}

// sampleCatmullRom samples the image at a fractional coordinate using the
// separable Catmull-Rom kernel over a 4x4 neighborhood. Coordinates outside
// the image clamp to the nearest edge pixel.
func sampleCatmullRom(gray *image.Gray, sx, sy float64) uint8 {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	var wx, wy [4]float64
	for i := 0; i < 4; i++ {
		wx[i] = catmullRom(float64(i-1) - fx)
		wy[i] = catmullRom(float64(i-1) - fy)
	}

	var sum, weight float64
	for j := 0; j < 4; j++ {
		py := clampToEdge(y0+j-1, h)
		row := gray.Pix[py*gray.Stride:]
		for i := 0; i < 4; i++ {
			px := clampToEdge(x0+i-1, w)
			wgt := wx[i] * wy[j]
			sum += wgt * float64(row[px])
			weight += wgt
		}
	}

	if weight == 0 {
		return 0
	}
	return clampByte(sum / weight)
}

// catmullRom evaluates the Catmull-Rom cubic kernel at offset t.
func catmullRom(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t < 1:
		return 1.5*t*t*t - 2.5*t*t + 1
	case t < 2:
		return -0.5*t*t*t + 2.5*t*t - 4*t + 2
	default:
		return 0
	}
}
