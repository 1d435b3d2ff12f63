package imaging

import (
	"image"
	"image/color"
)

// ToGray converts any image to 8-bit grayscale. The result is always a new
// image; the source is never aliased, so callers retain exclusive ownership
// of their input.
func ToGray(src image.Image) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if g, ok := src.(*image.Gray); ok {
		for y := 0; y < bounds.Dy(); y++ {
			srcRow := g.Pix[y*g.Stride : y*g.Stride+bounds.Dx()]
			copy(dst.Pix[y*dst.Stride:], srcRow)
		}
		return dst
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			dst.SetGray(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}

	return dst
}

// clampToEdge clamps a coordinate to [0, max-1], replicating edge pixels
// for samples taken outside the image.
func clampToEdge(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
