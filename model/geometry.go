package model

// CoordSpace is the upper bound of the normalized coordinate space.
// Word bounding boxes are scaled so both axes run 0..CoordSpace regardless
// of the source image resolution.
const CoordSpace = 1000

// Box is a word bounding box in the normalized coordinate space,
// origin top-left.
type Box struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

// NewBox creates a bounding box from corner coordinates.
func NewBox(xMin, yMin, xMax, yMax int) Box {
	return Box{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// NormalizeBox scales a pixel-space rectangle into the normalized space.
// pageWidth and pageHeight are the dimensions of the source image in pixels.
func NormalizeBox(x0, y0, x1, y1, pageWidth, pageHeight int) Box {
	if pageWidth <= 0 || pageHeight <= 0 {
		return Box{}
	}
	return Box{
		XMin: CoordSpace * x0 / pageWidth,
		YMin: CoordSpace * y0 / pageHeight,
		XMax: CoordSpace * x1 / pageWidth,
		YMax: CoordSpace * y1 / pageHeight,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.YMax - b.YMin
}

// IsValid reports whether the box has positive extent and lies within the
// normalized coordinate space.
func (b Box) IsValid() bool {
	return b.XMin < b.XMax && b.YMin < b.YMax &&
		b.XMin >= 0 && b.YMin >= 0 &&
		b.XMax <= CoordSpace && b.YMax <= CoordSpace
}

// SameRow reports whether b and other sit on the same text row: their top
// offsets differ by less than tolerance units.
func (b Box) SameRow(other Box, tolerance int) bool {
	return abs(b.YMin-other.YMin) < tolerance
}

// RightOf reports whether b starts strictly to the right of other's
// right edge.
func (b Box) RightOf(other Box) bool {
	return b.XMin > other.XMax
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
