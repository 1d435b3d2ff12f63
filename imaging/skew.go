package imaging

import (
	"image"
	"math"
	"sort"
)

// maxSkewPoints caps the number of foreground points fed into the convex
// hull. Larger pages are subsampled on a regular grid; the hull of a
// subsampled cloud has the same orientation as the full one.
const maxSkewPoints = 200000

type point struct {
	x, y float64
}

// DetectSkew estimates the rotation of page content relative to the image
// axes. It binarizes with a global Otsu threshold, fits the minimum-area
// rectangle around the foreground pixel cloud, and returns that rectangle's
// angle in signed degrees, folded into (-45, 45]. A page with no detectable
// foreground yields 0.
func DetectSkew(gray *image.Gray) float64 {
	threshold := OtsuThreshold(gray)
	points := foregroundPoints(gray, threshold)
	if len(points) < 3 {
		return 0
	}

	hull := convexHull(points)
	if len(hull) < 3 {
		return 0
	}

	return FoldAngle(minAreaRectAngle(hull))
}

// FoldAngle normalizes an angle in degrees into (-45, 45] by adding or
// subtracting multiples of 90. The result is the smallest rotation that
// aligns the measured orientation with an image axis.
func FoldAngle(angle float64) float64 {
	for angle > 45 {
		angle -= 90
	}
	for angle <= -45 {
		angle += 90
	}
	return angle
}

// foregroundPoints collects coordinates of pixels darker than the threshold,
// subsampling on a regular grid when the page holds more foreground than
// maxSkewPoints.
func foregroundPoints(gray *image.Gray, threshold uint8) []point {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	stride := 1
	if w*h > maxSkewPoints {
		stride = int(math.Sqrt(float64(w*h) / maxSkewPoints))
		if stride < 1 {
			stride = 1
		}
	}

	var points []point
	for y := 0; y < h; y += stride {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		for x := 0; x < w; x += stride {
			if row[x] < threshold {
				points = append(points, point{x: float64(x), y: float64(y)})
			}
		}
	}

	return points
}

// convexHull computes the convex hull of a point cloud using Andrew's
// monotone chain. The returned hull is in counter-clockwise order without
// the closing point.
func convexHull(points []point) []point {
	if len(points) < 3 {
		return points
	}

	sorted := make([]point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].x != sorted[j].x {
			return sorted[i].x < sorted[j].x
		}
		return sorted[i].y < sorted[j].y
	})

	cross := func(o, a, b point) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}

	var lower []point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// minAreaRectAngle finds the orientation of the minimum-area rectangle
// enclosing a convex hull via rotating calipers: the minimal rectangle is
// always flush with one hull edge, so each edge direction is tried and the
// angle of the smallest-area fit is returned in degrees.
func minAreaRectAngle(hull []point) float64 {
	minArea := math.MaxFloat64
	bestAngle := 0.0

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]

		edgeX := b.x - a.x
		edgeY := b.y - a.y
		length := math.Hypot(edgeX, edgeY)
		if length == 0 {
			continue
		}
		ux, uy := edgeX/length, edgeY/length

		minU, maxU := math.MaxFloat64, -math.MaxFloat64
		minV, maxV := math.MaxFloat64, -math.MaxFloat64
		for _, p := range hull {
			u := p.x*ux + p.y*uy
			v := -p.x*uy + p.y*ux
			minU = math.Min(minU, u)
			maxU = math.Max(maxU, u)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}

		area := (maxU - minU) * (maxV - minV)
		if area < minArea {
			minArea = area
			bestAngle = math.Atan2(uy, ux) * 180 / math.Pi
		}
	}

	return bestAngle
}
