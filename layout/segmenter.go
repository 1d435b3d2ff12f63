package layout

import (
	"image"

	"github.com/tsawler/formscan/imaging"
)

// Region is one detected text-line band in the source page.
type Region struct {
	// Index is the line's position on the page (0-based, top to bottom).
	Index int

	// Top and Bottom are the vertical pixel offsets of the padded crop in
	// the source page. Top is inclusive, Bottom exclusive.
	Top    int
	Bottom int

	// Image is the full-width crop of the band.
	Image *image.Gray
}

// Height returns the crop height in pixels.
func (r Region) Height() int {
	return r.Bottom - r.Top
}

// SegmentConfig holds configuration for line segmentation.
type SegmentConfig struct {
	// ProfileThreshold is the fraction of the maximum projection-profile
	// value a row must exceed to count as part of a line (default: 0.1).
	ProfileThreshold float64

	// MinRunHeight is the minimum number of consecutive qualifying rows
	// for a candidate line band (default: 10).
	MinRunHeight int

	// Padding is the vertical margin in pixels added above and below each
	// band before cropping (default: 10).
	Padding int

	// MinCropHeight rejects final crops shorter than this many pixels,
	// guarding against degenerate slivers (default: 15).
	MinCropHeight int

	// MaxCropFraction rejects final crops taller than this fraction of
	// the page height, guarding against the whole page collapsing into
	// one "line" (default: 0.5).
	MaxCropFraction float64
}

// DefaultSegmentConfig returns sensible default configuration.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		ProfileThreshold: 0.1,
		MinRunHeight:     10,
		Padding:          10,
		MinCropHeight:    15,
		MaxCropFraction:  0.5,
	}
}

// Segmenter finds ordered horizontal text-line bands in a page image.
type Segmenter struct {
	config SegmentConfig
}

// NewSegmenter creates a segmenter with default configuration.
func NewSegmenter() *Segmenter {
	return &Segmenter{config: DefaultSegmentConfig()}
}

// NewSegmenterWithConfig creates a segmenter with custom configuration.
func NewSegmenterWithConfig(config SegmentConfig) *Segmenter {
	return &Segmenter{config: config}
}

// Segment detects text-line bands. The input is binarized if it is not
// already, the per-row ink mass profile is computed, and maximal runs of
// rows above the profile threshold become candidate bands. Candidates are
// padded, cropped across the full page width, and filtered by the height
// bounds. Output order is top to bottom by construction, and regions never
// overlap: padding is clipped at the midpoint of the gap between runs.
//
// A page with no detectable ink yields zero regions; this is a valid result,
// not an error.
func (s *Segmenter) Segment(page *image.Gray) []Region {
	bounds := page.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	binary := imaging.Binarize(page, imaging.OtsuThreshold(page))
	profile := projectionProfile(binary)

	max := 0
	for _, v := range profile {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return nil
	}

	threshold := int(s.config.ProfileThreshold * float64(max))
	runs := s.findRuns(profile, threshold)

	var regions []Region
	for i, run := range runs {
		top := run.start - s.config.Padding
		bottom := run.end + s.config.Padding
		if top < 0 {
			top = 0
		}
		if bottom > h {
			bottom = h
		}

		// Clip padding at the midpoint of the gap to the neighboring run
		// so adjacent crops stay disjoint or merely contiguous.
		if i > 0 {
			mid := (runs[i-1].end + run.start + 1) / 2
			if top < mid {
				top = mid
			}
		}
		if i < len(runs)-1 {
			mid := (run.end + runs[i+1].start + 1) / 2
			if bottom > mid {
				bottom = mid
			}
		}

		height := bottom - top
		if height < s.config.MinCropHeight {
			continue
		}
		if float64(height) > s.config.MaxCropFraction*float64(h) {
			continue
		}

		regions = append(regions, Region{
			Index:  len(regions),
			Top:    top,
			Bottom: bottom,
			Image:  crop(page, top, bottom),
		})
	}

	return regions
}

type run struct {
	start, end int // end exclusive
}

// findRuns collects maximal runs of consecutive rows whose profile value
// exceeds the threshold and whose length exceeds the minimum line height.
func (s *Segmenter) findRuns(profile []int, threshold int) []run {
	var runs []run
	start := -1

	for i, v := range profile {
		if v > threshold {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if i-start > s.config.MinRunHeight {
				runs = append(runs, run{start: start, end: i})
			}
			start = -1
		}
	}
	if start >= 0 && len(profile)-start > s.config.MinRunHeight {
		runs = append(runs, run{start: start, end: len(profile)})
	}

	return runs
}

// projectionProfile computes the per-row count of ink pixels in a
// binarized image.
func projectionProfile(binary *image.Gray) []int {
	bounds := binary.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	profile := make([]int, h)

	for y := 0; y < h; y++ {
		row := binary.Pix[y*binary.Stride : y*binary.Stride+w]
		count := 0
		for _, v := range row {
			if v == 0 {
				count++
			}
		}
		profile[y] = count
	}

	return profile
}

// crop copies the full-width band [top, bottom) into a fresh image.
func crop(page *image.Gray, top, bottom int) *image.Gray {
	w := page.Bounds().Dx()
	dst := image.NewGray(image.Rect(0, 0, w, bottom-top))
	for y := top; y < bottom; y++ {
		copy(dst.Pix[(y-top)*dst.Stride:], page.Pix[y*page.Stride:y*page.Stride+w])
	}
	return dst
}
