package layout

import (
	"image"
	"image/color"
	"testing"
)

// makePage creates a white grayscale page.
func makePage(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

// drawBand fills rows [top, bottom) with ink across the page width.
func drawBand(img *image.Gray, top, bottom int) {
	for y := top; y < bottom; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
}

func TestSegmenter_BlankPage(t *testing.T) {
	s := NewSegmenter()
	regions := s.Segment(makePage(400, 600))
	if len(regions) != 0 {
		t.Errorf("Expected 0 regions for blank page, got %d", len(regions))
	}
}

func TestSegmenter_TwoBands(t *testing.T) {
	page := makePage(400, 600)
	drawBand(page, 100, 120)
	drawBand(page, 200, 220)

	s := NewSegmenter()
	regions := s.Segment(page)

	if len(regions) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(regions))
	}

	if regions[0].Index != 0 || regions[1].Index != 1 {
		t.Error("Expected regions indexed in order")
	}

	// Padded crops: 10 px margin on both sides of each 20 px band.
	if regions[0].Top != 90 || regions[0].Bottom != 130 {
		t.Errorf("Unexpected first region bounds: [%d, %d)", regions[0].Top, regions[0].Bottom)
	}
	if regions[1].Top != 190 || regions[1].Bottom != 230 {
		t.Errorf("Unexpected second region bounds: [%d, %d)", regions[1].Top, regions[1].Bottom)
	}
}

func TestSegmenter_OrderedAndDisjoint(t *testing.T) {
	page := makePage(400, 600)
	// Bands close enough that naive padding would overlap.
	drawBand(page, 100, 115)
	drawBand(page, 125, 140)
	drawBand(page, 300, 320)

	s := NewSegmenter()
	regions := s.Segment(page)

	if len(regions) < 2 {
		t.Fatalf("Expected at least 2 regions, got %d", len(regions))
	}

	pageHeight := page.Bounds().Dy()
	for i, r := range regions {
		if r.Height() < 15 {
			t.Errorf("Region %d height %d below minimum", i, r.Height())
		}
		if float64(r.Height()) > 0.5*float64(pageHeight) {
			t.Errorf("Region %d height %d above half the page", i, r.Height())
		}
		if i > 0 {
			if r.Top < regions[i-1].Bottom {
				t.Errorf("Region %d overlaps its predecessor: top %d < previous bottom %d",
					i, r.Top, regions[i-1].Bottom)
			}
			if r.Top < regions[i-1].Top {
				t.Errorf("Region %d out of order", i)
			}
		}
	}
}

func TestSegmenter_RejectsFullPageBand(t *testing.T) {
	page := makePage(400, 600)
	drawBand(page, 50, 450) // two thirds of the page

	s := NewSegmenter()
	regions := s.Segment(page)

	if len(regions) != 0 {
		t.Errorf("Expected band above half the page height to be rejected, got %d regions", len(regions))
	}
}

func TestSegmenter_RejectsThinSliver(t *testing.T) {
	page := makePage(400, 600)
	drawBand(page, 100, 111) // 11 rows: passes run length, crop clipped thin

	s := NewSegmenterWithConfig(SegmentConfig{
		ProfileThreshold: 0.1,
		MinRunHeight:     10,
		Padding:          1,
		MinCropHeight:    15,
		MaxCropFraction:  0.5,
	})
	regions := s.Segment(page)

	if len(regions) != 0 {
		t.Errorf("Expected 13 px crop to be rejected by minimum height, got %d regions", len(regions))
	}
}

func TestSegmenter_Deterministic(t *testing.T) {
	page := makePage(400, 600)
	drawBand(page, 100, 120)
	drawBand(page, 200, 220)

	s := NewSegmenter()
	first := s.Segment(page)
	second := s.Segment(page)

	if len(first) != len(second) {
		t.Fatalf("Expected identical region counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Top != second[i].Top || first[i].Bottom != second[i].Bottom {
			t.Errorf("Region %d differs between runs", i)
		}
	}
}

func TestSegmenter_CropSpansFullWidth(t *testing.T) {
	page := makePage(400, 600)
	// Ink only in the middle third; the crop still spans the page width.
	for y := 100; y < 120; y++ {
		for x := 150; x < 250; x++ {
			page.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	s := NewSegmenter()
	regions := s.Segment(page)

	if len(regions) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(regions))
	}
	if regions[0].Image.Bounds().Dx() != 400 {
		t.Errorf("Expected full-width crop, got width %d", regions[0].Image.Bounds().Dx())
	}
}
