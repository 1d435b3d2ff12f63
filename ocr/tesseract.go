//go:build ocr

// Package ocr adapts external recognition engines to the pipeline's
// contract: line transcription with confidence, and whole-page word boxes.
//
// This file provides the Tesseract implementation via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/formscan/model"
)

// Tesseract implements Engine on top of the gosseract client.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a Tesseract-backed recognition engine.
// The engine should be closed when no longer needed to release resources.
func NewTesseract() (*Tesseract, error) {
	return &Tesseract{client: gosseract.NewClient()}, nil
}

// Close releases the underlying Tesseract resources.
func (t *Tesseract) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition.
// Default is "eng" (English).
func (t *Tesseract) SetLanguage(langs ...string) error {
	return t.client.SetLanguage(langs...)
}

// RecognizeLine transcribes a single line image. The page segmentation mode
// is pinned to single-line so Tesseract does not re-segment the crop.
// Confidence is the mean word confidence in [0, 1]; blank input yields an
// empty string and confidence 0, not an error.
func (t *Tesseract) RecognizeLine(ctx context.Context, line image.Image) (string, float64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := t.setImage(line); err != nil {
		return "", 0, err
	}
	if err := t.client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return "", 0, fmt.Errorf("set page seg mode: %w", err)
	}

	text, err := t.client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("recognize line: %w", err)
	}
	text = cleanText(text)
	if text == "" {
		return "", 0, nil
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return text, 0, nil
	}

	var sum float64
	for _, b := range boxes {
		sum += b.Confidence / 100.0
	}
	return text, sum / float64(len(boxes)), nil
}

// RecognizePage transcribes a whole page into words with bounding boxes
// normalized to the 0-1000 coordinate space.
func (t *Tesseract) RecognizePage(ctx context.Context, page image.Image) ([]model.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := t.setImage(page); err != nil {
		return nil, err
	}
	if err := t.client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return nil, fmt.Errorf("set page seg mode: %w", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognize page: %w", err)
	}

	bounds := page.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var words []model.Word
	for _, b := range boxes {
		text := cleanText(b.Word)
		if text == "" {
			continue
		}
		words = append(words, model.Word{
			Text: text,
			Box: model.NormalizeBox(
				b.Box.Min.X, b.Box.Min.Y, b.Box.Max.X, b.Box.Max.Y, w, h),
		})
	}

	return words, nil
}

func (t *Tesseract) setImage(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return fmt.Errorf("set image: %w", err)
	}
	return nil
}

// cleanText trims whitespace and applies Unicode NFC normalization so that
// downstream string matching sees composed forms regardless of what the
// engine emits.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
