//go:build !ocr

// Package ocr adapts external recognition engines to the pipeline's
// contract: line transcription with confidence, and whole-page word boxes.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// NewTesseract returns ErrNotEnabled.
//
// To enable recognition, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"context"
	"errors"
	"image"

	"github.com/tsawler/formscan/model"
)

// ErrNotEnabled is returned when recognition is requested but support was
// not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("ocr: recognition support not enabled; rebuild with -tags ocr")

// Tesseract is a stub engine that fails all operations.
type Tesseract struct{}

// NewTesseract returns ErrNotEnabled.
// To enable recognition, rebuild with: go build -tags ocr
func NewTesseract() (*Tesseract, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub engine. It is safe to call on a nil engine.
func (t *Tesseract) Close() error {
	return nil
}

// SetLanguage returns ErrNotEnabled.
func (t *Tesseract) SetLanguage(langs ...string) error {
	return ErrNotEnabled
}

// RecognizeLine returns ErrNotEnabled.
func (t *Tesseract) RecognizeLine(ctx context.Context, line image.Image) (string, float64, error) {
	return "", 0, ErrNotEnabled
}

// RecognizePage returns ErrNotEnabled.
func (t *Tesseract) RecognizePage(ctx context.Context, page image.Image) ([]model.Word, error) {
	return nil, ErrNotEnabled
}
