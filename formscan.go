// Package formscan provides a fluent API for digitizing scanned medical
// forms: image cleanup, line segmentation, recognition, and geometric
// field extraction.
//
// Basic usage:
//
//	engine, err := ocr.NewTesseract()
//	if err != nil {
//	    // handle error
//	}
//	defer engine.Close()
//
//	result, warnings, err := formscan.Scan(img, engine).Result(ctx)
//
// With options:
//
//	result, _, err := formscan.Scan(img, engine).
//	    Threshold(0.5).
//	    Fields(fields.DefaultMedicalLabels()...).
//	    Result(ctx)
//
// For advanced use cases, the lower-level pipeline package is also
// available.
package formscan

import (
	"image"

	"github.com/tsawler/formscan/ocr"
)

// Scan wraps an image and a recognition engine in a Scanner for fluent
// configuration. The caller owns the engine; Scan never closes it.
//
// Example:
//
//	result, warnings, err := formscan.Scan(img, engine).Result(ctx)
func Scan(img image.Image, engine ocr.Engine) *Scanner {
	return &Scanner{
		img:     img,
		engine:  engine,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	labels := formscan.Must(fields.LoadLabels("labels.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Result() or Text() and
// panics if the error is non-nil. It discards warnings and returns just
// the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	text := formscan.MustResult(formscan.Scan(img, engine).Text(ctx))
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
