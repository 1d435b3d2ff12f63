package ocr

import (
	"context"
	"image"

	"github.com/tsawler/formscan/model"
)

// LineRecognizer transcribes a single conditioned line image. On unreadable
// or blank input it returns an empty string and confidence 0 rather than an
// error; errors are reserved for engine failures.
type LineRecognizer interface {
	RecognizeLine(ctx context.Context, line image.Image) (text string, confidence float64, err error)
}

// PageRecognizer transcribes a whole page into words with normalized
// bounding boxes.
type PageRecognizer interface {
	RecognizePage(ctx context.Context, page image.Image) ([]model.Word, error)
}

// Engine is the full recognition capability the pipeline consumes. An
// Engine is an explicit handle: construct it once, pass it to the pipeline,
// and Close it when done. There is no process-wide shared instance.
type Engine interface {
	LineRecognizer
	PageRecognizer
	Close() error
}
