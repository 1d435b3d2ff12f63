package formscan

import (
	"context"
	"fmt"
	"image"

	"github.com/tsawler/formscan/enrich"
	"github.com/tsawler/formscan/fields"
	"github.com/tsawler/formscan/ocr"
	"github.com/tsawler/formscan/pipeline"
)

// Scanner provides a fluent interface for digitizing a scanned form.
// Each configuration method returns a new Scanner instance, making it
// safe for concurrent use and allowing method chaining.
type Scanner struct {
	// Source
	img    image.Image
	engine ocr.Engine

	// Configuration
	options scanOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Scanner with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (s *Scanner) clone() *Scanner {
	return &Scanner{
		img:     s.img,
		engine:  s.engine,
		options: s.options.clone(),
		err:     s.err,
	}
}

// ============================================================================
// Configuration Methods (return new Scanner instance)
// ============================================================================

// Threshold sets the confidence level below which recognized lines are
// flagged for review.
//
// Example:
//
//	result, _, err := formscan.Scan(img, engine).Threshold(0.5).Result(ctx)
func (s *Scanner) Threshold(t float64) *Scanner {
	newScan := s.clone()
	newScan.options.threshold = t
	newScan.options.thresholdSet = true
	return newScan
}

// Fields enables geometric field anchoring with the given label table.
// Multiple calls are cumulative.
//
// Example:
//
//	result, _, err := formscan.Scan(img, engine).
//	    Fields(fields.DefaultMedicalLabels()...).
//	    Result(ctx)
func (s *Scanner) Fields(labels ...fields.Label) *Scanner {
	newScan := s.clone()
	newScan.options.labels = append(newScan.options.labels, labels...)
	return newScan
}

// FieldsFromFile enables field anchoring with a label table loaded from
// a YAML or JSON file.
//
// Example:
//
//	result, _, err := formscan.Scan(img, engine).
//	    FieldsFromFile("labels.yaml").
//	    Result(ctx)
func (s *Scanner) FieldsFromFile(path string) *Scanner {
	newScan := s.clone()
	labels, err := fields.LoadLabels(path)
	if err != nil {
		newScan.err = fmt.Errorf("loading label table: %w", err)
		return newScan
	}
	newScan.options.labels = append(newScan.options.labels, labels...)
	return newScan
}

// Config replaces the full pipeline configuration. A threshold set via
// Threshold() still takes precedence.
//
// Example:
//
//	config := pipeline.DefaultConfig()
//	config.Segment.Padding = 16
//	result, _, err := formscan.Scan(img, engine).Config(config).Result(ctx)
func (s *Scanner) Config(config pipeline.Config) *Scanner {
	newScan := s.clone()
	newScan.options.config = config
	newScan.options.overridden = true
	return newScan
}

// ============================================================================
// Terminal Operations (execute the scan and return results)
// ============================================================================

// Result runs the scan and returns the full extraction result.
//
// Returns the result, any warnings encountered during processing, and an
// error if the scan failed. Warnings indicate non-fatal issues (e.g.
// low-confidence lines) where the scan succeeded but results may be
// imperfect.
//
// Example:
//
//	result, warnings, err := formscan.Scan(img, engine).Result(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", formscan.FormatWarnings(warnings))
//	}
func (s *Scanner) Result(ctx context.Context) (*pipeline.Result, []Warning, error) {
	if s.err != nil {
		return nil, nil, s.err
	}

	p := pipeline.NewWithConfig(s.engine, s.options.pipelineConfig())

	var result *pipeline.Result
	var err error
	if s.options.labels != nil {
		result, err = p.RunWithFields(ctx, s.img, s.options.labels)
	} else {
		result, err = p.Run(ctx, s.img)
	}
	if err != nil {
		return nil, nil, err
	}

	return result, s.collectWarnings(result), nil
}

// Text runs the scan and returns only the merged full text.
//
// Example:
//
//	text, warnings, err := formscan.Scan(img, engine).Text(ctx)
func (s *Scanner) Text(ctx context.Context) (string, []Warning, error) {
	result, warnings, err := s.Result(ctx)
	if err != nil {
		return "", nil, err
	}
	return result.FullText, warnings, nil
}

// Lines runs the scan and returns the recognized lines in top-to-bottom
// order, before continuation merging.
//
// Example:
//
//	lines, err := formscan.Scan(img, engine).Lines(ctx)
//	for _, line := range lines {
//	    fmt.Printf("%.2f %s\n", line.Confidence, line.Text)
//	}
func (s *Scanner) Lines(ctx context.Context) ([]pipeline.Line, error) {
	result, _, err := s.Result(ctx)
	if err != nil {
		return nil, err
	}
	return result.Lines, nil
}

// Assess runs the scan with classification enabled and returns the
// result together with the document assessment: detected type,
// extraction confidence, and review status.
//
// Example:
//
//	result, assessment, err := formscan.Scan(img, engine).
//	    Fields(fields.DefaultMedicalLabels()...).
//	    Assess(ctx)
//	if assessment.Status == enrich.PendingReview {
//	    // queue for a human
//	}
func (s *Scanner) Assess(ctx context.Context) (*pipeline.Result, enrich.Assessment, error) {
	result, _, err := s.Result(ctx)
	if err != nil {
		return nil, enrich.Assessment{}, err
	}

	classifier := enrich.NewClassifier()
	assessment := classifier.Assess(result.FullText, result.Fields)
	return result, assessment, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// collectWarnings inspects a result for non-fatal issues worth surfacing.
func (s *Scanner) collectWarnings(result *pipeline.Result) []Warning {
	var warnings []Warning
	if result.LineCount() == 0 {
		warnings = append(warnings, Warning{
			Type:    WarningNoText,
			Message: "no text lines detected on page",
		})
		return warnings
	}
	if result.LowConfidenceCount > 0 {
		warnings = append(warnings, Warning{
			Type: WarningLowConfidence,
			Message: fmt.Sprintf("%d of %d lines recognized below the confidence threshold",
				result.LowConfidenceCount, result.LineCount()),
		})
	}
	return warnings
}
