package pipeline

import (
	"context"
	"image"
	"sort"
	"strings"

	"github.com/tsawler/formscan/fields"
	"github.com/tsawler/formscan/imaging"
	"github.com/tsawler/formscan/layout"
	"github.com/tsawler/formscan/model"
	"github.com/tsawler/formscan/ocr"
)

// Line is one recognized text line with its position and confidence.
type Line struct {
	// Text is the recognized line text. Empty for unreadable lines.
	Text string

	// Confidence is the recognition confidence in [0, 1]. Unreadable
	// lines carry 0.
	Confidence float64

	// Top is the line's vertical pixel offset in the normalized page.
	Top int

	// LowConfidence marks lines whose confidence fell below the
	// configured threshold. They remain part of the result.
	LowConfidence bool
}

// Result is the outcome of one page-processing run.
type Result struct {
	// Lines are the recognized lines sorted by vertical position,
	// before continuation merging.
	Lines []Line

	// MergedLines are the line texts after continuation merging.
	MergedLines []string

	// FullText is the merged lines joined with newlines.
	FullText string

	// AvgConfidence is the mean recognition confidence across Lines,
	// 0 when the page produced no lines.
	AvgConfidence float64

	// LowConfidenceCount is the number of lines below the threshold.
	LowConfidenceCount int

	// Fields maps field names to anchored values. Nil unless field
	// anchoring was requested.
	Fields map[string]model.FieldValue
}

// LineCount returns the number of merged lines.
func (r *Result) LineCount() int {
	if r == nil {
		return 0
	}
	return len(r.MergedLines)
}

// Config holds pipeline configuration.
type Config struct {
	// ConfidenceThreshold marks lines below it as low confidence
	// (default: 0.3).
	ConfidenceThreshold float64

	// Normalize configures page normalization.
	Normalize imaging.NormalizeConfig

	// Segment configures line segmentation.
	Segment layout.SegmentConfig

	// Condition configures pre-recognition line conditioning.
	Condition imaging.ConditionConfig

	// Anchor configures spatial field anchoring.
	Anchor fields.AnchorConfig
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.3,
		Normalize:           imaging.DefaultNormalizeConfig(),
		Segment:             layout.DefaultSegmentConfig(),
		Condition:           imaging.DefaultConditionConfig(),
		Anchor:              fields.DefaultAnchorConfig(),
	}
}

// Pipeline runs the page-processing sequence against one recognition
// engine. The engine handle is supplied by the caller, who also owns its
// lifecycle; the pipeline never creates or closes engines.
type Pipeline struct {
	engine     ocr.Engine
	config     Config
	normalizer *imaging.Normalizer
	segmenter  *layout.Segmenter
	merger     *layout.Merger
	anchorer   *fields.Anchorer
}

// New creates a pipeline with default configuration.
func New(engine ocr.Engine) *Pipeline {
	return NewWithConfig(engine, DefaultConfig())
}

// NewWithConfig creates a pipeline with custom configuration.
func NewWithConfig(engine ocr.Engine, config Config) *Pipeline {
	return &Pipeline{
		engine:     engine,
		config:     config,
		normalizer: imaging.NewNormalizerWithConfig(config.Normalize),
		segmenter:  layout.NewSegmenterWithConfig(config.Segment),
		merger:     layout.NewMerger(),
		anchorer:   fields.NewAnchorerWithConfig(config.Anchor),
	}
}

// Run processes one page: normalize, segment, recognize each line, re-sort
// by vertical position, merge continuations, and aggregate confidence.
//
// A malformed input image is the only propagating error. Individual line
// recognition failures are absorbed: the line appears in the result with
// empty text and confidence 0. A page with no detectable lines yields a
// valid empty result.
func (p *Pipeline) Run(ctx context.Context, img image.Image) (*Result, error) {
	return p.run(ctx, img, nil)
}

// RunWithFields is Run plus whole-page recognition and spatial field
// anchoring over the supplied label table. A page-recognition failure
// leaves every field as a miss; it does not abort the line results.
func (p *Pipeline) RunWithFields(ctx context.Context, img image.Image, labels []fields.Label) (*Result, error) {
	return p.run(ctx, img, labels)
}

func (p *Pipeline) run(ctx context.Context, img image.Image, labels []fields.Label) (*Result, error) {
	page, err := p.normalizer.Normalize(img)
	if err != nil {
		return nil, err
	}

	regions := p.segmenter.Segment(page)

	lines := make([]Line, 0, len(regions))
	for _, region := range regions {
		conditioned := imaging.ConditionLineWithConfig(region.Image, p.config.Condition)

		text, confidence, err := p.engine.RecognizeLine(ctx, conditioned)
		if err != nil {
			// Soft per-line failure: keep the line, empty and
			// unconfident, and continue with the rest of the page.
			text, confidence = "", 0
		}

		lines = append(lines, Line{
			Text:       text,
			Confidence: confidence,
			Top:        region.Top,
		})
	}

	// Defensive re-ordering: final order depends only on position, not on
	// recognition execution order.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Top < lines[j].Top
	})

	var confidenceSum float64
	lowCount := 0
	texts := make([]string, 0, len(lines))
	for i := range lines {
		if lines[i].Confidence < p.config.ConfidenceThreshold {
			lines[i].LowConfidence = true
			lowCount++
		}
		confidenceSum += lines[i].Confidence
		texts = append(texts, lines[i].Text)
	}

	result := &Result{
		Lines:              lines,
		MergedLines:        p.merger.Merge(texts),
		LowConfidenceCount: lowCount,
	}
	result.FullText = strings.Join(result.MergedLines, "\n")
	if len(lines) > 0 {
		result.AvgConfidence = confidenceSum / float64(len(lines))
	}

	if labels != nil {
		result.Fields = p.anchorFields(ctx, page, labels)
	}

	return result, nil
}

// anchorFields recognizes the whole page once and anchors the label table
// over the resulting words. Recognition failure degrades to all-miss, in
// line with the rule that only malformed input aborts a run.
func (p *Pipeline) anchorFields(ctx context.Context, page *image.Gray, labels []fields.Label) map[string]model.FieldValue {
	words, err := p.engine.RecognizePage(ctx, page)
	if err != nil {
		words = nil
	}
	return p.anchorer.Anchor(words, labels)
}
