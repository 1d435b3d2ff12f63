package formscan

import (
	"github.com/tsawler/formscan/fields"
	"github.com/tsawler/formscan/pipeline"
)

// scanOptions holds configuration for a scan.
type scanOptions struct {
	// Recognition confidence threshold for flagging lines; used when
	// thresholdSet is true.
	threshold    float64
	thresholdSet bool

	// Field anchoring; nil labels means anchoring is off.
	labels []fields.Label

	// Pipeline overrides; used when overridden is true.
	config     pipeline.Config
	overridden bool
}

// defaultOptions returns the default scan options.
func defaultOptions() scanOptions {
	return scanOptions{
		labels: nil, // nil means no field anchoring
	}
}

// clone creates a deep copy of scanOptions.
func (o scanOptions) clone() scanOptions {
	newOpts := scanOptions{
		threshold:    o.threshold,
		thresholdSet: o.thresholdSet,
		config:       o.config,
		overridden:   o.overridden,
	}

	// Deep copy labels slice
	if o.labels != nil {
		newOpts.labels = make([]fields.Label, len(o.labels))
		copy(newOpts.labels, o.labels)
	}

	return newOpts
}

// pipelineConfig resolves the effective pipeline configuration.
func (o scanOptions) pipelineConfig() pipeline.Config {
	config := pipeline.DefaultConfig()
	if o.overridden {
		config = o.config
	}
	if o.thresholdSet {
		config.ConfidenceThreshold = o.threshold
	}
	return config
}
