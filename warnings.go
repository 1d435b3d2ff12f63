package formscan

import "strings"

// WarningType identifies a category of non-fatal scan issue.
type WarningType int

const (
	// WarningLowConfidence means one or more lines were recognized
	// below the confidence threshold and may need manual review.
	WarningLowConfidence WarningType = iota

	// WarningNoText means the page produced no text lines at all.
	WarningNoText
)

// Warning describes a non-fatal issue encountered during a scan.
// The scan succeeded, but the results may be imperfect.
type Warning struct {
	Type    WarningType
	Message string
}

// FormatWarnings joins warning messages into a single string for display.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.Message
	}
	return strings.Join(messages, "; ")
}
