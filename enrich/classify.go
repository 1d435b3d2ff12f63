package enrich

import (
	"log/slog"
	"strings"

	"github.com/tsawler/formscan/model"
)

// DocumentType identifies the kind of medical document a page appears
// to be, detected from its recognized text.
type DocumentType string

const (
	OPDNote      DocumentType = "OPD_NOTE"
	LabReport    DocumentType = "LAB_REPORT"
	Prescription DocumentType = "PRESCRIPTION"
	General      DocumentType = "GENERAL"
)

// Status is the review outcome for a digitized document.
type Status string

const (
	AutoApproved  Status = "AUTO_APPROVED"
	PendingReview Status = "PENDING_REVIEW"
	Rejected      Status = "REJECTED"
)

// Assessment is the classifier's verdict on one digitized page.
type Assessment struct {
	Type       DocumentType
	Confidence float64
	Status     Status
}

// ClassifyConfig holds the keyword tables, field expectations, and review
// thresholds used by Classifier.
type ClassifyConfig struct {
	// TypeKeywords maps each document type to the lowercase substrings
	// that identify it. Types are tested in the order OPDNote, LabReport,
	// Prescription; a page matching none is General.
	TypeKeywords map[DocumentType][]string

	// RequiredFields lists the field names a complete document of each
	// type must carry. OptionalFields lists names that raise confidence
	// when present but are not expected on every document.
	RequiredFields map[DocumentType][]string
	OptionalFields map[DocumentType][]string

	// AutoApproveAt and ReviewAt are the confidence thresholds for
	// AutoApproved and PendingReview. Below ReviewAt the document is
	// Rejected.
	AutoApproveAt float64
	ReviewAt      float64
}

// DefaultClassifyConfig returns the standard keyword and field tables for
// common hospital paperwork.
func DefaultClassifyConfig() ClassifyConfig {
	return ClassifyConfig{
		TypeKeywords: map[DocumentType][]string{
			OPDNote:      {"opd", "out-patient", "outpatient", "chief complaint"},
			LabReport:    {"laboratory", "lab report", "test result", "pathologist"},
			Prescription: {"prescription", "rx", "medicines prescribed"},
		},
		RequiredFields: map[DocumentType][]string{
			OPDNote:      {"patient_id", "diagnosis", "medications"},
			LabReport:    {"patient_id", "test_name", "results"},
			Prescription: {"patient_id", "medications"},
			General:      {"patient_id"},
		},
		OptionalFields: map[DocumentType][]string{
			OPDNote:   {"blood_pressure", "vitals", "chief_complaint"},
			LabReport: {"test_date", "remarks"},
		},
		AutoApproveAt: 0.90,
		ReviewAt:      0.70,
	}
}

// Classifier scores digitized documents for completeness and routes them
// to a review status. It is deterministic: the same text and fields always
// produce the same assessment.
type Classifier struct {
	config ClassifyConfig
	logger *slog.Logger
}

// NewClassifier creates a Classifier with the default tables.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifyConfig())
}

// NewClassifierWithConfig creates a Classifier with custom tables.
func NewClassifierWithConfig(config ClassifyConfig) *Classifier {
	return &Classifier{
		config: config,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger and returns the classifier for chaining.
func (c *Classifier) WithLogger(logger *slog.Logger) *Classifier {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Assess runs type detection, confidence scoring, and status routing on
// one digitized page.
func (c *Classifier) Assess(fullText string, fields map[string]model.FieldValue) Assessment {
	docType := c.DetectType(fullText)
	confidence := c.Score(docType, fields)
	status := c.StatusFor(confidence)

	c.logger.Debug("document assessed",
		"type", string(docType),
		"confidence", confidence,
		"status", string(status))

	return Assessment{Type: docType, Confidence: confidence, Status: status}
}

// DetectType inspects recognized text for type keywords. Pages matching
// no keyword table are General.
func (c *Classifier) DetectType(text string) DocumentType {
	lower := strings.ToLower(text)
	for _, docType := range []DocumentType{OPDNote, LabReport, Prescription} {
		for _, keyword := range c.config.TypeKeywords[docType] {
			if strings.Contains(lower, keyword) {
				return docType
			}
		}
	}
	return General
}

// Score rates extraction completeness for the given document type.
//
// Scoring starts from a base of 0.5. The fraction of required fields
// present contributes up to 0.4, the fraction of optional fields up to
// 0.1, and a full set of required fields earns a 0.1 bonus. The score is
// capped at 1.0.
func (c *Classifier) Score(docType DocumentType, fields map[string]model.FieldValue) float64 {
	score := 0.5

	required := c.config.RequiredFields[docType]
	optional := c.config.OptionalFields[docType]

	requiredFound := countPresent(required, fields)
	if len(required) > 0 {
		score += float64(requiredFound) / float64(len(required)) * 0.4
	}
	if len(optional) > 0 {
		score += float64(countPresent(optional, fields)) / float64(len(optional)) * 0.1
	}
	if len(required) > 0 && requiredFound == len(required) {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// StatusFor maps a confidence score to a review status.
func (c *Classifier) StatusFor(confidence float64) Status {
	switch {
	case confidence >= c.config.AutoApproveAt:
		return AutoApproved
	case confidence >= c.config.ReviewAt:
		return PendingReview
	default:
		return Rejected
	}
}

func countPresent(names []string, fields map[string]model.FieldValue) int {
	found := 0
	for _, name := range names {
		if v, ok := fields[name]; ok && v.Present && v.Value != "" {
			found++
		}
	}
	return found
}
