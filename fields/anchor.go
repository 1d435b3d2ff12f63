package fields

import (
	"sort"
	"strings"

	"github.com/tsawler/formscan/model"
)

// AnchorConfig holds configuration for spatial anchoring.
type AnchorConfig struct {
	// RowTolerance is the maximum difference between two boxes' top
	// offsets, in normalized units, for them to count as the same text
	// row (default: 25).
	RowTolerance int

	// MaxValueWords caps how many row-adjacent words are joined into a
	// field value (default: 8).
	MaxValueWords int
}

// DefaultAnchorConfig returns sensible default configuration.
func DefaultAnchorConfig() AnchorConfig {
	return AnchorConfig{
		RowTolerance:  25,
		MaxValueWords: 8,
	}
}

// Anchorer resolves field labels to adjacent value text.
type Anchorer struct {
	config AnchorConfig
}

// NewAnchorer creates an anchorer with default configuration.
func NewAnchorer() *Anchorer {
	return &Anchorer{config: DefaultAnchorConfig()}
}

// NewAnchorerWithConfig creates an anchorer with custom configuration.
func NewAnchorerWithConfig(config AnchorConfig) *Anchorer {
	return &Anchorer{config: config}
}

// Anchor maps each field to the text found on the same row to the right of
// its label, or to an explicit miss.
//
// For each field (in caller order) and each synonym (in listed order), words
// are scanned for a case-insensitive substring match. The first matching
// word anchors the field: every other word on the same row and to the
// anchor's right becomes a value candidate, candidates are sorted by their
// left edge, and up to MaxValueWords of them are joined with single spaces.
// The first occurrence that yields a non-empty value wins; remaining
// synonyms and occurrences are then not considered, and values are never
// aggregated across occurrences. Fields whose labels never appear, and
// labels with no row-adjacent value at any occurrence, resolve to a miss,
// never a guess.
func (a *Anchorer) Anchor(words []model.Word, labels []Label) map[string]model.FieldValue {
	results := make(map[string]model.FieldValue, len(labels))
	for _, label := range labels {
		results[label.Name] = model.MissingValue()
	}

	for _, label := range labels {
		if value, ok := a.resolve(words, label); ok {
			results[label.Name] = model.PresentValue(value)
		}
	}

	return results
}

// resolve finds the first synonym match that yields a value for one field.
// A matched label with no row-adjacent words to its right does not end the
// search; later occurrences may still anchor the field. The second return
// is false when no occurrence produces a value.
func (a *Anchorer) resolve(words []model.Word, label Label) (string, bool) {
	for _, synonym := range label.Synonyms {
		needle := strings.ToLower(synonym)
		for i, word := range words {
			if !strings.Contains(strings.ToLower(word.Text), needle) {
				continue
			}
			if value := a.assembleValue(words, i); value != "" {
				return value, true
			}
		}
	}
	return "", false
}

// assembleValue joins the words on the anchor's row to its right, left to
// right, up to the configured cap.
func (a *Anchorer) assembleValue(words []model.Word, anchorIdx int) string {
	anchor := words[anchorIdx].Box

	var candidates []model.Word
	for i, word := range words {
		if i == anchorIdx {
			continue
		}
		if word.Box.SameRow(anchor, a.config.RowTolerance) && word.Box.RightOf(anchor) {
			candidates = append(candidates, word)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Box.XMin < candidates[j].Box.XMin
	})

	if len(candidates) > a.config.MaxValueWords {
		candidates = candidates[:a.config.MaxValueWords]
	}

	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, c.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
