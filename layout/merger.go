package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// continuationStops are the characters that terminate a logical sentence or
// clause. A line ending in one of them is never merged with its successor.
const continuationStops = ".!?:;,"

// Merger rejoins recognized line texts that segmentation split mid-sentence.
type Merger struct{}

// NewMerger creates a line merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge performs a single pass over ordered line texts. A line is treated
// as the wrapped continuation of the previous one when the buffer so far
// does not end in a stop character and the line starts with a lowercase
// letter; continuations are joined with a single space. Empty input yields
// empty output and a single line is returned unchanged.
func (m *Merger) Merge(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	merged := make([]string, 0, len(lines))
	buffer := lines[0]

	for _, line := range lines[1:] {
		if isContinuation(buffer, line) {
			buffer += " " + line
			continue
		}
		merged = append(merged, buffer)
		buffer = line
	}

	return append(merged, buffer)
}

// isContinuation reports whether next is a wrapped continuation of the
// buffered line.
func isContinuation(buffer, next string) bool {
	trimmed := strings.TrimRight(buffer, " ")
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	if strings.ContainsRune(continuationStops, last) {
		return false
	}

	first, _ := utf8.DecodeRuneInString(next)
	return unicode.IsLower(first)
}
