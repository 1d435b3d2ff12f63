package model

// Word is a single recognized token with its location on the page.
type Word struct {
	// Text is the recognized token text.
	Text string

	// Box is the word's bounding box in the normalized coordinate space.
	Box Box
}
