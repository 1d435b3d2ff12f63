// Package layout locates text-line structure in a normalized page image and
// repairs lines that segmentation split apart.
//
// The [Segmenter] finds ordered horizontal line bands using a horizontal
// projection profile:
//
//	s := layout.NewSegmenter()
//	regions := s.Segment(page)
//
// The [Merger] rejoins wrapped continuations in recognized line texts:
//
//	merged := layout.NewMerger().Merge(texts)
//
// Both are deterministic: identical input always yields identical output.
package layout
