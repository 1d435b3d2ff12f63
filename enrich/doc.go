// Package enrich contains downstream collaborators for digitized form
// output: deterministic document-type classification with review scoring,
// and an LLM-backed free-text normalizer.
//
// Nothing in this package touches pixels. It consumes the text and field
// values the pipeline produces and decides what happens to them next:
// which kind of document the page looks like, whether the extraction is
// complete enough to trust, and how to clean up noisy recognized prose.
package enrich
