package enrich

import "context"

// Normalizer cleans up noisy recognized prose: spelling repair, broken
// word rejoin, whitespace collapse. Implementations must not invent
// content that is not in the input; a normalizer that cannot improve the
// text should return it unchanged.
type Normalizer interface {
	Normalize(ctx context.Context, freeText string) (string, error)
}
