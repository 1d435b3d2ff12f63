package imaging

import (
	"errors"
	"image"
	"math"
)

// ErrInvalidImage is returned for a nil or zero-sized input image. This is
// the only failure the normalizer reports; degenerate but decodable content
// (for example an entirely blank page) is a valid input.
var ErrInvalidImage = errors.New("imaging: invalid or empty input image")

// NormalizeConfig holds configuration for page normalization.
type NormalizeConfig struct {
	// MinRotation is the minimum detected skew, in degrees, that triggers a
	// rotation. Estimates below it are treated as noise (default: 0.5).
	MinRotation float64

	// AdaptiveWindow is the side length of the local window used for
	// adaptive thresholding (default: 25).
	AdaptiveWindow int

	// AdaptiveOffset is subtracted from the local mean before comparing;
	// higher values demand darker pixels to count as ink (default: 10).
	AdaptiveOffset int
}

// DefaultNormalizeConfig returns sensible default configuration.
func DefaultNormalizeConfig() NormalizeConfig {
	return NormalizeConfig{
		MinRotation:    0.5,
		AdaptiveWindow: 25,
		AdaptiveOffset: 10,
	}
}

// Normalizer corrects page skew and lighting/noise artifacts. It holds no
// state beyond its configuration and is safe for concurrent use.
type Normalizer struct {
	config NormalizeConfig
}

// NewNormalizer creates a normalizer with default configuration.
func NewNormalizer() *Normalizer {
	return &Normalizer{config: DefaultNormalizeConfig()}
}

// NewNormalizerWithConfig creates a normalizer with custom configuration.
func NewNormalizerWithConfig(config NormalizeConfig) *Normalizer {
	return &Normalizer{config: config}
}

// Normalize produces a deskewed, binarized copy of the page:
// grayscale conversion, skew correction (only when the measured angle
// exceeds MinRotation), windowed adaptive thresholding, and a morphological
// opening to drop speckle noise.
func (n *Normalizer) Normalize(img image.Image) (*image.Gray, error) {
	if img == nil {
		return nil, ErrInvalidImage
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrInvalidImage
	}

	gray := ToGray(img)

	angle := DetectSkew(gray)
	if math.Abs(angle) > n.config.MinRotation {
		gray = Rotate(gray, -angle)
	}

	binary := AdaptiveThreshold(gray, n.config.AdaptiveWindow, n.config.AdaptiveOffset)
	return Open(binary), nil
}
