// Package imaging provides the document-image normalization stages of the
// pipeline: grayscale conversion, skew detection and correction, adaptive
// binarization with speckle removal, and the pre-recognition conditioning
// applied to individual line crops.
//
// All operations are pure functions of their input. Source images are never
// mutated; each stage allocates and returns a fresh image.
//
// # Normalization
//
// The [Normalizer] corrects page skew and uneven illumination:
//
//	n := imaging.NewNormalizer()
//	page, err := n.Normalize(img)
//
// Skew is estimated by fitting the minimum-area rectangle around the
// foreground pixel cloud; rotation is only applied when the estimate exceeds
// a small threshold, so noise-induced estimates never trigger a correction.
//
// # Line conditioning
//
// [ConditionLine] prepares a cropped text-line image for recognition:
// upscaling to a minimum height, denoising, localized contrast equalization,
// sharpening, and brightness normalization.
package imaging
