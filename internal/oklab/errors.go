package oklab

import "errors"

// Sentinel errors returned by this package. Callers wrap them with context
// and test for them with errors.Is.
var (
	// ErrInvalidColorFormat reports text that is neither a 3/6 digit hex
	// code nor a bracketed Oklab triplet.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidStepCount reports a quantize request with fewer than two steps.
	ErrInvalidStepCount = errors.New("invalid step count")

	// ErrInsufficientColors reports a color list too short for the operation.
	ErrInsufficientColors = errors.New("insufficient colors")

	// ErrEmptyInput reports an average over zero colors.
	ErrEmptyInput = errors.New("empty input")
)
