// Package oklab implements the color core of oklabby: parsing color text,
// converting between sRGB and the Oklab perceptual color space, averaging
// colors and generating interpolation steps between them.
//
// All functions are pure. They take and return values, keep no state, and
// can be called concurrently.
//
// # Color Representation
//
// Two value types carry colors through the package:
//   - Lab: Oklab lightness and two chroma axes, float64 per component
//   - RGB: 8-bit gamma-encoded sRGB, the form hex codes describe
//
// Averaging and interpolation always happen on Lab values. RGB is only an
// input encoding and the final display encoding.
//
// # Input Grammar
//
// Parse accepts, per argument:
//
//	#?[0-9a-fA-F]{3}
//	#?[0-9a-fA-F]{6}
//	[ l, a, b ]        (decimal numbers, optional leading '-')
//
// # Numeric Precision
//
// Oklab components are float64, as computed by go-colorful. Converting back
// to sRGB rounds half away from zero and clamps each channel to [0, 255], so
// every hex code survives a Parse / ToRGB round trip unchanged.
//
// # Error Handling
//
// Failures wrap one of four sentinel errors, to be tested with errors.Is:
//   - ErrInvalidColorFormat: malformed hex or bracket syntax
//   - ErrInvalidStepCount: quantize with fewer than 2 steps
//   - ErrInsufficientColors: quantize over fewer than 2 colors
//   - ErrEmptyInput: average over zero colors
package oklab
