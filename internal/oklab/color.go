package oklab

import "fmt"

// Lab is a color in the Oklab perceptual color space.
//
// Components are float64 and conceptually unbounded:
//   - L: perceived lightness, 0 (black) to 1 (white) for colors inside sRGB
//   - A: green (negative) to red (positive) axis
//   - B: blue (negative) to yellow (positive) axis
//
// Euclidean distance between two Lab values approximates the perceived
// difference between the colors, which is why averaging and interpolation
// happen here rather than in sRGB.
type Lab struct {
	L float64 `json:"l"` // Lightness
	A float64 `json:"a"` // Green-red axis
	B float64 `json:"b"` // Blue-yellow axis
}

// String renders the triplet as "lab(l, a, b)" with four decimals.
func (c Lab) String() string {
	return fmt.Sprintf("lab(%.4f, %.4f, %.4f)", c.L, c.A, c.B)
}

// RGB converts the color to 8-bit sRGB. See ToRGB for the rounding policy.
func (c Lab) RGB() RGB {
	return ToRGB(c)
}

// RGB represents an sRGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the lowercase 6-digit hex code without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the decimal triplet as "rgb(r,g,b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Lab converts the color to Oklab.
func (c RGB) Lab() Lab {
	return FromRGB(c)
}

// ColorResult contains a color value in every representation the tool prints.
//
// This struct provides the same color in three formats:
//   - Hex: "#rrggbb", lowercase, for CSS/web usage
//   - RGB: 8-bit sRGB components
//   - Lab: the Oklab triplet the value was computed in
type ColorResult struct {
	Hex string `json:"hex"` // Hex format "#rrggbb"
	RGB RGB    `json:"rgb"` // sRGB components
	Lab Lab    `json:"lab"` // Oklab components
}

// Describe expands a Lab color into a ColorResult.
//
// Lab is carried over untouched; Hex and RGB come from ToRGB, so they are
// the clamped and rounded sRGB rendition of the value.
func Describe(c Lab) ColorResult {
	rgb := ToRGB(c)
	return ColorResult{
		Hex: "#" + rgb.Hex(),
		RGB: rgb,
		Lab: c,
	}
}
