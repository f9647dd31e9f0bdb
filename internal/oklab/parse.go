package oklab

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// number matches one bracketed component, capturing the value without the
// surrounding whitespace.
const number = `\s*(-?\d+(?:\.\d+)?)\s*`

var (
	hexPattern     = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	tripletPattern = regexp.MustCompile(`^\[` + number + `,` + number + `,` + number + `\]$`)
)

// Parse decodes one color argument into Oklab.
//
// Accepted forms:
//   - "#rgb" or "rgb": 3 hex digits, each duplicated ("#abc" == "#aabbcc")
//   - "#rrggbb" or "rrggbb": 6 hex digits, one byte per channel
//   - "[l, a, b]": an Oklab triplet, used as-is without passing through sRGB
//
// Hex digits are case-insensitive. Whitespace is only allowed around the
// values inside brackets. Anything else fails with ErrInvalidColorFormat.
func Parse(text string) (Lab, error) {
	if strings.HasPrefix(text, "[") {
		return parseTriplet(text)
	}
	rgb, err := ParseRGB(text)
	if err != nil {
		return Lab{}, err
	}
	return FromRGB(rgb), nil
}

// ParseRGB decodes a 3 or 6 digit hex code, with or without '#', into sRGB.
func ParseRGB(text string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q is not a 3 or 6 digit hex code", ErrInvalidColorFormat, text)
	}

	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	col, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, text, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// ParseAll parses every argument in order and stops at the first failure.
// The returned error names the 1-based position of the offending argument.
func ParseAll(texts []string) ([]Lab, error) {
	colors := make([]Lab, 0, len(texts))
	for i, text := range texts {
		c, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parseTriplet(text string) (Lab, error) {
	m := tripletPattern.FindStringSubmatch(text)
	if m == nil {
		return Lab{}, fmt.Errorf("%w: %q is not a bracketed [l, a, b] triplet", ErrInvalidColorFormat, text)
	}

	var v [3]float64
	for i := range v {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Lab{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, text, err)
		}
		v[i] = f
	}
	return Lab{L: v[0], A: v[1], B: v[2]}, nil
}
