package oklab

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// FromRGB converts an 8-bit sRGB color to Oklab.
//
// The sRGB gamma is removed before the Oklab matrices are applied, so the
// result is the standard Oklab value of the color. The conversion is total:
// every byte triplet has an Oklab value.
func FromRGB(c RGB) Lab {
	l, a, b := toColorful(c).OkLab()
	return Lab{L: l, A: a, B: b}
}

// ToRGB converts an Oklab color to 8-bit sRGB.
//
// # Rounding
//
// Each gamma-encoded channel is scaled to 0-255, rounded half away from zero
// (math.Round) and clamped to [0, 255]. Oklab values outside the sRGB gamut
// therefore land on the nearest face of the RGB cube per channel; no other
// gamut mapping is applied.
//
// Components larger than maxComponent in magnitude (infinities included) are
// scaled down along their direction first, so the cube in the inverse
// transform cannot overflow. A NaN component still yields 0 in that channel.
func ToRGB(c Lab) RGB {
	c = saturate(c)
	col := colorful.OkLab(c.L, c.A, c.B)
	return RGB{
		R: toByte(col.R),
		G: toByte(col.G),
		B: toByte(col.B),
	}
}

// maxComponent is far outside the sRGB gamut, and its cube is still finite.
const maxComponent = 1e6

// saturate scales c so that no component exceeds maxComponent in magnitude,
// keeping its direction. Infinite components dominate finite ones.
func saturate(c Lab) Lab {
	v := [3]float64{c.L, c.A, c.B}
	if math.IsInf(v[0], 0) || math.IsInf(v[1], 0) || math.IsInf(v[2], 0) {
		for i, x := range v {
			switch {
			case math.IsInf(x, 1):
				v[i] = maxComponent
			case math.IsInf(x, -1):
				v[i] = -maxComponent
			default:
				v[i] = 0
			}
		}
		return Lab{L: v[0], A: v[1], B: v[2]}
	}

	m := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
	if !(m > maxComponent) {
		return c
	}
	s := maxComponent / m
	return Lab{L: v[0] * s, A: v[1] * s, B: v[2] * s}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// toByte maps a gamma-encoded channel in [0, 1] to a byte.
func toByte(v float64) uint8 {
	return roundByte(v * 255.0)
}

// roundByte rounds half away from zero and clamps to [0, 255].
func roundByte(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
