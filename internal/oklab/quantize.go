package oklab

import (
	"fmt"
	"math"
)

// maxTotalSteps bounds the number of steps one call may produce, so the
// result slice length never overflows or exceeds what can be allocated.
const maxTotalSteps = math.MaxInt32

// Step is one interpolated color and its position between the endpoints of
// the pair it was generated from.
type Step struct {
	Color    Lab     `json:"color"`
	Fraction float64 `json:"fraction"` // 0.0 = start color, 1.0 = end color
}

// StepResult is the display form of a Step: its fraction plus the color in
// every representation.
type StepResult struct {
	Fraction float64     `json:"fraction"`
	Color    ColorResult `json:"color"`
}

// DescribeStep expands a Step into a StepResult.
func DescribeStep(s Step) StepResult {
	return StepResult{Fraction: s.Fraction, Color: Describe(s.Color)}
}

// Quantize linearly interpolates from start to end in steps evenly spaced
// positions, both endpoints included.
//
// The fraction of step i is i/(steps-1). Each component is blended as
// (1-t)*start + t*end, which reproduces start at t=0 and end at t=1 exactly.
// Fewer than two steps, or more than maxTotalSteps, fail with
// ErrInvalidStepCount.
func Quantize(start, end Lab, steps int) ([]Step, error) {
	if err := checkSteps(steps, 1); err != nil {
		return nil, err
	}

	out := make([]Step, steps)
	last := float64(steps - 1)
	for i := range out {
		t := float64(i) / last
		out[i] = Step{
			Color:    lerp(start, end, t),
			Fraction: t,
		}
	}
	return out, nil
}

// QuantizeAll runs Quantize over every consecutive pair of colors, in order,
// and concatenates the results.
//
// The result has (len(colors)-1)*steps entries. The color shared by two
// adjacent pairs appears twice: as the last step of one pair and the first
// step of the next. The step count is checked before the color count, and
// fewer than two colors fail with ErrInsufficientColors. A step count whose
// total over all pairs exceeds maxTotalSteps fails with ErrInvalidStepCount.
func QuantizeAll(colors []Lab, steps int) ([]Step, error) {
	if err := checkSteps(steps, 1); err != nil {
		return nil, err
	}
	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: quantize needs at least 2 colors, got %d", ErrInsufficientColors, len(colors))
	}
	if err := checkSteps(steps, len(colors)-1); err != nil {
		return nil, err
	}

	out := make([]Step, 0, (len(colors)-1)*steps)
	for i := 0; i+1 < len(colors); i++ {
		pair, err := Quantize(colors[i], colors[i+1], steps)
		if err != nil {
			return nil, err
		}
		out = append(out, pair...)
	}
	return out, nil
}

// checkSteps validates steps per pair for the given number of pairs.
func checkSteps(steps, pairs int) error {
	if steps < 2 {
		return fmt.Errorf("%w: need at least 2 steps, got %d", ErrInvalidStepCount, steps)
	}
	if steps > maxTotalSteps/pairs {
		return fmt.Errorf("%w: %d steps across %d pairs exceeds the limit of %d", ErrInvalidStepCount, steps, pairs, maxTotalSteps)
	}
	return nil
}

func lerp(a, b Lab, t float64) Lab {
	u := 1 - t
	return Lab{
		L: u*a.L + t*b.L,
		A: u*a.A + t*b.A,
		B: u*a.B + t*b.B,
	}
}
