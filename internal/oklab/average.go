package oklab

// Average returns the component-wise arithmetic mean of colors.
//
// The mean is taken independently over L, A and B, so the result does not
// depend on the order of the input. An empty slice fails with ErrEmptyInput
// before any division happens.
func Average(colors []Lab) (Lab, error) {
	if len(colors) == 0 {
		return Lab{}, ErrEmptyInput
	}

	var sum Lab
	for _, c := range colors {
		sum.L += c.L
		sum.A += c.A
		sum.B += c.B
	}

	n := float64(len(colors))
	return Lab{
		L: sum.L / n,
		A: sum.A / n,
		B: sum.B / n,
	}, nil
}
