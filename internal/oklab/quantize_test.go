package oklab

import (
	"errors"
	"math"
	"testing"
)

func TestQuantize_Endpoints(t *testing.T) {
	start := Lab{0.1, 0.3, -0.2}
	end := Lab{0.9, -0.05, 0.07}

	for _, steps := range []int{2, 3, 5, 8, 13, 100} {
		got, err := Quantize(start, end, steps)
		if err != nil {
			t.Fatalf("Quantize(steps=%d) failed: %v", steps, err)
		}
		if len(got) != steps {
			t.Fatalf("steps=%d: got %d entries", steps, len(got))
		}
		if got[0].Color != start || got[0].Fraction != 0.0 {
			t.Errorf("steps=%d first: got %+v, want start at 0.0", steps, got[0])
		}
		if got[steps-1].Color != end || got[steps-1].Fraction != 1.0 {
			t.Errorf("steps=%d last: got %+v, want end at 1.0", steps, got[steps-1])
		}
	}
}

func TestQuantize_Midpoint(t *testing.T) {
	start := Lab{0.2, 0.1, -0.3}
	end := Lab{0.7, -0.2, 0.15}

	got, err := Quantize(start, end, 3)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	mid, _ := Average([]Lab{start, end})
	if got[1].Fraction != 0.5 {
		t.Errorf("fraction: got %v, want 0.5", got[1].Fraction)
	}
	if got[1].Color != mid {
		t.Errorf("midpoint: got %v, want %v", got[1].Color, mid)
	}
}

func TestQuantize_Fractions(t *testing.T) {
	got, err := Quantize(Lab{}, Lab{L: 1}, 5)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, s := range got {
		if s.Fraction != want[i] {
			t.Errorf("step %d fraction: got %v, want %v", i, s.Fraction, want[i])
		}
		if s.Color.L != want[i] {
			t.Errorf("step %d L: got %v, want %v", i, s.Color.L, want[i])
		}
	}
}

func TestQuantize_Monotonic(t *testing.T) {
	got, err := Quantize(Lab{L: 0.1, A: -0.2}, Lab{L: 0.9, A: 0.2}, 8)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Fraction <= got[i-1].Fraction {
			t.Errorf("fraction not increasing at %d", i)
		}
		if got[i].Color.L <= got[i-1].Color.L || got[i].Color.A <= got[i-1].Color.A {
			t.Errorf("color not increasing at %d: %v -> %v", i, got[i-1].Color, got[i].Color)
		}
	}
}

func TestQuantize_InvalidSteps(t *testing.T) {
	for _, steps := range []int{1, 0, -3, math.MinInt, math.MaxInt} {
		got, err := Quantize(Lab{}, Lab{L: 1}, steps)
		if !errors.Is(err, ErrInvalidStepCount) {
			t.Errorf("Quantize(steps=%d): got %v, want ErrInvalidStepCount", steps, err)
		}
		if got != nil {
			t.Errorf("Quantize(steps=%d) returned %d steps on error", steps, len(got))
		}
	}
}

func TestQuantizeAll_PairsInOrder(t *testing.T) {
	a := Lab{L: 0}
	b := Lab{L: 0.5}
	c := Lab{L: 1}

	got, err := QuantizeAll([]Lab{a, b, c}, 3)
	if err != nil {
		t.Fatalf("QuantizeAll failed: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected (3-1)*3 = 6 steps, got %d", len(got))
	}

	wantL := []float64{0, 0.25, 0.5, 0.5, 0.75, 1}
	wantF := []float64{0, 0.5, 1, 0, 0.5, 1}
	for i, s := range got {
		if s.Color.L != wantL[i] || s.Fraction != wantF[i] {
			t.Errorf("step %d: got L=%v f=%v, want L=%v f=%v", i, s.Color.L, s.Fraction, wantL[i], wantF[i])
		}
	}
	// The shared endpoint is emitted by both pairs.
	if got[2].Color != got[3].Color {
		t.Errorf("shared endpoint differs: %v vs %v", got[2].Color, got[3].Color)
	}
}

func TestQuantizeAll_Errors(t *testing.T) {
	tests := []struct {
		name   string
		colors []Lab
		steps  int
		want   error
	}{
		{"no colors", nil, 8, ErrInsufficientColors},
		{"one color", []Lab{{L: 1}}, 8, ErrInsufficientColors},
		{"one step", []Lab{{}, {L: 1}}, 1, ErrInvalidStepCount},
		{"steps checked first", []Lab{{}}, 0, ErrInvalidStepCount},
		{"total overflows int", []Lab{{}, {L: 1}, {L: 0.5}}, math.MaxInt/2 + 1, ErrInvalidStepCount},
		{"max int steps", []Lab{{}, {L: 1}}, math.MaxInt, ErrInvalidStepCount},
		{"total over limit", []Lab{{}, {L: 1}, {L: 0.5}}, maxTotalSteps/2 + 1, ErrInvalidStepCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := QuantizeAll(tt.colors, tt.steps)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestQuantizeAll_BlackToWhite(t *testing.T) {
	colors, err := ParseAll([]string{"#000000", "#ffffff"})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	got, err := QuantizeAll(colors, 2)
	if err != nil {
		t.Fatalf("QuantizeAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(got))
	}
	if hex := got[0].Color.RGB().Hex(); hex != "000000" || got[0].Fraction != 0 {
		t.Errorf("first: got #%s at %v, want #000000 at 0", hex, got[0].Fraction)
	}
	if hex := got[1].Color.RGB().Hex(); hex != "ffffff" || got[1].Fraction != 1 {
		t.Errorf("last: got #%s at %v, want #ffffff at 1", hex, got[1].Fraction)
	}
}
