package easing

import (
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	fns := map[string]Func{
		"Linear":     Linear,
		"InOutQuad":  InOutQuad,
		"InOutCubic": InOutCubic,
		"OutBack":    OutBack,
	}

	for name, fn := range fns {
		if got := fn(0); math.Abs(float64(got)) > 1e-6 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(float64(got-1)) > 1e-6 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestInOutQuadMidpoint(t *testing.T) {
	if got := InOutQuad(0.5); math.Abs(float64(got-0.5)) > 1e-6 {
		t.Errorf("InOutQuad(0.5) = %v, want 0.5", got)
	}
}

func TestInOutCubicMonotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		v := InOutCubic(float32(i) / 100)
		if v < prev {
			t.Fatalf("InOutCubic not monotonic at t=%v: %v < %v", float32(i)/100, v, prev)
		}
		prev = v
	}
}

func TestOutBackOvershoots(t *testing.T) {
	overshot := false
	for i := 0; i <= 100; i++ {
		if OutBack(float32(i)/100) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("OutBack should exceed 1 before settling")
	}
}

func TestInterpolateClamps(t *testing.T) {
	if got := Interpolate(10, 20, -0.5, Linear); got != 10 {
		t.Errorf("Interpolate below range = %v, want 10", got)
	}
	if got := Interpolate(10, 20, 1.5, Linear); got != 20 {
		t.Errorf("Interpolate above range = %v, want 20", got)
	}
	if got := Interpolate(10, 20, 0.25, Linear); got != 12.5 {
		t.Errorf("Interpolate(10,20,0.25) = %v, want 12.5", got)
	}
}
