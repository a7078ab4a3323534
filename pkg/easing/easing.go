// Package easing provides interpolation curves for camera transitions.
// Orchestration of a transition (timing, per-frame stepping) is the
// caller's concern; these are pure shaping functions over t in [0, 1].
package easing

// Func maps a linear progress value in [0, 1] to an eased one.
type Func func(t float32) float32

// Linear returns t unchanged.
func Linear(t float32) float32 {
	return t
}

// InOutQuad accelerates through the first half and decelerates through the
// second.
func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

// InOutCubic is a steeper ease-in-out than InOutQuad.
func InOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2 - 2*t
	return 1 - u*u*u/2
}

// OutBack overshoots the target slightly before settling.
func OutBack(t float32) float32 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate blends a to b by fn(Clamp01(t)).
func Interpolate(a, b, t float32, fn Func) float32 {
	e := fn(Clamp01(t))
	return a + (b-a)*e
}
