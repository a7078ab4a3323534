package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/navcube/pkg/math"
)

func TestIntersectAABBStraightOn(t *testing.T) {
	box := NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	ray := Ray{
		Origin:    math.Vec3{Z: 5},
		Direction: math.Vec3{Z: -1},
	}

	dist, hit := ray.IntersectAABB(box)
	if !hit {
		t.Fatal("expected hit")
	}
	if gomath.Abs(float64(dist-4)) > 1e-5 {
		t.Errorf("distance = %v, want 4", dist)
	}
}

func TestIntersectAABBMiss(t *testing.T) {
	box := NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})

	// Parallel ray offset outside the box.
	ray := Ray{
		Origin:    math.Vec3{X: 3, Z: 5},
		Direction: math.Vec3{Z: -1},
	}
	if _, hit := ray.IntersectAABB(box); hit {
		t.Error("offset parallel ray should miss")
	}

	// Box behind the ray.
	ray = Ray{
		Origin:    math.Vec3{Z: 5},
		Direction: math.Vec3{Z: 1},
	}
	if _, hit := ray.IntersectAABB(box); hit {
		t.Error("box behind ray origin should miss")
	}
}

func TestIntersectAABBFromInside(t *testing.T) {
	box := NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	ray := Ray{
		Origin:    math.Vec3{},
		Direction: math.Vec3{X: 1},
	}

	dist, hit := ray.IntersectAABB(box)
	if !hit {
		t.Fatal("ray starting inside should hit")
	}
	if gomath.Abs(float64(dist-1)) > 1e-5 {
		t.Errorf("exit distance = %v, want 1", dist)
	}
}

func TestNewAABBSwapsCorners(t *testing.T) {
	box := NewAABB(math.Vec3{X: 1, Y: -2, Z: 3}, math.Vec3{X: -1, Y: 2, Z: -3})
	if box.Min.X != -1 || box.Min.Y != -2 || box.Min.Z != -3 {
		t.Errorf("Min = %v, want (-1,-2,-3)", box.Min)
	}
	if box.Max.X != 1 || box.Max.Y != 2 || box.Max.Z != 3 {
		t.Errorf("Max = %v, want (1,2,3)", box.Max)
	}
}

func TestScreenToRayCenterPointsForward(t *testing.T) {
	// Camera at +Z looking at the origin: a ray through the viewport center
	// points down -Z.
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(float32(gomath.Pi/4), 1, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	ray := ScreenToRay(200, 200, 400, 400, inv)

	if gomath.Abs(float64(ray.Direction.X)) > 1e-4 ||
		gomath.Abs(float64(ray.Direction.Y)) > 1e-4 ||
		gomath.Abs(float64(ray.Direction.Z+1)) > 1e-4 {
		t.Errorf("center ray direction = %v, want (0,0,-1)", ray.Direction)
	}
}

func TestScreenToRayOffCenter(t *testing.T) {
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(float32(gomath.Pi/4), 1, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	// Top half of the viewport should produce an upward-tilting ray.
	ray := ScreenToRay(200, 50, 400, 400, inv)
	if ray.Direction.Y <= 0 {
		t.Errorf("ray through upper viewport should tilt up, direction = %v", ray.Direction)
	}
}

func TestRayTransformRotation(t *testing.T) {
	// Rotating a -Z ray by 90 degrees about Y points it down -X.
	rot := math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(gomath.Pi/2))
	ray := Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}

	local := ray.Transform(rot, math.Vec3{})

	if gomath.Abs(float64(local.Direction.X+1)) > 1e-4 || gomath.Abs(float64(local.Direction.Z)) > 1e-4 {
		t.Errorf("transformed direction = %v, want (-1,0,0)", local.Direction)
	}
}
