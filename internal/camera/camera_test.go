package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/navcube/internal/regions"
	"github.com/Faultbox/navcube/pkg/easing"
	"github.com/Faultbox/navcube/pkg/math"
)

func almostEqual(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) < float64(eps)
}

func TestOrientationIdentityAtRest(t *testing.T) {
	c := New()
	c.Yaw = 0
	c.Pitch = 0

	q := c.Orientation()
	dot := gomath.Abs(float64(q.Dot(math.QuatIdentity())))
	if gomath.Abs(dot-1) > 1e-5 {
		t.Errorf("orientation at rest = %+v, want identity", q)
	}
}

func TestOrientationMatchesViewDirection(t *testing.T) {
	c := New()
	c.Yaw = float32(gomath.Pi / 2)
	c.Pitch = 0

	// The camera sits on +X; its forward axis (-Z in camera space) must
	// point back toward the center along -X.
	forward := c.Orientation().Rotate(math.Vec3{Z: -1})
	if !almostEqual(forward.X, -1, 1e-5) || !almostEqual(forward.Y, 0, 1e-5) || !almostEqual(forward.Z, 0, 1e-5) {
		t.Errorf("forward = %+v, want (-1, 0, 0)", forward)
	}
}

func TestPositionOnSphere(t *testing.T) {
	c := New()
	c.Distance = 100
	c.Center = math.Vec3{X: 5, Y: -3, Z: 2}

	pos := c.Position()
	r := pos.Sub(c.Center).Length()
	if !almostEqual(r, 100, 1e-3) {
		t.Errorf("distance from center = %v, want 100", r)
	}
}

func TestSetPoseFront(t *testing.T) {
	c := New()
	c.SetPose(regions.Config{
		Position: math.Vec3{Z: 150},
		Up:       math.Vec3{Y: 1},
		LookAt:   math.Vec3{Z: -1},
	})

	if !almostEqual(c.Yaw, 0, 1e-5) || !almostEqual(c.Pitch, 0, 1e-5) {
		t.Errorf("front pose angles = (%v, %v), want (0, 0)", c.Yaw, c.Pitch)
	}
}

func TestSetPoseTopClampsPitch(t *testing.T) {
	c := New()
	c.SetPose(regions.Config{
		Position: math.Vec3{Y: 150},
		Up:       math.Vec3{Z: -1},
		LookAt:   math.Vec3{Y: -1},
	})

	if !almostEqual(c.Pitch, pitchLimit, 1e-5) {
		t.Errorf("top pose pitch = %v, want %v", c.Pitch, pitchLimit)
	}
}

func TestTransitionReachesTarget(t *testing.T) {
	c := New()
	c.Yaw = 0
	c.Pitch = 0

	pose := regions.Config{Position: math.Vec3{X: 100}}
	c.TransitionTo(pose, 0.5, easing.InOutCubic)

	if !c.Transitioning() {
		t.Fatal("transition should be in flight")
	}

	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60.0)
	}

	if c.Transitioning() {
		t.Error("transition should have finished")
	}
	if !almostEqual(c.Yaw, float32(gomath.Pi/2), 1e-4) {
		t.Errorf("yaw = %v, want pi/2", c.Yaw)
	}
	if !almostEqual(c.Pitch, 0, 1e-4) {
		t.Errorf("pitch = %v, want 0", c.Pitch)
	}
}

func TestTransitionTakesShortWayAround(t *testing.T) {
	c := New()
	c.Yaw = 3.0
	c.Pitch = 0

	// Target yaw -3.0 is only ~0.28 rad away across the pi boundary.
	pose := regions.Config{Position: math.Vec3{
		X: float32(gomath.Sin(-3.0)),
		Z: float32(gomath.Cos(-3.0)),
	}}
	c.TransitionTo(pose, 1, easing.Linear)

	c.Update(0.5)
	if c.Yaw <= 3.0 {
		t.Errorf("midway yaw = %v, should increase across the boundary", c.Yaw)
	}

	c.Update(1)
	if !almostEqual(c.Yaw, -3.0, 1e-3) {
		t.Errorf("final yaw = %v, want -3.0", c.Yaw)
	}
}

func TestZeroDurationSnaps(t *testing.T) {
	c := New()
	c.TransitionTo(regions.Config{Position: math.Vec3{X: 100}}, 0, nil)

	if c.Transitioning() {
		t.Error("zero-duration transition should snap")
	}
	if !almostEqual(c.Yaw, float32(gomath.Pi/2), 1e-5) {
		t.Errorf("yaw = %v, want pi/2", c.Yaw)
	}
}

func TestDragCancelsTransition(t *testing.T) {
	c := New()
	c.TransitionTo(regions.Config{Position: math.Vec3{X: 100}}, 1, nil)
	c.HandleDrag(2, 0)

	if c.Transitioning() {
		t.Error("drag should cancel the transition")
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := New()
	c.HandleDrag(0, 1e6)
	if c.Pitch > pitchLimit {
		t.Errorf("pitch = %v, exceeds limit %v", c.Pitch, pitchLimit)
	}

	c.HandleDrag(0, -1e7)
	if c.Pitch < -pitchLimit {
		t.Errorf("pitch = %v, below limit %v", c.Pitch, -pitchLimit)
	}
}

func TestZoomClamps(t *testing.T) {
	c := New()
	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance < c.MinDistance {
		t.Errorf("distance = %v, below minimum %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance > c.MaxDistance {
		t.Errorf("distance = %v, above maximum %v", c.Distance, c.MaxDistance)
	}
}
