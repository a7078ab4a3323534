// Package camera provides the orbit camera used by the demo scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/navcube/internal/regions"
	"github.com/Faultbox/navcube/pkg/easing"
	"github.com/Faultbox/navcube/pkg/math"
)

// pitchLimit keeps the camera off the poles so LookAt's fixed up vector
// stays valid.
const pitchLimit = float32(gomath.Pi/2) - 0.01

// transition is an in-flight animated move toward a target orbit.
type transition struct {
	active     bool
	elapsed    float32
	duration   float32
	ease       easing.Func
	startYaw   float32
	startPitch float32
	startDist  float32
	endYaw     float32
	endPitch   float32
	endDist    float32
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle (radians)
	Yaw      float32 // Horizontal angle (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	anim transition
}

// New creates a new orbit camera with default settings.
func New() *OrbitCamera {
	return &OrbitCamera{
		Distance:        300.0,
		Pitch:           0.5,
		Yaw:             0.6,
		MinDistance:     20.0,
		MaxDistance:     2000.0,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// Orientation returns the camera's rotation as a quaternion: pitch about X
// followed by yaw about the world Y axis. At yaw 0 and pitch 0 the camera
// sits on +Z looking down -Z, which is the identity orientation.
func (c *OrbitCamera) Orientation() math.Quat {
	yaw := math.QuatFromAxisAngle(math.Vec3{Y: 1}, c.Yaw)
	pitch := math.QuatFromAxisAngle(math.Vec3{X: 1}, -c.Pitch)
	return yaw.Mul(pitch).Normalize()
}

// HandleDrag updates rotation based on mouse drag delta and cancels any
// transition in flight.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.anim.active = false

	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.anim.active = false

	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// SetPose snaps the camera onto the viewing direction of the given pose,
// keeping the current distance and center.
func (c *OrbitCamera) SetPose(pose regions.Config) {
	yaw, pitch := poseAngles(pose)
	c.anim.active = false
	c.Yaw = yaw
	c.Pitch = pitch
}

// TransitionTo starts an animated move onto the viewing direction of the
// given pose. A non-positive duration snaps immediately.
func (c *OrbitCamera) TransitionTo(pose regions.Config, duration float32, ease easing.Func) {
	if duration <= 0 {
		c.SetPose(pose)
		return
	}
	if ease == nil {
		ease = easing.InOutCubic
	}

	endYaw, endPitch := poseAngles(pose)

	c.anim = transition{
		active:     true,
		duration:   duration,
		ease:       ease,
		startYaw:   c.Yaw,
		startPitch: c.Pitch,
		startDist:  c.Distance,
		endYaw:     c.Yaw + wrapAngle(endYaw-c.Yaw),
		endPitch:   endPitch,
		endDist:    c.Distance,
	}
}

// Transitioning reports whether an animated move is in flight.
func (c *OrbitCamera) Transitioning() bool {
	return c.anim.active
}

// Update advances any transition in flight by dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	if !c.anim.active {
		return
	}

	c.anim.elapsed += dt
	t := easing.Clamp01(c.anim.elapsed / c.anim.duration)

	c.Yaw = easing.Interpolate(c.anim.startYaw, c.anim.endYaw, t, c.anim.ease)
	c.Pitch = easing.Interpolate(c.anim.startPitch, c.anim.endPitch, t, c.anim.ease)
	c.Distance = easing.Interpolate(c.anim.startDist, c.anim.endDist, t, c.anim.ease)

	if t >= 1 {
		c.anim.active = false
		c.Yaw = wrapAngle(c.Yaw)
	}
}

// poseAngles converts a pose's position direction into orbit angles. Poses
// straight above or below collapse onto the pole and keep yaw at zero.
func poseAngles(pose regions.Config) (yaw, pitch float32) {
	dir := pose.Position.Normalize()
	if dir.IsZero() {
		return 0, 0
	}

	pitch = float32(gomath.Asin(float64(clamp(dir.Y, -1, 1))))
	if pitch > pitchLimit {
		pitch = pitchLimit
	}
	if pitch < -pitchLimit {
		pitch = -pitchLimit
	}

	yaw = float32(gomath.Atan2(float64(dir.X), float64(dir.Z)))
	return yaw, pitch
}

// wrapAngle maps an angle into (-pi, pi] so transitions take the short way
// around.
func wrapAngle(a float32) float32 {
	for a > gomath.Pi {
		a -= 2 * gomath.Pi
	}
	for a <= -gomath.Pi {
		a += 2 * gomath.Pi
	}
	return a
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
