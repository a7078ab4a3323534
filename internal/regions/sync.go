package regions

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/navcube/pkg/math"
)

// zUpCorrection reconciles the cube mesh's Y-up construction with a Z-up
// world: +90 degrees about world X.
var zUpCorrection = math.QuatFromAxisAngle(math.Vec3{X: 1}, gomath.Pi/2)

// SyncRotation computes the rotation to apply to the displayed cube so its
// faces track what the camera is looking at. The cube counter-rotates
// against the camera, so the camera orientation is inverted; under Z-up the
// fixed X-axis correction is composed in first:
//
//	display = invert(camera) * correction
//
// Stateless; call once per frame with the latest camera orientation. The
// input is normalized defensively, but a zero-length quaternion is rejected.
func SyncRotation(camera math.Quat, conv Convention) (math.Quat, error) {
	if !conv.Valid() {
		return math.QuatIdentity(), fmt.Errorf("convention %d: %w", int(conv), ErrInvalidArgument)
	}
	if camera.Length() < 1e-6 {
		return math.QuatIdentity(), fmt.Errorf("zero-length camera rotation: %w", ErrInvalidArgument)
	}

	display := camera.Normalize().Conjugate()
	if conv == ZUp {
		display = display.Mul(zUpCorrection)
	}
	return display, nil
}
