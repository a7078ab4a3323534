package regions

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/navcube/pkg/math"
)

func quatAlmostEqual(a, b math.Quat, tol float64) bool {
	// q and -q are the same rotation.
	return gomath.Abs(gomath.Abs(float64(a.Dot(b)))-1) <= tol
}

func TestSyncRotationIdentityYUp(t *testing.T) {
	got, err := SyncRotation(math.QuatIdentity(), YUp)
	if err != nil {
		t.Fatalf("SyncRotation: %v", err)
	}
	if !quatAlmostEqual(got, math.QuatIdentity(), 1e-6) {
		t.Errorf("identity camera under Y-up should map to identity, got %v", got)
	}
}

func TestSyncRotationIdentityZUp(t *testing.T) {
	got, err := SyncRotation(math.QuatIdentity(), ZUp)
	if err != nil {
		t.Fatalf("SyncRotation: %v", err)
	}

	want := math.QuatFromAxisAngle(math.Vec3{X: 1}, gomath.Pi/2)
	if !quatAlmostEqual(got, want, 1e-6) {
		t.Errorf("identity camera under Z-up should map to the 90-degree X correction, got %v want %v", got, want)
	}
}

func TestSyncRotationInvertsCamera(t *testing.T) {
	// Under Y-up, composing the result with the camera rotation undoes it.
	camera := math.QuatFromAxisAngle(math.Vec3{Y: 1}, 0.9).Mul(
		math.QuatFromAxisAngle(math.Vec3{X: 1}, -0.4))

	display, err := SyncRotation(camera, YUp)
	if err != nil {
		t.Fatalf("SyncRotation: %v", err)
	}

	composed := display.Mul(camera)
	if !quatAlmostEqual(composed, math.QuatIdentity(), 1e-5) {
		t.Errorf("display * camera should be identity under Y-up, got %v", composed)
	}
}

func TestSyncRotationInverseCameraPair(t *testing.T) {
	// Under Y-up, sync(q) and sync(q^-1) are mutual inverses, so their
	// composition is the identity.
	q := math.QuatFromAxisAngle(math.Vec3{X: 0.6, Y: 0.8}, 1.1)

	a, err := SyncRotation(q, YUp)
	if err != nil {
		t.Fatalf("SyncRotation(q): %v", err)
	}
	b, err := SyncRotation(q.Invert(), YUp)
	if err != nil {
		t.Fatalf("SyncRotation(q^-1): %v", err)
	}

	if !quatAlmostEqual(a.Mul(b), math.QuatIdentity(), 1e-5) {
		t.Errorf("sync(q) * sync(q^-1) should be identity, got %v", a.Mul(b))
	}
}

func TestSyncRotationNormalizesInput(t *testing.T) {
	// A scaled but valid rotation produces the same result as its unit form.
	unit := math.QuatFromAxisAngle(math.Vec3{Z: 1}, 0.7)
	scaled := math.Quat{X: unit.X * 3, Y: unit.Y * 3, Z: unit.Z * 3, W: unit.W * 3}

	a, err := SyncRotation(unit, ZUp)
	if err != nil {
		t.Fatalf("SyncRotation(unit): %v", err)
	}
	b, err := SyncRotation(scaled, ZUp)
	if err != nil {
		t.Fatalf("SyncRotation(scaled): %v", err)
	}

	if !quatAlmostEqual(a, b, 1e-5) {
		t.Errorf("scaled input should normalize to the same rotation: %v vs %v", a, b)
	}
}

func TestSyncRotationRejectsZeroQuaternion(t *testing.T) {
	if _, err := SyncRotation(math.Quat{}, YUp); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestSyncRotationRejectsBadConvention(t *testing.T) {
	if _, err := SyncRotation(math.QuatIdentity(), Convention(-1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}
