package regions

import (
	"errors"
	"testing"
)

func TestIDKinds(t *testing.T) {
	tests := []struct {
		id   ID
		kind Kind
	}{
		{Front, KindFace},
		{Bottom, KindFace},
		{TopFront, KindEdge},
		{FrontLeft, KindEdge},
		{TopFrontRight, KindCorner},
		{BottomFrontLeft, KindCorner},
		{0, KindInvalid},
		{27, KindInvalid},
		{-1, KindInvalid},
	}

	for _, tt := range tests {
		if got := tt.id.Kind(); got != tt.kind {
			t.Errorf("ID(%d).Kind() = %v, want %v", int(tt.id), got, tt.kind)
		}
	}
}

func TestIDRangesPartition(t *testing.T) {
	var faces, edges, corners int
	for id := FirstID; id <= LastID; id++ {
		switch id.Kind() {
		case KindFace:
			faces++
		case KindEdge:
			edges++
		case KindCorner:
			corners++
		default:
			t.Errorf("ID(%d) has invalid kind", int(id))
		}
	}
	if faces != 6 || edges != 12 || corners != 8 {
		t.Errorf("partition = %d faces, %d edges, %d corners; want 6/12/8", faces, edges, corners)
	}
}

func TestIDString(t *testing.T) {
	if got := TopFrontRight.String(); got != "top-front-right" {
		t.Errorf("TopFrontRight.String() = %q, want %q", got, "top-front-right")
	}
	if got := ID(99).String(); got != "region(99)" {
		t.Errorf("ID(99).String() = %q, want %q", got, "region(99)")
	}
}

func TestParseConvention(t *testing.T) {
	if conv, err := ParseConvention("y-up"); err != nil || conv != YUp {
		t.Errorf("ParseConvention(y-up) = %v, %v", conv, err)
	}
	if conv, err := ParseConvention("z-up"); err != nil || conv != ZUp {
		t.Errorf("ParseConvention(z-up) = %v, %v", conv, err)
	}

	// Typos and near-misses are rejected, never silently defaulted.
	for _, s := range []string{"", "Z-up", "zup", "y_up", "x-up"} {
		if _, err := ParseConvention(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseConvention(%q): err = %v, want ErrInvalidArgument", s, err)
		}
	}
}

func TestConventionString(t *testing.T) {
	if YUp.String() != "y-up" || ZUp.String() != "z-up" {
		t.Errorf("Convention strings: %q, %q", YUp.String(), ZUp.String())
	}
}

func TestAdjacentFaces(t *testing.T) {
	if got := AdjacentFaces(Front); len(got) != 1 || got[0] != Front {
		t.Errorf("AdjacentFaces(Front) = %v", got)
	}
	if got := AdjacentFaces(TopFront); len(got) != 2 || got[0] != Top || got[1] != Front {
		t.Errorf("AdjacentFaces(TopFront) = %v", got)
	}
	if got := AdjacentFaces(BottomBackLeft); len(got) != 3 {
		t.Errorf("AdjacentFaces(BottomBackLeft) = %v", got)
	}
	if got := AdjacentFaces(0); got != nil {
		t.Errorf("AdjacentFaces(0) = %v, want nil", got)
	}
}
