package cube

import (
	"fmt"

	"github.com/Faultbox/navcube/internal/regions"
)

// Corner names a window corner for the overlay viewport.
type Corner int

const (
	TopRightCorner Corner = iota
	TopLeftCorner
	BottomRightCorner
	BottomLeftCorner
)

// ParseCorner converts a config string to a Corner; unknown values are
// rejected.
func ParseCorner(s string) (Corner, error) {
	switch s {
	case "top-right":
		return TopRightCorner, nil
	case "top-left":
		return TopLeftCorner, nil
	case "bottom-right":
		return BottomRightCorner, nil
	case "bottom-left":
		return BottomLeftCorner, nil
	default:
		return TopRightCorner, fmt.Errorf("corner %q: %w", s, regions.ErrInvalidArgument)
	}
}

// Rect returns the viewport rectangle in window pixels with origin at the
// top-left, for a window of winW x winH and a square overlay of size px.
func (c Corner) Rect(winW, winH, size int) (x, y, w, h int) {
	switch c {
	case TopLeftCorner:
		return 0, 0, size, size
	case TopRightCorner:
		return winW - size, 0, size, size
	case BottomLeftCorner:
		return 0, winH - size, size, size
	default:
		return winW - size, winH - size, size, size
	}
}
