// Package regions defines the 26 addressable zones of the navigation cube
// (6 faces, 12 edges, 8 corners), the canonical camera pose for each zone
// under a Y-up or Z-up world convention, and the per-frame rotation that
// keeps the displayed cube mirrored against the observed camera.
package regions

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a rejected input: a non-positive distance, an
// unrecognized coordinate convention, or a degenerate rotation.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrMissingConfiguration reports a lookup for a region the table does not
// define.
var ErrMissingConfiguration = errors.New("missing configuration")

// ID identifies one pick region on the cube. Values are stable: faces are
// 1-6, edges 7-18, corners 19-26.
type ID int

// Face regions.
const (
	Front ID = iota + 1
	Back
	Left
	Right
	Top
	Bottom
)

// Edge regions.
const (
	TopFront ID = iota + 7
	TopRight
	TopBack
	TopLeft
	BottomFront
	BottomRight
	BottomBack
	BottomLeft
	FrontRight
	BackRight
	BackLeft
	FrontLeft
)

// Corner regions.
const (
	TopFrontRight ID = iota + 19
	TopBackRight
	TopBackLeft
	TopFrontLeft
	BottomFrontRight
	BottomBackRight
	BottomBackLeft
	BottomFrontLeft
)

// FirstID and LastID bound the valid region range.
const (
	FirstID = Front
	LastID  = BottomFrontLeft
)

// Kind classifies a region by the part of the cube it covers.
type Kind int

const (
	KindFace Kind = iota
	KindEdge
	KindCorner
	KindInvalid
)

// Kind returns the region's classification, or KindInvalid for values
// outside [1,26].
func (id ID) Kind() Kind {
	switch {
	case id >= Front && id <= Bottom:
		return KindFace
	case id >= TopFront && id <= FrontLeft:
		return KindEdge
	case id >= TopFrontRight && id <= BottomFrontLeft:
		return KindCorner
	default:
		return KindInvalid
	}
}

// Valid reports whether the ID is one of the 26 defined regions.
func (id ID) Valid() bool {
	return id.Kind() != KindInvalid
}

var idNames = map[ID]string{
	Front:  "front",
	Back:   "back",
	Left:   "left",
	Right:  "right",
	Top:    "top",
	Bottom: "bottom",

	TopFront:    "top-front",
	TopRight:    "top-right",
	TopBack:     "top-back",
	TopLeft:     "top-left",
	BottomFront: "bottom-front",
	BottomRight: "bottom-right",
	BottomBack:  "bottom-back",
	BottomLeft:  "bottom-left",
	FrontRight:  "front-right",
	BackRight:   "back-right",
	BackLeft:    "back-left",
	FrontLeft:   "front-left",

	TopFrontRight:    "top-front-right",
	TopBackRight:     "top-back-right",
	TopBackLeft:      "top-back-left",
	TopFrontLeft:     "top-front-left",
	BottomFrontRight: "bottom-front-right",
	BottomBackRight:  "bottom-back-right",
	BottomBackLeft:   "bottom-back-left",
	BottomFrontLeft:  "bottom-front-left",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("region(%d)", int(id))
}

// Convention fixes which world axis is vertical.
type Convention int

const (
	// YUp places the vertical axis on Y; front faces +Z.
	YUp Convention = iota
	// ZUp places the vertical axis on Z; front faces -Y.
	ZUp
)

// Valid reports whether the convention is one of the two defined values.
func (c Convention) Valid() bool {
	return c == YUp || c == ZUp
}

func (c Convention) String() string {
	switch c {
	case YUp:
		return "y-up"
	case ZUp:
		return "z-up"
	default:
		return fmt.Sprintf("convention(%d)", int(c))
	}
}

// ParseConvention converts a config string to a Convention. Anything other
// than the exact "y-up" / "z-up" literals is rejected; there is no silent
// fallback.
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "y-up":
		return YUp, nil
	case "z-up":
		return ZUp, nil
	default:
		return YUp, fmt.Errorf("coordinate system %q: %w", s, ErrInvalidArgument)
	}
}
