package regions

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/navcube/pkg/math"
)

// Config is the canonical camera pose for a region: where the camera goes,
// which way is up from there, and what it aims at. LookAt is a unit point
// opposite the face for faces and top/bottom edges, and the origin for side
// edges and corners.
type Config struct {
	Position math.Vec3
	Up       math.Vec3
	LookAt   math.Vec3
}

// Table maps every region to its camera pose for one convention and
// distance. It is read-only after construction; rebuild it when either
// input changes.
type Table struct {
	entries map[ID]Config
}

// axes holds the six outward face normals for a convention.
type axes struct {
	front, back, left, right, top, bottom math.Vec3
}

func conventionAxes(conv Convention) axes {
	if conv == ZUp {
		return axes{
			front:  math.Vec3{Y: -1},
			back:   math.Vec3{Y: 1},
			left:   math.Vec3{X: -1},
			right:  math.Vec3{X: 1},
			top:    math.Vec3{Z: 1},
			bottom: math.Vec3{Z: -1},
		}
	}
	return axes{
		front:  math.Vec3{Z: 1},
		back:   math.Vec3{Z: -1},
		left:   math.Vec3{X: -1},
		right:  math.Vec3{X: 1},
		top:    math.Vec3{Y: 1},
		bottom: math.Vec3{Y: -1},
	}
}

func (a axes) normal(face ID) math.Vec3 {
	switch face {
	case Front:
		return a.front
	case Back:
		return a.back
	case Left:
		return a.left
	case Right:
		return a.right
	case Top:
		return a.top
	default:
		return a.bottom
	}
}

// edgeFaces lists the two faces adjacent to each edge. The first face of a
// top/bottom edge is the vertical one.
var edgeFaces = map[ID][2]ID{
	TopFront:    {Top, Front},
	TopRight:    {Top, Right},
	TopBack:     {Top, Back},
	TopLeft:     {Top, Left},
	BottomFront: {Bottom, Front},
	BottomRight: {Bottom, Right},
	BottomBack:  {Bottom, Back},
	BottomLeft:  {Bottom, Left},
	FrontRight:  {Front, Right},
	BackRight:   {Back, Right},
	BackLeft:    {Back, Left},
	FrontLeft:   {Front, Left},
}

// cornerFaces lists the three faces meeting at each corner.
var cornerFaces = map[ID][3]ID{
	TopFrontRight:    {Top, Front, Right},
	TopBackRight:     {Top, Back, Right},
	TopBackLeft:      {Top, Back, Left},
	TopFrontLeft:     {Top, Front, Left},
	BottomFrontRight: {Bottom, Front, Right},
	BottomBackRight:  {Bottom, Back, Right},
	BottomBackLeft:   {Bottom, Back, Left},
	BottomFrontLeft:  {Bottom, Front, Left},
}

// AdjacentFaces returns the faces a region touches: the face itself, an
// edge's two, or a corner's three. Invalid IDs return nil.
func AdjacentFaces(id ID) []ID {
	switch id.Kind() {
	case KindFace:
		return []ID{id}
	case KindEdge:
		f := edgeFaces[id]
		return []ID{f[0], f[1]}
	case KindCorner:
		f := cornerFaces[id]
		return []ID{f[0], f[1], f[2]}
	}
	return nil
}

// BuildTable derives the camera pose for all 26 regions. Pure: identical
// inputs always produce identical tables. distance must be a positive
// finite number.
func BuildTable(conv Convention, distance float32) (Table, error) {
	if !conv.Valid() {
		return Table{}, fmt.Errorf("convention %d: %w", int(conv), ErrInvalidArgument)
	}
	d := float64(distance)
	if distance <= 0 || gomath.IsNaN(d) || gomath.IsInf(d, 0) {
		return Table{}, fmt.Errorf("distance %v: %w", distance, ErrInvalidArgument)
	}

	ax := conventionAxes(conv)
	entries := make(map[ID]Config, 26)

	// Faces: camera on the face normal, aimed at the unit point opposite it.
	// Up is the vertical axis, except for the top and bottom faces whose gaze
	// is vertical; those tilt up toward the back and front respectively.
	for face := Front; face <= Bottom; face++ {
		n := ax.normal(face)
		up := ax.top
		switch face {
		case Top:
			up = ax.back
		case Bottom:
			up = ax.front
		}
		entries[face] = Config{
			Position: n.Scale(distance),
			Up:       up,
			LookAt:   n.Negate(),
		}
	}

	// Edges: camera at the average of the two adjacent face positions, so it
	// stays at distance*sqrt(2)/2 from the origin. Top/bottom edges aim at
	// the vertical cardinal point; side edges have no axis-aligned gaze and
	// aim at the origin.
	for edge, faces := range edgeFaces {
		n0 := ax.normal(faces[0])
		n1 := ax.normal(faces[1])
		cfg := Config{
			Position: n0.Add(n1).Scale(distance / 2),
			Up:       ax.top,
		}
		if faces[0] == Top || faces[0] == Bottom {
			cfg.LookAt = n0.Negate()
		}
		entries[edge] = cfg
	}

	// Corners: camera at the average of the three adjacent face positions
	// (distance/sqrt(3) from the origin), aimed at the origin, up on the
	// vertical axis.
	for corner, faces := range cornerFaces {
		sum := ax.normal(faces[0]).Add(ax.normal(faces[1])).Add(ax.normal(faces[2]))
		entries[corner] = Config{
			Position: sum.Scale(distance / 3),
			Up:       ax.top,
		}
	}

	return Table{entries: entries}, nil
}

// Get returns the pose for a region. Unknown IDs and queries against an
// unbuilt table fail with ErrMissingConfiguration.
func (t Table) Get(id ID) (Config, error) {
	cfg, ok := t.entries[id]
	if !ok {
		return Config{}, fmt.Errorf("region %v: %w", id, ErrMissingConfiguration)
	}
	return cfg, nil
}

// Len returns the number of regions in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// IDs returns all region identifiers the table defines.
func (t Table) IDs() []ID {
	ids := make([]ID, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	return ids
}
