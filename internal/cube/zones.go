package cube

import (
	"github.com/Faultbox/navcube/internal/picking"
	"github.com/Faultbox/navcube/internal/regions"
	"github.com/Faultbox/navcube/pkg/math"
)

// Zone is one pickable primitive: an axis-aligned box in cube-local space
// carrying the region it resolves to. The association is fixed at
// construction.
type Zone struct {
	Region regions.ID
	Box    picking.AABB
}

// interval selects one of the three per-axis bands a zone occupies.
type interval int

const (
	bandLow interval = iota - 1
	bandMid
	bandHigh
)

// zoneBands maps each region to its per-axis bands in the cube's intrinsic
// Y-up frame: +X right, +Y top, +Z front. Faces take one extreme band,
// edges two, corners three; the all-mid cell is the interior and is not
// addressable.
var zoneBands = map[regions.ID][3]interval{
	regions.Front:  {bandMid, bandMid, bandHigh},
	regions.Back:   {bandMid, bandMid, bandLow},
	regions.Left:   {bandLow, bandMid, bandMid},
	regions.Right:  {bandHigh, bandMid, bandMid},
	regions.Top:    {bandMid, bandHigh, bandMid},
	regions.Bottom: {bandMid, bandLow, bandMid},

	regions.TopFront:    {bandMid, bandHigh, bandHigh},
	regions.TopRight:    {bandHigh, bandHigh, bandMid},
	regions.TopBack:     {bandMid, bandHigh, bandLow},
	regions.TopLeft:     {bandLow, bandHigh, bandMid},
	regions.BottomFront: {bandMid, bandLow, bandHigh},
	regions.BottomRight: {bandHigh, bandLow, bandMid},
	regions.BottomBack:  {bandMid, bandLow, bandLow},
	regions.BottomLeft:  {bandLow, bandLow, bandMid},
	regions.FrontRight:  {bandHigh, bandMid, bandHigh},
	regions.BackRight:   {bandHigh, bandMid, bandLow},
	regions.BackLeft:    {bandLow, bandMid, bandLow},
	regions.FrontLeft:   {bandLow, bandMid, bandHigh},

	regions.TopFrontRight:    {bandHigh, bandHigh, bandHigh},
	regions.TopBackRight:     {bandHigh, bandHigh, bandLow},
	regions.TopBackLeft:      {bandLow, bandHigh, bandLow},
	regions.TopFrontLeft:     {bandLow, bandHigh, bandHigh},
	regions.BottomFrontRight: {bandHigh, bandLow, bandHigh},
	regions.BottomBackRight:  {bandHigh, bandLow, bandLow},
	regions.BottomBackLeft:   {bandLow, bandLow, bandLow},
	regions.BottomFrontLeft:  {bandLow, bandLow, bandHigh},
}

func bandRange(b interval, half, margin float32) (float32, float32) {
	switch b {
	case bandLow:
		return -half, -half + margin
	case bandHigh:
		return half - margin, half
	default:
		return -half + margin, half - margin
	}
}

// BuildZones partitions the cube surface into the 26 pickable boxes.
// edgeLength is the cube size in local units; margin is the edge/corner band
// width as a fraction of the half-extent.
func BuildZones(edgeLength, margin float32) []Zone {
	half := edgeLength / 2
	m := half * margin

	zones := make([]Zone, 0, len(zoneBands))
	for id := regions.FirstID; id <= regions.LastID; id++ {
		bands := zoneBands[id]
		x0, x1 := bandRange(bands[0], half, m)
		y0, y1 := bandRange(bands[1], half, m)
		z0, z1 := bandRange(bands[2], half, m)
		zones = append(zones, Zone{
			Region: id,
			Box: picking.NewAABB(
				math.Vec3{X: x0, Y: y0, Z: z0},
				math.Vec3{X: x1, Y: y1, Z: z1},
			),
		})
	}
	return zones
}

// PickZone returns the region of the nearest zone the ray hits, or 0 if the
// ray misses the cube entirely.
func PickZone(zones []Zone, ray picking.Ray) (regions.ID, bool) {
	var (
		best     regions.ID
		bestDist float32
		found    bool
	)
	for _, z := range zones {
		dist, hit := ray.IntersectAABB(z.Box)
		if !hit {
			continue
		}
		if !found || dist < bestDist {
			best = z.Region
			bestDist = dist
			found = true
		}
	}
	return best, found
}
