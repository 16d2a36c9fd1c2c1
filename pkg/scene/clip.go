package scene

import "github.com/taigrr/pinhole/pkg/math3d"

// clipNudge is how far a clipped endpoint is pushed off the plane, along the
// edge, toward the in-front side. Without it the replaced endpoint sits
// exactly on the plane and an equality-sensitive front test could flip it.
const clipNudge = 1e-4

// ClipFront clips the edge against plane: if the edge crosses it, the
// endpoint behind the plane is replaced by the crossing point (nudged
// slightly to the front side), keeping that endpoint's identity. Edges that
// do not cross the plane within their own bounds come back unchanged, so
// clipping an already-in-front edge is a no-op.
func (e Edge) ClipFront(plane math3d.Plane) Edge {
	hit, ok := plane.IntersectLine(e.Line())
	if !ok || !e.inBounds(hit) {
		return e
	}

	front1 := plane.InFront(e.V1.Pos)
	front2 := plane.InFront(e.V2.Pos)
	offset := e.Dir().WithLen(clipNudge)

	out := e
	switch {
	case front1 && !front2:
		// V2 is behind: pull the crossing point back toward V1.
		out.V2.Pos = hit.Sub(offset)
	case !front1 && front2:
		// V1 is behind: push the crossing point forward toward V2.
		out.V1.Pos = hit.Add(offset)
	}
	return out
}

// inBounds reports whether p falls inside the axis-aligned bounding box of
// the edge's endpoints. This stands in for an exact segment-containment
// test; for points already known to be on the edge's line it is exact.
func (e Edge) inBounds(p math3d.Vec3) bool {
	lo := e.V1.Pos.Min(e.V2.Pos)
	hi := e.V1.Pos.Max(e.V2.Pos)
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}
