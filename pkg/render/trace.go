package render

import (
	"sort"

	"github.com/taigrr/pinhole/pkg/math3d"
	"github.com/taigrr/pinhole/pkg/scene"
)

// Hit is one ray/face intersection.
type Hit struct {
	Face     scene.Face
	Point    math3d.Vec3
	Distance float64 // from the ray origin
}

// TraceFaces intersects a ray with every face and returns the hits whose
// intersection point lies inside the triangle and within the ray's range,
// sorted nearest-first. No hit yields an empty result, not an error.
//
// The containment test is barycentric: the intersection is written as
// V1 + s*Edge1 + t*Edge2 and accepted iff s >= 0, t >= 0, s+t <= 1.
func TraceFaces(ray math3d.Ray, faces []scene.Face) []Hit {
	var hits []Hit
	for _, f := range faces {
		p, ok := f.Plane().IntersectLine(ray.Line())
		if !ok || !ray.Contains(p) {
			continue
		}
		s, t, ok := math3d.SolveST(f.Edge1(), f.Edge2(), p.Sub(f.V1.Pos))
		if !ok || s < 0 || t < 0 || s+t > 1 {
			continue
		}
		hits = append(hits, Hit{Face: f, Point: p, Distance: ray.DistanceTo(p)})
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}
