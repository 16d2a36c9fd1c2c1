package math3d

// Line is an infinite line through Point along Dir.
type Line struct {
	Point Vec3
	Dir   Vec3
}

// LineFromPoints returns the line through a and b, directed from a to b.
func LineFromPoints(a, b Vec3) Line {
	return Line{Point: a, Dir: b.Sub(a)}
}

// At returns the point Point + t*Dir.
func (l Line) At(t float64) Vec3 {
	return l.Point.Add(l.Dir.Scale(t))
}

// RayKind distinguishes the two bounded-ness variants of a Ray.
type RayKind int

const (
	// RaySegment is bounded on both ends: valid for t in [0, 1].
	RaySegment RayKind = iota
	// RayInfinite is bounded at the origin only: valid for t >= 0.
	RayInfinite
)

// Ray is a directed line with an origin and a kind: either a segment from
// Origin to Origin+Dir, or a half-line extending without bound along Dir.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	Kind   RayKind
}

// Segment returns the bounded ray from a to b.
func Segment(a, b Vec3) Ray {
	return Ray{Origin: a, Dir: b.Sub(a), Kind: RaySegment}
}

// HalfLine returns the unbounded ray from origin along dir.
func HalfLine(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir, Kind: RayInfinite}
}

// Line returns the infinite line the ray lies on.
func (r Ray) Line() Line {
	return Line{Point: r.Origin, Dir: r.Dir}
}

// At returns the point Origin + t*Dir.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// DistanceTo returns the distance from the ray origin to p.
func (r Ray) DistanceTo(p Vec3) float64 {
	return r.Origin.Distance(p)
}

// Contains reports whether a point on the ray's line falls within the ray's
// valid range. The test is parametric: p is projected onto Dir and the
// parameter t is checked against the kind's bounds, so it stays correct when
// a component of Dir is zero.
func (r Ray) Contains(p Vec3) bool {
	den := r.Dir.LenSq()
	if den == 0 {
		return false
	}
	t := p.Sub(r.Origin).Dot(r.Dir) / den
	if t < 0 {
		return false
	}
	if r.Kind == RaySegment && t > 1 {
		return false
	}
	return true
}
