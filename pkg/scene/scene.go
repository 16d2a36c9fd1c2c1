// Package scene provides the geometry entities the camera renders: vertices
// with stable identities, edges, triangular faces, and point lights, plus
// scene-level cloning so per-frame mutations never touch the caller's data.
package scene

import (
	"image/color"

	"github.com/taigrr/pinhole/pkg/math3d"
)

// Vertex is a world-space position with a stable identity. The ID indexes
// the scene's vertex list and survives cloning and clipping; clipping moves
// a vertex, it never renames it.
type Vertex struct {
	ID  int
	Pos math3d.Vec3
}

// Move returns the vertex translated by delta, keeping its identity.
func (v Vertex) Move(delta math3d.Vec3) Vertex {
	return Vertex{ID: v.ID, Pos: v.Pos.Add(delta)}
}

// Edge is an ordered pair of vertices. Direction and line are derived on
// demand so they always reflect the current endpoints.
type Edge struct {
	V1, V2 Vertex
}

// NewEdge creates an edge from v1 to v2.
func NewEdge(v1, v2 Vertex) Edge {
	return Edge{V1: v1, V2: v2}
}

// Dir returns the direction vector V2 - V1.
func (e Edge) Dir() math3d.Vec3 {
	return e.V2.Pos.Sub(e.V1.Pos)
}

// Line returns the infinite line through both endpoints.
func (e Edge) Line() math3d.Line {
	return math3d.Line{Point: e.V1.Pos, Dir: e.Dir()}
}

// Ray returns the edge as a bounded ray from V1 to V2.
func (e Edge) Ray() math3d.Ray {
	return math3d.Segment(e.V1.Pos, e.V2.Pos)
}

// Face is a triangle with optional surface attributes. Its edge vectors,
// normal, and containing plane are derived from the current corners.
type Face struct {
	V1, V2, V3 Vertex
	Color      color.RGBA
	Roughness  float64
}

// NewFace creates a triangle face from three vertices.
func NewFace(v1, v2, v3 Vertex) Face {
	return Face{V1: v1, V2: v2, V3: v3, Color: color.RGBA{255, 255, 255, 255}}
}

// Edge1 returns the first edge vector, V2 - V1.
func (f Face) Edge1() math3d.Vec3 {
	return f.V2.Pos.Sub(f.V1.Pos)
}

// Edge2 returns the second edge vector, V3 - V1.
func (f Face) Edge2() math3d.Vec3 {
	return f.V3.Pos.Sub(f.V1.Pos)
}

// Normal returns Edge1 × Edge2. Collinear corners yield the zero vector.
func (f Face) Normal() math3d.Vec3 {
	return f.Edge1().Cross(f.Edge2())
}

// Plane returns the plane through the triangle's three corners.
func (f Face) Plane() math3d.Plane {
	return math3d.PlaneFromNormalAndPoint(f.Normal(), f.V1.Pos)
}

// Light is a point light. It carries no state beyond its parameters.
type Light struct {
	Pos   math3d.Vec3
	Power float64
	Color color.RGBA
}

// Brightness returns the light's intensity at the given distance using
// inverse-square falloff. At (near-)zero distance the raw power is returned.
func (l Light) Brightness(dist float64) float64 {
	const eps = 1e-9
	if dist <= eps {
		return l.Power
	}
	return l.Power / (dist * dist)
}

// Scene is the canonical scene graph supplied by the host. The camera only
// ever works on a clone, so these slices stay read-only from its side.
type Scene struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
	Lights   []Light
}

// Clone returns a deep copy of the scene.
func (s *Scene) Clone() *Scene {
	clone := &Scene{
		Vertices: make([]Vertex, len(s.Vertices)),
		Edges:    make([]Edge, len(s.Edges)),
		Faces:    make([]Face, len(s.Faces)),
		Lights:   make([]Light, len(s.Lights)),
	}
	copy(clone.Vertices, s.Vertices)
	copy(clone.Edges, s.Edges)
	copy(clone.Faces, s.Faces)
	copy(clone.Lights, s.Lights)
	return clone
}

// VertexCount returns the number of vertices.
func (s *Scene) VertexCount() int {
	return len(s.Vertices)
}

// EdgeCount returns the number of edges.
func (s *Scene) EdgeCount() int {
	return len(s.Edges)
}

// FaceCount returns the number of faces.
func (s *Scene) FaceCount() int {
	return len(s.Faces)
}
