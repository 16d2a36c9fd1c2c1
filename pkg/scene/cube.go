package scene

import "github.com/taigrr/pinhole/pkg/math3d"

// Cube builds a cube scene centered at center with the given edge length:
// 8 vertices with IDs 1..8, 12 edges, and 12 triangle faces (two per side).
// Vertices 1-4 form the bottom ring (counter-clockwise seen from above),
// 5-8 the top ring directly over them.
func Cube(center math3d.Vec3, size float64) *Scene {
	h := size / 2
	verts := []Vertex{
		{ID: 1, Pos: center.Add(math3d.V3(-h, -h, -h))},
		{ID: 2, Pos: center.Add(math3d.V3(h, -h, -h))},
		{ID: 3, Pos: center.Add(math3d.V3(h, h, -h))},
		{ID: 4, Pos: center.Add(math3d.V3(-h, h, -h))},
		{ID: 5, Pos: center.Add(math3d.V3(-h, -h, h))},
		{ID: 6, Pos: center.Add(math3d.V3(h, -h, h))},
		{ID: 7, Pos: center.Add(math3d.V3(h, h, h))},
		{ID: 8, Pos: center.Add(math3d.V3(-h, h, h))},
	}

	// Rings first, then the verticals.
	edgePairs := [][2]int{
		{1, 2}, {2, 3}, {3, 4}, {4, 1},
		{5, 6}, {6, 7}, {7, 8}, {8, 5},
		{1, 5}, {2, 6}, {3, 7}, {4, 8},
	}

	facePairs := [][3]int{
		{1, 2, 6}, {1, 6, 5}, // front (-Y)
		{2, 3, 7}, {2, 7, 6}, // right (+X)
		{3, 4, 8}, {3, 8, 7}, // back (+Y)
		{4, 1, 5}, {4, 5, 8}, // left (-X)
		{5, 6, 7}, {5, 7, 8}, // top (+Z)
		{1, 4, 3}, {1, 3, 2}, // bottom (-Z)
	}

	s := &Scene{Vertices: verts}
	for _, p := range edgePairs {
		s.Edges = append(s.Edges, NewEdge(verts[p[0]-1], verts[p[1]-1]))
	}
	for _, p := range facePairs {
		s.Faces = append(s.Faces, NewFace(verts[p[0]-1], verts[p[1]-1], verts[p[2]-1]))
	}
	return s
}
