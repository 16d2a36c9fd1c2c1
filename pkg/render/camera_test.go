package render

import (
	"math"
	"testing"

	"github.com/taigrr/pinhole/pkg/math3d"
	"github.com/taigrr/pinhole/pkg/scene"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecNear(a, b math3d.Vec3, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

// The documented reference setup: camera at (0, -1, 0) with no rotation,
// focal length 3, 3.2x1.8 view plane, 204.8x115.2 raster at ratio 64.
func referenceCamera() *Camera {
	c := NewCamera()
	c.Pos = math3d.V3(0, -1, 0)
	c.Reframe()
	return c
}

func TestReframeDerivedState(t *testing.T) {
	c := referenceCamera()

	if !vecNear(c.Normal(), math3d.V3(0, 3, 0), 1e-12) {
		t.Errorf("normal = %v, want (0, 3, 0)", c.Normal())
	}
	if !vecNear(c.Focus(), math3d.V3(0, -4, 0), 1e-12) {
		t.Errorf("focus = %v, want (0, -4, 0)", c.Focus())
	}
	// The camera position lies on the view plane; the focus is behind it.
	if d := c.Plane().SignedDistance(c.Pos); math.Abs(d) > 1e-12 {
		t.Errorf("camera position off its view plane by %v", d)
	}
	if c.Plane().InFront(c.Focus()) {
		t.Error("focus must be behind the view plane")
	}
}

func TestReframeAfterRotation(t *testing.T) {
	c := NewCamera()
	c.RZ = 90
	c.Reframe()

	// Yaw 90 turns the look direction from +Y to -X.
	if !vecNear(c.Normal(), math3d.V3(-3, 0, 0), 1e-9) {
		t.Errorf("normal = %v, want (-3, 0, 0)", c.Normal())
	}
	if !vecNear(c.Focus(), math3d.V3(3, 0, 0), 1e-9) {
		t.Errorf("focus = %v, want (3, 0, 0)", c.Focus())
	}
}

func TestProjectPointReference(t *testing.T) {
	c := referenceCamera()

	tests := []struct {
		name   string
		p      math3d.Vec3
		x, y   float64
		wantOK bool
	}{
		// Recomputed by hand: ray (0,-4,0)->(0,3,0) meets y=-1 at
		// (0,-1,0), dead center of the 204.8x115.2 raster.
		{"straight ahead", math3d.V3(0, 3, 0), 102.4, 57.6, true},
		// Ray (0,-4,0)->(1,2,0.5): t=0.5 on y=-1 gives (0.5,-1,0.25);
		// x = 0.5*64+102.4, y = 0.25*-64+57.6.
		{"offset", math3d.V3(1, 2, 0.5), 134.4, 41.6, true},
		{"behind the plane", math3d.V3(0, -2, 0), 0, 0, false},
		{"on the plane", math3d.V3(5, -1, 2), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := c.ProjectPoint(tc.p)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if !near(x, tc.x, 1e-6) || !near(y, tc.y, 1e-6) {
				t.Errorf("projected to (%v, %v), want (%v, %v)", x, y, tc.x, tc.y)
			}
		})
	}
}

func TestProjectPointRotatedCamera(t *testing.T) {
	c := NewCamera()
	c.RZ = 90
	c.Reframe()

	// Looking along -X. A point straight ahead lands dead center.
	x, y, ok := c.ProjectPoint(math3d.V3(-3, 0, 0))
	if !ok || !near(x, 102.4, 1e-6) || !near(y, 57.6, 1e-6) {
		t.Errorf("straight ahead = (%v, %v, %v), want (102.4, 57.6, true)", x, y, ok)
	}

	// World -Y is to the camera's left here, so x falls below center.
	x, _, ok = c.ProjectPoint(math3d.V3(-3, -1, 0))
	if !ok || !near(x, 70.4, 1e-6) {
		t.Errorf("left point x = %v (ok=%v), want 70.4", x, ok)
	}
}

func TestProjectEdge(t *testing.T) {
	c := referenceCamera()

	t.Run("straddling is clipped then drawn", func(t *testing.T) {
		e := scene.NewEdge(
			scene.Vertex{ID: 1, Pos: math3d.V3(0, 3, 0)},
			scene.Vertex{ID: 2, Pos: math3d.V3(0, -5, 0)},
		)
		x1, y1, x2, y2, ok := c.ProjectEdge(e)
		if !ok {
			t.Fatal("straddling edge not drawn")
		}
		// Both endpoints project to the view center: the clipped endpoint
		// sits on the focus-V1 line a nudge in front of the plane.
		for _, v := range []float64{x1, x2} {
			if !near(v, 102.4, 1e-3) {
				t.Errorf("x = %v, want ~102.4", v)
			}
		}
		for _, v := range []float64{y1, y2} {
			if !near(v, 57.6, 1e-3) {
				t.Errorf("y = %v, want ~57.6", v)
			}
		}
	})

	t.Run("fully behind is skipped", func(t *testing.T) {
		e := scene.NewEdge(
			scene.Vertex{ID: 1, Pos: math3d.V3(0, -2, 0)},
			scene.Vertex{ID: 2, Pos: math3d.V3(3, -6, 1)},
		)
		if _, _, _, _, ok := c.ProjectEdge(e); ok {
			t.Error("edge behind the camera was drawn")
		}
	})

	t.Run("fully in front is unaffected by clipping", func(t *testing.T) {
		e := scene.NewEdge(
			scene.Vertex{ID: 1, Pos: math3d.V3(-1, 3, 0)},
			scene.Vertex{ID: 2, Pos: math3d.V3(1, 3, 0)},
		)
		x1, _, x2, _, ok := c.ProjectEdge(e)
		if !ok {
			t.Fatal("visible edge not drawn")
		}
		if x1 >= x2 {
			t.Errorf("endpoint order not preserved: x1=%v x2=%v", x1, x2)
		}
	})
}

func TestPixelRay(t *testing.T) {
	c := referenceCamera()

	r := c.PixelRay(0, 0)
	if r.Kind != math3d.RayInfinite {
		t.Fatalf("pixel ray kind = %v, want infinite", r.Kind)
	}
	if !vecNear(r.Origin, c.Focus(), 1e-12) {
		t.Errorf("ray origin = %v, want focus %v", r.Origin, c.Focus())
	}
	// t=1 reaches the top-left corner of the view plane.
	want := math3d.V3(-1.6, -1, 0.9)
	if !vecNear(r.At(1), want, 1e-9) {
		t.Errorf("ray at t=1 = %v, want %v", r.At(1), want)
	}

	// The center pixel's ray passes through the view center.
	center := c.PixelRay(102, 57)
	hit, ok := c.Plane().IntersectLine(center.Line())
	if !ok {
		t.Fatal("center ray parallel to view plane")
	}
	if hit.Distance(math3d.V3(0, -1, 0)) > 0.1 {
		t.Errorf("center ray crosses plane at %v", hit)
	}
}

func TestImportSceneClones(t *testing.T) {
	c := referenceCamera()
	s := scene.Cube(math3d.V3(0, 3, 0), 2)
	c.ImportScene(s)

	c.Scene().Vertices[0].Pos = math3d.V3(99, 99, 99)
	if s.Vertices[0].Pos == c.Scene().Vertices[0].Pos {
		t.Error("camera mutated the canonical scene")
	}
}

func TestMove(t *testing.T) {
	t.Run("forward follows yaw", func(t *testing.T) {
		c := NewCamera()
		c.RZ = 90
		c.Reframe()
		c.Move(MoveInput{Forward: 1})

		step := c.Speed / float64(c.FPS)
		if !vecNear(c.Pos, math3d.V3(-step, 0, 0), 1e-9) {
			t.Errorf("pos = %v, want (-%v, 0, 0)", c.Pos, step)
		}
	})

	t.Run("vertical ignores orientation", func(t *testing.T) {
		c := NewCamera()
		c.RX = 45
		c.RZ = 120
		c.Reframe()
		c.Move(MoveInput{Up: 1})

		step := c.Speed / float64(c.FPS)
		if !vecNear(c.Pos, math3d.V3(0, 0, step), 1e-9) {
			t.Errorf("pos = %v, want (0, 0, %v)", c.Pos, step)
		}
	})

	t.Run("rates integrate per frame", func(t *testing.T) {
		c := NewCamera()
		c.Move(MoveInput{YawRate: 60, PitchRate: -30})
		if !near(c.RZ, 1, 1e-9) || !near(c.RX, -0.5, 1e-9) {
			t.Errorf("rx=%v rz=%v, want -0.5 and 1", c.RX, c.RZ)
		}
	})
}

// captureSurface records draw calls for assertions.
type captureSurface struct {
	vertices []int
	lines    int
}

func (s *captureSurface) DrawVertex(x, y float64, id int) { s.vertices = append(s.vertices, id) }
func (s *captureSurface) DrawLine(x1, y1, x2, y2 float64) { s.lines++ }

func TestRenderSceneCube(t *testing.T) {
	c := referenceCamera()
	c.ImportScene(scene.Cube(math3d.V3(0, 4, 0), 2))

	var out captureSurface
	c.RenderScene(&out)

	// The whole cube sits in front of the camera.
	if len(out.vertices) != 8 {
		t.Errorf("drew %d vertices, want 8", len(out.vertices))
	}
	if out.lines != 12 {
		t.Errorf("drew %d edges, want 12", out.lines)
	}

	// Identity labels pass through unchanged.
	seen := make(map[int]bool)
	for _, id := range out.vertices {
		seen[id] = true
	}
	for id := 1; id <= 8; id++ {
		if !seen[id] {
			t.Errorf("vertex %d never drawn", id)
		}
	}
}

func TestRenderSceneStraddlingCube(t *testing.T) {
	c := referenceCamera()
	// Cube centered on the view plane: half its vertices are behind.
	c.ImportScene(scene.Cube(math3d.V3(0, -1, 0), 2))

	var out captureSurface
	c.RenderScene(&out)

	if len(out.vertices) != 4 {
		t.Errorf("drew %d vertices, want 4", len(out.vertices))
	}
	// 4 front-face edges plus 4 clipped straddling edges.
	if out.lines != 8 {
		t.Errorf("drew %d edges, want 8", out.lines)
	}
}

func BenchmarkProjectPoint(b *testing.B) {
	c := referenceCamera()
	p := math3d.V3(1.25, 7.5, -0.5)
	for b.Loop() {
		_, _, _ = c.ProjectPoint(p)
	}
}

func BenchmarkRenderSceneCube(b *testing.B) {
	c := referenceCamera()
	c.ImportScene(scene.Cube(math3d.V3(0, 4, 0), 2))
	var out captureSurface
	for b.Loop() {
		c.RenderScene(&out)
	}
}
