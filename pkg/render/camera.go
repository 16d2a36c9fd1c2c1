package render

import (
	"github.com/taigrr/pinhole/pkg/math3d"
	"github.com/taigrr/pinhole/pkg/scene"
)

// Camera is a movable pinhole camera. Points are projected onto a view
// plane that passes through Pos perpendicular to the look direction; the
// projection center (focus) sits behind that plane by FocalLength.
//
// All derived quantities are recomputed from Pos/RX/RZ by Reframe each
// frame. There is no incremental caching: the scene sizes this renderer is
// meant for make redundant trigonometry cheaper than cache invalidation
// bugs.
type Camera struct {
	// Position in world space.
	Pos math3d.Vec3

	// Orientation (degrees). RX pitches about the screen-horizontal axis,
	// RZ yaws about the vertical axis.
	RX, RZ float64

	// Optics: distance from focus to view plane, and the view plane's
	// world-space dimensions.
	FocalLength float64
	PlaneWidth  float64
	PlaneHeight float64

	// Raster output dimensions and the world-to-pixel expansion ratio.
	CanvasWidth    float64
	CanvasHeight   float64
	ExpandingRatio float64

	// Movement speed in world units per second, and the frame rate the
	// per-frame movement step is derived from.
	Speed float64
	FPS   int

	// Working clone of the host's scene.
	scn *scene.Scene

	// Derived per frame by Reframe.
	normal   math3d.Vec3 // look direction, |normal| == FocalLength
	focus    math3d.Vec3 // Pos - normal
	plane    math3d.Plane
	topLeft  math3d.Vec3 // world position of pixel (0, 0)
	toRight  math3d.Vec3 // world step per pixel column
	toBottom math3d.Vec3 // world step per pixel row
}

// NewCamera creates a camera at the origin with the default optics: focal
// length 3, a 3.2x1.8 view plane, a 204.8x115.2 raster at expanding ratio
// 64, 60 FPS, and rotation (0, 0).
func NewCamera() *Camera {
	c := &Camera{
		FocalLength:    3,
		PlaneWidth:     3.2,
		PlaneHeight:    1.8,
		CanvasWidth:    204.8,
		CanvasHeight:   115.2,
		ExpandingRatio: 64,
		Speed:          3,
		FPS:            60,
	}
	c.Reframe()
	return c
}

// Reframe recomputes every orientation-derived quantity from Pos, RX, and
// RZ: the look normal, the focus, the view plane, and the per-pixel basis
// vectors. Call it after any change to position or rotation, before
// projecting.
func (c *Camera) Reframe() {
	c.normal = math3d.Rotate(math3d.Forward().Scale(c.FocalLength), c.RX, c.RZ)
	c.focus = c.Pos.Sub(c.normal)
	c.plane = math3d.PlaneFromNormalAndPoint(c.normal, c.Pos)
	c.topLeft = c.Pos.Add(math3d.Rotate(math3d.V3(-c.PlaneWidth/2, 0, c.PlaneHeight/2), c.RX, c.RZ))
	c.toRight = math3d.Rotate(math3d.V3(c.PlaneWidth, 0, 0), c.RX, c.RZ).Div(c.CanvasWidth)
	c.toBottom = math3d.Rotate(math3d.V3(0, 0, -c.PlaneHeight), c.RX, c.RZ).Div(c.CanvasHeight)
}

// Normal returns the current look vector (length FocalLength).
func (c *Camera) Normal() math3d.Vec3 {
	return c.normal
}

// Focus returns the perspective projection center.
func (c *Camera) Focus() math3d.Vec3 {
	return c.focus
}

// Plane returns the current view plane.
func (c *Camera) Plane() math3d.Plane {
	return c.plane
}

// ImportScene gives the camera a deep clone of s to work on. Clipping
// mutates the clone's geometry during a frame; the caller's scene is never
// touched.
func (c *Camera) ImportScene(s *scene.Scene) {
	c.scn = s.Clone()
}

// Scene returns the camera's working scene clone, or nil before import.
func (c *Camera) Scene() *scene.Scene {
	return c.scn
}

// ProjectPoint projects a world point onto the raster. ok is false when the
// point is not in front of the view plane and therefore invisible this
// frame.
func (c *Camera) ProjectPoint(p math3d.Vec3) (x, y float64, ok bool) {
	if !c.plane.InFront(p) {
		return 0, 0, false
	}
	hit, ok := c.plane.IntersectLine(math3d.LineFromPoints(c.focus, p))
	if !ok {
		return 0, 0, false
	}
	// Rotate about Pos so the view plane becomes perpendicular to the
	// world Y axis, then map plane coordinates to pixels. Raster Y grows
	// downward while world Z grows up, hence the negated ratio.
	local := math3d.RotateInverse(hit.Sub(c.Pos), c.RX, c.RZ)
	x = local.X*c.ExpandingRatio + c.CanvasWidth/2
	y = local.Z*-c.ExpandingRatio + c.CanvasHeight/2
	return x, y, true
}

// ProjectVertex projects a vertex, returning its raster position.
func (c *Camera) ProjectVertex(v scene.Vertex) (x, y float64, ok bool) {
	return c.ProjectPoint(v.Pos)
}

// ProjectEdge clips e against the view plane and projects both endpoints.
// ok is false when the edge lies entirely behind the plane.
func (c *Camera) ProjectEdge(e scene.Edge) (x1, y1, x2, y2 float64, ok bool) {
	clipped := e.ClipFront(c.plane)
	x1, y1, ok1 := c.ProjectPoint(clipped.V1.Pos)
	x2, y2, ok2 := c.ProjectPoint(clipped.V2.Pos)
	if !ok1 || !ok2 {
		return 0, 0, 0, 0, false
	}
	return x1, y1, x2, y2, true
}

// PixelRay returns the half-line from the focus through the given raster
// pixel on the view plane. It supports ray queries (lighting, picking)
// independent of the vertex/edge draw path.
func (c *Camera) PixelRay(px, py int) math3d.Ray {
	p := c.topLeft.
		Add(c.toRight.Scale(float64(px))).
		Add(c.toBottom.Scale(float64(py)))
	return math3d.HalfLine(c.focus, p.Sub(c.focus))
}

// TracePixel casts the pixel's ray against the imported scene's faces and
// returns the hits nearest-first. The result is empty with no scene or no
// hit.
func (c *Camera) TracePixel(px, py int) []Hit {
	if c.scn == nil {
		return nil
	}
	return TraceFaces(c.PixelRay(px, py), c.scn.Faces)
}

// RenderScene runs one draw pass: Reframe, then project every vertex and
// every (possibly clipped) edge of the imported scene onto the surface.
func (c *Camera) RenderScene(s Surface) {
	c.Reframe()
	if c.scn == nil {
		return
	}
	for _, v := range c.scn.Vertices {
		if x, y, ok := c.ProjectVertex(v); ok {
			s.DrawVertex(x, y, v.ID)
		}
	}
	for _, e := range c.scn.Edges {
		if x1, y1, x2, y2, ok := c.ProjectEdge(e); ok {
			s.DrawLine(x1, y1, x2, y2)
		}
	}
}

// MoveInput is one frame's worth of movement intent, typically derived from
// held keys by the host. Translation axes are -1..1; rates are in degrees
// per second.
type MoveInput struct {
	Forward   float64 // along the look direction's horizontal projection
	Strafe    float64 // to the right of the look direction
	Up        float64 // along world Z
	YawRate   float64
	PitchRate float64
}

// Move applies one frame of movement: horizontal translation relative to
// the current yaw (pitch does not tilt W/A/S/D movement), vertical
// translation along world Z, and rotation rate integration. Reframe is
// called for the caller.
func (c *Camera) Move(in MoveInput) {
	step := c.Speed / float64(c.FPS)
	horizontal := math3d.Rotate(math3d.V3(in.Strafe, in.Forward, 0), 0, c.RZ)
	c.Pos = c.Pos.Add(horizontal.Scale(step))
	c.Pos.Z += in.Up * step

	c.RZ += in.YawRate / float64(c.FPS)
	c.RX += in.PitchRate / float64(c.FPS)

	c.Reframe()
}
