package render

// Surface is the external rasterizer boundary: the camera computes pixel
// coordinates and issues these calls, it never touches pixels itself.
type Surface interface {
	// DrawVertex marks a visible vertex at (x, y). id is the vertex's
	// stable identity label.
	DrawVertex(x, y float64, id int)
	// DrawLine draws a visible (possibly clipped) edge segment.
	DrawLine(x1, y1, x2, y2 float64)
}

// FramebufferSurface draws onto a Framebuffer: vertices as small circles,
// edges as lines. Vertex identity labels are not rasterized; hosts that
// want them overlay text themselves.
type FramebufferSurface struct {
	FB           *Framebuffer
	VertexColor  Color
	EdgeColor    Color
	VertexRadius int
}

// NewFramebufferSurface creates a surface over fb with the given stroke
// colors and a 2-pixel vertex marker.
func NewFramebufferSurface(fb *Framebuffer, vertex, edge Color) *FramebufferSurface {
	return &FramebufferSurface{
		FB:           fb,
		VertexColor:  vertex,
		EdgeColor:    edge,
		VertexRadius: 2,
	}
}

// DrawVertex implements Surface.
func (s *FramebufferSurface) DrawVertex(x, y float64, id int) {
	s.FB.DrawCircle(int(x+0.5), int(y+0.5), s.VertexRadius, s.VertexColor)
}

// DrawLine implements Surface.
func (s *FramebufferSurface) DrawLine(x1, y1, x2, y2 float64) {
	s.FB.DrawLine(int(x1+0.5), int(y1+0.5), int(x2+0.5), int(y2+0.5), s.EdgeColor)
}
