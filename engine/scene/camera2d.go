package scene

// ScreenCamera maps pixel coordinates (origin top-left, Y down) to clip space,
// with an optional pan and zoom applied on top.
type ScreenCamera struct {
	Width, Height float32
	X, Y          float32 // world point shown at the top-left corner
	Zoom          float32 // 1 = one world unit per pixel
	vp            [16]float32
	dirty         bool
}

func NewScreenCamera(width, height int) *ScreenCamera {
	c := &ScreenCamera{Zoom: 1}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *ScreenCamera) SetViewportPixels(w, h int) {
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *ScreenCamera) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }
func (c *ScreenCamera) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

// ZoomAt changes zoom while keeping the world point under (sx, sy) fixed.
func (c *ScreenCamera) ZoomAt(sx, sy, factor float32) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.SetZoom(c.Zoom * factor)
	c.X = wx - sx/c.Zoom
	c.Y = wy - sy/c.Zoom
	c.dirty = true
}

// ScreenToWorld inverts the camera so pointer positions can be hit-tested
// against layout rects.
func (c *ScreenCamera) ScreenToWorld(sx, sy float32) (float32, float32) {
	return sx/c.Zoom + c.X, sy/c.Zoom + c.Y
}

func (c *ScreenCamera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *ScreenCamera) Recalculate() {
	// top-left origin: bottom edge is Height, top edge is 0
	proj := ortho(0, c.Width, c.Height, 0, -1, 1)

	// view = S(zoom) · T(-pos)
	view := mul(
		scale(c.Zoom, c.Zoom),
		translate(-c.X, -c.Y, 0),
	)

	c.vp = mul(proj, view)
	c.dirty = false
}

// Apply transforms a world point by m, returning clip-space x, y.
func Apply(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func scale(sx, sy float32) [16]float32 {
	return [16]float32{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// mul returns a·b; element (r, c) lives at index r+4c.
func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r+4*c] = a[r+0]*b[0+4*c] + a[r+4]*b[1+4*c] + a[r+8]*b[2+4*c] + a[r+12]*b[3+4*c]
		}
	}
	return out
}
