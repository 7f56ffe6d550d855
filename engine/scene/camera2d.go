package scene

// ScreenCamera2D projects pixel coordinates with the origin at the
// top-left and positive Y going down, matching the 2D renderer's
// screen-space convention.
type ScreenCamera2D struct {
	w, h  float32
	vp    [16]float32
	dirty bool
}

func NewScreen2D(width, height int) *ScreenCamera2D {
	c := &ScreenCamera2D{w: float32(width), h: float32(height)}
	c.recalculate()
	return c
}

func (c *ScreenCamera2D) SetViewportPixels(w, h int) {
	c.w, c.h = float32(w), float32(h)
	c.dirty = true
}

func (c *ScreenCamera2D) Width() float32  { return c.w }
func (c *ScreenCamera2D) Height() float32 { return c.h }

func (c *ScreenCamera2D) VP() [16]float32 {
	if c.dirty {
		c.recalculate()
	}
	return c.vp
}

func (c *ScreenCamera2D) recalculate() {
	// Bottom/top swapped so y=0 lands at the top of the screen.
	c.vp = ortho(0, c.w, c.h, 0, -1, 1)
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

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
