package colors

// Color is RGBA in [0..1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.3, 0.3, 0.32, 1}
	Teal     = Color{0, 0.376, 0.502, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Shade scales the RGB channels by f, clamped to 1. Alpha is kept.
func (c Color) Shade(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] *= f
		if c[i] > 1 {
			c[i] = 1
		}
	}
	return c
}

// RGBA8 returns the color as 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	conv := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return conv(c[0]), conv(c[1]), conv(c[2]), conv(c[3])
}

// Hex formats the color as #rrggbb, the form terminal styling expects.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	r, g, b, _ := c.RGBA8()
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{r, g, b} {
		out[1+i*2] = digits[v>>4]
		out[2+i*2] = digits[v&0x0f]
	}
	return string(out)
}

// Over composites c on top of an opaque dst.
func (c Color) Over(dst Color) Color {
	a := c[3]
	return Color{
		c[0]*a + dst[0]*(1-a),
		c[1]*a + dst[1]*(1-a),
		c[2]*a + dst[2]*(1-a),
		1,
	}
}
