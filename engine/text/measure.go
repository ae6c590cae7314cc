package text

import "unicode"

// LineHeight is the distance between two baselines at the atlas size.
func (f *Font) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

func (f *Font) kern(prev, r rune) float32 {
	if prev < 0 {
		return 0
	}
	return f.Kerning[prev][r]
}

// Measure returns the extent of s at the given size. Newlines start a new
// line; unknown runes advance like a space. It implements ui.Measurer.
func (f *Font) Measure(s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	height = f.LineHeight()

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += f.LineHeight()
			prev = -1
			continue
		}
		lineW += f.kern(prev, r) + f.advance(r)
		prev = r
	}
	if lineW > width {
		width = lineW
	}

	scale := f.scale(size)
	return width * scale, height * scale
}

func (f *Font) advance(r rune) float32 {
	if g, ok := f.Glyphs[r]; ok {
		return g.Advance
	}
	if sp, ok := f.Glyphs[' ']; ok {
		return sp.Advance
	}
	return 0
}

func (f *Font) scale(size float32) float32 {
	if size <= 0 || f.SizePx <= 0 {
		return 1
	}
	return size / f.SizePx
}

// Quad is one glyph placed on screen with its atlas UVs.
type Quad struct {
	X, Y, W, H     float32 // top-left and size
	U0, V0, U1, V1 float32
}

// Layout positions the glyphs of s with its top-left corner at (x, y),
// positive Y going down. Whitespace produces no quads.
func (f *Font) Layout(x, y float32, s string, size float32) []Quad {
	scale := f.scale(size)
	penX := x
	baseY := y + f.Ascent*scale
	var prev rune = -1
	quads := make([]Quad, 0, len(s))

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.LineHeight() * scale
			prev = -1
			continue
		}
		penX += f.kern(prev, r) * scale
		g, ok := f.Glyphs[r]
		if ok && g.W > 0 && g.H > 0 && !unicode.IsSpace(r) {
			quads = append(quads, Quad{
				X:  penX + g.BearingX*scale,
				Y:  baseY - g.BearingY*scale,
				W:  float32(g.W) * scale,
				H:  float32(g.H) * scale,
				U0: g.U0,
				V0: g.V0,
				U1: g.U1,
				V1: g.V1,
			})
		}
		penX += f.advance(r) * scale
		prev = r
	}
	return quads
}
