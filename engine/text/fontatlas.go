package text

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph positions are in pixels relative to the pen on the baseline.
type Glyph struct {
	Rune     rune
	Advance  float32
	BearingX float32
	BearingY float32 // baseline to glyph top
	W, H     int
	U0, V0   float32
	U1, V1   float32
}

// Font is a rasterized glyph atlas plus the metrics needed to lay text out.
// The atlas is white with alpha coverage; backends upload it as they see fit.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Kerning                  map[rune]map[rune]float32
	Atlas                    *image.RGBA
	closeFace                func()
}

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// LoadTTF parses a TTF/OTF file and rasterizes it at sizePx.
func LoadTTF(path string, sizePx float32) (*Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	parsed, err := opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}

	f, err := FromFace(face, sizePx)
	if err != nil {
		_ = face.Close()
		return nil, err
	}
	f.closeFace = func() { _ = face.Close() }
	return f, nil
}

// Default returns the built-in 7x13 bitmap face. It needs no files.
func Default() *Font {
	f, err := FromFace(basicfont.Face7x13, 13)
	if err != nil {
		// fixed-size face, always fits the smallest atlas
		panic(err)
	}
	return f
}

// glyphBox is a glyph's bitmap size and pen metrics before packing.
type glyphBox struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

func (b glyphBox) empty() bool { return b.w == 0 || b.h == 0 }

// latin1 lists the printable Latin-1 runes an atlas covers.
func latin1() []rune {
	rs := make([]rune, 0, 224)
	for r := rune(0x20); r <= 0xff; r++ {
		rs = append(rs, r)
	}
	return rs
}

func measureGlyphs(face font.Face, runes []rune) []glyphBox {
	boxes := make([]glyphBox, 0, len(runes))
	for _, r := range runes {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		boxes = append(boxes, glyphBox{
			r:   r,
			w:   (bounds.Max.X - bounds.Min.X).Ceil(),
			h:   (bounds.Max.Y - bounds.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(bounds.Min.X.Round()),
			by:  float32(-bounds.Min.Y.Round()),
		})
	}
	return boxes
}

// FromFace builds an atlas for Latin-1 from any font face.
func FromFace(face font.Face, sizePx float32) (*Font, error) {
	m := face.Metrics()
	f := &Font{
		SizePx:  sizePx,
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(-m.Descent.Round()),
		Glyphs:  map[rune]Glyph{},
		Kerning: map[rune]map[rune]float32{},
	}
	f.LineGap = max(0, float32(m.Height.Round())-f.Ascent+f.Descent)

	boxes := measureGlyphs(face, latin1())
	side, corners, err := packGlyphs(boxes)
	if err != nil {
		return nil, err
	}

	// NewRGBA starts fully transparent
	f.Atlas = image.NewRGBA(image.Rect(0, 0, side, side))
	pen := &font.Drawer{Dst: f.Atlas, Src: image.White, Face: face}
	inv := 1 / float32(side)

	for _, b := range boxes {
		g := Glyph{Rune: b.r, Advance: b.adv, BearingX: b.bx, BearingY: b.by}
		if !b.empty() {
			p := corners[b.r]
			// the pen sits on the baseline, so step back by the bearings
			pen.Dot = fixed.P(p.X-int(b.bx), p.Y+int(b.by))
			pen.DrawString(string(b.r))

			g.W, g.H = b.w, b.h
			g.U0, g.V0 = float32(p.X)*inv, float32(p.Y)*inv
			g.U1, g.V1 = float32(p.X+b.w)*inv, float32(p.Y+b.h)*inv
		}
		f.Glyphs[b.r] = g
	}

	for _, a := range boxes {
		for _, b := range boxes {
			dx := face.Kern(a.r, b.r)
			if dx == 0 {
				continue
			}
			if f.Kerning[a.r] == nil {
				f.Kerning[a.r] = map[rune]float32{}
			}
			f.Kerning[a.r][b.r] = float32(dx.Round())
		}
	}
	return f, nil
}
