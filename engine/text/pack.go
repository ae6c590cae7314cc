package text

import (
	"fmt"
	"image"
)

const (
	atlasPad     = 2
	atlasMinSide = 256
	atlasMaxSide = 4096
)

// shelf places boxes left to right in rows of a square sheet. A new row starts
// below the tallest box of the previous one.
type shelf struct {
	side       int
	x, y, rowH int
}

func newShelf(side int) *shelf {
	return &shelf{side: side, x: atlasPad, y: atlasPad}
}

// place returns the top-left corner for a w×h box, or false when the sheet is full.
func (s *shelf) place(w, h int) (image.Point, bool) {
	if w+2*atlasPad > s.side || h+2*atlasPad > s.side {
		return image.Point{}, false
	}
	if s.x+w+atlasPad > s.side {
		s.x = atlasPad
		s.y += s.rowH + atlasPad
		s.rowH = 0
	}
	if s.y+h+atlasPad > s.side {
		return image.Point{}, false
	}
	at := image.Pt(s.x, s.y)
	s.x += w + atlasPad
	s.rowH = max(s.rowH, h)
	return at, true
}

// packGlyphs doubles the sheet until every non-empty glyph box fits and
// returns the chosen side with each glyph's corner.
func packGlyphs(boxes []glyphBox) (int, map[rune]image.Point, error) {
	for side := atlasMinSide; side <= atlasMaxSide; side *= 2 {
		if at, ok := tryPack(side, boxes); ok {
			return side, at, nil
		}
	}
	return 0, nil, fmt.Errorf("glyphs do not fit a %dx%d atlas", atlasMaxSide, atlasMaxSide)
}

func tryPack(side int, boxes []glyphBox) (map[rune]image.Point, bool) {
	s := newShelf(side)
	at := make(map[rune]image.Point, len(boxes))
	for _, b := range boxes {
		if b.empty() {
			continue
		}
		p, ok := s.place(b.w, b.h)
		if !ok {
			return nil, false
		}
		at[b.r] = p
	}
	return at, true
}
