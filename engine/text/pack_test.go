package text

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShelfPlace(t *testing.T) {
	s := newShelf(16)
	var got []image.Point
	for _, sz := range [][2]int{{5, 3}, {5, 4}, {5, 2}, {5, 5}} {
		p, ok := s.place(sz[0], sz[1])
		if !ok {
			t.Fatalf("place(%v) did not fit", sz)
		}
		got = append(got, p)
	}
	// third box wraps below the tallest box of the first row
	want := []image.Point{{2, 2}, {9, 2}, {2, 8}, {9, 8}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("corners mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.place(20, 1); ok {
		t.Error("box wider than the sheet was placed")
	}
}

func TestPackGlyphsGrows(t *testing.T) {
	boxes := make([]glyphBox, 0, 64)
	for i := range 64 {
		boxes = append(boxes, glyphBox{r: rune('A' + i), w: 40, h: 40})
	}
	boxes = append(boxes, glyphBox{r: ' '}) // empty boxes take no space

	side, at, err := packGlyphs(boxes)
	if err != nil {
		t.Fatal(err)
	}
	if side != 512 {
		t.Errorf("side = %d, want 512", side)
	}
	if len(at) != 64 {
		t.Errorf("placed %d glyphs, want 64", len(at))
	}
}

func TestPackGlyphsTooLarge(t *testing.T) {
	if _, _, err := packGlyphs([]glyphBox{{r: 'x', w: atlasMaxSide, h: 1}}); err == nil {
		t.Error("expected an error for a glyph wider than the largest atlas")
	}
}
