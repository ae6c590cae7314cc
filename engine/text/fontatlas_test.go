package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultFontAtlas(t *testing.T) {
	f := Default()
	defer f.Close()

	if f.Atlas == nil || f.Atlas.Bounds().Dx() < 256 {
		t.Fatalf("atlas = %v, want at least 256px wide", f.Atlas)
	}
	for _, r := range "Sign in" {
		if _, ok := f.Glyphs[r]; !ok {
			t.Errorf("glyph %q missing", r)
		}
	}
	g := f.Glyphs['A']
	if g.W == 0 || g.H == 0 {
		t.Fatalf("glyph A has empty bitmap: %+v", g)
	}
	if !(g.U0 < g.U1 && g.V0 < g.V1) {
		t.Errorf("glyph A UVs not ordered: %+v", g)
	}
	// coverage was drawn into the atlas at the glyph's cell
	px := int(g.U0 * float32(f.Atlas.Bounds().Dx()))
	py := int(g.V0 * float32(f.Atlas.Bounds().Dy()))
	var covered bool
	for y := py; y < py+g.H; y++ {
		for x := px; x < px+g.W; x++ {
			if f.Atlas.RGBAAt(x, y).A > 0 {
				covered = true
			}
		}
	}
	if !covered {
		t.Error("glyph A cell is blank in the atlas")
	}
}

func TestMeasure(t *testing.T) {
	f := Default()
	// basicfont 7x13 advances every rune by 7px
	tests := []struct {
		name string
		s    string
		size float32
		want [2]float32
	}{
		{"empty", "", 13, [2]float32{0, f.LineHeight()}},
		{"word", "Login", 13, [2]float32{35, f.LineHeight()}},
		{"scaled", "Login", 26, [2]float32{70, 2 * f.LineHeight()}},
		{"zero size keeps atlas size", "ab", 0, [2]float32{14, f.LineHeight()}},
		{"two lines", "abc\nde", 13, [2]float32{21, 2 * f.LineHeight()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := f.Measure(tt.s, tt.size)
			if diff := cmp.Diff(tt.want, [2]float32{w, h}); diff != "" {
				t.Errorf("Measure(%q) mismatch (-want +got):\n%s", tt.s, diff)
			}
		})
	}
}

func TestLayoutSkipsWhitespace(t *testing.T) {
	f := Default()
	quads := f.Layout(10, 20, "a b", 13)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}
	if quads[1].X-quads[0].X != 14 {
		t.Errorf("second glyph at %v, want 14px after the first at %v", quads[1].X, quads[0].X)
	}
	for _, q := range quads {
		if q.Y < 20 || q.Y+q.H > 20+f.LineHeight() {
			t.Errorf("quad %+v escapes the line box", q)
		}
	}
}

func TestLoadTTFMissingFile(t *testing.T) {
	if _, err := LoadTTF("does/not/exist.ttf", 16); err == nil {
		t.Fatal("expected an error for a missing font file")
	}
}
