package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// sized is a Metrics returning a per-text extent so siblings can differ.
type sized map[string][2]float32

func (s sized) LeafExtent(w Widget) [2]float32 { return s[w.Text] }

func TestLayoutVerticalLaw(t *testing.T) {
	m := sized{"a": {10, 5}, "b": {30, 7}, "c": {20, 11}}
	root := NewNode(VerticalWidget())
	ui := NewUi(root, nil)
	ui.Label("a")
	ui.Button("b")
	ui.Label("c")

	got := Layout(root, m)
	want := LayoutTree{
		Extent: [2]float32{30, 23},
		Children: []LayoutTree{
			{Extent: [2]float32{10, 5}, Offset: [2]float32{0, 0}, Children: []LayoutTree{}},
			{Extent: [2]float32{30, 7}, Offset: [2]float32{0, 5}, Children: []LayoutTree{}},
			{Extent: [2]float32{20, 11}, Offset: [2]float32{0, 12}, Children: []LayoutTree{}},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutHorizontalLaw(t *testing.T) {
	m := sized{"a": {10, 5}, "b": {30, 7}, "c": {20, 11}}
	root := NewNode(VerticalWidget())
	NewUi(root, nil).Horizontal(func(row *Ui) {
		row.Label("a")
		row.Button("b")
		row.Label("c")
	})

	got := Layout(root, m)
	rowGeom := got.Children[0]
	if rowGeom.Extent != [2]float32{60, 11} {
		t.Errorf("row extent = %v, want [60 11]", rowGeom.Extent)
	}
	wantOffsets := [][2]float32{{0, 0}, {10, 0}, {40, 0}}
	for i, c := range rowGeom.Children {
		if c.Offset != wantOffsets[i] {
			t.Errorf("child %d offset = %v, want %v", i, c.Offset, wantOffsets[i])
		}
	}
	if got.Extent != rowGeom.Extent {
		t.Errorf("root extent = %v, want %v", got.Extent, rowGeom.Extent)
	}
}

func TestLayoutEmptyContainer(t *testing.T) {
	root := NewNode(VerticalWidget())
	NewUi(root, nil).Horizontal(nil)
	got := Layout(root, nil)
	if got.Extent != ([2]float32{}) || got.Children[0].Extent != ([2]float32{}) {
		t.Errorf("empty containers must have zero extent, got %v / %v", got.Extent, got.Children[0].Extent)
	}
}

func TestLayoutDefaultMetrics(t *testing.T) {
	root := NewNode(VerticalWidget())
	ui := NewUi(root, nil)
	ui.Label("Login")
	ui.Horizontal(func(row *Ui) {
		row.Label("Password")
		row.Button("Sign in")
	})
	got := Layout(root, DefaultMetrics)
	if got.Extent != [2]float32{420, 48} {
		t.Errorf("root extent = %v, want [420 48]", got.Extent)
	}
	if off := got.Children[1].Children[1].Offset; off != [2]float32{280, 0} {
		t.Errorf("button offset = %v, want [280 0]", off)
	}
}

func TestLayoutIsomorphicToWidgetTree(t *testing.T) {
	root := NewNode(VerticalWidget())
	signIn(NewUi(root, nil))
	NewUi(root, nil).Vertical(func(col *Ui) {
		col.Horizontal(func(row *Ui) { row.Button("x") })
		col.Vertical(nil)
	})

	lt := Layout(root, DefaultMetrics)
	var check func(n *UINode, g LayoutTree)
	check = func(n *UINode, g LayoutTree) {
		if len(n.Children()) != len(g.Children) {
			t.Fatalf("%v: %d children vs %d geometry children", n.Widget, len(n.Children()), len(g.Children))
		}
		for i, c := range n.Children() {
			check(c.Node, g.Children[i])
		}
	}
	check(root, lt)
	if root.Len() != lt.Len() {
		t.Errorf("node count %d vs geometry count %d", root.Len(), lt.Len())
	}
}

func TestTextMetrics(t *testing.T) {
	m := TextMetrics{
		M:             fixedWidthMeasurer{advance: 8, height: 16},
		FontSize:      16,
		ButtonPadding: Insets(10, 4, 10, 4),
		MinButton:     [2]float32{60, 0},
	}
	tests := []struct {
		w    Widget
		want [2]float32
	}{
		{LabelWidget("abcd"), [2]float32{32, 16}},
		{ButtonWidget("Sign in"), [2]float32{76, 24}},
		{ButtonWidget("ok"), [2]float32{60, 24}},
		{VerticalWidget(), [2]float32{}},
	}
	for _, tt := range tests {
		if got := m.LeafExtent(tt.w); got != tt.want {
			t.Errorf("LeafExtent(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

type fixedWidthMeasurer struct{ advance, height float32 }

func (f fixedWidthMeasurer) Measure(text string, _ float32) (float32, float32) {
	return f.advance * float32(len([]rune(text))), f.height
}
