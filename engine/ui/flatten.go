package ui

import "fmt"

// Rect is an absolute, top-left anchored rectangle.
type Rect struct {
	Pos  [2]float32
	Size [2]float32
}

// Contains reports whether p lies in r. Edges count as inside.
func (r Rect) Contains(p [2]float32) bool {
	return p[0] >= r.Pos[0] && p[0] <= r.Pos[0]+r.Size[0] &&
		p[1] >= r.Pos[1] && p[1] <= r.Pos[1]+r.Size[1]
}

func (r Rect) Center() (cx, cy float32) {
	return r.Pos[0] + r.Size[0]*0.5, r.Pos[1] + r.Size[1]*0.5
}

type FlatWidget struct {
	UID    WidgetUID
	Widget Widget
}

// Item pairs a widget with its absolute rect. A frame hands these to the
// interaction update and to the renderer in traversal order.
type Item struct {
	UID    WidgetUID
	Widget Widget
	Rect   Rect
}

// FlattenWidgets walks the tree depth-first, parent before children, and
// emits every node with its uid. The root comes first with the empty uid.
func FlattenWidgets(root *UINode) []FlatWidget {
	out := make([]FlatWidget, 0, root.Len())
	var walk func(n *UINode, uid WidgetUID)
	walk = func(n *UINode, uid WidgetUID) {
		out = append(out, FlatWidget{UID: uid, Widget: n.Widget})
		for _, c := range n.children {
			walk(c.Node, uid.Child(c.ID))
		}
	}
	walk(root, WidgetUID{})
	return out
}

// FlattenLayout walks the geometry tree in the same order as FlattenWidgets,
// turning parent-relative offsets into absolute positions from origin.
func FlattenLayout(t LayoutTree, origin [2]float32) []Rect {
	out := make([]Rect, 0, t.Len())
	var walk func(t *LayoutTree, base [2]float32)
	walk = func(t *LayoutTree, base [2]float32) {
		pos := [2]float32{base[0] + t.Offset[0], base[1] + t.Offset[1]}
		out = append(out, Rect{Pos: pos, Size: t.Extent})
		for i := range t.Children {
			walk(&t.Children[i], pos)
		}
	}
	walk(&t, origin)
	return out
}

// Zip pairs both sequences index for index.
func Zip(widgets []FlatWidget, rects []Rect) ([]Item, error) {
	if len(widgets) != len(rects) {
		return nil, fmt.Errorf("zip: %d widgets vs %d rects", len(widgets), len(rects))
	}
	items := make([]Item, len(widgets))
	for i, w := range widgets {
		items[i] = Item{UID: w.UID, Widget: w.Widget, Rect: rects[i]}
	}
	return items, nil
}
