package ui

// ===== Geometry =====

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// axisOf returns the main axis of a container kind.
func axisOf(k WidgetKind) Axis {
	if k == KindHorizontal {
		return Horizontal
	}
	return Vertical
}

// LayoutTree is the geometry of one widget node. Offset is relative to the
// parent's origin. Children mirror the widget node's children one to one.
type LayoutTree struct {
	Extent   [2]float32
	Offset   [2]float32
	Children []LayoutTree
}

// Layout computes the geometry tree of root in one bottom-up pass. It only
// reads the widget tree, so hit-testing can depend on it freely.
func Layout(root *UINode, m Metrics) LayoutTree {
	if m == nil {
		m = DefaultMetrics
	}
	return layoutNode(root, m)
}

func layoutNode(n *UINode, m Metrics) LayoutTree {
	if !n.Widget.IsContainer() {
		return LayoutTree{Extent: m.LeafExtent(n.Widget)}
	}

	kids := make([]LayoutTree, len(n.children))
	mainIsX := axisOf(n.Widget.Kind) == Horizontal

	// measure, then place along the main axis with a running cursor
	var cursor, maxCross float32
	for i, c := range n.children {
		lt := layoutNode(c.Node, m)
		if mainIsX {
			lt.Offset = [2]float32{cursor, 0}
			cursor += lt.Extent[0]
			maxCross = maxf(maxCross, lt.Extent[1])
		} else {
			lt.Offset = [2]float32{0, cursor}
			cursor += lt.Extent[1]
			maxCross = maxf(maxCross, lt.Extent[0])
		}
		kids[i] = lt
	}

	out := LayoutTree{Children: kids}
	if mainIsX {
		out.Extent = [2]float32{cursor, maxCross}
	} else {
		out.Extent = [2]float32{maxCross, cursor}
	}
	return out
}

// Len counts the geometry nodes of the tree, t included.
func (t LayoutTree) Len() int {
	total := 1
	for _, c := range t.Children {
		total += c.Len()
	}
	return total
}
