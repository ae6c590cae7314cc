package ui

import "fmt"

// ===== Widget kinds =====

type WidgetKind uint8

const (
	KindButton WidgetKind = iota
	KindLabel
	KindHorizontal
	KindVertical
)

func (k WidgetKind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindLabel:
		return "label"
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	default:
		return fmt.Sprintf("WidgetKind(%d)", uint8(k))
	}
}

// Widget is the payload of a tree node. Containers carry no text; their
// content is their children.
type Widget struct {
	Kind WidgetKind
	Text string
}

func ButtonWidget(text string) Widget { return Widget{Kind: KindButton, Text: text} }
func LabelWidget(text string) Widget  { return Widget{Kind: KindLabel, Text: text} }
func HorizontalWidget() Widget        { return Widget{Kind: KindHorizontal} }
func VerticalWidget() Widget          { return Widget{Kind: KindVertical} }

func (w Widget) IsContainer() bool {
	return w.Kind == KindHorizontal || w.Kind == KindVertical
}

func (w Widget) String() string {
	if w.IsContainer() {
		return w.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", w.Kind, w.Text)
}

// ===== Tree =====

// Child is one owned entry of a node's child list.
type Child struct {
	ID   WidgetID
	Node *UINode
}

// UINode is one node of the per-frame widget tree. Nodes are built fresh every
// frame and dropped once the frame has been painted.
type UINode struct {
	Widget   Widget
	Key      string // optional stable lookup handle, see Ui.Find
	children []Child
	nextID   WidgetID
}

func NewNode(w Widget) *UINode { return &UINode{Widget: w} }

// WithKey sets the lookup key and returns the node for chaining.
func (n *UINode) WithKey(key string) *UINode { n.Key = key; return n }

func (n *UINode) Children() []Child { return n.children }

// Len counts the nodes of the subtree rooted at n, n included.
func (n *UINode) Len() int {
	total := 1
	for _, c := range n.children {
		total += c.Node.Len()
	}
	return total
}

// append inserts child last under the next free id and returns that id.
func (n *UINode) append(child *UINode) WidgetID {
	slot := n.reserve()
	n.attach(slot, child)
	return n.children[slot].ID
}

// reserve claims the next id and an empty slot at the end of the child list.
// The slot keeps sibling order equal to id order even when the subtree for it
// is finished after later siblings were appended.
func (n *UINode) reserve() int {
	n.children = append(n.children, Child{ID: n.nextID})
	n.nextID++
	return len(n.children) - 1
}

func (n *UINode) attach(slot int, child *UINode) {
	n.children[slot].Node = child
}
