package ui

// Ui is a builder cursor: a position in the tree under construction plus a
// read-only view of the interaction state left by the previous frame.
type Ui struct {
	node  *UINode
	uid   WidgetUID
	state *InteractionState
}

// NewUi returns a cursor at root. state may be nil; queries then report false.
func NewUi(root *UINode, state *InteractionState) *Ui {
	return &Ui{node: root, uid: WidgetUID{}, state: state}
}

func (u *Ui) UID() WidgetUID { return u.uid }
func (u *Ui) Node() *UINode  { return u.node }
func (u *Ui) Widget() Widget { return u.node.Widget }

func (u *Ui) cursor(n *UINode, id WidgetID) *Ui {
	return &Ui{node: n, uid: u.uid.Child(id), state: u.state}
}

// Append inserts node as the last child of the cursor's node and returns a
// cursor positioned at it.
func (u *Ui) Append(node *UINode) *Ui {
	id := u.node.append(node)
	return u.cursor(node, id)
}

func (u *Ui) Button(text string) *Ui { return u.Append(NewNode(ButtonWidget(text))) }
func (u *Ui) Label(text string) *Ui  { return u.Append(NewNode(LabelWidget(text))) }

// Horizontal builds a row. build runs against a cursor already carrying the
// row's final uid; the finished row is attached afterwards.
func (u *Ui) Horizontal(build func(row *Ui)) *Ui {
	return u.container(HorizontalWidget(), build)
}

// Vertical builds a column, see Horizontal.
func (u *Ui) Vertical(build func(col *Ui)) *Ui {
	return u.container(VerticalWidget(), build)
}

func (u *Ui) container(w Widget, build func(*Ui)) *Ui {
	slot := u.node.reserve()
	sub := NewNode(w)
	c := u.cursor(sub, u.node.children[slot].ID)
	if build != nil {
		build(c)
	}
	u.node.attach(slot, sub)
	return c
}

// Key sets the stable lookup key of the node under the cursor.
func (u *Ui) Key(key string) *Ui {
	u.node.Key = key
	return u
}

// Find searches depth-first, the cursor's own node first, for the first node
// whose key equals key. With duplicate keys the first in that order wins.
//
// A container is attached only after its build func returns, so a search
// from an enclosing cursor made inside that func does not see the container
// or anything built in it yet. Search from the container's own cursor instead.
func (u *Ui) Find(key string) (*Ui, error) {
	if key == "" {
		return nil, &LookupError{Key: key, From: u.uid}
	}
	if found := find(u.node, u.uid, key, u.state); found != nil {
		return found, nil
	}
	return nil, &LookupError{Key: key, From: u.uid}
}

func find(n *UINode, uid WidgetUID, key string, state *InteractionState) *Ui {
	if n.Key == key {
		return &Ui{node: n, uid: uid, state: state}
	}
	for _, c := range n.children {
		if c.Node == nil {
			continue
		}
		if found := find(c.Node, uid.Child(c.ID), key, state); found != nil {
			return found
		}
	}
	return nil
}

// Clicked reports whether this widget was pressed and released under the
// pointer, both resolving to this uid, in the previous frame's update.
func (u *Ui) Clicked() bool {
	return u.state != nil && u.state.Clicked(u.uid)
}

// Hovered reports whether this widget is the current hover target.
func (u *Ui) Hovered() bool {
	return u.state != nil && u.state.Hover.Is(u.uid)
}

// Pressed reports whether the button is held and the press began on this widget.
func (u *Ui) Pressed() bool {
	return u.state != nil && u.state.MouseDown && u.state.DragBegin.Is(u.uid)
}
