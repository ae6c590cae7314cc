package ui

// Input is the raw pointer snapshot for one frame.
type Input struct {
	MouseX, MouseY float32
	MouseDown      bool
}

// InteractionState is the only thing that lives across frames. The zero value
// is the initial state. It holds uids, never pointers into a frame's trees.
type InteractionState struct {
	Hover     Target
	DragBegin Target

	MouseDown     bool
	MousePressed  bool // rising edge this frame
	MouseReleased bool // falling edge this frame
}

// Update returns the state for this frame given last frame's state s, the
// frame's items in traversal order and the raw pointer input.
func (s InteractionState) Update(items []Item, in Input) InteractionState {
	next := InteractionState{
		DragBegin:     s.DragBegin,
		MouseDown:     in.MouseDown,
		MousePressed:  in.MouseDown && !s.MouseDown,
		MouseReleased: !in.MouseDown && s.MouseDown,
	}

	// last match in traversal order wins; no z-order
	p := [2]float32{in.MouseX, in.MouseY}
	for i := range items {
		it := &items[i]
		if it.Widget.Kind == KindButton && it.Rect.Contains(p) {
			next.Hover = Some(it.UID)
		}
	}

	if next.MousePressed {
		// a press over nothing clears whatever origin was left over
		next.DragBegin = next.Hover
	}
	if !in.MouseDown && !s.MouseDown {
		next.DragBegin = None
	}
	return next
}

// Clicked reports whether uid was pressed and released in one cycle without
// the pointer leaving it at release time.
func (s InteractionState) Clicked(uid WidgetUID) bool {
	return s.MouseReleased && s.Hover.Is(uid) && s.DragBegin.Is(uid)
}
