package ui

import "testing"

// world is a static single-button scene: root -> vertical -> button at 0,0 140x28.
func world() []Item {
	root := NewNode(VerticalWidget())
	NewUi(root, nil).Vertical(func(col *Ui) { col.Button("Sign in") })
	items, err := Zip(FlattenWidgets(root), FlattenLayout(Layout(root, DefaultMetrics), [2]float32{}))
	if err != nil {
		panic(err)
	}
	return items
}

var buttonUID = WidgetUID{0, 0}

func step(s InteractionState, x, y float32, down bool) InteractionState {
	return s.Update(world(), Input{MouseX: x, MouseY: y, MouseDown: down})
}

func TestClickScenario(t *testing.T) {
	var s InteractionState

	s = step(s, 10, 10, true)
	if !s.MousePressed || s.MouseReleased {
		t.Fatalf("frame 1 edges pressed=%v released=%v", s.MousePressed, s.MouseReleased)
	}
	if !s.DragBegin.Is(buttonUID) {
		t.Fatalf("frame 1 drag origin = %s, want %s", s.DragBegin, buttonUID)
	}
	if s.Clicked(buttonUID) {
		t.Fatal("frame 1 must not click")
	}

	s = step(s, 10, 10, false)
	if !s.MouseReleased || s.MousePressed {
		t.Fatalf("frame 2 edges pressed=%v released=%v", s.MousePressed, s.MouseReleased)
	}
	if !s.Hover.Is(buttonUID) {
		t.Fatalf("frame 2 hover = %s", s.Hover)
	}
	if !s.Clicked(buttonUID) {
		t.Fatal("frame 2 must click")
	}

	s = step(s, 10, 10, false)
	if s.Clicked(buttonUID) {
		t.Fatal("frame 3 must not click again")
	}
	if s.DragBegin.Valid() {
		t.Fatalf("idle frame must clear drag origin, got %s", s.DragBegin)
	}
}

func TestDragAwayCancelsClick(t *testing.T) {
	var s InteractionState
	s = step(s, 10, 10, true)
	s = step(s, 500, 500, true)
	if !s.DragBegin.Is(buttonUID) {
		t.Fatalf("drag origin must persist while held, got %s", s.DragBegin)
	}
	s = step(s, 500, 500, false)
	if s.Hover.Valid() {
		t.Errorf("hover = %s, want none", s.Hover)
	}
	if s.Clicked(buttonUID) {
		t.Error("release off the button must not click")
	}
}

func TestDragBackBeforeReleaseStillClicks(t *testing.T) {
	var s InteractionState
	s = step(s, 10, 10, true)
	s = step(s, 500, 500, true)
	s = step(s, 20, 20, false)
	if !s.Clicked(buttonUID) {
		t.Error("release back over the origin must click")
	}
}

func TestPressOutsideThenReleaseInsideDoesNotClick(t *testing.T) {
	var s InteractionState
	s = step(s, 500, 500, true)
	s = step(s, 10, 10, false)
	if s.Clicked(buttonUID) {
		t.Error("press must start on the button")
	}
}

func TestStaleOriginDoesNotLeakIntoNextPress(t *testing.T) {
	var s InteractionState
	s = step(s, 10, 10, true)
	s = step(s, 10, 10, false) // click
	// immediate re-press over empty space, no idle frame in between
	s = step(s, 500, 500, true)
	if s.DragBegin.Valid() {
		t.Fatalf("drag origin = %s, want none", s.DragBegin)
	}
	s = step(s, 10, 10, false)
	if s.Clicked(buttonUID) {
		t.Error("release over the button after pressing elsewhere must not click")
	}
}

func TestDebounceEdges(t *testing.T) {
	downs := []bool{false, true, true, true, false, false, true, false, true}
	var s InteractionState
	prev := false
	presses, releases := 0, 0
	for i, d := range downs {
		s = step(s, 10, 10, d)
		if s.MousePressed && s.MouseReleased {
			t.Fatalf("frame %d: both edges set", i)
		}
		if s.MousePressed != (d && !prev) {
			t.Errorf("frame %d: pressed = %v", i, s.MousePressed)
		}
		if s.MouseReleased != (!d && prev) {
			t.Errorf("frame %d: released = %v", i, s.MouseReleased)
		}
		if s.MousePressed {
			presses++
		}
		if s.MouseReleased {
			releases++
		}
		prev = d
	}
	if presses != 3 || releases != 2 {
		t.Errorf("presses=%d releases=%d, want 3 and 2", presses, releases)
	}
}

func TestHoverLastInTraversalOrderWins(t *testing.T) {
	items := []Item{
		{UID: WidgetUID{0}, Widget: ButtonWidget("under"), Rect: Rect{Size: [2]float32{100, 100}}},
		{UID: WidgetUID{1}, Widget: LabelWidget("label"), Rect: Rect{Size: [2]float32{100, 100}}},
		{UID: WidgetUID{2}, Widget: ButtonWidget("over"), Rect: Rect{Size: [2]float32{50, 50}}},
	}
	s := InteractionState{}.Update(items, Input{MouseX: 10, MouseY: 10})
	if !s.Hover.Is(WidgetUID{2}) {
		t.Errorf("hover = %s, want /2", s.Hover)
	}
	s = s.Update(items, Input{MouseX: 80, MouseY: 80})
	if !s.Hover.Is(WidgetUID{0}) {
		t.Errorf("hover = %s, want /0", s.Hover)
	}
}

func TestLabelsAreNeverHovered(t *testing.T) {
	items := []Item{{UID: WidgetUID{0}, Widget: LabelWidget("x"), Rect: Rect{Size: [2]float32{10, 10}}}}
	s := InteractionState{}.Update(items, Input{MouseX: 5, MouseY: 5, MouseDown: true})
	if s.Hover.Valid() || s.DragBegin.Valid() {
		t.Errorf("hover=%s drag=%s, want none", s.Hover, s.DragBegin)
	}
}
