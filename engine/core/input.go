package core

import "github.com/hubastard/grui/engine/ui"

// Input folds events into the current key, pointer and button state.
//
// The ui pointer is sampled once per rendered frame, so left-button changes
// are queued and Advance releases one per frame. A press and release that
// arrive in the same poll still reach the ui as two frames.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64

	primaryDown bool   // level reported by Pointer
	primaryQ    []bool // levels not yet reported, oldest first
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
		if e.Button == MouseLeft {
			in.queuePrimary(e.Down)
		}
	}
}

func (in *Input) queuePrimary(down bool) {
	last := in.primaryDown
	if n := len(in.primaryQ); n > 0 {
		last = in.primaryQ[n-1]
	}
	if down != last {
		in.primaryQ = append(in.primaryQ, down)
	}
}

// Advance moves the pointer snapshot forward by at most one queued button
// change. Run calls it once before each rendered frame.
func (in *Input) Advance() {
	if len(in.primaryQ) == 0 {
		return
	}
	in.primaryDown = in.primaryQ[0]
	in.primaryQ = in.primaryQ[1:]
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }

// Pointer is the primary pointer for the current frame. Every layer sees the
// same snapshot until the next Advance.
func (in *Input) Pointer() ui.Input {
	return ui.Input{
		MouseX:    float32(in.mouseX),
		MouseY:    float32(in.mouseY),
		MouseDown: in.primaryDown,
	}
}
