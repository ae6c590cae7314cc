package core

// Event is one of the Event* types below.
type Event interface{ isEvent() }

type (
	EventCloseRequested struct{}
	EventResize         struct{ W, H int } // framebuffer pixels
	EventMouseMove      struct{ X, Y float64 }
	EventScroll         struct{ Xoff, Yoff float64 }

	EventKey struct {
		Key  Key
		Down bool
		Mods Mod
	}

	EventMouseButton struct {
		Button MouseButton
		Down   bool
	}
)

func (EventCloseRequested) isEvent() {}
func (EventResize) isEvent()         {}
func (EventMouseMove) isEvent()      {}
func (EventScroll) isEvent()         {}
func (EventKey) isEvent()            {}
func (EventMouseButton) isEvent()    {}

// Key covers only the keys the sandbox binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyP
	KeyLeftCtrl
	KeyRightCtrl
)

type Mod int

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper

	ModNone Mod = 0
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)
