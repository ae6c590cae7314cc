package core

import (
	"testing"
)

type fakeWindow struct {
	polls   int
	closeAt int
	closed  bool
	cb      func(Event)
	pending []Event
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	for _, ev := range w.pending {
		w.cb(ev)
	}
	w.pending = nil
	if w.polls >= w.closeAt {
		w.cb(EventCloseRequested{})
	}
}
func (w *fakeWindow) SwapBuffers()                    {}
func (w *fakeWindow) ShouldClose() bool               { return w.closed }
func (w *fakeWindow) RequestClose()                   { w.closed = true }
func (w *fakeWindow) FramebufferSize() (int, int)     { return 300, 200 }
func (w *fakeWindow) SetTitle(string)                 {}
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }

type fakeRenderer struct {
	frames   int
	resized  [][2]int
	shutdown bool
}

func (r *fakeRenderer) Resize(w, h int)          { r.resized = append(r.resized, [2]int{w, h}) }
func (r *fakeRenderer) Clear(_, _, _, _ float32) {}
func (r *fakeRenderer) BeginFrame()              {}
func (r *fakeRenderer) EndFrame()                { r.frames++ }
func (r *fakeRenderer) Shutdown()                { r.shutdown = true }

type countingApp struct {
	started, renders, events, shutdowns int
}

func (a *countingApp) OnStart(e *Engine)         { a.started++; e.Layers.Push(&eatingLayer{}) }
func (a *countingApp) OnUpdate(*Engine, float64) {}
func (a *countingApp) OnRender(*Engine, float64) { a.renders++ }
func (a *countingApp) OnEvent(*Engine, Event)    { a.events++ }
func (a *countingApp) OnShutdown(*Engine)        { a.shutdowns++ }

// eatingLayer swallows mouse moves.
type eatingLayer struct{ attached, detached, seen int }

func (l *eatingLayer) OnAttach(*Engine)          { l.attached++ }
func (l *eatingLayer) OnDetach(*Engine)          { l.detached++ }
func (l *eatingLayer) OnUpdate(*Engine, float64) {}
func (l *eatingLayer) OnRender(*Engine, float64) {}
func (l *eatingLayer) OnEvent(_ *Engine, ev Event) bool {
	l.seen++
	_, ok := ev.(EventMouseMove)
	return ok
}

func TestRunLoop(t *testing.T) {
	win := &fakeWindow{closeAt: 3, pending: []Event{EventMouseMove{X: 1, Y: 2}, EventKey{Key: KeySpace, Down: true}}}
	rend := &fakeRenderer{}
	app := &countingApp{}

	err := Run(app, DefaultConfig(),
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil },
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.started != 1 || app.shutdowns != 1 {
		t.Errorf("started=%d shutdowns=%d", app.started, app.shutdowns)
	}
	// three polls; the close request arrives in the third one and the loop
	// still finishes that iteration
	if rend.frames != 3 || app.renders != 3 {
		t.Errorf("frames=%d renders=%d, want 3", rend.frames, app.renders)
	}
	// mouse move eaten by the layer; key and close reach the app
	if app.events != 2 {
		t.Errorf("app saw %d events, want 2", app.events)
	}
	if !rend.shutdown {
		t.Error("renderer not shut down")
	}
	if len(rend.resized) != 1 || rend.resized[0] != [2]int{300, 200} {
		t.Errorf("resized = %v", rend.resized)
	}
}

func TestLayerStack(t *testing.T) {
	var ls LayerStack
	a, b := &eatingLayer{}, &eatingLayer{}
	ls.Push(a)
	ls.Push(b)
	if !ls.Dispatch(nil, EventMouseMove{}) {
		t.Error("move must be handled")
	}
	if b.seen != 1 || a.seen != 0 {
		t.Errorf("top layer must stop propagation, seen a=%d b=%d", a.seen, b.seen)
	}
	if ls.Dispatch(nil, EventResize{}) {
		t.Error("resize must not be handled")
	}
	if a.seen != 1 || b.seen != 2 {
		t.Errorf("unhandled event must reach all layers, seen a=%d b=%d", a.seen, b.seen)
	}
	if l, ok := ls.Pop(); !ok || l != b {
		t.Error("pop must return the top layer")
	}
	ls.Pop()
	if _, ok := ls.Pop(); ok {
		t.Error("pop on empty stack")
	}
}
