package core

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/hubastard/grui/engine/logging"
)

const (
	tickRate = time.Second / 60
	// maxCatchUp bounds update ticks per frame after a stall.
	maxCatchUp = 10
)

// Run opens the window and renderer, then drives app until the window closes.
// Updates run on a fixed 60 Hz tick; rendering happens once per loop with the
// leftover fraction of a tick as alpha.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// GL contexts are bound to the thread that created them.
	runtime.LockOSThread()
	log := logging.Named("core")

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	if d, ok := win.(interface{ Destroy() }); ok {
		defer d.Destroy()
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Config:   cfg,
		start:    time.Now(),
		app:      app,
	}
	w, h := win.FramebufferSize()
	rend.Resize(w, h)
	win.SetEventCallback(eng.handle)

	app.OnStart(eng)
	eng.Layers.ForEach(func(l Layer) { l.OnAttach(eng) })
	log.Info("engine started",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("layers", eng.Layers.Len()),
	)

	var lag time.Duration
	last := time.Now()
	for !win.ShouldClose() {
		now := time.Now()
		lag += now.Sub(last)
		last = now

		// events arrive through eng.handle while polling
		win.PollEvents()
		lag = eng.update(lag)
		eng.render(float64(lag) / float64(tickRate))
		win.SwapBuffers()
	}

	eng.Layers.ForEach(func(l Layer) { l.OnDetach(eng) })
	app.OnShutdown(eng)
	log.Info("engine exit", zap.Duration("uptime", eng.Uptime()))
	return nil
}

// handle routes one window event: input state first, then the layers from
// the top, then the app if no layer consumed it.
func (e *Engine) handle(ev Event) {
	e.Input.Handle(ev)
	switch ev := ev.(type) {
	case EventCloseRequested:
		e.Window.RequestClose()
	case EventResize:
		if ev.W < 1 || ev.H < 1 {
			return // minimized
		}
		e.Renderer.Resize(e.Window.FramebufferSize())
	}
	if !e.Layers.Dispatch(e, ev) {
		e.app.OnEvent(e, ev)
	}
}

// update consumes whole ticks from lag and returns what is left.
func (e *Engine) update(lag time.Duration) time.Duration {
	dt := tickRate.Seconds()
	for n := 0; lag >= tickRate && n < maxCatchUp; n++ {
		e.app.OnUpdate(e, dt)
		e.Layers.ForEach(func(l Layer) { l.OnUpdate(e, dt) })
		lag -= tickRate
	}
	return lag
}

func (e *Engine) render(alpha float64) {
	e.Input.Advance()
	c := e.Config.ClearColor
	e.Renderer.Clear(c[0], c[1], c[2], c[3])
	e.Renderer.BeginFrame()
	e.app.OnRender(e, alpha)
	e.Layers.ForEach(func(l Layer) { l.OnRender(e, alpha) })
	e.Renderer.EndFrame()
}
