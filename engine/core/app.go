package core

import "time"

// App receives the engine lifecycle. Layers pushed in OnStart get the same
// hooks after the app, and see events before it.
type App interface {
	OnStart(e *Engine)
	OnUpdate(e *Engine, dt float64)    // fixed tick, dt in seconds
	OnRender(e *Engine, alpha float64) // alpha is the unconsumed tick fraction
	OnEvent(e *Engine, ev Event)       // only events no layer handled
	OnShutdown(e *Engine)
}

// Engine is what Run hands to the app and layers.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Config   Config
	start    time.Time
	app      App
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the frame-loop side of a backend. Widgets are drawn through the
// backend's ui.Renderer between BeginFrame and EndFrame.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	BeginFrame()
	EndFrame()
	Shutdown()
}

// CursorToFramebuffer maps a cursor position in window coordinates to
// framebuffer pixels, the space the renderer and ui layout work in. The two
// differ on HiDPI displays. A zero-sized window leaves the point unchanged.
func CursorToFramebuffer(x, y float64, winW, winH, fbW, fbH int) (float64, float64) {
	if winW <= 0 || winH <= 0 || fbW <= 0 || fbH <= 0 {
		return x, y
	}
	return x * float64(fbW) / float64(winW), y * float64(fbH) / float64(winH)
}
