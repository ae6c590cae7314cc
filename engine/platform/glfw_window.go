package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grui/engine/core"
	"github.com/hubastard/grui/engine/logging"
	"go.uber.org/zap"
)

// GLFWWindow is a core.Window backed by a GLFW window with a current GL 3.3
// core context. Input arrives through the event callback.
type GLFWWindow struct {
	win  *glfw.Window
	sink func(core.Event)
}

var keyTable = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyKPEnter:      core.KeyEnter,
	glfw.KeyP:            core.KeyP,
	glfw.KeyLeftControl:  core.KeyLeftCtrl,
	glfw.KeyRightControl: core.KeyRightCtrl,
}

var buttonTable = map[glfw.MouseButton]core.MouseButton{
	glfw.MouseButtonLeft:   core.MouseLeft,
	glfw.MouseButtonRight:  core.MouseRight,
	glfw.MouseButtonMiddle: core.MouseMiddle,
}

var modTable = []struct {
	from glfw.ModifierKey
	to   core.Mod
}{
	{glfw.ModShift, core.ModShift},
	{glfw.ModControl, core.ModCtrl},
	{glfw.ModAlt, core.ModAlt},
	{glfw.ModSuper, core.ModSuper},
}

// NewGLFWWindow opens the window and loads GL. It locks the calling goroutine
// to its OS thread, so call it from main before any GL work.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	for hint, v := range map[glfw.Hint]int{
		glfw.ContextVersionMajor:     3,
		glfw.ContextVersionMinor:     3,
		glfw.OpenGLProfile:           glfw.OpenGLCoreProfile,
		glfw.OpenGLForwardCompatible: glfw.True, // macOS refuses core contexts without it
		glfw.Samples:                 0,
	} {
		glfw.WindowHint(hint, v)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window %dx%d: %w", cfg.Width, cfg.Height, err)
	}
	win.MakeContextCurrent()
	interval := 0
	if cfg.VSync {
		interval = 1
	}
	glfw.SwapInterval(interval)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("load gl: %w", err)
	}

	g := &GLFWWindow{win: win, sink: onEvent}
	g.listen()
	logging.Named("platform").Debug("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return g, nil
}

func (g *GLFWWindow) listen() {
	g.win.SetCloseCallback(func(*glfw.Window) {
		g.send(core.EventCloseRequested{})
	})
	g.win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.send(core.EventResize{W: w, H: h})
	})
	g.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		x, y = g.toFramebuffer(x, y)
		g.send(core.EventMouseMove{X: x, Y: y})
	})
	g.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		g.send(core.EventScroll{Xoff: dx, Yoff: dy})
	})
	g.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		if btn, ok := buttonTable[b]; ok {
			g.send(core.EventMouseButton{Button: btn, Down: a != glfw.Release})
		}
	})
	g.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, mods glfw.ModifierKey) {
		if key, ok := keyTable[k]; ok {
			g.send(core.EventKey{Key: key, Down: a != glfw.Release, Mods: modsOf(mods)})
		}
	})
}

func (g *GLFWWindow) send(ev core.Event) {
	if g.sink != nil {
		g.sink(ev)
	}
}

func modsOf(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	for _, e := range modTable {
		if m&e.from != 0 {
			out |= e.to
		}
	}
	return out
}

// Destroy closes the window and terminates GLFW. The renderer must be shut
// down first since it owns objects in this context.
func (g *GLFWWindow) Destroy() {
	g.win.Destroy()
	glfw.Terminate()
}

// CursorPos is the pointer in framebuffer pixels, like EventMouseMove.
func (g *GLFWWindow) CursorPos() (x, y float64) {
	return g.toFramebuffer(g.win.GetCursorPos())
}

// toFramebuffer rescales window coordinates from GLFW's cursor callbacks into
// the framebuffer pixels the camera viewport is sized in.
func (g *GLFWWindow) toFramebuffer(x, y float64) (float64, float64) {
	ww, wh := g.win.GetSize()
	fw, fh := g.win.GetFramebufferSize()
	return core.CursorToFramebuffer(x, y, ww, wh, fw, fh)
}

func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.win.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.win.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.win.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.win.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.win.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.sink = cb }
