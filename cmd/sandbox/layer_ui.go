package main

import (
	"go.uber.org/zap"

	"github.com/hubastard/grui/engine/core"
	glbackend "github.com/hubastard/grui/engine/gfx/gl"
	"github.com/hubastard/grui/engine/logging"
	"github.com/hubastard/grui/engine/profiler"
	"github.com/hubastard/grui/engine/ui"
)

// LayerUI runs one immediate-mode frame per rendered frame and paints it
// through the GL renderer. Ctrl+scroll zooms around the pointer.
type LayerUI struct {
	build ui.Builder
	style ui.Style

	r       *glbackend.RendererGL
	ctx     *ui.Ctx
	frame   *ui.Frame
	lastErr string
	log     *zap.Logger
}

func NewLayerUI(build ui.Builder, st ui.Style) *LayerUI {
	return &LayerUI{build: build, style: st, log: logging.Named("sandbox")}
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	l.r = e.Renderer.(*glbackend.RendererGL)
	metrics := ui.NewTextMetrics(l.r, e.Config.FontSize)
	metrics.MinButton = ui.DefaultMetrics.Button
	l.ctx = ui.New(
		ui.WithMetrics(metrics),
		ui.WithOrigin(e.Config.OriginX, e.Config.OriginY),
	)
}

func (l *LayerUI) OnDetach(e *core.Engine) {
	l.log.Debug("ui layer detached", zap.Uint64("frames", l.ctx.Frames()))
}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("LayerUI.OnRender")
	defer end()

	in := e.Input.Pointer()
	in.MouseX, in.MouseY = l.r.Camera().ScreenToWorld(in.MouseX, in.MouseY)

	f, err := l.ctx.Frame(in, l.build)
	if err != nil {
		// a broken layout fails every frame; report each distinct error once
		if msg := err.Error(); msg != l.lastErr {
			l.log.Error("ui frame failed", zap.Error(err))
			l.lastErr = msg
		}
		return
	}
	l.lastErr = ""
	l.frame = f
	ui.Paint(l.r, f, l.style)
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventScroll:
		if !e.Input.IsKeyDown(core.KeyLeftCtrl) && !e.Input.IsKeyDown(core.KeyRightCtrl) {
			return false
		}
		mx, my := e.Input.Mouse()
		factor := float32(1.1)
		if v.Yoff < 0 {
			factor = 1 / factor
		}
		l.r.Camera().ZoomAt(float32(mx), float32(my), factor)
		return true
	}
	return false
}

// Frame is the last frame that built successfully.
func (l *LayerUI) Frame() *ui.Frame { return l.frame }
