package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hubastard/grui/engine/colors"
	"github.com/hubastard/grui/engine/core"
	glbackend "github.com/hubastard/grui/engine/gfx/gl"
	"github.com/hubastard/grui/engine/logging"
	"github.com/hubastard/grui/engine/profiler"
	"github.com/hubastard/grui/engine/ui"
)

// LayerDebug draws frame statistics in the bottom-left corner with its own
// ui.Ctx. Ctrl+P dumps the profiler capture.
type LayerDebug struct {
	target *LayerUI

	r      *glbackend.RendererGL
	ctx    *ui.Ctx
	extent [2]float32
	last   time.Time
	ms     float64
	tick   int
	log    *zap.Logger
}

func NewLayerDebug(target *LayerUI) *LayerDebug {
	return &LayerDebug{target: target, log: logging.Named("debug")}
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.r = e.Renderer.(*glbackend.RendererGL)
	l.ctx = ui.New(ui.WithMetrics(ui.NewTextMetrics(l.r, 13)), ui.WithLogger(zap.NewNop()))
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) { l.tick++ }

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	scopeRender := profiler.Start("LayerDebug.OnRender")
	defer scopeRender()

	now := time.Now()
	if !l.last.IsZero() {
		l.ms = now.Sub(l.last).Seconds() * 1000
	}
	l.last = now

	_, h := e.Window.FramebufferSize()
	l.ctx.SetOrigin(8, float32(h)-l.extent[1]-8)

	stats := l.r.Stats()
	rt := profiler.Runtime()
	hover := "none"
	if f := l.target.Frame(); f != nil {
		hover = f.State.Hover.String()
	}

	f, err := l.ctx.Frame(e.Input.Pointer(), func(u *ui.Ui) error {
		u.Label(fmt.Sprintf("tick %d  %.2f ms", l.tick, l.ms))
		u.Label(fmt.Sprintf("quads %d  draws %d", stats.QuadCount, stats.DrawCalls))
		u.Label(fmt.Sprintf("heap %.2f MB  goroutines %d", float64(rt.HeapAlloc)/(1<<20), rt.Goroutines))
		u.Label("hover " + hover)
		return nil
	})
	if err != nil {
		return
	}
	l.extent = f.Layout.Extent
	ui.Paint(l.r, f, ui.Style{FontSize: 13, Text: colors.Yellow, Container: colors.Black.WithAlpha(0.5)})
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				l.log.Info("speedscope dump", zap.String("path", path))
			} else {
				l.log.Warn("profiler dump failed", zap.Error(err))
			}
			return true
		}
	}
	return false
}
