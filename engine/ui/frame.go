package ui

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hubastard/grui/engine/logging"
	"github.com/hubastard/grui/engine/profiler"
)

// ===== Immediate-UI context =====

// Ctx drives frames. It owns the interaction state, the only value carried
// from one frame to the next; every tree is rebuilt per frame.
type Ctx struct {
	state   InteractionState
	metrics Metrics
	origin  [2]float32
	log     *zap.Logger
	frames  uint64
}

type Option func(*Ctx)

// WithMetrics sets how leaf widgets are sized. Defaults to DefaultMetrics.
func WithMetrics(m Metrics) Option { return func(c *Ctx) { c.metrics = m } }

// WithOrigin places the root's top-left corner on screen.
func WithOrigin(x, y float32) Option { return func(c *Ctx) { c.origin = [2]float32{x, y} } }

func WithLogger(l *zap.Logger) Option { return func(c *Ctx) { c.log = l } }

// WithState seeds the interaction state, mostly useful in tests.
func WithState(s InteractionState) Option { return func(c *Ctx) { c.state = s } }

func New(opts ...Option) *Ctx {
	c := &Ctx{metrics: DefaultMetrics}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = logging.Named("ui")
	}
	return c
}

func (c *Ctx) State() InteractionState { return c.state }
func (c *Ctx) Frames() uint64          { return c.frames }

// SetOrigin moves the root, e.g. after a window resize.
func (c *Ctx) SetOrigin(x, y float32) { c.origin = [2]float32{x, y} }

// Frame is everything one frame produced. It is not referenced by the Ctx
// after Frame returns.
type Frame struct {
	Root   *UINode
	Layout LayoutTree
	Items  []Item
	State  InteractionState
}

// Builder fills a fresh tree. Returning an error aborts the frame.
type Builder func(ui *Ui) error

// Frame runs one full build, layout, flatten and interact cycle.
//
// build sees the state produced by the previous frame. If it fails the tree
// is dropped, the state is left untouched and the error is returned.
func (c *Ctx) Frame(in Input, build Builder) (*Frame, error) {
	prev := c.state
	root := NewNode(VerticalWidget())

	end := profiler.Start("ui.Build")
	err := build(NewUi(root, &prev))
	end()
	if err != nil {
		c.log.Warn("frame build failed", zap.Uint64("frame", c.frames), zap.Error(err))
		return nil, fmt.Errorf("frame %d: %w", c.frames, err)
	}

	end = profiler.Start("ui.Layout")
	lt := Layout(root, c.metrics)
	end()

	end = profiler.Start("ui.Flatten")
	items, err := Zip(FlattenWidgets(root), FlattenLayout(lt, c.origin))
	end()
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", c.frames, err)
	}

	end = profiler.Start("ui.Interact")
	next := prev.Update(items, in)
	end()

	c.logTransitions(prev, next)
	c.state = next
	c.frames++

	return &Frame{Root: root, Layout: lt, Items: items, State: next}, nil
}

func (c *Ctx) logTransitions(prev, next InteractionState) {
	if !c.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	if !prev.Hover.Same(next.Hover) {
		c.log.Debug("hover", zap.Stringer("from", prev.Hover), zap.Stringer("to", next.Hover))
	}
	if !prev.DragBegin.Same(next.DragBegin) {
		c.log.Debug("drag origin", zap.Stringer("from", prev.DragBegin), zap.Stringer("to", next.DragBegin))
	}
	if uid, ok := next.Hover.Get(); ok && next.Clicked(uid) {
		c.log.Debug("click", zap.Stringer("uid", uid))
	}
}

// Find returns the first item with the given uid.
func (f *Frame) Find(uid WidgetUID) (Item, bool) {
	for _, it := range f.Items {
		if it.UID.Equal(uid) {
			return it, true
		}
	}
	return Item{}, false
}

// FindKey resolves key against the frame's tree and returns its item.
func (f *Frame) FindKey(key string) (Item, error) {
	u, err := NewUi(f.Root, nil).Find(key)
	if err != nil {
		return Item{}, err
	}
	it, _ := f.Find(u.UID())
	return it, nil
}
