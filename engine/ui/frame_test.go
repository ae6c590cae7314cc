package ui

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hubastard/grui/engine/decl"
)

// signInSource is vertical { button("Sign in") } in declarative form.
var signInSource = []decl.Item{
	decl.New(TagVertical, decl.List(
		decl.New(TagButton, decl.String("Sign in")).WithKey("signin"),
	)),
}

func TestFrameClickVisibleToNextBuild(t *testing.T) {
	ctx := New()
	var clicks []bool
	build := func(ui *Ui) error {
		if err := ui.Populate(signInSource); err != nil {
			return err
		}
		b, err := ui.Find("signin")
		if err != nil {
			return err
		}
		clicks = append(clicks, b.Clicked())
		return nil
	}

	inputs := []Input{
		{MouseX: 10, MouseY: 10, MouseDown: true},
		{MouseX: 10, MouseY: 10, MouseDown: false},
		{MouseX: 10, MouseY: 10, MouseDown: false},
	}
	var frames []*Frame
	for _, in := range inputs {
		f, err := ctx.Frame(in, build)
		if err != nil {
			t.Fatalf("Frame: %v", err)
		}
		frames = append(frames, f)
	}

	if !frames[0].State.MousePressed || !frames[0].State.DragBegin.Is(buttonUID) {
		t.Errorf("frame 1 state = %+v", frames[0].State)
	}
	if !frames[1].State.Clicked(buttonUID) {
		t.Errorf("frame 2 state must click: %+v", frames[1].State)
	}
	// builders see the previous frame's state
	want := []bool{false, false, true}
	for i := range want {
		if clicks[i] != want[i] {
			t.Errorf("build %d saw Clicked=%v, want %v", i, clicks[i], want[i])
		}
	}
	if ctx.Frames() != 3 {
		t.Errorf("frames = %d, want 3", ctx.Frames())
	}
}

func TestFrameBuildErrorKeepsState(t *testing.T) {
	ctx := New()
	good := func(ui *Ui) error { return ui.Populate(signInSource) }
	if _, err := ctx.Frame(Input{MouseX: 10, MouseY: 10, MouseDown: true}, good); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	before := ctx.State()

	bad := func(ui *Ui) error {
		return ui.Populate([]decl.Item{decl.New("bogus", decl.String("x"))})
	}
	f, err := ctx.Frame(Input{MouseX: 10, MouseY: 10}, bad)
	if !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("err = %v, want ErrUnknownTag", err)
	}
	if f != nil {
		t.Error("failed frame must not be returned")
	}
	after := ctx.State()
	if after.MouseDown != before.MouseDown || !after.DragBegin.Same(before.DragBegin) {
		t.Errorf("state changed on failed frame: %+v -> %+v", before, after)
	}
	if ctx.Frames() != 1 {
		t.Errorf("frames = %d, want 1", ctx.Frames())
	}
}

func TestFrameOriginAndFindKey(t *testing.T) {
	ctx := New(WithOrigin(50, 50))
	f, err := ctx.Frame(Input{MouseX: 60, MouseY: 60}, func(ui *Ui) error { return ui.Populate(signInSource) })
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	it, err := f.FindKey("signin")
	if err != nil {
		t.Fatalf("FindKey: %v", err)
	}
	if it.Rect.Pos != [2]float32{50, 50} {
		t.Errorf("pos = %v, want [50 50]", it.Rect.Pos)
	}
	if !f.State.Hover.Is(it.UID) {
		t.Errorf("hover = %s, want %s", f.State.Hover, it.UID)
	}
	if _, err := f.FindKey("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFrameLogsClick(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := New(WithLogger(zap.New(core)))
	build := func(ui *Ui) error { return ui.Populate(signInSource) }
	for _, down := range []bool{true, false} {
		if _, err := ctx.Frame(Input{MouseX: 1, MouseY: 1, MouseDown: down}, build); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	if n := logs.FilterMessage("click").Len(); n != 1 {
		t.Errorf("click logged %d times, want 1", n)
	}
}

type recorder struct {
	quads []Rect
	texts []string
}

func (r *recorder) DrawQuad(cx, cy, w, h float32, _ [4]float32, _ float32) {
	r.quads = append(r.quads, Rect{Pos: [2]float32{cx - w/2, cy - h/2}, Size: [2]float32{w, h}})
}
func (r *recorder) DrawText(_, _ float32, text string, _ float32, _ [4]float32) {
	r.texts = append(r.texts, text)
}
func (r *recorder) Measure(text string, _ float32) (float32, float32) {
	return float32(len(text)) * 8, 16
}

func TestPaint(t *testing.T) {
	ctx := New()
	f, err := ctx.Frame(Input{}, func(ui *Ui) error {
		ui.Label("Login")
		ui.Button("Sign in")
		return nil
	})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	var r recorder
	Paint(&r, f, DefaultStyle)
	if len(r.quads) != 1 || r.quads[0] != (Rect{Pos: [2]float32{0, 20}, Size: [2]float32{140, 28}}) {
		t.Errorf("quads = %v", r.quads)
	}
	if len(r.texts) != 2 || r.texts[0] != "Login" || r.texts[1] != "Sign in" {
		t.Errorf("texts = %v", r.texts)
	}
}
