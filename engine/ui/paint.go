package ui

import "github.com/hubastard/grui/engine/colors"

// Renderer is what a backend implements to paint a frame.
type Renderer interface {
	// Draws a solid quad centered at (cx, cy) with w,h and color RGBA [0..1]
	DrawQuad(cx, cy, w, h float32, color [4]float32, rotation float32)
	// Draws text top-left at (x,y)
	DrawText(x, y float32, text string, size float32, color [4]float32)
	// Measures text (w,h) for a given font size
	Measure(text string, size float32) (w, h float32)
}

type Style struct {
	FontSize  float32
	Text      colors.Color
	ButtonBg  colors.Color
	Container colors.Color // zero alpha skips container backgrounds
}

var DefaultStyle = Style{
	FontSize: 18,
	Text:     colors.White,
	ButtonBg: colors.Teal,
}

// Paint draws the frame's items in traversal order, so later widgets land on
// top of earlier ones, the same order hover resolution uses.
func Paint(r Renderer, f *Frame, st Style) {
	for i := range f.Items {
		it := &f.Items[i]
		switch it.Widget.Kind {
		case KindButton:
			paintButton(r, it, f.State, st)
		case KindLabel:
			paintLabel(r, it, st)
		default:
			if st.Container[3] > 0 {
				drawRect(r, it.Rect, st.Container)
			}
		}
	}
}

func paintButton(r Renderer, it *Item, s InteractionState, st Style) {
	hot := s.Hover.Is(it.UID)
	active := s.MouseDown && s.DragBegin.Is(it.UID)

	// simple visual feedback
	bg := st.ButtonBg
	if active {
		bg = bg.Shade(0.85)
	} else if hot {
		bg = bg.Shade(1.15)
	}
	if bg[3] > 0 {
		drawRect(r, it.Rect, bg)
	}

	// label centered inside
	tw, th := r.Measure(it.Widget.Text, st.FontSize)
	tx := it.Rect.Pos[0] + (it.Rect.Size[0]-tw)*0.5
	ty := it.Rect.Pos[1] + (it.Rect.Size[1]-th)*0.5
	r.DrawText(tx, ty, it.Widget.Text, st.FontSize, st.Text)
}

func paintLabel(r Renderer, it *Item, st Style) {
	// left aligned, vertically centered
	_, th := r.Measure(it.Widget.Text, st.FontSize)
	ty := it.Rect.Pos[1] + (it.Rect.Size[1]-th)*0.5
	r.DrawText(it.Rect.Pos[0], ty, it.Widget.Text, st.FontSize, st.Text.WithAlpha(0.5))
}

func drawRect(r Renderer, rc Rect, c colors.Color) {
	cx, cy := rc.Center()
	r.DrawQuad(cx, cy, rc.Size[0], rc.Size[1], c, 0)
}
