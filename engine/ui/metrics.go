package ui

// Metrics reports the intrinsic extent of a leaf widget. The answer must not
// depend on siblings or on interaction state.
type Metrics interface {
	LeafExtent(w Widget) [2]float32
}

// FixedMetrics gives every button and every label the same size.
type FixedMetrics struct {
	Button [2]float32
	Label  [2]float32
}

// DefaultMetrics matches the sign-in demo: 140x28 buttons and 280x20 labels.
var DefaultMetrics = FixedMetrics{
	Button: [2]float32{140, 28},
	Label:  [2]float32{280, 20},
}

func (m FixedMetrics) LeafExtent(w Widget) [2]float32 {
	switch w.Kind {
	case KindButton:
		return m.Button
	case KindLabel:
		return m.Label
	default:
		return [2]float32{}
	}
}

// Measurer measures a single run of text at a font size.
type Measurer interface {
	Measure(text string, size float32) (w, h float32)
}

type Insets4 struct{ L, T, R, B float32 }

func Insets(l, t, r, b float32) Insets4 { return Insets4{l, t, r, b} }

// TextMetrics sizes leaves from their text plus padding.
type TextMetrics struct {
	M             Measurer
	FontSize      float32
	ButtonPadding Insets4
	LabelPadding  Insets4
	// MinButton keeps short captions clickable.
	MinButton [2]float32
}

func NewTextMetrics(m Measurer, fontSize float32) TextMetrics {
	return TextMetrics{
		M:             m,
		FontSize:      fontSize,
		ButtonPadding: Insets(10, 4, 10, 4),
		LabelPadding:  Insets(0, 2, 0, 2),
	}
}

func (m TextMetrics) LeafExtent(w Widget) [2]float32 {
	if w.IsContainer() {
		return [2]float32{}
	}
	tw, th := m.M.Measure(w.Text, m.FontSize)
	pad := m.LabelPadding
	if w.Kind == KindButton {
		pad = m.ButtonPadding
	}
	ext := [2]float32{tw + pad.L + pad.R, th + pad.T + pad.B}
	if w.Kind == KindButton {
		ext[0] = maxf(ext[0], m.MinButton[0])
		ext[1] = maxf(ext[1], m.MinButton[1])
	}
	return ext
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
