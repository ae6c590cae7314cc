package core

// Layer gets the same hooks as App. OnEvent returns true to stop the event
// from reaching lower layers and the app.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool
}

// LayerStack renders bottom to top and offers events top to bottom.
type LayerStack struct{ layers []Layer }

func (s *LayerStack) Push(l Layer) { s.layers = append(s.layers, l) }

func (s *LayerStack) Len() int { return len(s.layers) }

// Pop removes the top layer without detaching it.
func (s *LayerStack) Pop() (Layer, bool) {
	n := len(s.layers)
	if n == 0 {
		return nil, false
	}
	top := s.layers[n-1]
	s.layers = s.layers[:n-1]
	return top, true
}

// ForEach visits layers from the bottom.
func (s *LayerStack) ForEach(f func(Layer)) {
	for _, l := range s.layers {
		f(l)
	}
}

// Dispatch offers ev to the layers from the top and reports whether one
// handled it.
func (s *LayerStack) Dispatch(e *Engine, ev Event) bool {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}
