package game

// Event is one raw input event from the presentation, in arrival order.
type Event interface {
	event()
}

// Quit ends the session immediately, in any state.
type Quit struct{}

// PointerMoved tracks the pointer for hover rendering. It never changes game state.
type PointerMoved struct {
	X, Y int
}

// PointerReleased is a click at (X, Y) in canvas units.
type PointerReleased struct {
	X, Y int
}

func (Quit) event()            {}
func (PointerMoved) event()    {}
func (PointerReleased) event() {}
