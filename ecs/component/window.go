package component

// Window is the logical screen the cursor lives in.
type Window struct {
	Width  float64
	Height float64

	CursorX float64
	CursorY float64
	// HasCursor is false while the cursor is outside the window or the window
	// is unfocused.
	HasCursor bool

	// CursorCaptured hides and locks the cursor for camera look.
	CursorCaptured bool
}

var WindowComponent = NewComponent[Window]()

// CursorPosition returns the cursor position and whether it is known.
func (w *Window) CursorPosition() (float64, float64, bool) {
	if w == nil || !w.HasCursor {
		return 0, 0, false
	}
	return w.CursorX, w.CursorY, true
}
