package state

// GameState holds the fields shared by the modal stack, the camera and the
// mood controller. One instance is created at startup and passed explicitly
// to every system that reads or writes it.
type GameState struct {
	// Modals is the modal stack, top is the last element. Only non-empty
	// while the current screen is Gameplay.
	Modals     []Modal
	LastScreen Screen
	// CurrentMood selects the music pool.
	CurrentMood MoodType
	// CameraMode is only meaningful for the top-down camera.
	CameraMode   CameraMode
	InputContext InputContext

	DiagnosticsVisible bool
	DebugUIVisible     bool
	Paused             bool
	Muted              bool

	// ModalPaused records that opening the menu paused the game, so closing
	// it only undoes its own pause.
	ModalPaused bool
	// ModalToggledCursor records that opening the menu released the camera
	// cursor.
	ModalToggledCursor bool
}

// NewGameState returns the startup defaults.
func NewGameState() *GameState {
	return &GameState{
		LastScreen:         ScreenTitle,
		CurrentMood:        MoodExploration,
		CameraMode:         CameraModeMove,
		InputContext:       InputContextModal,
		DiagnosticsVisible: true,
	}
}

// Reset clears the per-session fields when returning to the title screen.
// Diagnostics, debug UI and camera mode survive.
func (s *GameState) Reset() {
	s.Modals = s.Modals[:0]
	s.Paused = false
	s.Muted = false
	s.ModalPaused = false
	s.ModalToggledCursor = false
}

// TopModal returns the modal on top of the stack.
func (s *GameState) TopModal() (Modal, bool) {
	if len(s.Modals) == 0 {
		return 0, false
	}
	return s.Modals[len(s.Modals)-1], true
}

// ModalDepth returns the number of stacked modals.
func (s *GameState) ModalDepth() int {
	return len(s.Modals)
}
