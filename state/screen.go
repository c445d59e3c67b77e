package state

import (
	"fmt"
	"log/slog"
	"strings"
)

//go:generate go tool stringer -type=Screen -trimprefix=Screen

// Screen is the single active top-level mode.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenLoading
	ScreenTutorial
	ScreenCredits
	ScreenSettings
	ScreenTitle
	ScreenGameplay
)

// ParseScreen accepts the case-insensitive screen name.
func ParseScreen(s string) (Screen, error) {
	for sc := ScreenSplash; sc <= ScreenGameplay; sc++ {
		if strings.EqualFold(strings.TrimSpace(s), sc.String()) {
			return sc, nil
		}
	}
	return ScreenSplash, fmt.Errorf("state: unknown screen %q", s)
}

// ScreenMachine owns the active screen and runs enter/exit hooks on
// transitions. Hooks run synchronously in registration order.
type ScreenMachine struct {
	current Screen
	started bool
	state   *GameState

	enter map[Screen][]func()
	exit  map[Screen][]func()
}

// NewScreenMachine starts on the splash screen. Enter hooks of the initial
// screen run on Start.
func NewScreenMachine(gs *GameState) *ScreenMachine {
	return &ScreenMachine{
		current: ScreenSplash,
		state:   gs,
		enter:   make(map[Screen][]func()),
		exit:    make(map[Screen][]func()),
	}
}

func (m *ScreenMachine) Current() Screen {
	return m.current
}

func (m *ScreenMachine) OnEnter(s Screen, fn func()) {
	m.enter[s] = append(m.enter[s], fn)
}

func (m *ScreenMachine) OnExit(s Screen, fn func()) {
	m.exit[s] = append(m.exit[s], fn)
}

// Start runs the enter hooks of the initial screen once.
func (m *ScreenMachine) Start() {
	if m.started {
		return
	}
	m.started = true
	for _, fn := range m.enter[m.current] {
		fn()
	}
}

// GoTo switches to next, running the exit hooks of the current screen and
// then the enter hooks of next. Going to the current screen is a no-op.
func (m *ScreenMachine) GoTo(next Screen) {
	if next == m.current {
		return
	}
	prev := m.current
	slog.Info("screen: transition", "from", prev, "to", next)

	for _, fn := range m.exit[prev] {
		fn()
	}
	m.current = next
	if m.state != nil {
		m.state.LastScreen = prev
	}
	for _, fn := range m.enter[next] {
		fn()
	}
}
