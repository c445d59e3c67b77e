package state

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Modal -trimprefix=Modal
//go:generate go tool stringer -type=MoodType -trimprefix=Mood
//go:generate go tool stringer -type=CameraMode -trimprefix=CameraMode
//go:generate go tool stringer -type=InputContext -trimprefix=InputContext

// Modal is an overlay that can be stacked on top of Gameplay.
type Modal int

const (
	ModalMain Modal = iota
	ModalSettings
)

// MoodType selects the music pool.
type MoodType int

const (
	MoodExploration MoodType = iota
	MoodCombat
)

// ParseMoodType accepts the case-insensitive mood name.
func ParseMoodType(s string) (MoodType, error) {
	for _, m := range []MoodType{MoodExploration, MoodCombat} {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return MoodExploration, fmt.Errorf("state: unknown mood %q", s)
}

// UnmarshalText lets moods be written by name in config files.
func (m *MoodType) UnmarshalText(text []byte) error {
	parsed, err := ParseMoodType(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m MoodType) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// CameraMode decides whether pointer drags move or rotate the free camera.
type CameraMode int

const (
	CameraModeMove CameraMode = iota
	CameraModeRotate
)

// InputContext selects which action bindings are live.
type InputContext int

const (
	InputContextGameplay InputContext = iota
	InputContextModal
)

// CameraStrategy names the camera driver selected at startup.
type CameraStrategy string

const (
	CameraTopDown     CameraStrategy = "top_down"
	CameraThirdPerson CameraStrategy = "third_person"
)

func ParseCameraStrategy(s string) (CameraStrategy, error) {
	switch CameraStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case CameraTopDown, "topdown", "top-down":
		return CameraTopDown, nil
	case CameraThirdPerson, "thirdperson", "third-person", "orbit":
		return CameraThirdPerson, nil
	}
	return "", fmt.Errorf("state: unknown camera strategy %q", s)
}

func (c *CameraStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseCameraStrategy(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
