package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/state"
)

// MoodZone is a ground-plane box that asks for a mood while the player is
// inside it. Min and Max are (x, z) corners.
type MoodZone struct {
	Name   string
	Mood   state.MoodType
	Min    mgl64.Vec2
	Max    mgl64.Vec2
	Script string
}

var MoodZoneComponent = NewComponent[MoodZone]()

// Contains reports whether the ground-plane point (x, z) lies in the zone.
func (z *MoodZone) Contains(x, zz float64) bool {
	return x >= z.Min.X() && x <= z.Max.X() && zz >= z.Min.Y() && zz <= z.Max.Y()
}
