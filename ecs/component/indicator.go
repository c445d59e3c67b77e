package component

type IndicatorKind string

const (
	IndicatorPause IndicatorKind = "pause"
	IndicatorMute  IndicatorKind = "mute"
)

// Indicator is a HUD icon whose visibility mirrors a GameState flag.
type Indicator struct {
	Kind    IndicatorKind
	Visible bool
}

var IndicatorComponent = NewComponent[Indicator]()
