package component

type BusKind string

const (
	BusMusic BusKind = "music"
	BusSfx   BusKind = "sfx"
)

// AudioBus scales every sink routed through it.
type AudioBus struct {
	Kind   BusKind
	Volume float64
}

var AudioBusComponent = NewComponent[AudioBus]()
