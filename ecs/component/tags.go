package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// SceneCameraTag marks the one camera entity of the process.
type SceneCameraTag struct{}

var SceneCameraTagComponent = NewComponent[SceneCameraTag]()

// MusicTag marks background music playback entities.
type MusicTag struct{}

var MusicTagComponent = NewComponent[MusicTag]()

// FadeInTag ramps a music entity up to its volume, then is removed.
type FadeInTag struct{}

var FadeInTagComponent = NewComponent[FadeInTag]()

// FadeOutTag ramps a music entity down to silence, then despawns it.
type FadeOutTag struct{}

var FadeOutTagComponent = NewComponent[FadeOutTag]()
