package component

// Sink is a playing audio stream. *audio.Player from ebiten satisfies it.
type Sink interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// SamplePlayer is one background music playback. Level is the current ramp
// position, Volume the level it settles at.
type SamplePlayer struct {
	Track   string
	Volume  float64
	Level   float64
	Looping bool
	Paused  bool
	Sink    Sink
}

var SamplePlayerComponent = NewComponent[SamplePlayer]()
