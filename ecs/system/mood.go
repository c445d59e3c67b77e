package system

import (
	"log/slog"
	"math/rand/v2"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

// TrackLoader opens a playable sink for a track path.
type TrackLoader interface {
	Open(track string) (component.Sink, error)
}

// trackVolume is the nominal level of a track; the music bus carries the
// user setting.
const trackVolume = 1.0

// MoodSystem owns the background soundtrack. A mood change fades every
// playing track out and a random track of the new mood in.
type MoodSystem struct {
	w       *ecs.World
	gs      *state.GameState
	screens ScreenReader
	sources *prefabs.AudioSources
	loader  TrackLoader
	rng     *rand.Rand
}

func NewMoodSystem(w *ecs.World, bus *ecs.Bus, gs *state.GameState, screens ScreenReader, sources *prefabs.AudioSources, loader TrackLoader, rng *rand.Rand) *MoodSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	m := &MoodSystem{
		w:       w,
		gs:      gs,
		screens: screens,
		sources: sources,
		loader:  loader,
		rng:     rng,
	}

	ecs.Subscribe(bus, func(ev event.ChangeMood) { m.ChangeMood(ev.Mood) })

	return m
}

// StartSoundtrack starts a looping exploration track. Tracks paused by a
// previous StopSoundtrack are dropped.
func (m *MoodSystem) StartSoundtrack() {
	for _, e := range ecs.Query(m.w, component.MusicTagComponent.Kind()) {
		despawnTrack(m.w, e)
	}
	m.gs.CurrentMood = state.MoodExploration
	m.spawn(state.MoodExploration, false)
}

// StopSoundtrack pauses every background track.
func (m *MoodSystem) StopSoundtrack() {
	ecs.ForEach2(m.w, component.MusicTagComponent.Kind(), component.SamplePlayerComponent.Kind(), func(e ecs.Entity, _ *component.MusicTag, sp *component.SamplePlayer) {
		sp.Paused = true
		slog.Info("mood: pause track", "track", sp.Track)
	})
}

// ChangeMood crossfades to a random track of mood. Outside Gameplay the mood
// is only recorded.
func (m *MoodSystem) ChangeMood(mood state.MoodType) {
	prev := m.gs.CurrentMood
	m.gs.CurrentMood = mood
	if m.screens != nil && m.screens.Current() != state.ScreenGameplay {
		slog.Debug("mood: change outside gameplay", "mood", mood)
		return
	}
	slog.Info("mood: change", "from", prev, "to", mood)

	for _, e := range ecs.Query(m.w, component.MusicTagComponent.Kind()) {
		ecs.Remove(m.w, e, component.FadeInTagComponent.Kind())
		if err := ecs.Add(m.w, e, component.FadeOutTagComponent.Kind(), &component.FadeOutTag{}); err != nil {
			slog.Error("mood: tag fade out", "entity", e, "err", err)
		}
	}
	m.spawn(mood, true)
}

func (m *MoodSystem) spawn(mood state.MoodType, fadeIn bool) {
	tracks := m.sources.Tracks(mood)
	if len(tracks) == 0 {
		slog.Error("mood: no tracks", "mood", mood, "err", prefabs.ErrEmptyTrackList)
		return
	}
	track := tracks[m.rng.IntN(len(tracks))]

	var sink component.Sink
	if m.loader != nil {
		s, err := m.loader.Open(track)
		if err != nil {
			slog.Error("mood: open track", "track", track, "err", err)
			return
		}
		sink = s
	}
	if _, err := entity.NewMusicTrack(m.w, track, sink, trackVolume, fadeIn); err != nil {
		slog.Error("mood: spawn track", "track", track, "err", err)
		return
	}
	slog.Debug("mood: track", "track", track, "mood", mood, "fade_in", fadeIn)
}

func despawnTrack(w *ecs.World, e ecs.Entity) {
	if sp, ok := ecs.Get(w, e, component.SamplePlayerComponent.Kind()); ok && sp.Sink != nil {
		sp.Sink.Pause()
		if err := sp.Sink.Close(); err != nil {
			slog.Debug("mood: close sink", "track", sp.Track, "err", err)
		}
	}
	ecs.DestroyEntity(w, e)
}
