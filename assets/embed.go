package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/overworld/ecs/component"
)

//go:embed audio
var assetsFS embed.FS

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process audio context, creating it on first use.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// TrackLoader decodes embedded music once and hands out looping players.
type TrackLoader struct {
	mu      sync.Mutex
	decoded map[string][]byte
}

func NewTrackLoader() *TrackLoader {
	return &TrackLoader{decoded: make(map[string][]byte)}
}

// Preload decodes every track so the first mood change does not stall.
func (l *TrackLoader) Preload(tracks []string) error {
	for _, t := range tracks {
		if _, err := l.pcm(t); err != nil {
			return err
		}
	}
	return nil
}

// Open returns a new looping player for track.
func (l *TrackLoader) Open(track string) (component.Sink, error) {
	pcm, err := l.pcm(track)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := AudioContext().NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: new player %q: %w", track, err)
	}
	return player, nil
}

func (l *TrackLoader) pcm(track string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.decoded[track]; ok {
		return b, nil
	}

	raw, err := LoadFile(track)
	if err != nil {
		return nil, fmt.Errorf("assets: load %q: %w", track, err)
	}
	if !strings.HasSuffix(strings.ToLower(track), ".wav") {
		return nil, fmt.Errorf("assets: unsupported audio format %q", track)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", track, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(stream); err != nil {
		return nil, fmt.Errorf("assets: read wav %q: %w", track, err)
	}
	l.decoded[track] = buf.Bytes()
	return l.decoded[track], nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
