package prefabs

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/state"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g.
// OVERWORLD_CAMERA_STRATEGY=third_person.
const EnvPrefix = "OVERWORLD_"

var (
	ErrEmptyTrackList = errors.New("prefabs: empty track list")
	ErrInvalidConfig  = errors.New("prefabs: invalid config")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Config holds the numeric tunables read once at startup.
type Config struct {
	Camera CameraConfig `yaml:"camera" envPrefix:"CAMERA_"`
	Player PlayerConfig `yaml:"player" envPrefix:"PLAYER_"`
	Zones  []ZoneSpec   `yaml:"zones"`

	SplashSeconds float64 `yaml:"splash_seconds" env:"SPLASH_SECONDS"`
	FadeSeconds   float64 `yaml:"fade_seconds" env:"FADE_SECONDS"`
}

type CameraConfig struct {
	Strategy state.CameraStrategy `yaml:"strategy" env:"STRATEGY"`

	// top-down
	EdgeMargin     float64 `yaml:"edge_margin" env:"EDGE_MARGIN"`
	EdgeSpeedFloor float64 `yaml:"edge_speed_floor" env:"EDGE_SPEED_FLOOR"`
	MaxSpeed       float64 `yaml:"max_speed" env:"MAX_SPEED"`
	RotateSpeed    float64 `yaml:"rotate_speed" env:"ROTATE_SPEED"`
	ZoomSpeed      float64 `yaml:"zoom_speed" env:"ZOOM_SPEED"`
	MinHeight      float64 `yaml:"min_height" env:"MIN_HEIGHT"`
	MaxHeight      float64 `yaml:"max_height" env:"MAX_HEIGHT"`
	Follow         bool    `yaml:"follow" env:"FOLLOW"`
	FollowHeight   float64 `yaml:"follow_height"`
	FollowDistance float64 `yaml:"follow_distance"`

	// third-person
	FOV           float64    `yaml:"fov" env:"FOV"`
	Zoom          ZoomBounds `yaml:"zoom"`
	OrbitPitch    float64    `yaml:"orbit_pitch"`
	CursorLockKey string     `yaml:"cursor_lock_key" env:"CURSOR_LOCK_KEY"`
}

// ZoomBounds limits the orbit radius.
type ZoomBounds struct {
	Min float64 `yaml:"min" env:"ZOOM_MIN"`
	Max float64 `yaml:"max" env:"ZOOM_MAX"`
}

type PlayerConfig struct {
	Spawn     Vec3Spec `yaml:"spawn"`
	MoveSpeed float64  `yaml:"move_speed" env:"MOVE_SPEED"`
}

// ZoneSpec is a mood zone on the ground plane.
type ZoneSpec struct {
	Name   string         `yaml:"name"`
	Mood   state.MoodType `yaml:"mood"`
	Min    [2]float64     `yaml:"min"`
	Max    [2]float64     `yaml:"max"`
	Script string         `yaml:"script"`
}

// LoadConfig reads config.yaml, fills defaults, applies environment
// overrides and validates the result.
func LoadConfig() (*Config, error) {
	cfg, err := LoadSpec[Config]("config.yaml")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("prefabs: env overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the built-in tunables, used by tests and as the
// fallback for keys missing from config.yaml.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Camera.Strategy == "" {
		c.Camera.Strategy = state.CameraTopDown
	}
	if c.Camera.EdgeMargin == 0 {
		c.Camera.EdgeMargin = 40
	}
	if c.Camera.EdgeSpeedFloor == 0 {
		c.Camera.EdgeSpeedFloor = 0.1
	}
	if c.Camera.MaxSpeed == 0 {
		c.Camera.MaxSpeed = 20
	}
	if c.Camera.RotateSpeed == 0 {
		c.Camera.RotateSpeed = 0.01
	}
	if c.Camera.ZoomSpeed == 0 {
		c.Camera.ZoomSpeed = 2
	}
	if c.Camera.MinHeight == 0 {
		c.Camera.MinHeight = 5
	}
	if c.Camera.MaxHeight == 0 {
		c.Camera.MaxHeight = 60
	}
	if c.Camera.FollowHeight == 0 {
		c.Camera.FollowHeight = c.Camera.MaxHeight / 2
	}
	if c.Camera.FollowDistance == 0 {
		c.Camera.FollowDistance = c.Camera.MaxHeight / 2
	}
	if c.Camera.FOV == 0 {
		c.Camera.FOV = 60
	}
	if c.Camera.Zoom.Min == 0 {
		c.Camera.Zoom.Min = 3
	}
	if c.Camera.Zoom.Max == 0 {
		c.Camera.Zoom.Max = 25
	}
	if c.Camera.OrbitPitch == 0 {
		c.Camera.OrbitPitch = 20
	}
	if c.Camera.CursorLockKey == "" {
		c.Camera.CursorLockKey = "L"
	}
	if c.Player.MoveSpeed == 0 {
		c.Player.MoveSpeed = 8
	}
	if c.SplashSeconds == 0 {
		c.SplashSeconds = 1.5
	}
	if c.FadeSeconds == 0 {
		c.FadeSeconds = 2
	}
}

func (c *Config) Validate() error {
	cam := c.Camera
	switch {
	case cam.Strategy != state.CameraTopDown && cam.Strategy != state.CameraThirdPerson:
		return fmt.Errorf("%w: camera.strategy %q", ErrInvalidConfig, cam.Strategy)
	case cam.EdgeMargin <= 0:
		return fmt.Errorf("%w: camera.edge_margin must be positive", ErrInvalidConfig)
	case cam.EdgeSpeedFloor <= 0 || cam.EdgeSpeedFloor > 1:
		return fmt.Errorf("%w: camera.edge_speed_floor must be in (0, 1]", ErrInvalidConfig)
	case cam.MaxSpeed <= 0 || cam.RotateSpeed <= 0 || cam.ZoomSpeed <= 0:
		return fmt.Errorf("%w: camera speeds must be positive", ErrInvalidConfig)
	case cam.MinHeight >= cam.MaxHeight:
		return fmt.Errorf("%w: camera.min_height %.2f >= max_height %.2f", ErrInvalidConfig, cam.MinHeight, cam.MaxHeight)
	case cam.Zoom.Min <= 0 || cam.Zoom.Min >= cam.Zoom.Max:
		return fmt.Errorf("%w: camera.zoom bounds [%.2f, %.2f]", ErrInvalidConfig, cam.Zoom.Min, cam.Zoom.Max)
	case cam.FOV <= 0 || cam.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %.2f", ErrInvalidConfig, cam.FOV)
	case c.FadeSeconds <= 0:
		return fmt.Errorf("%w: fade_seconds must be positive", ErrInvalidConfig)
	}
	for _, z := range c.Zones {
		if z.Min[0] > z.Max[0] || z.Min[1] > z.Max[1] {
			return fmt.Errorf("%w: zone %q has min > max", ErrInvalidConfig, z.Name)
		}
	}
	return nil
}

// Settings are the user-adjustable volume levels, each in [0, 1].
type Settings struct {
	General float64 `yaml:"general"`
	Music   float64 `yaml:"music"`
	Sfx     float64 `yaml:"sfx"`
}

func LoadSettings() (*Settings, error) {
	s, err := LoadSpec[Settings]("settings.yaml")
	if err != nil {
		return nil, err
	}
	s.General = clamp01(s.General)
	s.Music = clamp01(s.Music)
	s.Sfx = clamp01(s.Sfx)
	return &s, nil
}

// MusicVolume is the configured music bus level.
func (s *Settings) MusicVolume() float64 {
	if s == nil {
		return 1
	}
	return clamp01(s.General * s.Music)
}

// SfxVolume is the configured effects bus level.
func (s *Settings) SfxVolume() float64 {
	if s == nil {
		return 1
	}
	return clamp01(s.General * s.Sfx)
}

// AudioSources maps each mood to its music tracks.
type AudioSources struct {
	Explore []string `yaml:"explore"`
	Combat  []string `yaml:"combat"`
}

func LoadAudioSources() (*AudioSources, error) {
	a, err := LoadSpec[AudioSources]("audio.yaml")
	if err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Tracks returns the track list of mood.
func (a *AudioSources) Tracks(mood state.MoodType) []string {
	if a == nil {
		return nil
	}
	switch mood {
	case state.MoodCombat:
		return a.Combat
	default:
		return a.Explore
	}
}

// All returns every track once.
func (a *AudioSources) All() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range [][]string{a.Explore, a.Combat} {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

func (a *AudioSources) Validate() error {
	for _, mood := range []state.MoodType{state.MoodExploration, state.MoodCombat} {
		if len(a.Tracks(mood)) == 0 {
			return fmt.Errorf("%w: mood %s", ErrEmptyTrackList, mood)
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
