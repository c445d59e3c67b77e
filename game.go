package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/ecs/system"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
	"github.com/milk9111/overworld/ui"
)

// Options are the command line overrides.
type Options struct {
	CameraStrategy string
	Watch          bool
}

type Game struct {
	world     *ecs.World
	bus       *ecs.Bus
	clock     *ecs.Time
	gs        *state.GameState
	screens   *state.ScreenMachine
	scheduler *ecs.Scheduler

	cfg    *prefabs.Config
	hud    *system.HUDSystem
	modal  *system.ModalSystem
	driver system.CameraDriver
	mood   *system.MoodSystem
	zones  *system.MoodZoneSystem
	menus  *ui.Screens

	watcher *prefabs.Watcher
	quit    bool
}

func NewGame(opts Options) (*Game, error) {
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("game: config: %w", err)
	}
	if opts.CameraStrategy != "" {
		strategy, err := state.ParseCameraStrategy(opts.CameraStrategy)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		cfg.Camera.Strategy = strategy
	}
	settings, err := prefabs.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("game: settings: %w", err)
	}
	sources, err := prefabs.LoadAudioSources()
	if err != nil {
		return nil, fmt.Errorf("game: audio sources: %w", err)
	}

	w := ecs.NewWorld()
	bus := ecs.NewBus()
	clock := ecs.NewTime()
	gs := state.NewGameState()
	screens := state.NewScreenMachine(gs)

	if _, err := entity.NewSceneCamera(w, cfg.Camera.FOV); err != nil {
		return nil, err
	}
	if _, err := entity.NewWindow(w, common.BaseWidth, common.BaseHeight); err != nil {
		return nil, err
	}
	if err := entity.NewAudioBuses(w, settings.MusicVolume(), settings.SfxVolume()); err != nil {
		return nil, err
	}
	if err := entity.NewMoodZones(w, cfg.Zones); err != nil {
		return nil, err
	}

	lockKey, err := system.ParseKey(cfg.Camera.CursorLockKey)
	if err != nil {
		return nil, fmt.Errorf("game: cursor lock key: %w", err)
	}

	physics := system.NewPhysicsSystem(clock)
	hud := system.NewHUDSystem(w, bus, gs, clock, settings)
	driver, err := system.NewCameraDriver(w, gs, clock, physics, cfg.Camera)
	if err != nil {
		return nil, err
	}
	loader := assets.NewTrackLoader()

	g := &Game{
		world:   w,
		bus:     bus,
		clock:   clock,
		gs:      gs,
		screens: screens,
		cfg:     cfg,
		hud:     hud,
		driver:  driver,
	}

	g.modal = system.NewModalSystem(w, bus, gs, screens, ui.NewOverlays(bus, hud), hud)
	g.mood = system.NewMoodSystem(w, bus, gs, screens, sources, loader, nil)
	g.zones = system.NewMoodZoneSystem(bus, gs, clock, screens, nil)
	g.menus = ui.NewScreens(bus, screens, hud)
	system.NewDevToolsSystem(w, bus, gs, nil)

	load := func() error {
		if err := sources.Validate(); err != nil {
			return err
		}
		return loader.Preload(sources.All())
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(bus, gs, lockKey),
		system.NewScreenFlowSystem(bus, screens, gs, clock, cfg.SplashSeconds, load, hud.Resync),
		g.modal,
		system.NewPlayerControllerSystem(bus, clock),
		g.zones,
		system.NewCameraSystem(bus, gs, clock, driver),
		physics,
		system.NewFadeSystem(clock, cfg.FadeSeconds),
		system.NewAudioSystem(),
	)

	g.wireScreens()
	ecs.Subscribe(bus, func(event.Quit) { g.quit = true })
	ecs.Subscribe(bus, func(event.Back) { g.backFromMenu() })

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			slog.Warn("game: watch disabled", "err", err)
		} else {
			g.watcher = watcher
		}
	}

	slog.Info("game: ready", "camera", cfg.Camera.Strategy, "zones", len(cfg.Zones))
	screens.Start()
	return g, nil
}

func (g *Game) wireScreens() {
	g.screens.OnEnter(state.ScreenGameplay, func() {
		g.bus.Trigger(event.SwitchInputContext{Context: state.InputContextGameplay})
		if _, err := entity.NewPlayer(g.world, g.cfg.Player.Spawn.Vec3(), g.cfg.Player.MoveSpeed); err != nil {
			slog.Error("game: spawn player", "err", err)
		}
		if err := entity.NewIndicators(g.world, g.gs); err != nil {
			slog.Error("game: spawn indicators", "err", err)
		}
		g.hud.Resync()
		g.driver.OnEnterGameplay()
		g.mood.StartSoundtrack()
	})

	g.screens.OnExit(state.ScreenGameplay, func() {
		g.modal.ExitGameplay()
		g.driver.OnExitGameplay()
		g.mood.StopSoundtrack()
		system.DespawnScoped(g.world, state.ScreenGameplay)
	})
}

// backFromMenu lets Esc leave the secondary title menus.
func (g *Game) backFromMenu() {
	switch g.screens.Current() {
	case state.ScreenSettings, state.ScreenCredits, state.ScreenTutorial:
		g.screens.GoTo(state.ScreenTitle)
	}
}

func (g *Game) Update() error {
	if g.quit {
		g.Close()
		return ebiten.Termination
	}

	g.pollWatcher()
	g.clock.Advance(1 / float64(ebiten.TPS()))

	if g.screens.Current() != state.ScreenGameplay {
		g.menus.Update()
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	current := g.screens.Current()
	if current == state.ScreenGameplay {
		ui.DrawWorld(g.world, screen)
		ui.DrawIndicators(g.world, screen)
		g.scheduler.Draw(g.world, screen)
	} else {
		g.menus.Draw(screen)
	}

	if g.gs.DiagnosticsVisible {
		ui.DrawDiagnostics(g.world, screen, g.gs, current)
	}
	if g.gs.DebugUIVisible {
		ui.DrawZoneList(g.world, screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			slog.Debug("game: close watcher", "err", err)
		}
		g.watcher = nil
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			slog.Warn("game: watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeSettings:
		settings, err := prefabs.LoadSettings()
		if err != nil {
			slog.Warn("game: reload settings", "err", err)
			return
		}
		g.hud.SetSettings(settings)
		slog.Info("game: settings reloaded")
	case prefabs.ChangeScript:
		g.zones.Reload()
		slog.Info("game: zone scripts reloaded", "file", change.Path)
	default:
		slog.Debug("game: change ignored until restart", "file", change.Path)
	}
}
