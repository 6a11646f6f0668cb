package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/session"
	"github.com/uzimpp/elemental-dungeon-sub000/systems"
	"github.com/uzimpp/elemental-dungeon-sub000/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

const bannerDuration = 2.0

// ArenaScene runs one play session.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        *Setup
	queue        effects.Queue
	tracker      effects.Tracker
	recorder     *session.Recorder
	banner       effects.Banner
	shownWave    int
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, setup *Setup) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, setup: setup}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	as.recorder.Update(as.ecs.World)
	if systems.IsGameOver(as.ecs.World) {
		record, _ := as.recorder.Last()
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, as.setup, record))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	preloadSFX(as.setup.Config.Audio)

	deck, err := as.setup.NewDeck()
	if err != nil {
		log.Printf("Warning: Could not build deck, starting empty: %v", err)
	}
	w := factory.NewWorld(factory.Options{
		Config:     as.setup.Config,
		Arena:      as.setup.Arena,
		Deck:       deck,
		PlayerName: as.setup.PlayerName,
		Metrics:    as.setup.Metrics,
	})
	if as.setup.Autopilot {
		systems.EnableBot(w)
	}
	as.recorder = session.NewRecorder(as.setup.Store)

	as.ecs = ecs.NewECS(w)

	// Input runs even when paused so the pause key works
	as.ecs.AddSystem(UpdateInput)
	as.ecs.AddSystem(as.step)
	as.ecs.AddSystem(as.present)

	as.ecs.AddRenderer(LayerWorld, DrawArena)
	as.ecs.AddRenderer(LayerWorld, DrawEntities)
	as.ecs.AddRenderer(LayerEffects, as.drawEffects)
	as.ecs.AddRenderer(LayerHUD, DrawHUD)
	as.ecs.AddRenderer(LayerHUD, as.drawBanner)
	as.ecs.AddRenderer(LayerHUD, DrawPause)
}

func (as *ArenaScene) step(e *ecs.ECS) {
	systems.Step(e.World, frameTime(), &as.queue)
}

// present hands the frame's effects and sounds to the tracker and mixer.
func (as *ArenaScene) present(e *ecs.ECS) {
	fx, sounds := as.queue.Drain()
	as.tracker.Add(fx...)
	for _, id := range sounds {
		playSFX(id)
	}
	if wave := components.Wave.Get(components.Wave.MustFirst(e.World)); wave.Number != as.shownWave {
		as.shownWave = wave.Number
		as.banner.Show(fmt.Sprintf("Wave %d", wave.Number), bannerDuration)
	}
	if !systems.IsPaused(e.World) {
		as.tracker.Update(frameTime())
		as.banner.Update(frameTime())
	}
}

func (as *ArenaScene) drawBanner(_ *ecs.ECS, screen *ebiten.Image) {
	msg, alpha, ok := as.banner.Visible()
	if !ok {
		return
	}
	DrawBanner(screen, msg, alpha)
}

func (as *ArenaScene) drawEffects(_ *ecs.ECS, screen *ebiten.Image) {
	DrawEffects(screen, as.tracker.Active())
}

func frameTime() float64 {
	return 1 / float64(ebiten.TPS())
}
