package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/fonts"
	"github.com/uzimpp/elemental-dungeon-sub000/session"
	"golang.org/x/image/font"
)

// GameOverScene shows the finished run next to the best one on record.
type GameOverScene struct {
	sceneChanger SceneChanger
	setup        *Setup
	record       session.Record
	best         session.Record
	hasBest      bool
}

func NewGameOverScene(sc SceneChanger, setup *Setup, record session.Record) *GameOverScene {
	gs := &GameOverScene{sceneChanger: sc, setup: setup, record: record}
	if setup.Store != nil {
		records, err := setup.Store.Load()
		if err != nil {
			log.Printf("Warning: Could not load past sessions: %v", err)
		}
		gs.best, gs.hasBest = session.Best(records)
	}
	return gs
}

func (gs *GameOverScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.sceneChanger.ChangeScene(NewArenaScene(gs.sceneChanger, gs.setup))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	b := screen.Bounds()
	title := fonts.Title.Get()
	body := fonts.Bold.Get()

	center := func(face font.Face, s string, y int, c color.Color) {
		w := text.BoundString(face, s).Dx()
		text.Draw(screen, s, face, (b.Dx()-w)/2, y, c)
	}

	center(title, "GAME OVER", b.Dy()/3, cfg.Red)
	center(body, fmt.Sprintf("Reached wave %d after %.0fs", gs.record.WaveReached, gs.record.Survived), b.Dy()/3+60, cfg.White)
	for i, n := range gs.record.TotalCasts() {
		if i >= len(gs.record.Skills) {
			break
		}
		center(fonts.HUD.Get(), fmt.Sprintf("%s x%d", gs.record.Skills[i], n), b.Dy()/3+100+i*22, cfg.White)
	}
	if gs.hasBest {
		center(body, fmt.Sprintf("Best: wave %d by %s", gs.best.WaveReached, gs.best.Name), b.Dy()*3/4, cfg.White)
	}
	center(fonts.HUDSmall.Get(), "Press Enter to play again", b.Dy()-40, cfg.White)
}
