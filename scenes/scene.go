package scenes

import (
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/uzimpp/elemental-dungeon-sub000/session"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	LayerWorld ecs.LayerID = iota
	LayerEffects
	LayerHUD
)

// Setup is everything needed to start a run. It is reused on restart.
type Setup struct {
	Config     *cfg.Config
	Arena      *assets.Arena
	Catalog    *skills.Catalog
	DeckNames  []string
	PlayerName string
	Store      session.Store
	Metrics    *metrics.Collectors
	// Autopilot lets the bot play instead of the keyboard.
	Autopilot bool
}

// NewDeck equips a fresh deck with its own cooldown clocks.
func (s *Setup) NewDeck() ([]*skills.Skill, error) {
	return skills.BuildDeck(s.Catalog, s.DeckNames, s.Config.Skill.DeckSize)
}
