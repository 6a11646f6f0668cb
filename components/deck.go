package components

import (
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/yohamta/donburi"
)

// DeckData is the player's equipped skills and the live entities they
// spawned, oldest first.
type DeckData struct {
	Skills      []*skills.Skill
	Summons     []donburi.Entity
	Projectiles []donburi.Entity
	SummonLimit int
}

var Deck = donburi.NewComponentType[DeckData]()
