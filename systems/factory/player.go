package factory

import (
	"github.com/uzimpp/elemental-dungeon-sub000/archetypes"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64, deck []*skills.Skill, name string) *donburi.Entry {
	cfg := configOf(w)
	player := archetypes.Player.Spawn(w)

	if name == "" {
		name = cfg.Player.Name
	}

	attachBody(w, player, x, y, cfg.Player.Radius, cfg.Player.WalkSpeed, tags.ResolvPlayer)
	attachFighter(player, cfg, cfg.Player.MaxHealth)

	components.Player.SetValue(player, components.PlayerData{
		Name:       name,
		Stamina:    cfg.Player.MaxStamina,
		MaxStamina: cfg.Player.MaxStamina,
	})
	components.Deck.SetValue(player, components.DeckData{
		Skills:      deck,
		SummonLimit: cfg.Player.SummonLimit,
	})
	components.Input.SetValue(player, components.InputData{})

	return player
}
