package factory

import (
	"github.com/uzimpp/elemental-dungeon-sub000/archetypes"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
)

// CreateSummon spawns an allied fighter. Speed and damage come from the
// skill, the rest from the summon config.
func CreateSummon(w donburi.World, x, y float64, def skills.Definition) *donburi.Entry {
	cfg := configOf(w)
	summon := archetypes.Summon.Spawn(w)

	attachBody(w, summon, x, y, cfg.Summon.Radius, def.Speed, tags.ResolvSummon)
	attachFighter(summon, cfg, cfg.Summon.MaxHealth)

	components.Summon.SetValue(summon, components.SummonData{
		Skill:   def.Name,
		Element: def.Element,
	})
	components.Combat.SetValue(summon, components.CombatData{
		Kind:           components.KindSummon,
		Damage:         def.Damage,
		AttackRadius:   cfg.Summon.AttackRadius,
		AttackCooldown: cfg.Summon.AttackCooldown,
	})

	return summon
}
