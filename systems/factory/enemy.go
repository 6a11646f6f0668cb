package factory

import (
	"github.com/uzimpp/elemental-dungeon-sub000/archetypes"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy scaled for the given wave.
func CreateEnemy(w donburi.World, x, y float64, wave int) *donburi.Entry {
	cfg := configOf(w)
	enemy := archetypes.Enemy.Spawn(w)

	attachBody(w, enemy, x, y, cfg.Enemy.Radius, cfg.Enemy.Speed, tags.ResolvEnemy)
	attachFighter(enemy, cfg, cfg.EnemyHealth(wave))

	components.Enemy.SetValue(enemy, components.EnemyData{Wave: wave})
	components.Combat.SetValue(enemy, components.CombatData{
		Kind:           components.KindEnemy,
		Damage:         cfg.Enemy.Damage,
		AttackRadius:   cfg.Enemy.AttackRadius,
		AttackCooldown: cfg.Enemy.AttackCooldown,
	})

	return enemy
}
