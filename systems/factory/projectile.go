package factory

import (
	"github.com/uzimpp/elemental-dungeon-sub000/archetypes"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile at (x, y) flying along dir, which
// must be unit length or zero.
func CreateProjectile(w donburi.World, x, y float64, dir math2.Vec2, def skills.Definition) *donburi.Entry {
	cfg := configOf(w)
	p := archetypes.Projectile.Spawn(w)

	attachBody(w, p, x, y, cfg.Skill.ProjectileRadius, def.Speed, tags.ResolvProjectile)
	components.Body.Get(p).Facing = dir

	components.Projectile.SetValue(p, components.ProjectileData{
		Skill:       def.Name,
		Direction:   dir,
		Damage:      def.Damage,
		BlastRadius: def.Radius,
		Pull:        def.Pull,
		Color:       def.Element.PrimaryColor(),
	})

	return p
}
