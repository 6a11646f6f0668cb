package systems

import (
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
)

const explosionDuration = 0.3

func updateProjectiles(w donburi.World, dt float64, sink effects.Sink) {
	arena := arenaOf(w)
	for _, e := range Projectiles(w) {
		body := components.Body.Get(e)
		if !body.Alive {
			continue
		}
		proj := components.Projectile.Get(e)

		body.Position.X += proj.Direction.X * body.Speed * dt
		body.Position.Y += proj.Direction.Y * body.Speed * dt
		syncObject(e)

		if arena != nil && !arena.Bounds().Contains(body.Position.X, body.Position.Y) {
			explode(w, e, nil, sink)
			continue
		}
		if hit := projectileContact(w, e); hit != nil {
			explode(w, e, hit, sink)
		}
	}
}

// projectileContact returns the nearest targetable enemy the projectile
// touches, allowing a small overlap before contact counts.
func projectileContact(w donburi.World, e *donburi.Entry) *donburi.Entry {
	slack := configOf(w).Skill.ProjectileHitSlack
	body := components.Body.Get(e)

	check := components.Object.Get(e).Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, obj := range check.Objects {
		enemy, ok := obj.Data.(*donburi.Entry)
		if !ok || !isTargetable(enemy) {
			continue
		}
		eb := components.Body.Get(enemy)
		d := distance(body.Position, eb.Position)
		if d >= eb.Radius+body.Radius-slack {
			continue
		}
		if d < bestDist || (d == bestDist && eb.Seq < components.Body.Get(best).Seq) {
			best, bestDist = enemy, d
		}
	}
	return best
}

// explode damages the contacted enemy and everything else within the blast
// radius of the projectile, then retires it.
func explode(w donburi.World, e *donburi.Entry, contact *donburi.Entry, sink effects.Sink) {
	body := components.Body.Get(e)
	proj := components.Projectile.Get(e)
	pos := body.Position

	var hit []*donburi.Entry
	if contact != nil {
		hit = append(hit, contact)
	}
	if proj.BlastRadius > 0 {
		for _, other := range enemiesWithin(w, pos.X, pos.Y, proj.BlastRadius) {
			if contact == nil || other.Entity() != contact.Entity() {
				hit = append(hit, other)
			}
		}
	}
	for _, h := range hit {
		ApplyDamage(w, h, proj.Damage, sink)
	}
	if proj.Pull {
		pullAll(w, hit, pos)
	}

	sink.Emit(effects.Effect{
		Kind:     effects.Explosion,
		X:        pos.X,
		Y:        pos.Y,
		Color:    proj.Color,
		Size:     math.Max(proj.BlastRadius, 10),
		Duration: explosionDuration,
	})
	sink.Play(cfg.SoundExplosion)
	body.Alive = false
}
