package systems

import (
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/uzimpp/elemental-dungeon-sub000/systems/factory"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

const defaultChainCount = 3

// UseSkill fires the skill in slot at the point (tx, ty). It reports false
// without side effects when the slot is empty, the skill is cooling down
// or the player is dying or still busy with a sweep or a cast.
func UseSkill(w donburi.World, slot int, tx, ty, now float64, sink effects.Sink) bool {
	if sink == nil {
		sink = effects.Discard{}
	}
	e, ok := PlayerEntry(w)
	if !ok {
		return false
	}
	deck := components.Deck.Get(e)
	if slot < 0 || slot >= len(deck.Skills) {
		return false
	}
	skill := deck.Skills[slot]
	if skill == nil || !skill.OffCooldown(now) {
		return false
	}
	if !isTargetable(e) || busyCasting(components.State.Get(e).CurrentState) {
		return false
	}

	skill.Trigger(now)
	recordCast(w, slot, skill)

	body := components.Body.Get(e)
	aim := aimDirection(body, tx, ty)
	body.Facing = aim
	components.Animation.Get(e).Face(aim.X, aim.Y)

	action := cfg.Cast
	if skill.Archetype == skills.Slash {
		action = cfg.Sweep
	} else {
		sink.Play(cfg.SoundCast)
	}
	enterState(w, e, action)

	target := math2.Vec2{X: tx, Y: ty}
	switch skill.Archetype {
	case skills.Projectile:
		castProjectile(w, e, skill, aim, sink)
	case skills.Summon:
		castSummon(w, e, skill, aim, sink)
	case skills.Heal:
		castHeal(w, e, skill, sink)
	case skills.AOE:
		castAOE(w, skill, target, sink)
	case skills.Slash:
		castSlash(w, e, skill, aim, sink)
	case skills.Chain:
		castChain(w, e, skill, sink)
	}
	return true
}

// busyCasting reports whether a new skill would cut the current one short.
func busyCasting(s cfg.StateID) bool {
	return s == cfg.Sweep || s.IsAction()
}

// aimDirection points from the caster to the target, falling back to the
// caster's facing when the two coincide.
func aimDirection(body *components.BodyData, tx, ty float64) math2.Vec2 {
	dir, _ := direction(body.Position, math2.Vec2{X: tx, Y: ty})
	if !isZero(dir) {
		return dir
	}
	if !isZero(body.Facing) {
		return normalize(body.Facing.X, body.Facing.Y)
	}
	return math2.Vec2{X: 0, Y: 1}
}

func castProjectile(w donburi.World, caster *donburi.Entry, skill *skills.Skill, aim math2.Vec2, sink effects.Sink) {
	conf := configOf(w)
	pos := components.Body.Get(caster).Position
	x := pos.X + aim.X*conf.Skill.ProjectileSpawnOffset
	y := pos.Y + aim.Y*conf.Skill.ProjectileSpawnOffset

	p := factory.CreateProjectile(w, x, y, aim, skill.Definition)
	deck := components.Deck.Get(caster)
	deck.Projectiles = append(deck.Projectiles, p.Entity())

	sink.Emit(effects.Effect{
		Kind:     effects.Explosion,
		X:        x,
		Y:        y,
		Color:    skill.Element.PrimaryColor(),
		Size:     10,
		Duration: 0.2,
	})
	sink.Play(cfg.SoundProjectile)
}

// castSummon spawns a summon, evicting the oldest ones first while the deck
// is at its limit.
func castSummon(w donburi.World, caster *donburi.Entry, skill *skills.Skill, aim math2.Vec2, sink effects.Sink) {
	conf := configOf(w)
	deck := components.Deck.Get(caster)
	for len(deck.Summons) > 0 && len(deck.Summons) >= deck.SummonLimit {
		oldest := deck.Summons[0]
		deck.Summons = deck.Summons[1:]
		if w.Valid(oldest) {
			removeEntity(w, w.Entry(oldest))
		}
		if m := metricsOf(w); m != nil {
			m.SummonsEvicted.Inc()
		}
	}

	pos := components.Body.Get(caster).Position
	s := factory.CreateSummon(w,
		pos.X+aim.X*conf.Skill.SummonSpawnOffset,
		pos.Y+aim.Y*conf.Skill.SummonSpawnOffset,
		skill.Definition,
	)
	sbody := components.Body.Get(s)
	ClampToArena(sbody, arenaOf(w))
	syncObject(s)

	deck = components.Deck.Get(caster)
	deck.Summons = append(deck.Summons, s.Entity())

	sink.Emit(effects.Effect{
		Kind:     effects.Explosion,
		X:        sbody.Position.X,
		Y:        sbody.Position.Y,
		Color:    skill.Element.PrimaryColor(),
		Size:     20,
		Duration: 0.3,
	})
	sink.Play(cfg.SoundSummon)
}

func castHeal(w donburi.World, caster *donburi.Entry, skill *skills.Skill, sink effects.Sink) {
	Heal(caster, skill.HealAmount)
	pos := components.Body.Get(caster).Position
	sink.Emit(effects.Effect{
		Kind:     effects.HealGlow,
		X:        pos.X,
		Y:        pos.Y,
		Color:    skill.Element.PrimaryColor(),
		Size:     30,
		Duration: 0.5,
	})
	sink.Play(cfg.SoundHeal)

	if !skill.HealSummons {
		return
	}
	for _, s := range Summons(w) {
		if !isTargetable(s) {
			continue
		}
		hp := components.Health.Get(s)
		if hp.Current >= hp.Max {
			continue
		}
		Heal(s, skill.HealAmount)
		spos := components.Body.Get(s).Position
		sink.Emit(effects.Effect{
			Kind:     effects.HealGlow,
			X:        spos.X,
			Y:        spos.Y,
			Color:    skill.Element.PrimaryColor(),
			Size:     20,
			Duration: 0.3,
		})
	}
}

// castAOE damages every enemy within the skill radius of the target point.
func castAOE(w donburi.World, skill *skills.Skill, target math2.Vec2, sink effects.Sink) {
	hit := enemiesWithin(w, target.X, target.Y, skill.Radius)
	for _, e := range hit {
		ApplyDamage(w, e, skill.Damage, sink)
	}
	if skill.Pull {
		pullAll(w, hit, target)
	}

	sink.Emit(effects.Effect{
		Kind:     effects.Explosion,
		X:        target.X,
		Y:        target.Y,
		Color:    skill.Element.PrimaryColor(),
		Size:     skill.Radius,
		Duration: math.Max(0.1, skill.Duration),
	})
	sink.Play(cfg.SoundExplosion)
}

// castSlash damages enemies inside a sector centered on aim, with the skill
// radius as its reach.
func castSlash(w donburi.World, caster *donburi.Entry, skill *skills.Skill, aim math2.Vec2, sink effects.Sink) {
	conf := configOf(w)
	pos := components.Body.Get(caster).Position
	half := conf.Skill.SlashHalfArc * math.Pi / 180
	bearing := math.Atan2(aim.Y, aim.X)

	var hit []*donburi.Entry
	for _, e := range enemiesWithin(w, pos.X, pos.Y, skill.Radius) {
		dir, d := direction(pos, components.Body.Get(e).Position)
		if d == 0 || angleBetween(bearing, math.Atan2(dir.Y, dir.X)) <= half+timerEpsilon {
			hit = append(hit, e)
		}
	}
	for _, e := range hit {
		ApplyDamage(w, e, skill.Damage, sink)
	}
	if skill.Pull {
		pullAll(w, hit, pos)
	}

	sink.Emit(effects.Effect{
		Kind:       effects.SlashArc,
		X:          pos.X,
		Y:          pos.Y,
		Color:      skill.Element.PrimaryColor(),
		Size:       skill.Radius,
		Duration:   math.Max(0.1, skill.Duration),
		StartAngle: bearing - half,
		SweepAngle: half * 2,
	})
	sink.Play(cfg.SoundSlash)
}

// castChain jumps from the caster to the nearest unhit enemy within the
// skill radius of the previous link, up to the chain count. The target
// point only aims the cast animation.
func castChain(w donburi.World, caster *donburi.Entry, skill *skills.Skill, sink effects.Sink) {
	count := skill.ChainCount
	if count <= 0 {
		count = defaultChainCount
	}

	from := components.Body.Get(caster).Position
	point := from
	hit := map[donburi.Entity]bool{}
	for i := 0; i < count; i++ {
		var next *donburi.Entry
		best := math.Inf(1)
		for _, e := range enemiesWithin(w, point.X, point.Y, skill.Radius) {
			if hit[e.Entity()] {
				continue
			}
			if d := distance(point, components.Body.Get(e).Position); d < best {
				next, best = e, d
			}
		}
		if next == nil {
			break
		}
		hit[next.Entity()] = true
		to := components.Body.Get(next).Position

		sink.Emit(effects.Effect{
			Kind:     effects.Line,
			X:        from.X,
			Y:        from.Y,
			EndX:     to.X,
			EndY:     to.Y,
			Color:    skill.Element.PrimaryColor(),
			Size:     2,
			Duration: math.Max(0.1, skill.Duration),
		})
		ApplyDamage(w, next, skill.Damage, sink)
		from, point = to, to
	}
	sink.Play(cfg.SoundChain)
}

// pullAll drags each entry toward p by at most the configured strength.
func pullAll(w donburi.World, entries []*donburi.Entry, p math2.Vec2) {
	strength := configOf(w).Skill.PullStrength
	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		body := components.Body.Get(e)
		dir, d := direction(body.Position, p)
		if d == 0 {
			continue
		}
		step := math.Min(strength, d)
		moveBy(w, e, dir.X*step, dir.Y*step)
	}
}

// angleBetween is the unsigned difference of two bearings in radians, in
// [0, pi].
func angleBetween(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	return math.Min(d, 2*math.Pi-d)
}

// UpdateDeck advances everything the deck has spawned: projectiles first,
// then summons.
func UpdateDeck(w donburi.World, dt float64, sink effects.Sink) {
	updateProjectiles(w, dt, sink)
	UpdateSummons(w, dt, sink)
}
