package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/yohamta/donburi"
)

// updateFighter runs the shared enemy and summon behaviour: chase the
// nearest candidate and sweep it once in reach and off cooldown.
func updateFighter(w donburi.World, e *donburi.Entry, dt float64, candidates []*donburi.Entry, sink effects.Sink) {
	body := components.Body.Get(e)
	if !body.Alive || components.Death.Get(e).Dying {
		return
	}
	combat := components.Combat.Get(e)
	state := components.State.Get(e)
	anim := components.Animation.Get(e)

	if combat.AttackTimer > 0 {
		combat.AttackTimer = max(0, combat.AttackTimer-dt)
	}

	if state.CurrentState.IsLocking() {
		state.StateTimer -= dt
		if state.StateTimer > timerEpsilon {
			anim.Update(dt, 0, 0)
			return
		}
		state.StateTimer = 0
		enterState(w, e, cfg.Idle)
	}

	target, dist := AcquireTarget(e, candidates)
	if target == nil {
		setLoopState(w, e, cfg.Idle)
		anim.Update(dt, 0, 0)
		return
	}

	targetBody := components.Body.Get(target)
	gap := dist - body.Radius - targetBody.Radius
	if gap <= combat.AttackRadius && combat.AttackTimer <= 0 {
		if dir, _ := direction(body.Position, targetBody.Position); !isZero(dir) {
			body.Facing = dir
			anim.Face(dir.X, dir.Y)
		}
		enterState(w, e, cfg.Sweep)
		combat.AttackTimer = combat.AttackCooldown
		ApplyDamage(w, target, combat.Damage, sink)
		return
	}

	if dist == 0 {
		setLoopState(w, e, cfg.Idle)
		anim.Update(dt, 0, 0)
		return
	}

	MoveToward(w, e, targetBody.Position.X, targetBody.Position.Y, dt)
	setLoopState(w, e, cfg.Walk)
	anim.Update(dt, body.Facing.X, body.Facing.Y)
}
