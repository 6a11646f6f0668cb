package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

const afterimageDuration = 0.2

// UpdatePlayer applies the frame's input: casting, stamina, dash and
// movement. Sweep and Hurt hold the player in place; casting slows them.
func UpdatePlayer(w donburi.World, dt float64, sink effects.Sink) {
	e, ok := PlayerEntry(w)
	if !ok {
		return
	}
	body := components.Body.Get(e)
	if !body.Alive || components.Death.Get(e).Dying {
		return
	}

	conf := configOf(w)
	player := components.Player.Get(e)
	input := components.Input.Get(e)
	state := components.State.Get(e)
	anim := components.Animation.Get(e)

	if state.CurrentState.IsLocking() || state.CurrentState.IsAction() {
		state.StateTimer -= dt
		if state.StateTimer <= timerEpsilon {
			state.StateTimer = 0
			enterState(w, e, cfg.Idle)
		}
	}

	if input.Cast {
		input.Cast = false
		UseSkill(w, input.CastSlot, input.TargetX, input.TargetY, Now(w), sink)
	}

	move := normalize(input.MoveX, input.MoveY)
	moving := !isZero(move)
	locked := state.CurrentState.IsLocking()
	acting := state.CurrentState.IsAction()

	sprinting := input.Sprint && moving && !locked &&
		player.Stamina > 0 && player.StaminaCooldown <= 0
	updateStamina(player, &conf.Player, sprinting, dt)

	if input.Dash {
		input.Dash = false
		if !locked && !acting {
			dash(w, e, move, sink)
		}
	}

	if moving && !locked {
		speed := conf.Player.WalkSpeed
		if sprinting {
			speed = conf.Player.SprintSpeed
		}
		if acting {
			speed *= conf.Player.ActionSlowdown
		}
		body.Speed = speed
		body.Facing = move
		moveBy(w, e, move.X*speed*dt, move.Y*speed*dt)
	}

	if !locked && !acting {
		switch {
		case sprinting:
			setLoopState(w, e, cfg.Sprint)
		case moving:
			setLoopState(w, e, cfg.Walk)
		default:
			setLoopState(w, e, cfg.Idle)
		}
	}

	if locked {
		anim.Update(dt, 0, 0)
	} else {
		anim.Update(dt, move.X, move.Y)
	}
}

// updateStamina drains while sprinting. Running dry starts a cooldown
// before regeneration resumes.
func updateStamina(p *components.PlayerData, conf *cfg.PlayerConfig, sprinting bool, dt float64) {
	if sprinting {
		p.Stamina -= conf.SprintDrain * dt
		if p.Stamina <= 0 {
			p.Stamina = 0
			p.StaminaCooldown = conf.StaminaCooldown
		}
		return
	}
	if p.StaminaCooldown > 0 {
		p.StaminaCooldown -= dt
		if p.StaminaCooldown > 0 {
			return
		}
		p.StaminaCooldown = 0
	}
	p.Stamina = min(p.MaxStamina, p.Stamina+conf.StaminaRegen*dt)
}

// dash blinks the player along move, or along their facing when standing
// still, if they can pay for it.
func dash(w donburi.World, e *donburi.Entry, move math2.Vec2, sink effects.Sink) bool {
	conf := configOf(w)
	player := components.Player.Get(e)
	if player.Stamina < conf.Player.DashCost {
		return false
	}

	body := components.Body.Get(e)
	dir := move
	if isZero(dir) {
		dir = body.Facing
	}
	if isZero(dir) {
		return false
	}

	from := body.Position
	moveBy(w, e, dir.X*conf.Player.DashDistance, dir.Y*conf.Player.DashDistance)
	player.Stamina -= conf.Player.DashCost

	sink.Emit(effects.Effect{
		Kind:     effects.Afterimage,
		X:        from.X,
		Y:        from.Y,
		EndX:     body.Position.X,
		EndY:     body.Position.Y,
		Color:    cfg.Blue,
		Size:     body.Radius,
		Duration: afterimageDuration,
	})
	sink.Play(cfg.SoundDash)
	return true
}
