package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
)

func TestPlayerWalkAndSprint(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	p := mustPlayer(t, w)
	input := components.Input.Get(p)

	input.MoveX = 1
	UpdatePlayer(w, 0.1, effects.Discard{})
	x, _ := position(p)
	assert.InDelta(t, 649, x, 1e-9)
	assert.Equal(t, cfg.Walk, stateOf(p))

	input.Sprint = true
	UpdatePlayer(w, 1, effects.Discard{})
	x, _ = position(p)
	assert.InDelta(t, 829, x, 1e-9)
	assert.Equal(t, cfg.Sprint, stateOf(p))
	assert.InDelta(t, 80, components.Player.Get(p).Stamina, 1e-9)

	input.MoveX = 0
	UpdatePlayer(w, 0.1, effects.Discard{})
	assert.Equal(t, cfg.Idle, stateOf(p))
}

func TestStaminaExhaustion(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	p := mustPlayer(t, w)
	player := components.Player.Get(p)
	input := components.Input.Get(p)
	player.Stamina = 10

	input.MoveX, input.Sprint = 1, true
	UpdatePlayer(w, 1, effects.Discard{})
	assert.Zero(t, player.Stamina)
	assert.Equal(t, 2.5, player.StaminaCooldown)

	UpdatePlayer(w, 1, effects.Discard{})
	assert.Zero(t, player.Stamina, "no regen during the cooldown")
	assert.Equal(t, cfg.Walk, stateOf(p), "cannot sprint while exhausted")

	input.MoveX, input.Sprint = 0, false
	UpdatePlayer(w, 1.5, effects.Discard{})
	assert.InDelta(t, 22.5, player.Stamina, 1e-9)
}

func TestDashAlongFacing(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	q := &effects.Queue{}
	p := mustPlayer(t, w)

	components.Input.Get(p).Dash = true
	UpdatePlayer(w, frame, q)

	x, y := position(p)
	assert.InDelta(t, 640, x, 1e-9)
	assert.InDelta(t, 488, y, 1e-9)
	assert.InDelta(t, 70, components.Player.Get(p).Stamina, 1e-9)
	assert.Equal(t, 1, q.Count(effects.Afterimage))
	assert.Contains(t, q.Sounds, cfg.SoundDash)
	assert.False(t, components.Input.Get(p).Dash, "dash is consumed")
}

func TestDashNeedsStamina(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	p := mustPlayer(t, w)
	components.Player.Get(p).Stamina = 10

	components.Input.Get(p).Dash = true
	UpdatePlayer(w, frame, effects.Discard{})
	_, y := position(p)
	assert.InDelta(t, 360, y, 1e-9)
}

func TestNoDashWhileCasting(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	p := mustPlayer(t, w)
	EnterState(w, p, cfg.Cast)

	components.Input.Get(p).Dash = true
	UpdatePlayer(w, frame, effects.Discard{})
	x, y := position(p)
	assert.InDelta(t, 640, x, 1e-9)
	assert.InDelta(t, 360, y, 1e-9)
	assert.InDelta(t, 100, components.Player.Get(p).Stamina, 1e-9)
	assert.False(t, components.Input.Get(p).Dash)
}

func TestCastingSlowsAndHurtLocks(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	p := mustPlayer(t, w)
	components.Input.Get(p).MoveX = 1

	EnterState(w, p, cfg.Cast)
	UpdatePlayer(w, 0.1, effects.Discard{})
	x, _ := position(p)
	assert.InDelta(t, 644.5, x, 1e-9)
	assert.Equal(t, cfg.Cast, stateOf(p))

	EnterState(w, p, cfg.Hurt)
	UpdatePlayer(w, 0.1, effects.Discard{})
	x2, _ := position(p)
	assert.Equal(t, x, x2)

	UpdatePlayer(w, 0.25, effects.Discard{})
	assert.Equal(t, cfg.Walk, stateOf(p), "hurt wears off")
}

func TestInputCastUsesSkill(t *testing.T) {
	w := newTestWorld(t, worldOpts{deck: []skills.Definition{bolt}})
	p := mustPlayer(t, w)
	in := components.Input.Get(p)
	in.Cast, in.CastSlot, in.TargetX, in.TargetY = true, 0, 900, 360

	UpdatePlayer(w, frame, effects.Discard{})
	assert.False(t, in.Cast)
	assert.Len(t, Projectiles(w), 1)
	assert.Equal(t, cfg.Cast, stateOf(p))
}

func TestPlayerStaysInArena(t *testing.T) {
	w := newTestWorld(t, worldOpts{})
	p := mustPlayer(t, w)
	components.Input.Get(p).MoveX = -1

	UpdatePlayer(w, 100, effects.Discard{})
	x, _ := position(p)
	assert.InDelta(t, components.Body.Get(p).Radius, x, 1e-9)
}
