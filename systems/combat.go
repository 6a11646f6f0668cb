package systems

import (
	"log"
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/yohamta/donburi"
)

// flashDuration is how long a hit tint stays on an entity.
const flashDuration = 0.1

// ApplyDamage subtracts amount from e's health and reports whether it
// landed. Damage to dying or removed entities is dropped. Lethal damage
// starts the death sequence; anything else flinches the target unless it
// is mid-swing.
func ApplyDamage(w donburi.World, e *donburi.Entry, amount float64, sink effects.Sink) bool {
	if amount <= 0 || !isTargetable(e) || !e.HasComponent(components.Health) {
		return false
	}

	hp := components.Health.Get(e)
	dealt := math.Min(amount, hp.Current)
	hp.Current = math.Max(0, hp.Current-amount)

	if e.HasComponent(components.Flash) {
		components.Flash.Get(e).Remaining = flashDuration
	}
	if m := metricsOf(w); m != nil {
		m.DamageDealt.WithLabelValues(kindOf(e).String()).Add(dealt)
	}

	if hp.Current <= 0 {
		startDeathSequence(w, e, sink)
		return true
	}

	sink.Play(cfg.SoundHit)
	if canFlinch(e) {
		enterState(w, e, cfg.Hurt)
	}
	return true
}

func canFlinch(e *donburi.Entry) bool {
	if !e.HasComponent(components.State) {
		return false
	}
	switch components.State.Get(e).CurrentState {
	case cfg.Dying, cfg.Sweep:
		return false
	case cfg.Cast, cfg.Throw, cfg.Shoot:
		// the player finishes casting through hits
		return !e.HasComponent(components.Player)
	}
	return true
}

// Heal restores up to amount, never past max health, and returns how much
// was restored.
func Heal(e *donburi.Entry, amount float64) float64 {
	if amount <= 0 || !isTargetable(e) || !e.HasComponent(components.Health) {
		return 0
	}
	hp := components.Health.Get(e)
	before := hp.Current
	hp.Current = math.Min(hp.Max, hp.Current+amount)
	return hp.Current - before
}

func startDeathSequence(w donburi.World, e *donburi.Entry, sink effects.Sink) {
	components.Health.Get(e).Current = 0
	enterState(w, e, cfg.Dying)

	death := components.Death.Get(e)
	death.Dying = true
	death.Timer = LockDuration(configOf(w), cfg.Dying)

	sink.Play(cfg.SoundDeath)
	if kindOf(e) == components.KindEnemy {
		if m := metricsOf(w); m != nil {
			m.EnemiesKilled.Inc()
		}
	}
}

// EnterState switches e to state. Locking and action states restart their
// animation and arm the state timer with the animation's total duration.
func EnterState(w donburi.World, e *donburi.Entry, state cfg.StateID) {
	enterState(w, e, state)
}

func enterState(w donburi.World, e *donburi.Entry, state cfg.StateID) {
	st := components.State.Get(e)
	if st.CurrentState != state {
		st.PreviousState = st.CurrentState
	}
	st.CurrentState = state

	timed := state.IsLocking() || state.IsAction()
	if timed {
		st.StateTimer = LockDuration(configOf(w), state)
	} else {
		st.StateTimer = 0
	}

	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).SetState(state, timed)
	}
}

// setLoopState enters a looping state only if e is not already in it, so
// the animation keeps its progress.
func setLoopState(w donburi.World, e *donburi.Entry, state cfg.StateID) {
	if components.State.Get(e).CurrentState != state {
		enterState(w, e, state)
	}
}

// LockDuration is how long state holds an entity: the total length of its
// animation. States without a usable animation lock for the default.
func LockDuration(conf *cfg.Config, state cfg.StateID) float64 {
	def, ok := conf.Animations[state]
	if !ok || def.Total() <= 0 {
		log.Printf("Warning: no animation for state %s, locking for %.2fs", state, cfg.DefaultLockDuration)
		return cfg.DefaultLockDuration
	}
	return def.Total()
}
