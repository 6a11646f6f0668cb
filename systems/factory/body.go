package factory

import (
	"github.com/solarlune/resolv"
	"github.com/uzimpp/elemental-dungeon-sub000/assets/animations"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// attachBody places a circular body centered on (x, y) and registers its
// box in the space.
func attachBody(w donburi.World, e *donburi.Entry, x, y, radius, speed float64, tag string) {
	settings := components.Settings.Get(components.Settings.MustFirst(w))

	components.Body.SetValue(e, components.BodyData{
		Position: math2.Vec2{X: x, Y: y},
		Radius:   radius,
		Speed:    speed,
		Facing:   math2.Vec2{X: 0, Y: 1},
		Alive:    true,
		Seq:      settings.NextSeq(),
	})

	obj := resolv.NewObject(x-radius, y-radius, radius*2, radius*2, tag)
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(w)).Add(obj)
}

// attachFighter sets up the health, state and animation shared by every
// combat entity.
func attachFighter(e *donburi.Entry, cfg *config.Config, health float64) {
	components.Health.SetValue(e, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.State.SetValue(e, components.StateData{
		CurrentState:  config.Idle,
		PreviousState: config.StateNone,
	})
	components.Animation.SetValue(e, components.AnimationData{
		StateMachine: animations.NewStateMachine(cfg.Animations),
	})
	components.Death.SetValue(e, components.DeathData{})
	components.Flash.SetValue(e, components.FlashData{})
}

func configOf(w donburi.World) *config.Config {
	return components.Settings.Get(components.Settings.MustFirst(w)).Config
}
