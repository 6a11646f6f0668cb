package systems

import (
	"image/color"

	"github.com/uzimpp/elemental-dungeon-sub000/assets/animations"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/yohamta/donburi"
)

// Drawable is everything a renderer needs to draw one entity.
type Drawable struct {
	Kind      components.Kind
	X, Y      float64
	Radius    float64
	Health    float64
	MaxHealth float64
	State     cfg.StateID
	Cell      animations.Cell
	Facing    int
	Color     color.RGBA
	Flash     bool
	Dying     bool
}

// DrawData lists the visible entities back to front: projectiles, enemies,
// summons, then the player.
func DrawData(w donburi.World) []Drawable {
	var out []Drawable
	for _, e := range Projectiles(w) {
		body := components.Body.Get(e)
		if !body.Alive {
			continue
		}
		out = append(out, Drawable{
			Kind:   components.KindProjectile,
			X:      body.Position.X,
			Y:      body.Position.Y,
			Radius: body.Radius,
			Color:  components.Projectile.Get(e).Color,
		})
	}
	for _, e := range Enemies(w) {
		out = append(out, fighterDrawable(e, cfg.Red))
	}
	for _, e := range Summons(w) {
		out = append(out, fighterDrawable(e, components.Summon.Get(e).Element.PrimaryColor()))
	}
	if player, ok := PlayerEntry(w); ok {
		out = append(out, fighterDrawable(player, cfg.Blue))
	}
	return out
}

func fighterDrawable(e *donburi.Entry, c color.RGBA) Drawable {
	body := components.Body.Get(e)
	hp := components.Health.Get(e)
	d := Drawable{
		Kind:      kindOf(e),
		X:         body.Position.X,
		Y:         body.Position.Y,
		Radius:    body.Radius,
		Health:    hp.Current,
		MaxHealth: hp.Max,
		State:     components.State.Get(e).CurrentState,
		Color:     c,
		Flash:     components.Flash.Get(e).Remaining > 0,
		Dying:     components.Death.Get(e).Dying,
	}
	if anim := components.Animation.Get(e); anim.StateMachine != nil {
		d.Cell = anim.Frame()
		d.Facing = anim.Facing()
	}
	return d
}
