package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/skills"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

const (
	defaultDangerRadius = 120
	defaultHealBelow    = 0.35
	botDashRadius       = 60
	botSprintStamina    = 30
)

// EnableBot hands the player over to the autopilot.
func EnableBot(w donburi.World) {
	player, ok := PlayerEntry(w)
	if !ok || player.HasComponent(components.Bot) {
		return
	}
	donburi.Add(player, components.Bot, &components.BotData{
		DangerRadius: defaultDangerRadius,
		HealBelow:    defaultHealBelow,
	})
}

// HasBot reports whether the autopilot drives the player.
func HasBot(w donburi.World) bool {
	player, ok := PlayerEntry(w)
	return ok && player.HasComponent(components.Bot)
}

// UpdateBot fills the player's input for this frame. It keeps away from
// the nearest enemy and fires whatever skill is ready at it.
// Must run BEFORE Step.
func UpdateBot(w donburi.World) {
	player, ok := PlayerEntry(w)
	if !ok || !player.HasComponent(components.Bot) || !isTargetable(player) {
		return
	}
	bot := components.Bot.Get(player)
	input := components.Input.Get(player)
	body := components.Body.Get(player)
	hp := components.Health.Get(player)
	stamina := components.Player.Get(player).Stamina

	*input = components.InputData{}

	target, dist := AcquireTarget(player, Enemies(w))
	if target == nil {
		bot.Mode = components.BotFight
		return
	}
	tpos := components.Body.Get(target).Position

	bot.Mode = components.BotFight
	if dist < bot.DangerRadius {
		bot.Mode = components.BotRetreat
	}

	if bot.Mode == components.BotRetreat {
		away, _ := direction(tpos, body.Position)
		if isZero(away) {
			away = math2.Vec2{X: 1}
		}
		input.MoveX, input.MoveY = away.X, away.Y
		input.Sprint = stamina > botSprintStamina
		input.Dash = dist < botDashRadius
	}

	if hp.Ratio() < bot.HealBelow {
		if slot, ok := readySlot(w, player, func(s *skills.Skill) bool { return s.Archetype == skills.Heal }); ok {
			castAt(input, slot, body.Position)
			return
		}
	}

	slot, ok := readySlot(w, player, func(s *skills.Skill) bool {
		switch s.Archetype {
		case skills.Heal:
			return hp.Current < hp.Max
		case skills.Slash:
			return dist <= s.Radius+body.Radius
		case skills.Summon:
			deck := components.Deck.Get(player)
			return len(deck.Summons) < deck.SummonLimit
		}
		return true
	})
	if ok {
		castAt(input, slot, tpos)
	}
}

func readySlot(w donburi.World, player *donburi.Entry, want func(*skills.Skill) bool) (int, bool) {
	now := Now(w)
	for i, s := range components.Deck.Get(player).Skills {
		if s != nil && s.OffCooldown(now) && want(s) {
			return i, true
		}
	}
	return 0, false
}

func castAt(input *components.InputData, slot int, at math2.Vec2) {
	input.Cast = true
	input.CastSlot = slot
	input.TargetX, input.TargetY = at.X, at.Y
}
