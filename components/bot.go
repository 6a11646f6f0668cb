package components

import "github.com/yohamta/donburi"

type BotMode int

const (
	BotFight BotMode = iota
	BotRetreat
)

func (m BotMode) String() string {
	if m == BotRetreat {
		return "retreat"
	}
	return "fight"
}

// BotData marks a player driven by the autopilot instead of a human.
type BotData struct {
	Mode BotMode
	// DangerRadius is how close an enemy may get before the bot backs off.
	DangerRadius float64
	// HealBelow is the health ratio under which the bot heals first.
	HealBelow float64
}

var Bot = donburi.NewComponentType[BotData]()
