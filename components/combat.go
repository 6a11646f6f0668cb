package components

import "github.com/yohamta/donburi"

// Kind tells the three combat entity roles apart.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSummon
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindSummon:
		return "summon"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// CombatData holds the melee attack of enemies and summons.
type CombatData struct {
	Kind           Kind
	Damage         float64
	AttackRadius   float64
	AttackCooldown float64
	// AttackTimer counts down; an attack may start once it is <= 0.
	AttackTimer float64
}

var Combat = donburi.NewComponentType[CombatData]()
