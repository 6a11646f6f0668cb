package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Summon     = donburi.NewTag().SetName("Summon")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvSummon     = "Summon"
	ResolvProjectile = "Projectile"
	ResolvQuery      = "query"
)
