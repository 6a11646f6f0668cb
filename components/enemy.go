package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Wave int
}

var Enemy = donburi.NewComponentType[EnemyData]()
