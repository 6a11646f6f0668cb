package components

import "github.com/yohamta/donburi"

// GameOverData is set once the player's death animation ends.
type GameOverData struct {
	Over bool
	At   float64
}

var GameOver = donburi.NewComponentType[GameOverData]()
