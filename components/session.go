package components

import "github.com/yohamta/donburi"

// WaveSnapshot is the player's state when a wave ends.
type WaveSnapshot struct {
	Wave        int
	HP          float64
	Stamina     float64
	SkillUsage  []int
	Duration    float64
	Spawned     int
	EnemiesLeft int
}

// SessionData accumulates the end-of-session facts.
type SessionData struct {
	PlayID string
	Name   string
	Skills []string
	// Usage counts casts per deck slot for the current wave.
	Usage []int
	Waves []WaveSnapshot
}

var Session = donburi.NewComponentType[SessionData]()
